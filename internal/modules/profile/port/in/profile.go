package in

import (
	"context"

	"examprep/internal/modules/profile/dto"
)

type Usecase interface {
	Get(ctx context.Context) string
	// Set returns the validation result; a storage failure is returned as an
	// error only for valid names.
	Set(ctx context.Context, name string) (dto.SetOutput, error)
	Validate(name string) dto.ValidationOutput
	Reset(ctx context.Context) bool
}
