package in

import (
	"context"

	"examprep/internal/modules/missed/dto"
)

// Usecase operations never fail: storage errors are logged and turned into
// the zero value of each result.
type Usecase interface {
	Record(ctx context.Context, input dto.RecordInput) bool
	List(ctx context.Context) []dto.RecordOutput
	IsTracked(ctx context.Context, questionID int) bool
	Count(ctx context.Context) int
	Remove(ctx context.Context, questionID int) bool
	Clear(ctx context.Context) bool
	Review(ctx context.Context) []dto.ReviewOutput
}
