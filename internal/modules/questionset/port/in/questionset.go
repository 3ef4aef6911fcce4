package in

import (
	"context"

	"examprep/internal/modules/questionset/dto"
)

// Usecase: Save, Import and Delete return storage failures; the remaining
// operations log them and fall back to empty results or false.
type Usecase interface {
	Save(ctx context.Context, input dto.SaveInput) (dto.SetOutput, error)
	Import(ctx context.Context, input dto.ImportInput) (dto.SetOutput, error)
	Delete(ctx context.Context, id string) error
	Activate(ctx context.Context, id string) bool
	Deactivate(ctx context.Context, id string) bool
	ListAll(ctx context.Context) []dto.SetOutput
	ListActive(ctx context.Context) []dto.SetOutput
	ActiveQuestions(ctx context.Context) []dto.QuestionOutput
	Reset(ctx context.Context) bool
}
