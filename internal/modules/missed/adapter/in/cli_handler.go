package in

import (
	"context"

	misseddto "examprep/internal/modules/missed/dto"
	missedin "examprep/internal/modules/missed/port/in"
)

type CLIHandler struct {
	usecase missedin.Usecase
}

func NewCLIHandler(usecase missedin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Record(ctx context.Context, questionID int, answer bool) bool {
	return h.usecase.Record(ctx, misseddto.RecordInput{QuestionID: questionID, UserAnswer: answer})
}

func (h CLIHandler) List(ctx context.Context) []misseddto.RecordOutput {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Count(ctx context.Context) int {
	return h.usecase.Count(ctx)
}

func (h CLIHandler) IsTracked(ctx context.Context, questionID int) bool {
	return h.usecase.IsTracked(ctx, questionID)
}

func (h CLIHandler) Remove(ctx context.Context, questionID int) bool {
	return h.usecase.Remove(ctx, questionID)
}

func (h CLIHandler) Clear(ctx context.Context) bool {
	return h.usecase.Clear(ctx)
}

func (h CLIHandler) Review(ctx context.Context) []misseddto.ReviewOutput {
	return h.usecase.Review(ctx)
}
