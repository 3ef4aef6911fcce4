package in

import (
	"context"

	questiondto "examprep/internal/modules/question/dto"
	questionin "examprep/internal/modules/question/port/in"
)

type CLIHandler struct {
	usecase questionin.Usecase
}

func NewCLIHandler(usecase questionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Get(ctx context.Context, id int) (questiondto.QuestionOutput, error) {
	return h.usecase.Get(ctx, id)
}

func (h CLIHandler) List(ctx context.Context, category string) ([]questiondto.QuestionOutput, error) {
	return h.usecase.List(ctx, category)
}

func (h CLIHandler) Categories(ctx context.Context) ([]string, error) {
	return h.usecase.Categories(ctx)
}

func (h CLIHandler) Sync(ctx context.Context) (questiondto.SyncOutput, error) {
	return h.usecase.Sync(ctx)
}
