package in

import (
	"context"

	questionsetdto "examprep/internal/modules/questionset/dto"
	questionsetin "examprep/internal/modules/questionset/port/in"
)

type CLIHandler struct {
	usecase questionsetin.Usecase
}

func NewCLIHandler(usecase questionsetin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Import(ctx context.Context, path, name string, year int, season string) (questionsetdto.SetOutput, error) {
	return h.usecase.Import(ctx, questionsetdto.ImportInput{Path: path, Name: name, Year: year, Season: season})
}

func (h CLIHandler) Delete(ctx context.Context, id string) error {
	return h.usecase.Delete(ctx, id)
}

func (h CLIHandler) Activate(ctx context.Context, id string) bool {
	return h.usecase.Activate(ctx, id)
}

func (h CLIHandler) Deactivate(ctx context.Context, id string) bool {
	return h.usecase.Deactivate(ctx, id)
}

func (h CLIHandler) ListAll(ctx context.Context) []questionsetdto.SetOutput {
	return h.usecase.ListAll(ctx)
}

func (h CLIHandler) ListActive(ctx context.Context) []questionsetdto.SetOutput {
	return h.usecase.ListActive(ctx)
}

func (h CLIHandler) ActiveQuestions(ctx context.Context) []questionsetdto.QuestionOutput {
	return h.usecase.ActiveQuestions(ctx)
}

func (h CLIHandler) Reset(ctx context.Context) bool {
	return h.usecase.Reset(ctx)
}
