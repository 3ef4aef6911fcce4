package in

import (
	"context"

	profiledto "examprep/internal/modules/profile/dto"
	profilein "examprep/internal/modules/profile/port/in"
)

type CLIHandler struct {
	usecase profilein.Usecase
}

func NewCLIHandler(usecase profilein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Get(ctx context.Context) string {
	return h.usecase.Get(ctx)
}

func (h CLIHandler) Set(ctx context.Context, name string) (profiledto.SetOutput, error) {
	return h.usecase.Set(ctx, name)
}

func (h CLIHandler) Validate(name string) profiledto.ValidationOutput {
	return h.usecase.Validate(name)
}

func (h CLIHandler) Reset(ctx context.Context) bool {
	return h.usecase.Reset(ctx)
}
