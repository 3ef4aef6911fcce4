package in

import (
	"context"

	cachedto "examprep/internal/modules/cache/dto"
	cachein "examprep/internal/modules/cache/port/in"
)

type CLIHandler struct {
	usecase cachein.Usecase
}

func NewCLIHandler(usecase cachein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Install(ctx context.Context) (cachedto.InstallOutput, error) {
	return h.usecase.Install(ctx)
}

func (h CLIHandler) Activate(ctx context.Context) (cachedto.ActivateOutput, error) {
	return h.usecase.Activate(ctx)
}

func (h CLIHandler) Namespaces(ctx context.Context) ([]cachedto.NamespaceOutput, error) {
	return h.usecase.Namespaces(ctx)
}

func (h CLIHandler) Fetch(ctx context.Context, rawURL string) cachedto.Response {
	return h.usecase.Handle(ctx, cachedto.Request{Method: "GET", URL: rawURL})
}

func (h CLIHandler) State() string {
	return h.usecase.State()
}
