package in

import (
	"context"

	"examprep/internal/modules/cache/dto"
)

type Usecase interface {
	Install(ctx context.Context) (dto.InstallOutput, error)
	Activate(ctx context.Context) (dto.ActivateOutput, error)
	Supersede() error
	Terminate() error
	State() string
	Handle(ctx context.Context, req dto.Request) dto.Response
	Sync(ctx context.Context, tag string) dto.SyncOutput
	Push(ctx context.Context, payload []byte) error
	NotificationClick(ctx context.Context) (dto.ClickOutput, error)
	Namespaces(ctx context.Context) ([]dto.NamespaceOutput, error)
	// Run serves events until ctx is done or events is closed, then waits
	// for in-flight handlers.
	Run(ctx context.Context, events <-chan dto.Event) error
}
