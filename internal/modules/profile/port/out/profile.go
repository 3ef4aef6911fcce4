package out

import "context"

type NameStore interface {
	Load(ctx context.Context) (string, bool, error)
	Save(ctx context.Context, name string) error
	Clear(ctx context.Context) error
}
