package out

import (
	"context"

	"examprep/internal/modules/exam/domain"
)

type SessionLog interface {
	Load(ctx context.Context) ([]domain.Session, error)
	Save(ctx context.Context, sessions []domain.Session) error
	Clear(ctx context.Context) error
}
