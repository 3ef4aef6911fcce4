package out

import (
	"context"

	"examprep/internal/modules/missed/domain"
)

type RecordStore interface {
	Load(ctx context.Context) ([]domain.Record, error)
	Save(ctx context.Context, records []domain.Record) error
	Clear(ctx context.Context) error
}
