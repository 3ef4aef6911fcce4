package out

import (
	"context"

	"examprep/internal/modules/question/domain"
)

type Dataset interface {
	Load(ctx context.Context) ([]domain.Question, error)
	Replace(ctx context.Context, questions []domain.Question) error
}

// Remote fetches the authoritative dataset. A nil Remote disables sync.
type Remote interface {
	Fetch(ctx context.Context) ([]domain.Question, error)
}
