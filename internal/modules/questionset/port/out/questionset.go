package out

import (
	"context"

	"examprep/internal/modules/questionset/domain"
)

type StateStore interface {
	Load(ctx context.Context) (domain.State, error)
	Save(ctx context.Context, state domain.State) error
	Reset(ctx context.Context) error
}

type QuestionFileReader interface {
	Read(ctx context.Context, path string) ([]domain.Question, error)
}
