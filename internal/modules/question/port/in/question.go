package in

import (
	"context"

	"examprep/internal/modules/question/dto"
)

type Usecase interface {
	Get(ctx context.Context, id int) (dto.QuestionOutput, error)
	List(ctx context.Context, category string) ([]dto.QuestionOutput, error)
	Categories(ctx context.Context) ([]string, error)
	Sync(ctx context.Context) (dto.SyncOutput, error)
}
