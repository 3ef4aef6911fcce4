package in

import (
	"context"

	"examprep/internal/modules/exam/dto"
)

type Usecase interface {
	Save(ctx context.Context, input dto.SessionInput) bool
	Finish(ctx context.Context, input dto.FinishInput) (dto.SessionOutput, bool)
	ListAll(ctx context.Context) []dto.SessionOutput
	Stats(ctx context.Context) dto.StatsOutput
	Clear(ctx context.Context) bool
}
