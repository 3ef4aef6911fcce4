package in

import (
	"context"
	"time"

	examdto "examprep/internal/modules/exam/dto"
	examin "examprep/internal/modules/exam/port/in"
)

type CLIHandler struct {
	usecase examin.Usecase
}

func NewCLIHandler(usecase examin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Finish(ctx context.Context, startedAt time.Time, answers map[int]bool, total, correct int) (examdto.SessionOutput, bool) {
	return h.usecase.Finish(ctx, examdto.FinishInput{StartTime: startedAt, Answers: answers, TotalQuestions: total, CorrectAnswers: correct})
}

func (h CLIHandler) ListAll(ctx context.Context) []examdto.SessionOutput {
	return h.usecase.ListAll(ctx)
}

func (h CLIHandler) Stats(ctx context.Context) examdto.StatsOutput {
	return h.usecase.Stats(ctx)
}

func (h CLIHandler) Clear(ctx context.Context) bool {
	return h.usecase.Clear(ctx)
}
