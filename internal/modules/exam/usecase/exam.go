package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"examprep/internal/modules/exam/domain"
	"examprep/internal/modules/exam/dto"
	examin "examprep/internal/modules/exam/port/in"
	"examprep/internal/modules/exam/service"
	"examprep/internal/platform/clock"
)

type Interactor struct {
	svc    *service.ExamService
	logger *zap.Logger
}

func NewInteractor(svc *service.ExamService, logger *zap.Logger) examin.Usecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interactor{svc: svc, logger: logger.Named("exam")}
}

func (i *Interactor) Save(ctx context.Context, input dto.SessionInput) bool {
	session := domain.Session{
		ID:             input.ID,
		StartTime:      clock.Millis(input.StartTime),
		Answers:        input.Answers,
		TimeSpent:      input.TimeSpent.Milliseconds(),
		TotalQuestions: input.TotalQuestions,
		CorrectAnswers: input.CorrectAnswers,
	}
	if input.EndTime != nil {
		end := clock.Millis(*input.EndTime)
		session.EndTime = &end
		session.Date = input.EndTime.UTC().Format(domain.DateLayout)
	} else {
		session.Date = input.StartTime.UTC().Format(domain.DateLayout)
	}
	if _, err := i.svc.Save(ctx, session); err != nil {
		i.logger.Warn("save exam session failed", zap.String("session_id", input.ID), zap.Error(err))
		return false
	}
	return true
}

func (i *Interactor) Finish(ctx context.Context, input dto.FinishInput) (dto.SessionOutput, bool) {
	session, err := i.svc.Finish(ctx, clock.Millis(input.StartTime), input.Answers, input.TotalQuestions, input.CorrectAnswers)
	if err != nil {
		i.logger.Warn("finish exam session failed", zap.Error(err))
		return dto.SessionOutput{}, false
	}
	return toOutput(session), true
}

func (i *Interactor) ListAll(ctx context.Context) []dto.SessionOutput {
	sessions := i.listAll(ctx)
	out := make([]dto.SessionOutput, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, toOutput(s))
	}
	return out
}

func (i *Interactor) Stats(ctx context.Context) dto.StatsOutput {
	stats := domain.Summarize(i.listAll(ctx))
	out := dto.StatsOutput{
		TotalAttempts:    stats.TotalAttempts,
		AverageScore:     stats.AverageScore,
		BestScore:        stats.BestScore,
		WorstScore:       stats.WorstScore,
		AverageTimeSpent: time.Duration(stats.AverageTimeSpent) * time.Millisecond,
		Sessions:         make([]dto.SessionOutput, 0, len(stats.Sessions)),
	}
	for _, s := range stats.Sessions {
		out.Sessions = append(out.Sessions, toOutput(s))
	}
	return out
}

func (i *Interactor) Clear(ctx context.Context) bool {
	if err := i.svc.Clear(ctx); err != nil {
		i.logger.Warn("clear exam sessions failed", zap.Error(err))
		return false
	}
	return true
}

func (i *Interactor) listAll(ctx context.Context) []domain.Session {
	sessions, err := i.svc.ListAll(ctx)
	if err != nil {
		i.logger.Warn("load exam sessions failed", zap.Error(err))
		return []domain.Session{}
	}
	return sessions
}

func toOutput(s domain.Session) dto.SessionOutput {
	out := dto.SessionOutput{
		ID:             s.ID,
		StartTime:      time.UnixMilli(s.StartTime).UTC(),
		Answers:        s.Answers,
		TimeSpent:      time.Duration(s.TimeSpent) * time.Millisecond,
		Score:          s.Score,
		TotalQuestions: s.TotalQuestions,
		CorrectAnswers: s.CorrectAnswers,
		Date:           s.Date,
	}
	if s.EndTime != nil {
		end := time.UnixMilli(*s.EndTime).UTC()
		out.EndTime = &end
	}
	return out
}
