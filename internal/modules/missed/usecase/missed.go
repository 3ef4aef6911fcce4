package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"examprep/internal/modules/missed/domain"
	"examprep/internal/modules/missed/dto"
	missedin "examprep/internal/modules/missed/port/in"
	"examprep/internal/modules/missed/service"
	questionin "examprep/internal/modules/question/port/in"
)

type Interactor struct {
	svc       *service.MissedService
	questions questionin.Usecase
	logger    *zap.Logger
}

func NewInteractor(svc *service.MissedService, questions questionin.Usecase, logger *zap.Logger) missedin.Usecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interactor{svc: svc, questions: questions, logger: logger.Named("missed")}
}

func (i *Interactor) Record(ctx context.Context, input dto.RecordInput) bool {
	if _, err := i.svc.Record(ctx, input.QuestionID, input.UserAnswer); err != nil {
		i.logger.Warn("record missed question failed", zap.Int("question_id", input.QuestionID), zap.Error(err))
		return false
	}
	return true
}

func (i *Interactor) List(ctx context.Context) []dto.RecordOutput {
	records := i.load(ctx)
	out := make([]dto.RecordOutput, 0, len(records))
	for _, r := range records {
		out = append(out, toOutput(r))
	}
	return out
}

func (i *Interactor) IsTracked(ctx context.Context, questionID int) bool {
	return domain.Contains(i.load(ctx), questionID)
}

func (i *Interactor) Count(ctx context.Context) int {
	return len(i.load(ctx))
}

func (i *Interactor) Remove(ctx context.Context, questionID int) bool {
	removed, err := i.svc.Remove(ctx, questionID)
	if err != nil {
		i.logger.Warn("remove missed question failed", zap.Int("question_id", questionID), zap.Error(err))
		return false
	}
	return removed
}

func (i *Interactor) Clear(ctx context.Context) bool {
	if err := i.svc.Clear(ctx); err != nil {
		i.logger.Warn("clear missed questions failed", zap.Error(err))
		return false
	}
	return true
}

// Review pairs each record with its dataset question. Records whose question
// is missing from the dataset are still returned, with InDataset false.
func (i *Interactor) Review(ctx context.Context) []dto.ReviewOutput {
	records := i.load(ctx)
	out := make([]dto.ReviewOutput, 0, len(records))
	for _, r := range records {
		item := dto.ReviewOutput{RecordOutput: toOutput(r)}
		if i.questions != nil {
			q, err := i.questions.Get(ctx, r.QuestionID)
			if err == nil {
				item.Category = q.Category
				item.Text = q.Text
				item.CorrectAnswer = q.Answer
				item.InDataset = true
			} else {
				i.logger.Debug("question not in dataset", zap.Int("question_id", r.QuestionID), zap.Error(err))
			}
		}
		out = append(out, item)
	}
	return out
}

func (i *Interactor) load(ctx context.Context) []domain.Record {
	records, err := i.svc.List(ctx)
	if err != nil {
		i.logger.Warn("load missed questions failed", zap.Error(err))
		return []domain.Record{}
	}
	return records
}

func toOutput(r domain.Record) dto.RecordOutput {
	return dto.RecordOutput{
		QuestionID:   r.QuestionID,
		UserAnswer:   r.UserAnswer,
		RecordedAt:   time.UnixMilli(r.Timestamp).UTC(),
		AttemptCount: r.AttemptCount,
	}
}
