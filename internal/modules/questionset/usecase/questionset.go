package usecase

import (
	"context"

	"go.uber.org/zap"

	"examprep/internal/modules/questionset/domain"
	"examprep/internal/modules/questionset/dto"
	questionsetin "examprep/internal/modules/questionset/port/in"
	"examprep/internal/modules/questionset/service"
)

type Interactor struct {
	svc    *service.QuestionSetService
	logger *zap.Logger
}

func NewInteractor(svc *service.QuestionSetService, logger *zap.Logger) questionsetin.Usecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interactor{svc: svc, logger: logger.Named("questionset")}
}

func (i *Interactor) Save(ctx context.Context, input dto.SaveInput) (dto.SetOutput, error) {
	questions := make([]domain.Question, 0, len(input.Questions))
	for _, q := range input.Questions {
		questions = append(questions, domain.Question{ID: q.ID, Category: q.Category, Text: q.Text, Answer: q.Answer, Explanation: q.Explanation})
	}
	set, active, err := i.svc.Save(ctx, domain.QuestionSet{
		ID:        input.ID,
		Name:      input.Name,
		Year:      input.Year,
		Season:    domain.Season(input.Season),
		Questions: questions,
	})
	if err != nil {
		return dto.SetOutput{}, err
	}
	return toOutput(set, active), nil
}

func (i *Interactor) Import(ctx context.Context, input dto.ImportInput) (dto.SetOutput, error) {
	set, active, err := i.svc.Import(ctx, input.Path, input.Name, input.Year, domain.Season(input.Season))
	if err != nil {
		return dto.SetOutput{}, err
	}
	i.logger.Info("imported question set", zap.String("set_id", set.ID), zap.Int("questions", len(set.Questions)))
	return toOutput(set, active), nil
}

func (i *Interactor) Delete(ctx context.Context, id string) error {
	return i.svc.Delete(ctx, id)
}

func (i *Interactor) Activate(ctx context.Context, id string) bool {
	if err := i.svc.Activate(ctx, id); err != nil {
		i.logger.Warn("activate question set failed", zap.String("set_id", id), zap.Error(err))
		return false
	}
	return true
}

func (i *Interactor) Deactivate(ctx context.Context, id string) bool {
	if err := i.svc.Deactivate(ctx, id); err != nil {
		i.logger.Warn("deactivate question set failed", zap.String("set_id", id), zap.Error(err))
		return false
	}
	return true
}

func (i *Interactor) ListAll(ctx context.Context) []dto.SetOutput {
	state := i.state(ctx)
	out := make([]dto.SetOutput, 0, len(state.Sets))
	for _, set := range state.Sets {
		out = append(out, toOutput(set, state.IsActive(set.ID)))
	}
	return out
}

func (i *Interactor) ListActive(ctx context.Context) []dto.SetOutput {
	active := i.state(ctx).Active()
	out := make([]dto.SetOutput, 0, len(active))
	for _, set := range active {
		out = append(out, toOutput(set, true))
	}
	return out
}

func (i *Interactor) ActiveQuestions(ctx context.Context) []dto.QuestionOutput {
	return toQuestions(i.state(ctx).ActiveQuestions())
}

func (i *Interactor) Reset(ctx context.Context) bool {
	if err := i.svc.Reset(ctx); err != nil {
		i.logger.Warn("reset question sets failed", zap.Error(err))
		return false
	}
	return true
}

func (i *Interactor) state(ctx context.Context) domain.State {
	state, err := i.svc.State(ctx)
	if err != nil {
		i.logger.Warn("load question sets failed", zap.Error(err))
		return domain.NewState()
	}
	return state
}

func toOutput(set domain.QuestionSet, active bool) dto.SetOutput {
	return dto.SetOutput{
		ID:            set.ID,
		Name:          set.Name,
		Year:          set.Year,
		Season:        string(set.Season),
		CreatedAt:     set.CreatedAt,
		QuestionCount: len(set.Questions),
		IsActive:      active,
	}
}

func toQuestions(questions []domain.Question) []dto.QuestionOutput {
	out := make([]dto.QuestionOutput, 0, len(questions))
	for _, q := range questions {
		out = append(out, dto.QuestionOutput{ID: q.ID, Category: q.Category, Text: q.Text, Answer: q.Answer, Explanation: q.Explanation})
	}
	return out
}
