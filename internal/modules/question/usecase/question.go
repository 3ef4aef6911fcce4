package usecase

import (
	"context"

	"examprep/internal/modules/question/domain"
	"examprep/internal/modules/question/dto"
	questionin "examprep/internal/modules/question/port/in"
	"examprep/internal/modules/question/service"
)

type Interactor struct {
	svc *service.QuestionService
}

func NewInteractor(svc *service.QuestionService) questionin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Get(ctx context.Context, id int) (dto.QuestionOutput, error) {
	q, err := i.svc.Get(ctx, id)
	if err != nil {
		return dto.QuestionOutput{}, err
	}
	return toOutput(q), nil
}

func (i *Interactor) List(ctx context.Context, category string) ([]dto.QuestionOutput, error) {
	questions, err := i.svc.List(ctx, category)
	if err != nil {
		return nil, err
	}
	out := make([]dto.QuestionOutput, 0, len(questions))
	for _, q := range questions {
		out = append(out, toOutput(q))
	}
	return out, nil
}

func (i *Interactor) Categories(ctx context.Context) ([]string, error) {
	return i.svc.Categories(ctx)
}

func (i *Interactor) Sync(ctx context.Context) (dto.SyncOutput, error) {
	n, err := i.svc.Sync(ctx)
	if err != nil {
		return dto.SyncOutput{}, err
	}
	return dto.SyncOutput{Count: n}, nil
}

func toOutput(q domain.Question) dto.QuestionOutput {
	return dto.QuestionOutput{ID: q.ID, Category: q.Category, Text: q.Text, Answer: q.Answer, Explanation: q.Explanation}
}
