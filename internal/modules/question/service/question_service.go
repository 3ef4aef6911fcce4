package service

import (
	"context"
	"fmt"
	"sort"

	"examprep/internal/modules/question/domain"
	questionout "examprep/internal/modules/question/port/out"
	apperrors "examprep/internal/platform/errors"
)

type QuestionService struct {
	dataset questionout.Dataset
	remote  questionout.Remote
}

func NewQuestionService(dataset questionout.Dataset, remote questionout.Remote) *QuestionService {
	return &QuestionService{dataset: dataset, remote: remote}
}

func (s *QuestionService) Get(ctx context.Context, id int) (domain.Question, error) {
	questions, err := s.dataset.Load(ctx)
	if err != nil {
		return domain.Question{}, err
	}
	for _, q := range questions {
		if q.ID == id {
			return q, nil
		}
	}
	return domain.Question{}, fmt.Errorf("question %d: %w", id, apperrors.ErrNotFound)
}

func (s *QuestionService) List(ctx context.Context, category string) ([]domain.Question, error) {
	questions, err := s.dataset.Load(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" {
		return questions, nil
	}
	out := make([]domain.Question, 0, len(questions))
	for _, q := range questions {
		if q.Category == category {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *QuestionService) Categories(ctx context.Context) ([]string, error) {
	questions, err := s.dataset.Load(ctx)
	if err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	for _, q := range questions {
		if q.Category == "" {
			continue
		}
		seen[q.Category] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out, nil
}

// Sync replaces the local dataset with the remote one. The local file is
// left untouched when the remote payload is invalid.
func (s *QuestionService) Sync(ctx context.Context) (int, error) {
	if s.remote == nil {
		return 0, apperrors.ErrSyncDisabled
	}
	questions, err := s.remote.Fetch(ctx)
	if err != nil {
		return 0, err
	}
	if err := domain.ValidateAll(questions); err != nil {
		return 0, fmt.Errorf("remote dataset: %w", err)
	}
	if err := s.dataset.Replace(ctx, questions); err != nil {
		return 0, err
	}
	return len(questions), nil
}
