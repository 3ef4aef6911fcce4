package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"examprep/internal/modules/questionset/domain"
	questionsetout "examprep/internal/modules/questionset/port/out"
	"examprep/internal/platform/clock"
	apperrors "examprep/internal/platform/errors"
	"examprep/internal/platform/id"
	"examprep/internal/platform/slug"
)

type QuestionSetService struct {
	clock  clock.Clock
	idGen  id.Generator
	store  questionsetout.StateStore
	reader questionsetout.QuestionFileReader
}

func NewQuestionSetService(clock clock.Clock, idGen id.Generator, store questionsetout.StateStore, reader questionsetout.QuestionFileReader) *QuestionSetService {
	return &QuestionSetService{clock: clock, idGen: idGen, store: store, reader: reader}
}

// Save upserts set by id. A missing id is assigned here; a missing creation
// time is taken from the stored set with the same id, or from the clock for a
// new set.
func (s *QuestionSetService) Save(ctx context.Context, set domain.QuestionSet) (domain.QuestionSet, bool, error) {
	if strings.TrimSpace(set.ID) == "" {
		set.ID = s.idGen.New()
	}
	if set.Questions == nil {
		set.Questions = []domain.Question{}
	}
	if err := set.Validate(); err != nil {
		return domain.QuestionSet{}, false, err
	}
	state, err := s.store.Load(ctx)
	if err != nil {
		return domain.QuestionSet{}, false, fmt.Errorf("load question sets: %w", err)
	}
	if set.CreatedAt == "" {
		if prev, ok := state.Find(set.ID); ok && prev.CreatedAt != "" {
			set.CreatedAt = prev.CreatedAt
		} else {
			set.CreatedAt = s.clock.Now().Format(time.RFC3339)
		}
	}
	state = state.Upsert(set)
	if err := s.store.Save(ctx, state); err != nil {
		return domain.QuestionSet{}, false, fmt.Errorf("save question sets: %w", err)
	}
	return set, state.IsActive(set.ID), nil
}

// Import reads a question file into a new set. An empty name falls back to
// the file's slug.
func (s *QuestionSetService) Import(ctx context.Context, path, name string, year int, season domain.Season) (domain.QuestionSet, bool, error) {
	if strings.TrimSpace(path) == "" {
		return domain.QuestionSet{}, false, fmt.Errorf("question file path is required: %w", apperrors.ErrInvalidInput)
	}
	questions, err := s.reader.Read(ctx, path)
	if err != nil {
		return domain.QuestionSet{}, false, err
	}
	if len(questions) == 0 {
		return domain.QuestionSet{}, false, fmt.Errorf("question file %s is empty: %w", path, apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(name) == "" {
		name = slug.FromPath(path)
	}
	return s.Save(ctx, domain.QuestionSet{Name: name, Year: year, Season: season, Questions: questions})
}

// Delete removes the set and its active id in one write.
func (s *QuestionSetService) Delete(ctx context.Context, id string) error {
	state, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load question sets: %w", err)
	}
	state, err = state.Delete(id)
	if err != nil {
		return err
	}
	if err := s.store.Save(ctx, state); err != nil {
		return fmt.Errorf("save question sets: %w", err)
	}
	return nil
}

func (s *QuestionSetService) Activate(ctx context.Context, id string) error {
	state, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	if state.IsActive(id) {
		return nil
	}
	state, err = state.Activate(id)
	if err != nil {
		return err
	}
	return s.store.Save(ctx, state)
}

func (s *QuestionSetService) Deactivate(ctx context.Context, id string) error {
	state, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	if !state.IsActive(id) {
		return nil
	}
	return s.store.Save(ctx, state.Deactivate(id))
}

func (s *QuestionSetService) State(ctx context.Context) (domain.State, error) {
	return s.store.Load(ctx)
}

func (s *QuestionSetService) Reset(ctx context.Context) error {
	return s.store.Reset(ctx)
}
