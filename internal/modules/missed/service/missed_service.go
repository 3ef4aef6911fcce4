package service

import (
	"context"
	"fmt"

	"examprep/internal/modules/missed/domain"
	missedout "examprep/internal/modules/missed/port/out"
	"examprep/internal/platform/clock"
)

type MissedService struct {
	clock clock.Clock
	store missedout.RecordStore
}

func NewMissedService(clock clock.Clock, store missedout.RecordStore) *MissedService {
	return &MissedService{clock: clock, store: store}
}

// Record reads the collection, upserts the record and writes the whole
// collection back. Concurrent Record calls can lose an update.
func (s *MissedService) Record(ctx context.Context, questionID int, answer bool) (domain.Record, error) {
	if questionID <= 0 {
		return domain.Record{}, fmt.Errorf("question id must be positive, got %d", questionID)
	}
	records, err := s.store.Load(ctx)
	if err != nil {
		return domain.Record{}, err
	}
	records = domain.Upsert(records, questionID, answer, clock.Millis(s.clock.Now()))
	if err := s.store.Save(ctx, records); err != nil {
		return domain.Record{}, err
	}
	for _, r := range records {
		if r.QuestionID == questionID {
			return r, nil
		}
	}
	return domain.Record{}, nil
}

func (s *MissedService) List(ctx context.Context) ([]domain.Record, error) {
	return s.store.Load(ctx)
}

// Remove reports whether a record was removed. An absent key writes nothing.
func (s *MissedService) Remove(ctx context.Context, questionID int) (bool, error) {
	records, err := s.store.Load(ctx)
	if err != nil {
		return false, err
	}
	rest, found := domain.Without(records, questionID)
	if !found {
		return false, nil
	}
	if err := s.store.Save(ctx, rest); err != nil {
		return false, err
	}
	return true, nil
}

func (s *MissedService) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}
