package service

import (
	"context"
	"fmt"

	"examprep/internal/modules/profile/domain"
	profileout "examprep/internal/modules/profile/port/out"
)

type ProfileService struct {
	store profileout.NameStore
}

func NewProfileService(store profileout.NameStore) *ProfileService {
	return &ProfileService{store: store}
}

// Get returns the stored name, or the default when none is stored. A stored
// value that no longer validates also yields the default.
func (s *ProfileService) Get(ctx context.Context) (string, error) {
	name, ok, err := s.store.Load(ctx)
	if err != nil {
		return domain.DefaultName, err
	}
	if !ok || !domain.Validate(name).Valid {
		return domain.DefaultName, nil
	}
	return name, nil
}

// Set persists the normalized name only when it validates.
func (s *ProfileService) Set(ctx context.Context, name string) (string, domain.Validation, error) {
	v := domain.Validate(name)
	if !v.Valid {
		return "", v, nil
	}
	normalized := domain.Normalize(name)
	if err := s.store.Save(ctx, normalized); err != nil {
		return "", v, fmt.Errorf("save player name: %w", err)
	}
	return normalized, v, nil
}

func (s *ProfileService) Reset(ctx context.Context) error {
	return s.store.Clear(ctx)
}
