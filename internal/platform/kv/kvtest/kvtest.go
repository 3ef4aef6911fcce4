// Package kvtest provides kv.Store doubles for tests.
package kvtest

import (
	"context"
	"errors"

	"examprep/internal/platform/kv"
)

// ErrUnavailable is returned by FailingStore for every call.
var ErrUnavailable = errors.New("store unavailable")

// FailingStore simulates a broken storage medium. Reads and writes can be
// broken independently.
type FailingStore struct {
	kv.Store
	FailGet    bool
	FailSet    bool
	FailRemove bool
}

func (s *FailingStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.FailGet {
		return "", false, ErrUnavailable
	}
	return s.Store.Get(ctx, key)
}

func (s *FailingStore) Set(ctx context.Context, key, value string) error {
	if s.FailSet {
		return ErrUnavailable
	}
	return s.Store.Set(ctx, key, value)
}

func (s *FailingStore) Remove(ctx context.Context, key string) error {
	if s.FailRemove {
		return ErrUnavailable
	}
	return s.Store.Remove(ctx, key)
}
