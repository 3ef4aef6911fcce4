package out

import (
	"context"

	"examprep/internal/modules/profile/domain"
	profileout "examprep/internal/modules/profile/port/out"
	"examprep/internal/platform/kv"
)

type KVNameStore struct {
	store kv.Store
}

func NewKVNameStore(store kv.Store) profileout.NameStore {
	return &KVNameStore{store: store}
}

func (s *KVNameStore) Load(ctx context.Context) (string, bool, error) {
	return s.store.Get(ctx, domain.Key)
}

func (s *KVNameStore) Save(ctx context.Context, name string) error {
	return s.store.Set(ctx, domain.Key, name)
}

func (s *KVNameStore) Clear(ctx context.Context) error {
	return s.store.Remove(ctx, domain.Key)
}
