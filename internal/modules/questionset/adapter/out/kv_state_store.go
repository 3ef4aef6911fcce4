package out

import (
	"context"

	"examprep/internal/modules/questionset/domain"
	questionsetout "examprep/internal/modules/questionset/port/out"
	"examprep/internal/platform/kv"
)

type KVStateStore struct {
	store kv.Store
}

func NewKVStateStore(store kv.Store) questionsetout.StateStore {
	return &KVStateStore{store: store}
}

// Load prunes dangling active ids left by older writers.
func (s *KVStateStore) Load(ctx context.Context) (domain.State, error) {
	state := domain.NewState()
	if _, err := kv.GetJSON(ctx, s.store, domain.Key, &state); err != nil {
		return domain.State{}, err
	}
	return state.Pruned(), nil
}

func (s *KVStateStore) Save(ctx context.Context, state domain.State) error {
	return kv.SetJSON(ctx, s.store, domain.Key, state)
}

func (s *KVStateStore) Reset(ctx context.Context) error {
	return s.store.Remove(ctx, domain.Key)
}
