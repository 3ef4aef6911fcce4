package out

import (
	"context"

	"examprep/internal/modules/missed/domain"
	missedout "examprep/internal/modules/missed/port/out"
	"examprep/internal/platform/kv"
)

type KVRecordStore struct {
	store kv.Store
}

func NewKVRecordStore(store kv.Store) missedout.RecordStore {
	return &KVRecordStore{store: store}
}

func (s *KVRecordStore) Load(ctx context.Context) ([]domain.Record, error) {
	records := []domain.Record{}
	if _, err := kv.GetJSON(ctx, s.store, domain.Key, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *KVRecordStore) Save(ctx context.Context, records []domain.Record) error {
	return kv.SetJSON(ctx, s.store, domain.Key, records)
}

func (s *KVRecordStore) Clear(ctx context.Context) error {
	return s.store.Remove(ctx, domain.Key)
}
