package out

import (
	"context"

	"examprep/internal/modules/exam/domain"
	examout "examprep/internal/modules/exam/port/out"
	"examprep/internal/platform/kv"
)

type KVSessionLog struct {
	store kv.Store
}

func NewKVSessionLog(store kv.Store) examout.SessionLog {
	return &KVSessionLog{store: store}
}

func (l *KVSessionLog) Load(ctx context.Context) ([]domain.Session, error) {
	sessions := []domain.Session{}
	if _, err := kv.GetJSON(ctx, l.store, domain.Key, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (l *KVSessionLog) Save(ctx context.Context, sessions []domain.Session) error {
	return kv.SetJSON(ctx, l.store, domain.Key, sessions)
}

func (l *KVSessionLog) Clear(ctx context.Context) error {
	return l.store.Remove(ctx, domain.Key)
}
