package service

import (
	"context"
	"errors"
	"fmt"

	"examprep/internal/modules/cache/domain"
	cacheout "examprep/internal/modules/cache/port/out"
)

// LifecycleManager owns the current cache version and removes namespaces
// from other versions.
type LifecycleManager struct {
	ns      domain.Namespaces
	storage cacheout.Storage
}

func NewLifecycleManager(version string, storage cacheout.Storage) *LifecycleManager {
	return &LifecycleManager{ns: domain.NamespacesFor(version), storage: storage}
}

func (m *LifecycleManager) Current() domain.Namespaces {
	return m.ns
}

// Prune deletes every namespace whose name is not one of the current three.
// It keeps going after a failed delete and returns the names it removed
// along with the joined errors.
func (m *LifecycleManager) Prune(ctx context.Context) ([]string, error) {
	names, err := m.storage.Names(ctx)
	if err != nil {
		return nil, fmt.Errorf("list namespaces: %w", err)
	}
	deleted := []string{}
	var errs []error
	for _, name := range names {
		if m.ns.Contains(name) {
			continue
		}
		ok, err := m.storage.Delete(ctx, name)
		if err != nil {
			errs = append(errs, fmt.Errorf("delete namespace %s: %w", name, err))
			continue
		}
		if ok {
			deleted = append(deleted, name)
		}
	}
	return deleted, errors.Join(errs...)
}
