package out

import (
	"context"
	"sort"
	"sync"

	"examprep/internal/modules/cache/domain"
	cacheout "examprep/internal/modules/cache/port/out"
)

type MemoryStorage struct {
	mu     sync.RWMutex
	caches map[string]*memoryCache
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{caches: map[string]*memoryCache{}}
}

func (s *MemoryStorage) Open(_ context.Context, name string) (cacheout.Cache, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.caches[name]
	if !ok {
		c = &memoryCache{entries: map[string]domain.Response{}}
		s.caches[name] = c
	}
	return c, nil
}

func (s *MemoryStorage) Names(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.caches))
	for name := range s.caches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *MemoryStorage) Delete(_ context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.caches[name]; !ok {
		return false, nil
	}
	delete(s.caches, name)
	return true, nil
}

type memoryCache struct {
	mu      sync.RWMutex
	entries map[string]domain.Response
}

func (c *memoryCache) Match(_ context.Context, key string) (domain.Response, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	resp, ok := c.entries[key]
	if !ok {
		return domain.Response{}, false, nil
	}
	return resp.Clone(), true, nil
}

func (c *memoryCache) Put(_ context.Context, key string, resp domain.Response) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = resp.Clone()
	return nil
}

func (c *memoryCache) Keys(_ context.Context) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
