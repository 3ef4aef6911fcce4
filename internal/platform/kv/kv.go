// Package kv is the persistent record store: string keys mapped to opaque
// string values, usually JSON documents. It is the only package that touches
// the storage medium.
package kv

import (
	"context"
	"encoding/json"
	"fmt"
)

// Store is a durable key-value handle. Implementations perform no schema
// validation. Callers doing read-modify-write on the same key are not
// serialized; the last Set wins.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// GetJSON decodes the document stored at key into target. It reports false
// when the key is absent, leaving target untouched.
func GetJSON(ctx context.Context, store Store, key string, target any) (bool, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// SetJSON encodes value and writes it at key.
func SetJSON(ctx context.Context, store Store, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return store.Set(ctx, key, string(raw))
}
