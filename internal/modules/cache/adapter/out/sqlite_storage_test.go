package out_test

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	cacheout "examprep/internal/modules/cache/adapter/out"
	"examprep/internal/modules/cache/domain"
	"examprep/internal/platform/kv"
)

func newSQLiteStorage(t *testing.T) *cacheout.SQLiteStorage {
	t.Helper()
	store, err := kv.NewSQLiteStore(filepath.Join(t.TempDir(), "examprep.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	storage, err := cacheout.NewSQLiteStorage(context.Background(), store.DB())
	require.NoError(t, err)
	return storage
}

func TestSQLiteStoragePutMatchKeys(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	storage := newSQLiteStorage(t)

	c, err := storage.Open(ctx, "examprep-image-v1")
	require.NoError(t, err)
	_, ok, err := c.Match(ctx, "http://app.test/a.png")
	require.NoError(t, err)
	require.False(t, ok)

	h := http.Header{}
	h.Set("Content-Type", "image/png")
	require.NoError(t, c.Put(ctx, "http://app.test/a.png", domain.Response{Status: 200, Header: h, Body: []byte{0x89, 'P'}}))
	require.NoError(t, c.Put(ctx, "http://app.test/a.png", domain.Response{Status: 200, Header: h, Body: []byte("v2")}))
	require.NoError(t, c.Put(ctx, "http://app.test/b.png", domain.Response{Status: 200, Header: http.Header{}}))

	got, ok, err := c.Match(ctx, "http://app.test/a.png")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 200, got.Status)
	require.Equal(t, "image/png", got.Header.Get("Content-Type"))
	require.Equal(t, "v2", string(got.Body))

	keys, err := c.Keys(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"http://app.test/a.png", "http://app.test/b.png"}, keys)
}

func TestSQLiteStorageNamespacesAreIsolated(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	storage := newSQLiteStorage(t)

	oldCache, err := storage.Open(ctx, "examprep-runtime-v0")
	require.NoError(t, err)
	require.NoError(t, oldCache.Put(ctx, "http://app.test/app.js", domain.Response{Status: 200, Header: http.Header{}, Body: []byte("old")}))
	newCache, err := storage.Open(ctx, "examprep-runtime-v1")
	require.NoError(t, err)
	_, ok, err := newCache.Match(ctx, "http://app.test/app.js")
	require.NoError(t, err)
	require.False(t, ok)

	names, err := storage.Names(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"examprep-runtime-v0", "examprep-runtime-v1"}, names)

	deleted, err := storage.Delete(ctx, "examprep-runtime-v0")
	require.NoError(t, err)
	require.True(t, deleted)
	deleted, err = storage.Delete(ctx, "examprep-runtime-v0")
	require.NoError(t, err)
	require.False(t, deleted)

	reopened, err := storage.Open(ctx, "examprep-runtime-v0")
	require.NoError(t, err)
	keys, err := reopened.Keys(ctx)
	require.NoError(t, err)
	require.Empty(t, keys)
}
