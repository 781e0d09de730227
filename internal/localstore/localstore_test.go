package localstore_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletdemo/ncw-core/internal/localstore"
)

func openStore(t *testing.T, path string) *localstore.Store {
	t.Helper()
	store, err := localstore.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore(t *testing.T) {
	t.Run("get of an absent key returns nil", func(t *testing.T) {
		store := openStore(t, filepath.Join(t.TempDir(), "app.db"))

		value, err := store.Get("missing")
		require.NoError(t, err)
		assert.Nil(t, value)
	})

	t.Run("put then get round-trips", func(t *testing.T) {
		store := openStore(t, filepath.Join(t.TempDir(), "app.db"))

		require.NoError(t, store.Put("device-id", []byte("dev-1")))

		value, err := store.Get("device-id")
		require.NoError(t, err)
		assert.Equal(t, []byte("dev-1"), value)
	})

	t.Run("put replaces the previous value", func(t *testing.T) {
		store := openStore(t, filepath.Join(t.TempDir(), "app.db"))

		require.NoError(t, store.Put("key", []byte("old")))
		require.NoError(t, store.Put("key", []byte("new")))

		value, err := store.Get("key")
		require.NoError(t, err)
		assert.Equal(t, []byte("new"), value)
	})

	t.Run("delete removes the key", func(t *testing.T) {
		store := openStore(t, filepath.Join(t.TempDir(), "app.db"))

		require.NoError(t, store.Put("key", []byte("value")))
		require.NoError(t, store.Delete("key"))
		require.NoError(t, store.Delete("key")) // absent key is a no-op

		value, err := store.Get("key")
		require.NoError(t, err)
		assert.Nil(t, value)
	})

	t.Run("values survive reopening", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.db")

		first, err := localstore.Open(path)
		require.NoError(t, err)
		require.NoError(t, first.Put("device-id", []byte("dev-1")))
		require.NoError(t, first.Close())

		second := openStore(t, path)
		value, err := second.Get("device-id")
		require.NoError(t, err)
		assert.Equal(t, []byte("dev-1"), value)
	})
}
