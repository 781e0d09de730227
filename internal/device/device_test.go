package device_test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletdemo/ncw-core/internal/device"
	"github.com/walletdemo/ncw-core/internal/localstore"
)

func openKV(t *testing.T) *localstore.Store {
	t.Helper()
	kv, err := localstore.Open(filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestGenerateID(t *testing.T) {
	id := device.GenerateID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	assert.NotEqual(t, id, device.GenerateID())
}

func TestGetOrCreateID(t *testing.T) {
	t.Run("creates and persists a new id", func(t *testing.T) {
		kv := openKV(t)

		id, err := device.GetOrCreateID(kv)
		require.NoError(t, err)
		assert.NotEmpty(t, id)

		again, err := device.GetOrCreateID(kv)
		require.NoError(t, err)
		assert.Equal(t, id, again)
	})

	t.Run("returns a previously saved id", func(t *testing.T) {
		kv := openKV(t)
		require.NoError(t, device.SaveID(kv, "imported-device"))

		id, err := device.GetOrCreateID(kv)
		require.NoError(t, err)
		assert.Equal(t, "imported-device", id)
	})
}

func TestSaveID(t *testing.T) {
	kv := openKV(t)

	require.NoError(t, device.SaveID(kv, "dev-1"))
	require.NoError(t, device.SaveID(kv, "dev-2"))

	id, err := device.GetOrCreateID(kv)
	require.NoError(t, err)
	assert.Equal(t, "dev-2", id)
}
