package store_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/walletdemo/ncw-core/internal/store"
)

func TestLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		f.initialize()

		var statuses []store.Status
		f.store.Subscribe(func(st store.State) { statuses = append(statuses, st.LoginStatus) })

		f.client.EXPECT().Login(gomock.Any()).Return("user-1", nil)

		require.NoError(t, f.store.Login(context.Background()))

		state := f.store.State()
		assert.Equal(t, "user-1", state.UserID)
		assert.Equal(t, store.StatusSuccess, state.LoginStatus)
		assert.Equal(t, []store.Status{store.StatusStarted, store.StatusSuccess}, statuses)
	})

	t.Run("backend failure is swallowed into the status", func(t *testing.T) {
		f := newFixture(t)
		f.initialize()

		f.client.EXPECT().Login(gomock.Any()).Return("", errors.New("401"))

		require.NoError(t, f.store.Login(context.Background()))

		state := f.store.State()
		assert.Empty(t, state.UserID)
		assert.Equal(t, store.StatusFailed, state.LoginStatus)
	})

	t.Run("retry after failure re-enters started", func(t *testing.T) {
		f := newFixture(t)
		f.initialize()

		f.client.EXPECT().Login(gomock.Any()).Return("", errors.New("401"))
		require.NoError(t, f.store.Login(context.Background()))

		var statuses []store.Status
		f.store.Subscribe(func(st store.State) { statuses = append(statuses, st.LoginStatus) })

		f.client.EXPECT().Login(gomock.Any()).Return("user-1", nil)
		require.NoError(t, f.store.Login(context.Background()))

		assert.Equal(t, []store.Status{store.StatusStarted, store.StatusSuccess}, statuses)
	})
}

func TestAssignCurrentDevice(t *testing.T) {
	t.Run("binds the wallet", func(t *testing.T) {
		f := newFixture(t)
		f.initialize()
		deviceID := f.store.State().DeviceID

		f.client.EXPECT().AssignDevice(gomock.Any(), deviceID).Return("wallet-1", nil)

		require.NoError(t, f.store.AssignCurrentDevice(context.Background()))

		state := f.store.State()
		assert.Equal(t, "wallet-1", state.WalletID)
		assert.Equal(t, store.StatusSuccess, state.AssignDeviceStatus)
	})

	t.Run("backend failure clears the binding", func(t *testing.T) {
		f := newFixture(t)
		f.initialize()

		f.client.EXPECT().AssignDevice(gomock.Any(), gomock.Any()).Return("wallet-1", nil)
		require.NoError(t, f.store.AssignCurrentDevice(context.Background()))

		f.client.EXPECT().AssignDevice(gomock.Any(), gomock.Any()).Return("", errors.New("conflict"))
		require.NoError(t, f.store.AssignCurrentDevice(context.Background()))

		state := f.store.State()
		assert.Empty(t, state.WalletID)
		assert.Equal(t, store.StatusFailed, state.AssignDeviceStatus)
	})
}

func TestDeviceIDReplacement(t *testing.T) {
	t.Run("generate resets the wallet binding", func(t *testing.T) {
		f := newFixture(t)
		f.initialize()
		oldID := f.store.State().DeviceID

		f.client.EXPECT().AssignDevice(gomock.Any(), oldID).Return("wallet-1", nil)
		require.NoError(t, f.store.AssignCurrentDevice(context.Background()))

		require.NoError(t, f.store.GenerateNewDeviceID())

		state := f.store.State()
		assert.NotEqual(t, oldID, state.DeviceID)
		assert.Empty(t, state.WalletID)
		assert.Equal(t, store.StatusNotStarted, state.AssignDeviceStatus)

		raw, err := f.kv.Get("device-id")
		require.NoError(t, err)
		assert.Equal(t, state.DeviceID, string(raw))
	})

	t.Run("set uses the supplied id", func(t *testing.T) {
		f := newFixture(t)

		require.NoError(t, f.store.SetDeviceID("imported-device"))

		assert.Equal(t, "imported-device", f.store.State().DeviceID)

		raw, err := f.kv.Get("device-id")
		require.NoError(t, err)
		assert.Equal(t, "imported-device", string(raw))
	})
}

func TestPassphrase(t *testing.T) {
	t.Run("set persists the value", func(t *testing.T) {
		f := newFixture(t)

		require.NoError(t, f.store.SetPassphrase("paper-backup"))

		assert.Equal(t, "paper-backup", f.store.State().Passphrase)

		raw, err := f.kv.Get("backup-passphrase")
		require.NoError(t, err)
		assert.Equal(t, "paper-backup", string(raw))
	})

	t.Run("regenerate overwrites the stored value", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.store.SetPassphrase("old"))

		value, err := f.store.RegeneratePassphrase()
		require.NoError(t, err)
		assert.NotEmpty(t, value)
		assert.NotEqual(t, "old", value)
		assert.Equal(t, value, f.store.State().Passphrase)
	})
}
