package store_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/walletdemo/ncw-core/internal/client/backend"
	"github.com/walletdemo/ncw-core/internal/store"
)

func (f *fixture) createTransaction(tx backend.Transaction) {
	f.t.Helper()
	f.client.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(tx, nil)
	created, err := f.store.CreateTransaction(context.Background())
	require.NoError(f.t, err)
	require.Equal(f.t, tx.ID, created.ID)
}

func txIDs(txs []backend.Transaction) []string {
	ids := make([]string, len(txs))
	for i, tx := range txs {
		ids[i] = tx.ID
	}
	return ids
}

func TestCreateTransaction(t *testing.T) {
	t.Run("merges the new transaction", func(t *testing.T) {
		f := newFixture(t)
		f.initialize()

		f.createTransaction(backend.Transaction{ID: "tx-1", Status: "SUBMITTED", LastUpdated: 10})

		txs := f.store.State().Transactions
		require.Len(t, txs, 1)
		assert.Equal(t, "tx-1", txs[0].ID)
	})

	t.Run("keeps newest-first ordering", func(t *testing.T) {
		f := newFixture(t)
		f.initialize()

		f.createTransaction(backend.Transaction{ID: "tx-old", LastUpdated: 10})
		f.createTransaction(backend.Transaction{ID: "tx-new", LastUpdated: 30})
		f.createTransaction(backend.Transaction{ID: "tx-mid", LastUpdated: 20})

		assert.Equal(t, []string{"tx-new", "tx-mid", "tx-old"}, txIDs(f.store.State().Transactions))
	})

	t.Run("an update replaces the record and may reorder it", func(t *testing.T) {
		f := newFixture(t)
		f.initialize()

		f.createTransaction(backend.Transaction{ID: "tx-1", Status: "SUBMITTED", LastUpdated: 10})
		f.createTransaction(backend.Transaction{ID: "tx-2", Status: "SUBMITTED", LastUpdated: 20})
		f.createTransaction(backend.Transaction{ID: "tx-1", Status: "COMPLETED", LastUpdated: 30})

		txs := f.store.State().Transactions
		assert.Equal(t, []string{"tx-1", "tx-2"}, txIDs(txs))
		assert.Equal(t, "COMPLETED", txs[0].Status)
	})

	t.Run("backend failure leaves the collection untouched", func(t *testing.T) {
		f := newFixture(t)
		f.initialize()

		f.createTransaction(backend.Transaction{ID: "tx-1", LastUpdated: 10})

		f.client.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
			Return(backend.Transaction{}, errors.New("503"))
		_, err := f.store.CreateTransaction(context.Background())
		require.Error(t, err)

		assert.Equal(t, []string{"tx-1"}, txIDs(f.store.State().Transactions))
	})
}

func TestCancelTransaction(t *testing.T) {
	t.Run("marks the local record as cancelling", func(t *testing.T) {
		f := newFixture(t)
		f.initialize()

		f.createTransaction(backend.Transaction{ID: "tx-1", Status: "SUBMITTED", LastUpdated: 10})

		f.client.EXPECT().CancelTransaction(gomock.Any(), gomock.Any(), "tx-1").Return(nil)
		require.NoError(t, f.store.CancelTransaction(context.Background(), "tx-1"))

		assert.Equal(t, backend.TxStatusCancelling, f.store.State().Transactions[0].Status)
	})

	t.Run("an unknown id changes nothing", func(t *testing.T) {
		f := newFixture(t)
		f.initialize()

		f.createTransaction(backend.Transaction{ID: "tx-1", Status: "SUBMITTED", LastUpdated: 10})

		notified := false
		f.store.Subscribe(func(store.State) { notified = true })

		f.client.EXPECT().CancelTransaction(gomock.Any(), gomock.Any(), "tx-unknown").Return(nil)
		require.NoError(t, f.store.CancelTransaction(context.Background(), "tx-unknown"))

		assert.False(t, notified)
		assert.Equal(t, "SUBMITTED", f.store.State().Transactions[0].Status)
	})

	t.Run("backend failure leaves the record untouched", func(t *testing.T) {
		f := newFixture(t)
		f.initialize()

		f.createTransaction(backend.Transaction{ID: "tx-1", Status: "SUBMITTED", LastUpdated: 10})

		f.client.EXPECT().CancelTransaction(gomock.Any(), gomock.Any(), "tx-1").
			Return(errors.New("too late"))
		require.Error(t, f.store.CancelTransaction(context.Background(), "tx-1"))

		assert.Equal(t, "SUBMITTED", f.store.State().Transactions[0].Status)
	})
}
