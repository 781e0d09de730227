package store

import (
	"context"
	"sort"

	"github.com/walletdemo/ncw-core/internal/client/backend"
)

// upsertTransaction inserts tx into txs, replacing any record with the same
// id, and returns the collection sorted descending by last-updated time.
// The sort is stable so records with equal timestamps keep their order.
func upsertTransaction(txs []backend.Transaction, tx backend.Transaction) []backend.Transaction {
	result := make([]backend.Transaction, len(txs))
	copy(result, txs)

	replaced := false
	for i := range result {
		if result[i].ID == tx.ID {
			result[i] = tx
			replaced = true
			break
		}
	}
	if !replaced {
		result = append(result, tx)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].LastUpdated > result[j].LastUpdated
	})
	return result
}

// applyTransactionUpdate merges a pushed transaction into the collection.
func (s *Store) applyTransactionUpdate(tx backend.Transaction) {
	s.update(func(st *State) {
		st.Transactions = upsertTransaction(st.Transactions, tx)
	})
}

// CreateTransaction asks the backend to create a transaction for the
// current device and merges the result into the collection.
func (s *Store) CreateTransaction(ctx context.Context) (backend.Transaction, error) {
	client, deviceID, err := s.requireClient()
	if err != nil {
		return backend.Transaction{}, err
	}

	tx, err := client.CreateTransaction(ctx, deviceID)
	if err != nil {
		return backend.Transaction{}, err
	}

	s.applyTransactionUpdate(tx)
	return tx, nil
}

// CancelTransaction asks the backend to cancel the transaction and
// optimistically marks the local record as cancelling without waiting for
// a push confirmation. An id unknown locally leaves the collection
// untouched.
func (s *Store) CancelTransaction(ctx context.Context, txID string) error {
	client, deviceID, err := s.requireClient()
	if err != nil {
		return err
	}

	if err := client.CancelTransaction(ctx, deviceID, txID); err != nil {
		return err
	}

	s.mu.Lock()
	index := -1
	for i := range s.state.Transactions {
		if s.state.Transactions[i].ID == txID {
			index = i
			break
		}
	}
	if index == -1 {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	s.update(func(st *State) {
		if index < len(st.Transactions) && st.Transactions[index].ID == txID {
			st.Transactions[index].Status = backend.TxStatusCancelling
		}
	})
	return nil
}
