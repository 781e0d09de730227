package store

import (
	"context"

	"github.com/walletdemo/ncw-core/internal/client/backend"
)

// GetWeb3Connections replaces the confirmed-connections collection with the
// backend's current list.
func (s *Store) GetWeb3Connections(ctx context.Context) error {
	client, deviceID, err := s.requireClient()
	if err != nil {
		return err
	}

	connections, err := client.GetWeb3Connections(ctx, deviceID)
	if err != nil {
		return err
	}

	s.update(func(st *State) {
		st.Web3Connections = connections
	})
	return nil
}

// CreateWeb3Connection requests a new pairing from the backend. The
// returned proposal becomes the single pending connection, silently
// replacing any previous one; the replaced proposal is not denied on the
// backend.
func (s *Store) CreateWeb3Connection(ctx context.Context, uri string) error {
	client, deviceID, err := s.requireClient()
	if err != nil {
		return err
	}

	connection, err := client.CreateWeb3Connection(ctx, deviceID, uri)
	if err != nil {
		return err
	}

	s.update(func(st *State) {
		st.PendingWeb3Connection = &connection
	})
	return nil
}

// ApproveWeb3Connection approves the pending connection. The pending slot
// is cleared regardless of the backend outcome; the confirmed list is not
// updated locally, so callers refresh it with GetWeb3Connections to see
// the approved session.
func (s *Store) ApproveWeb3Connection(ctx context.Context) error {
	return s.resolvePendingConnection(ctx, BackendClient.ApproveWeb3Connection)
}

// DenyWeb3Connection denies the pending connection. The pending slot is
// cleared regardless of the backend outcome.
func (s *Store) DenyWeb3Connection(ctx context.Context) error {
	return s.resolvePendingConnection(ctx, BackendClient.DenyWeb3Connection)
}

func (s *Store) resolvePendingConnection(ctx context.Context, resolve func(BackendClient, context.Context, string, string) error) error {
	client, deviceID, err := s.requireClient()
	if err != nil {
		return err
	}

	s.mu.Lock()
	pending := s.state.PendingWeb3Connection
	s.mu.Unlock()
	if pending == nil {
		return ErrNoPendingConnection
	}

	// Fire and forget with respect to the pending slot: it is cleared
	// even when the backend call fails.
	defer s.update(func(st *State) {
		st.PendingWeb3Connection = nil
	})

	return resolve(client, ctx, deviceID, pending.ID)
}

// RemoveWeb3Connection removes a confirmed connection on the backend, then
// drops it from the local collection.
func (s *Store) RemoveWeb3Connection(ctx context.Context, sessionID string) error {
	client, deviceID, err := s.requireClient()
	if err != nil {
		return err
	}

	if err := client.RemoveWeb3Connection(ctx, deviceID, sessionID); err != nil {
		return err
	}

	s.update(func(st *State) {
		filtered := make([]backend.Web3Connection, 0, len(st.Web3Connections))
		for _, connection := range st.Web3Connections {
			if connection.ID != sessionID {
				filtered = append(filtered, connection)
			}
		}
		st.Web3Connections = filtered
	})
	return nil
}
