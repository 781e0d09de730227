package backend_test

import (
	"encoding/json"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletdemo/ncw-core/internal/client/backend"
)

func waitFor[T any](t *testing.T, ch <-chan T, what string) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
		panic("unreachable")
	}
}

func TestListenToMessages(t *testing.T) {
	t.Run("delivers and acknowledges queued messages", func(t *testing.T) {
		acks := make(chan string, 1)
		var once sync.Once

		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/devices/dev-1/messages", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "phys-1", r.URL.Query().Get("physicalDeviceId"))
			assert.Equal(t, "10", r.URL.Query().Get("timeout"))

			var queued []map[string]string
			once.Do(func() {
				queued = []map[string]string{{"id": "msg-1", "message": "mpc-round-1"}}
			})
			// Later polls simulate the long-poll timeout expiring empty.
			if queued == nil {
				time.Sleep(20 * time.Millisecond)
			}
			w.Header().Set("Content-Type", "application/json")
			require.NoError(t, json.NewEncoder(w).Encode(queued))
		})
		mux.HandleFunc("DELETE /api/devices/dev-1/messages/{id}", func(w http.ResponseWriter, r *http.Request) {
			select {
			case acks <- r.PathValue("id"):
			default:
			}
			w.WriteHeader(http.StatusOK)
		})

		client := newTestClient(t, mux)

		received := make(chan string, 1)
		unsubscribe := client.ListenToMessages("dev-1", "phys-1", func(message string) {
			select {
			case received <- message:
			default:
			}
		})
		defer unsubscribe()

		assert.Equal(t, "mpc-round-1", waitFor(t, received, "message delivery"))
		assert.Equal(t, "msg-1", waitFor(t, acks, "message ack"))
	})

	t.Run("unsubscribe stops delivery and is idempotent", func(t *testing.T) {
		polled := make(chan struct{}, 1)
		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/devices/dev-1/messages", func(w http.ResponseWriter, r *http.Request) {
			select {
			case polled <- struct{}{}:
			default:
			}
			time.Sleep(20 * time.Millisecond)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte("[]"))
		})

		client := newTestClient(t, mux)

		unsubscribe := client.ListenToMessages("dev-1", "phys-1", func(string) {
			t.Error("no message should be delivered")
		})
		waitFor(t, polled, "first poll")

		unsubscribe()
		unsubscribe()
	})
}

func TestListenToTxs(t *testing.T) {
	t.Run("advances the cursor past delivered updates", func(t *testing.T) {
		cursors := make(chan string, 8)
		var once sync.Once

		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/devices/dev-1/transactions", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "true", r.URL.Query().Get("poll"))
			assert.Equal(t, "true", r.URL.Query().Get("details"))
			select {
			case cursors <- r.URL.Query().Get("startDate"):
			default:
			}

			var txs []backend.Transaction
			once.Do(func() {
				txs = []backend.Transaction{
					{ID: "tx-1", Status: "SUBMITTED", LastUpdated: 100},
					{ID: "tx-2", Status: "SUBMITTED", LastUpdated: 250},
				}
			})
			if txs == nil {
				time.Sleep(20 * time.Millisecond)
			}
			w.Header().Set("Content-Type", "application/json")
			require.NoError(t, json.NewEncoder(w).Encode(txs))
		})

		client := newTestClient(t, mux)

		received := make(chan backend.Transaction, 2)
		unsubscribe := client.ListenToTxs("dev-1", func(tx backend.Transaction) {
			received <- tx
		})
		defer unsubscribe()

		assert.Equal(t, "tx-1", waitFor(t, received, "first update").ID)
		assert.Equal(t, "tx-2", waitFor(t, received, "second update").ID)

		assert.Equal(t, "0", waitFor(t, cursors, "initial cursor"))
		// Drain until the cursor reflects the newest delivered update.
		for {
			cursor := waitFor(t, cursors, "advanced cursor")
			if cursor == "0" {
				continue
			}
			assert.Equal(t, "250", cursor)
			break
		}
	})

	t.Run("unsubscribe stops polling", func(t *testing.T) {
		polled := make(chan struct{}, 1)
		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/devices/dev-1/transactions", func(w http.ResponseWriter, r *http.Request) {
			select {
			case polled <- struct{}{}:
			default:
			}
			time.Sleep(20 * time.Millisecond)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte("[]"))
		})

		client := newTestClient(t, mux)

		unsubscribe := client.ListenToTxs("dev-1", func(backend.Transaction) {
			t.Error("no update should be delivered")
		})
		waitFor(t, polled, "first poll")

		unsubscribe()
		unsubscribe()
	})
}
