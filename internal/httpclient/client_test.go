package httpclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletdemo/ncw-core/internal/httpclient"
	"github.com/walletdemo/ncw-core/internal/logger"
)

func init() {
	logger.InitLogger("test")
}

func TestDoRequest(t *testing.T) {
	t.Run("applies base URL, default headers and query params", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/ping", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, "1", r.URL.Query().Get("page"))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := httpclient.NewHTTPClient(httpclient.WithBaseURL(server.URL))

		resp, err := client.Get(context.Background(), "/api/ping",
			httpclient.WithQueryParam("page", "1"))
		require.NoError(t, err)
		resp.Body.Close()
	})

	t.Run("consults the token supplier on every request", func(t *testing.T) {
		var tokens []string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokens = append(tokens, r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		var calls atomic.Int32
		client := httpclient.NewHTTPClient(
			httpclient.WithBaseURL(server.URL),
			httpclient.WithTokenSupplier(func(context.Context) (string, error) {
				switch calls.Add(1) {
				case 1:
					return "first", nil
				default:
					return "second", nil
				}
			}),
		)

		for i := 0; i < 2; i++ {
			resp, err := client.Get(context.Background(), "/")
			require.NoError(t, err)
			resp.Body.Close()
		}
		assert.Equal(t, []string{"Bearer first", "Bearer second"}, tokens)
	})

	t.Run("a failing token supplier aborts the request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("request should not reach the server")
		}))
		defer server.Close()

		client := httpclient.NewHTTPClient(
			httpclient.WithBaseURL(server.URL),
			httpclient.WithTokenSupplier(func(context.Context) (string, error) {
				return "", errors.New("token endpoint down")
			}),
		)

		_, err := client.Get(context.Background(), "/")
		require.Error(t, err)
	})

	t.Run("retries retryable status codes", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := httpclient.NewHTTPClient(
			httpclient.WithBaseURL(server.URL),
			httpclient.WithRetryConfig(&httpclient.RetryConfig{
				MaxRetries:           2,
				InitialInterval:      time.Millisecond,
				MaxInterval:          5 * time.Millisecond,
				Multiplier:           2.0,
				MaxElapsedTime:       time.Second,
				RetryableStatusCodes: []int{http.StatusServiceUnavailable},
			}),
		)

		resp, err := client.Get(context.Background(), "/")
		require.NoError(t, err)
		resp.Body.Close()
		assert.EqualValues(t, 2, calls.Load())
	})

	t.Run("non-retryable errors return an HTTPError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "gone", http.StatusNotFound)
		}))
		defer server.Close()

		client := httpclient.NewHTTPClient(httpclient.WithBaseURL(server.URL))

		_, err := client.Get(context.Background(), "/missing")
		require.Error(t, err)

		var httpErr *httpclient.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
		assert.Equal(t, http.MethodGet, httpErr.Method)
	})

	t.Run("rejects a relative path without a base URL", func(t *testing.T) {
		client := httpclient.NewHTTPClient()

		_, err := client.Get(context.Background(), "not-a-url")
		require.Error(t, err)
	})
}

func TestProcessJSONResponse(t *testing.T) {
	t.Run("decodes the body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"id": "user-1"})
		}))
		defer server.Close()

		client := httpclient.NewHTTPClient(httpclient.WithBaseURL(server.URL))

		resp, err := client.Get(context.Background(), "/")
		require.NoError(t, err)

		var result struct {
			ID string `json:"id"`
		}
		require.NoError(t, client.ProcessJSONResponse(resp, &result))
		assert.Equal(t, "user-1", result.ID)
	})

	t.Run("malformed JSON fails", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("{not json"))
		}))
		defer server.Close()

		client := httpclient.NewHTTPClient(httpclient.WithBaseURL(server.URL))

		resp, err := client.Get(context.Background(), "/")
		require.NoError(t, err)

		var result map[string]string
		require.Error(t, client.ProcessJSONResponse(resp, &result))
	})
}
