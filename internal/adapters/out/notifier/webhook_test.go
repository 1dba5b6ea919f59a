package notifier_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"catering/internal/adapters/out/notifier"

	"github.com/stretchr/testify/require"
)

func TestWebhookClient_Notify_PostsPayload(t *testing.T) {
	var received struct {
		Contact string `json:"contact"`
		Message string `json:"message"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client := notifier.NewWebhookClient(server.URL, slog.New(slog.DiscardHandler))
	err := client.Notify(t.Context(), "customer-42", "Your order is ready.")
	require.NoError(t, err)
	require.Equal(t, "customer-42", received.Contact)
	require.Equal(t, "Your order is ready.", received.Message)
}

func TestWebhookClient_Notify_RetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := notifier.NewWebhookClient(server.URL, slog.New(slog.DiscardHandler))
	err := client.Notify(t.Context(), "customer-42", "reminder")
	require.NoError(t, err)
	require.EqualValues(t, 3, calls.Load())
}

func TestWebhookClient_Notify_ClientErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := notifier.NewWebhookClient(server.URL, slog.New(slog.DiscardHandler))
	err := client.Notify(t.Context(), "customer-42", "reminder")
	require.Error(t, err)
	require.EqualValues(t, 1, calls.Load())
}
