package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/perivi8/business-guru-admin/internal/entity"
	"github.com/perivi8/business-guru-admin/pkg/config"
)

func newTestClient(baseURL string, retries int) *Client {
	return NewClient(config.Backend{
		BaseURL:       baseURL,
		Timeout:       time.Second,
		RetryAttempts: retries,
		RetryWaitMin:  time.Millisecond,
		RetryWaitMax:  5 * time.Millisecond,
	})
}

func authCtx() context.Context {
	return entity.SetTokenToContext(context.Background(), "test-token")
}

func TestClient_ListClients_RetriesOn5xx(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/clients", r.URL.Path)

		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		_, _ = w.Write([]byte(`[{"legal_name":"Sharma Traders"}]`))
	}))
	defer server.Close()

	c := newTestClient(server.URL, 2)

	clients, err := c.ListClients(authCtx())
	require.NoError(t, err)
	require.Len(t, clients, 1)
	require.Equal(t, "Sharma Traders", clients[0].LegalName)
	require.EqualValues(t, 3, calls.Load())
}

func TestClient_Client_RetriesOn404ThenGivesUp(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := newTestClient(server.URL, 2)

	_, err := c.Client(authCtx(), uuid.Must(uuid.NewV4()))
	require.ErrorIs(t, err, entity.ErrNotFound)
	// a fresh record may not have propagated yet, so 404 is retried too
	require.EqualValues(t, 3, calls.Load())
}

func TestClient_UpdateClient_DoesNotRetry(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := newTestClient(server.URL, 2)

	_, err := c.UpdateClient(authCtx(), uuid.Must(uuid.NewV4()), entity.ClientUpdate{})
	require.Error(t, err)
	require.EqualValues(t, 1, calls.Load())
}

func TestClient_ApproveUser_Rejection(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		_, _ = w.Write([]byte(`{"success":false,"message":"already approved"}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL, 0)

	err := c.ApproveUser(authCtx(), uuid.Must(uuid.NewV4()))
	require.ErrorIs(t, err, entity.ErrBackendRejected)
}

func TestClient_RejectUser_SendsReason(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := make([]byte, r.ContentLength)
		_, _ = r.Body.Read(body)
		require.JSONEq(t, `{"reason":"incomplete documents"}`, string(body))

		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL, 0)

	err := c.RejectUser(authCtx(), uuid.Must(uuid.NewV4()), "incomplete documents")
	require.NoError(t, err)
}
