package status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/perivi8/business-guru-admin/internal/entity"
	"github.com/perivi8/business-guru-admin/pkg/config"
)

func newTestClient(baseURL string) *Client {
	return NewClient(config.Backend{
		BaseURL: baseURL,
		Timeout: time.Second,
	})
}

func authCtx() context.Context {
	return entity.SetTokenToContext(context.Background(), "test-token")
}

func TestClient_UpdatePaymentGateway(t *testing.T) {
	t.Parallel()

	clientID := uuid.Must(uuid.NewV4())

	tests := []struct {
		name        string
		handler     func(w http.ResponseWriter, r *http.Request)
		wantOutcome entity.DeliveryOutcome
		wantErr     error
	}{
		{
			name: "success with email sent",
			handler: func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPut, r.Method)
				require.Equal(t, "/api/clients/"+clientID.String()+"/status/payment-gateway", r.URL.Path)
				require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

				_, _ = w.Write([]byte(`{"success":true,"email_sent":true}`))
			},
			wantOutcome: entity.DeliveryEmailSent,
		},
		{
			name: "success with queued email",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"success":true,"email_queued":true}`))
			},
			wantOutcome: entity.DeliveryEmailAsync,
		},
		{
			name: "success with failed email",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"success":true,"email_error":"smtp timeout"}`))
			},
			wantOutcome: entity.DeliveryEmailFailed,
		},
		{
			name: "explicit rejection",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"success":false,"message":"client blocked"}`))
			},
			wantErr: entity.ErrBackendRejected,
		},
		{
			name: "empty payload",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
			wantErr: entity.ErrEmptyPayload,
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(`{"success":false}`))
			},
			wantErr: entity.ErrNotFound,
		},
		{
			name: "not found with empty body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			wantErr: entity.ErrNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(tt.handler))
			defer server.Close()

			c := newTestClient(server.URL)

			outcome, err := c.UpdatePaymentGateway(authCtx(), clientID, "cashfree", entity.GatewayApproved)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.wantOutcome, outcome)
		})
	}
}

func TestClient_UpdateBatch(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/clients/status/batch", r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	err := c.UpdateBatch(authCtx(), []entity.StatusUpdate{
		{ClientID: uuid.Must(uuid.NewV4()), Dimension: entity.DimensionLoan, Status: "approved"},
	})
	require.NoError(t, err)
}

func TestClient_MissingToken(t *testing.T) {
	t.Parallel()

	c := newTestClient("http://localhost:1")

	_, err := c.UpdateLoanStatus(context.Background(), uuid.Must(uuid.NewV4()), entity.LoanApproved)
	require.Error(t, err)
}
