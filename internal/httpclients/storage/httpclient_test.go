package storage

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

func TestClient_Download(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("%PDF-1.4"))
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	data, err := c.Download(context.Background(), server.URL+"/docs/gst.pdf")
	require.NoError(t, err)
	require.Equal(t, []byte("%PDF-1.4"), data)
}

func TestClient_Download_EmptyBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	_, err := c.Download(context.Background(), server.URL+"/docs/gst.pdf")
	require.ErrorIs(t, err, entity.ErrEmptyPayload)
}

func TestClient_StreamDocument(t *testing.T) {
	t.Parallel()

	clientID := uuid.Must(uuid.NewV4())

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/clients/"+clientID.String()+"/documents/pan_card/stream", r.URL.Path)
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Disposition", `attachment; filename="pan_card.pdf"`)
		_, _ = w.Write([]byte("%PDF-1.4"))
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	doc, err := c.StreamDocument(authCtx(), clientID, "pan_card")
	require.NoError(t, err)
	require.Equal(t, "pan_card.pdf", doc.Name)
	require.Equal(t, []byte("%PDF-1.4"), doc.Data)
}

func TestClient_StreamDocument_NotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	_, err := c.StreamDocument(authCtx(), uuid.Must(uuid.NewV4()), "pan_card")
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestClient_LookupDocumentURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		want    string
		wantErr error
	}{
		{
			name: "url on record",
			body: `{"url":"https://cdn.example.com/docs/gst.pdf"}`,
			want: "https://cdn.example.com/docs/gst.pdf",
		},
		{
			name:    "empty url counts as missing",
			body:    `{"url":""}`,
			wantErr: entity.ErrNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := newTestClient(server.URL)

			got, err := c.LookupDocumentURL(authCtx(), uuid.Must(uuid.NewV4()), "gst_certificate")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
