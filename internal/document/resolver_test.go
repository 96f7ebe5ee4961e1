package document_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/perivi8/business-guru-admin/internal/document"
	"github.com/perivi8/business-guru-admin/internal/entity"
)

func TestNormalizeKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  string
		want string
	}{
		{"partner_0_aadhar", "partner_aadhar_0"},
		{"partner_aadhar_0", "partner_aadhar_0"},
		{"partner_aadhar0", "partner_aadhar_0"},
		{"partner_aadhar", "partner_aadhar_0"},
		{"Partner_PAN_3", "partner_pan_3"},
		{"partner_7_pan", "partner_pan_7"},
		{"business_document", "business_document"},
		{"gst_certificate", "gst_certificate"},
		{"  Business_Document ", "business_document"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, document.NormalizeKey(tt.key))
		})
	}
}

func TestResolve_Precedence(t *testing.T) {
	t.Parallel()

	// All three shapes are present, the newest format must win.
	client := entity.Client{
		Documents: map[string]entity.DocumentValue{
			"business_document": {URL: "https://cdn/x.pdf"},
		},
		ProcessedDocuments: map[string]entity.ProcessedDocument{
			"business_document": {FileName: "old.pdf", FileSize: 100},
		},
		BusinessDocumentURL: "https://legacy/ancient.pdf",
	}

	got, err := document.Resolve(client, "business_document")
	require.NoError(t, err)
	require.Equal(t, "https://cdn/x.pdf", got.URL)
	require.Equal(t, "x.pdf", got.Filename)
	require.NotEqual(t, "old.pdf", got.Filename)
}

func TestResolve_ProcessedFallback(t *testing.T) {
	t.Parallel()

	client := entity.Client{
		ProcessedDocuments: map[string]entity.ProcessedDocument{
			"gst_certificate": {FileName: "gst.pdf", FileSize: 2048},
		},
	}

	got, err := document.Resolve(client, "gst_certificate")
	require.NoError(t, err)
	require.Equal(t, "gst.pdf", got.Filename)
	require.EqualValues(t, 2048, got.Size)
	require.False(t, got.HasURL())
}

func TestResolve_LegacyBusinessURL(t *testing.T) {
	t.Parallel()

	client := entity.Client{
		BusinessDocumentURL: "https://legacy/docs/scan.pdf?token=abc",
	}

	got, err := document.Resolve(client, "business_document")
	require.NoError(t, err)
	require.Equal(t, "https://legacy/docs/scan.pdf?token=abc", got.URL)
	require.Equal(t, "scan.pdf", got.Filename)
}

func TestResolve_PartnerKeySpellings(t *testing.T) {
	t.Parallel()

	client := entity.Client{
		Documents: map[string]entity.DocumentValue{
			"partner_0_aadhar": {URL: "https://cdn/aadhar0.pdf", Bytes: 512},
		},
	}

	for _, key := range []string{"partner_0_aadhar", "partner_aadhar_0", "partner_aadhar0"} {
		got, err := document.Resolve(client, key)
		require.NoError(t, err, key)
		require.Equal(t, "https://cdn/aadhar0.pdf", got.URL, key)
		require.Equal(t, "partner_aadhar_0", got.Key, key)
	}
}

func TestResolve_FilenameFallsBackToKey(t *testing.T) {
	t.Parallel()

	client := entity.Client{
		Documents: map[string]entity.DocumentValue{
			"partner_pan_1": {Bytes: 10},
		},
	}

	got, err := document.Resolve(client, "partner_1_pan")
	require.NoError(t, err)
	require.Equal(t, "partner_pan_1.pdf", got.Filename)
}

func TestResolve_NotFound(t *testing.T) {
	t.Parallel()

	_, err := document.Resolve(entity.Client{}, "partner_pan_4")
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestDocumentValue_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	var docs map[string]entity.DocumentValue

	payload := `{
		"business_document": "https://cdn/plain.pdf",
		"gst_certificate": {"url": "https://cdn/gst.pdf", "original_filename": "gst-2024.pdf", "bytes": 4096},
		"partner_aadhar_0": {"url": "https://cdn/a.pdf", "file_name": "aadhar-front.pdf"}
	}`

	err := json.Unmarshal([]byte(payload), &docs)
	require.NoError(t, err)

	require.True(t, docs["business_document"].IsString)
	require.Equal(t, "https://cdn/plain.pdf", docs["business_document"].URL)

	require.Equal(t, "gst-2024.pdf", docs["gst_certificate"].OriginalFilename)
	require.EqualValues(t, 4096, docs["gst_certificate"].Bytes)

	require.Equal(t, "aadhar-front.pdf", docs["partner_aadhar_0"].OriginalFilename)
}

func TestCacheBust(t *testing.T) {
	t.Parallel()

	now := time.Unix(1700000000, 0)

	require.Equal(t, "https://cdn/x.pdf?t=1700000000", document.CacheBust("https://cdn/x.pdf", now))
	require.Equal(t, "https://cdn/x.pdf?token=a&t=1700000000", document.CacheBust("https://cdn/x.pdf?token=a", now))
}
