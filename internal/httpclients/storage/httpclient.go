// Package storage retrieves document bytes: either straight from a CDN URL
// or through the backend byte-stream endpoint when no direct URL exists.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/gofrs/uuid/v5"

	"github.com/perivi8/business-guru-admin/internal/entity"
	"github.com/perivi8/business-guru-admin/pkg/config"
	"github.com/perivi8/business-guru-admin/pkg/transport"
)

type Client struct {
	http *http.Client
	url  string
}

func NewClient(cfg config.Backend) *Client {
	return &Client{
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport.NewRequestIDRoundTripper(http.DefaultTransport),
		},
		url: cfg.BaseURL,
	}
}

// Download fetches document bytes from a direct URL.
func (c *Client) Download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected code %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if len(body) == 0 {
		return nil, entity.ErrEmptyPayload
	}

	return body, nil
}

// StreamDocument asks the backend byte-stream endpoint for the document
// contents, returning the bytes and the filename the backend suggests.
func (c *Client) StreamDocument(ctx context.Context, clientID uuid.UUID, key string) (entity.DownloadedDocument, error) {
	url := fmt.Sprintf("%s/api/clients/%s/documents/%s/stream", c.url, clientID, key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return entity.DownloadedDocument{}, fmt.Errorf("create request: %w", err)
	}

	token, err := entity.TokenFromContext(ctx)
	if err != nil {
		return entity.DownloadedDocument{}, fmt.Errorf("get token from ctx: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return entity.DownloadedDocument{}, fmt.Errorf("send request: %w", err)
	}

	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return entity.DownloadedDocument{}, fmt.Errorf("%w: document %s of client %s", entity.ErrNotFound, key, clientID)
	default:
		return entity.DownloadedDocument{}, fmt.Errorf("unexpected code %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return entity.DownloadedDocument{}, fmt.Errorf("read response: %w", err)
	}

	if len(body) == 0 {
		return entity.DownloadedDocument{}, entity.ErrEmptyPayload
	}

	return entity.DownloadedDocument{
		Name: dispositionFilename(resp.Header.Get("Content-Disposition")),
		Data: body,
	}, nil
}

// LookupDocumentURL is the last resort of the retrieval chain: it asks the
// backend for whatever direct URL it has on record for the key.
func (c *Client) LookupDocumentURL(ctx context.Context, clientID uuid.UUID, key string) (string, error) {
	url := fmt.Sprintf("%s/api/clients/%s/documents/%s/url", c.url, clientID, key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	token, err := entity.TokenFromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("get token from ctx: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}

	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return "", fmt.Errorf("%w: document %s of client %s", entity.ErrNotFound, key, clientID)
	default:
		return "", fmt.Errorf("unexpected code %d", resp.StatusCode)
	}

	var data struct {
		URL string `json:"url"`
	}

	err = json.NewDecoder(resp.Body).Decode(&data)
	if err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if data.URL == "" {
		return "", fmt.Errorf("%w: document %s of client %s", entity.ErrNotFound, key, clientID)
	}

	return data.URL, nil
}

func dispositionFilename(disposition string) string {
	if disposition == "" {
		return ""
	}

	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return ""
	}

	return params["filename"]
}
