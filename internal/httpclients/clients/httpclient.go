// Package clients talks to the backend client-records API. Reads go through
// a retrying client (transport failures, 5xx and 404 are retried with
// increasing backoff), mutations are single-shot.
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gofrs/uuid/v5"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/perivi8/business-guru-admin/internal/entity"
	"github.com/perivi8/business-guru-admin/pkg/config"
	"github.com/perivi8/business-guru-admin/pkg/transport"
)

type Client struct {
	retry *http.Client
	http  *http.Client
	url   string
}

func NewClient(cfg config.Backend) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryAttempts
	retryClient.RetryWaitMin = cfg.RetryWaitMin
	retryClient.RetryWaitMax = cfg.RetryWaitMax
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.HTTPClient.Transport = transport.NewRequestIDRoundTripper(http.DefaultTransport)

	retryClient.Logger = nil

	// surface the last response instead of a "giving up" error, the status
	// switches below still map it
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}

		if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusNotFound {
			return true, nil
		}

		return false, nil
	}

	return &Client{
		retry: retryClient.StandardClient(),
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport.NewRequestIDRoundTripper(http.DefaultTransport),
		},
		url: cfg.BaseURL,
	}
}

func (c *Client) ListClients(ctx context.Context) ([]entity.Client, error) {
	url := c.url + "/api/clients"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	err = withAuth(ctx, req)
	if err != nil {
		return nil, err
	}

	resp, err := c.retry.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected code %d", resp.StatusCode)
	}

	var data []entity.Client

	err = json.NewDecoder(resp.Body).Decode(&data)
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return data, nil
}

func (c *Client) Client(ctx context.Context, id uuid.UUID) (entity.Client, error) {
	url := fmt.Sprintf("%s/api/clients/%s", c.url, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return entity.Client{}, fmt.Errorf("create request: %w", err)
	}

	err = withAuth(ctx, req)
	if err != nil {
		return entity.Client{}, err
	}

	resp, err := c.retry.Do(req)
	if err != nil {
		return entity.Client{}, fmt.Errorf("send request: %w", err)
	}

	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return entity.Client{}, fmt.Errorf("%w: client %s", entity.ErrNotFound, id)
	default:
		return entity.Client{}, fmt.Errorf("unexpected code %d", resp.StatusCode)
	}

	var data entity.Client

	err = json.NewDecoder(resp.Body).Decode(&data)
	if err != nil {
		return entity.Client{}, fmt.Errorf("decode response: %w", err)
	}

	return data, nil
}

func (c *Client) UpdateClient(ctx context.Context, id uuid.UUID, update entity.ClientUpdate) (entity.Client, error) {
	url := fmt.Sprintf("%s/api/clients/%s", c.url, id)

	body, err := json.Marshal(update)
	if err != nil {
		return entity.Client{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return entity.Client{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	err = withAuth(ctx, req)
	if err != nil {
		return entity.Client{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return entity.Client{}, fmt.Errorf("send request: %w", err)
	}

	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return entity.Client{}, fmt.Errorf("%w: client %s", entity.ErrNotFound, id)
	case http.StatusForbidden:
		return entity.Client{}, entity.ErrForbidden
	default:
		return entity.Client{}, fmt.Errorf("unexpected code %d", resp.StatusCode)
	}

	var data entity.Client

	err = json.NewDecoder(resp.Body).Decode(&data)
	if err != nil {
		return entity.Client{}, fmt.Errorf("decode response: %w", err)
	}

	return data, nil
}

func (c *Client) DeleteClient(ctx context.Context, id uuid.UUID) error {
	url := fmt.Sprintf("%s/api/clients/%s", c.url, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	err = withAuth(ctx, req)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}

	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return fmt.Errorf("%w: client %s", entity.ErrNotFound, id)
	case http.StatusForbidden:
		return entity.ErrForbidden
	default:
		return fmt.Errorf("unexpected code %d", resp.StatusCode)
	}
}

type userActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (c *Client) ApproveUser(ctx context.Context, id uuid.UUID) error {
	return c.userAction(ctx, id, "approve", nil)
}

func (c *Client) RejectUser(ctx context.Context, id uuid.UUID, reason string) error {
	return c.userAction(ctx, id, "reject", map[string]string{"reason": reason})
}

func (c *Client) userAction(ctx context.Context, id uuid.UUID, action string, payload map[string]string) error {
	url := fmt.Sprintf("%s/api/users/%s/%s", c.url, id, action)

	var body []byte

	if payload != nil {
		var err error

		body, err = json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	err = withAuth(ctx, req)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: user %s", entity.ErrNotFound, id)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected code %d", resp.StatusCode)
	}

	var data userActionResponse

	err = json.NewDecoder(resp.Body).Decode(&data)
	if err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if !data.Success {
		return fmt.Errorf("%w: %s", entity.ErrBackendRejected, data.Message)
	}

	return nil
}

func withAuth(ctx context.Context, req *http.Request) error {
	token, err := entity.TokenFromContext(ctx)
	if err != nil {
		return fmt.Errorf("get token from ctx: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)

	return nil
}
