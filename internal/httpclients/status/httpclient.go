// Package status wraps the backend fast-path status-update endpoints. All
// failure modes are normalized to the same taxonomy: transport error,
// empty payload, explicit rejection.
package status

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
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

type updateResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	EmailSent   bool   `json:"email_sent"`
	EmailQueued bool   `json:"email_queued"`
	EmailError  string `json:"email_error"`
}

type updateGatewayRequest struct {
	Gateway string `json:"gateway"`
	Status  string `json:"status"`
}

func (c *Client) UpdatePaymentGateway(
	ctx context.Context, clientID uuid.UUID, gateway string, status entity.GatewayStatus) (entity.DeliveryOutcome, error) {
	url := fmt.Sprintf("%s/api/clients/%s/status/payment-gateway", c.url, clientID)

	return c.put(ctx, url, updateGatewayRequest{
		Gateway: gateway,
		Status:  status.String(),
	})
}

type updateLoanRequest struct {
	Status string `json:"status"`
}

func (c *Client) UpdateLoanStatus(
	ctx context.Context, clientID uuid.UUID, status entity.LoanStatus) (entity.DeliveryOutcome, error) {
	url := fmt.Sprintf("%s/api/clients/%s/status/loan", c.url, clientID)

	return c.put(ctx, url, updateLoanRequest{
		Status: status.String(),
	})
}

type updateBatchRequest struct {
	Updates []entity.StatusUpdate `json:"updates"`
}

func (c *Client) UpdateBatch(ctx context.Context, updates []entity.StatusUpdate) error {
	url := c.url + "/api/clients/status/batch"

	_, err := c.put(ctx, url, updateBatchRequest{Updates: updates})

	return err
}

func (c *Client) put(ctx context.Context, url string, payload any) (entity.DeliveryOutcome, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return entity.DeliveryNone, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return entity.DeliveryNone, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	token, err := entity.TokenFromContext(ctx)
	if err != nil {
		return entity.DeliveryNone, fmt.Errorf("get token from ctx: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return entity.DeliveryNone, fmt.Errorf("send request: %w", err)
	}

	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return entity.DeliveryNone, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return entity.DeliveryNone, fmt.Errorf("%w: %s", entity.ErrNotFound, url)
	}

	if resp.StatusCode != http.StatusOK {
		return entity.DeliveryNone, fmt.Errorf("unexpected code %d", resp.StatusCode)
	}

	// Only a 200 with no body counts as empty payload; error statuses keep
	// their own classification even when the backend sends nothing.
	if len(raw) == 0 {
		return entity.DeliveryNone, entity.ErrEmptyPayload
	}

	var data updateResponse

	err = json.Unmarshal(raw, &data)
	if err != nil {
		return entity.DeliveryNone, fmt.Errorf("decode response: %w", err)
	}

	if !data.Success {
		return entity.DeliveryNone, fmt.Errorf("%w: %s", entity.ErrBackendRejected, data.Message)
	}

	return outcome(data), nil
}

func outcome(data updateResponse) entity.DeliveryOutcome {
	switch {
	case data.EmailSent:
		return entity.DeliveryEmailSent
	case data.EmailQueued:
		return entity.DeliveryEmailAsync
	case data.EmailError != "":
		return entity.DeliveryEmailFailed
	default:
		return entity.DeliveryNone
	}
}
