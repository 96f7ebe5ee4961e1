package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/perivi8/business-guru-admin/internal/entity"
)

// ToggleResult reports the status a toggle settled on, plus the retry hint
// and the state it was rolled back to when the backend rejected it.
type ToggleResult struct {
	Status      entity.GatewayStatus   `json:"status"`
	Outcome     entity.DeliveryOutcome `json:"outcome,omitempty"`
	Reverted    bool                   `json:"reverted,omitempty"`
	RetryStatus entity.GatewayStatus   `json:"retry_status,omitempty"`
}

// TogglePaymentGateway applies the tri-state toggle optimistically: the local
// record is written before the backend call, and restored to the exact prior
// value when the call fails. On failure the result carries a plausible next
// value for the caller to retry with.
func (s *Service) TogglePaymentGateway(ctx context.Context, clientID uuid.UUID, gateway string, requested entity.GatewayStatus) (ToggleResult, error) {
	if !requested.IsValid() {
		return ToggleResult{}, fmt.Errorf("%w: gateway status %q", entity.ErrInvalidInput, requested)
	}

	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return ToggleResult{}, fmt.Errorf("get user from context: %w", err)
	}

	prev, err := s.statusRepo.ClientStatus(ctx, clientID, entity.DimensionPaymentGateway, gateway)
	hadPrev := true
	if err != nil {
		if !errors.Is(err, entity.ErrNotFound) {
			return ToggleResult{}, fmt.Errorf("get client status: %w", err)
		}

		hadPrev = false
		prev = entity.ClientStatus{
			ClientID:  clientID,
			Dimension: entity.DimensionPaymentGateway,
			Gateway:   gateway,
			Status:    entity.GatewayPending.String(),
		}
	}

	next := entity.GatewayStatus(prev.Status).Toggle(requested)

	err = s.statusRepo.UpsertClientStatus(ctx, entity.ClientStatus{
		ClientID:  clientID,
		Dimension: entity.DimensionPaymentGateway,
		Gateway:   gateway,
		Status:    next.String(),
		UpdatedBy: user.ID,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		return ToggleResult{}, fmt.Errorf("upsert client status: %w", err)
	}

	outcome, err := s.status.UpdatePaymentGateway(ctx, clientID, gateway, next)
	if err != nil {
		s.revertGatewayStatus(ctx, prev, hadPrev)

		return ToggleResult{
			Status:      entity.GatewayStatus(prev.Status),
			Reverted:    true,
			RetryStatus: next.NextPlausible(),
		}, fmt.Errorf("update payment gateway: %w", err)
	}

	s.producer.SendStatusChanged(ctx, clientID, entity.DimensionPaymentGateway.String(), gateway, next.String(), user.ID)

	return ToggleResult{Status: next, Outcome: outcome}, nil
}

// revertGatewayStatus restores the pre-toggle record. A record that did not
// exist before the toggle goes back to pending rather than being deleted, so
// the row keeps its audit columns.
func (s *Service) revertGatewayStatus(ctx context.Context, prev entity.ClientStatus, hadPrev bool) {
	if !hadPrev {
		prev.Status = entity.GatewayPending.String()
	}

	prev.UpdatedAt = time.Now()

	err := s.statusRepo.UpsertClientStatus(ctx, prev)
	if err != nil {
		slog.ErrorContext(ctx, "revert client status", "client_id", prev.ClientID, "gateway", prev.Gateway, "error", err)
	}
}

// UpdateLoanStatus sets the loan dimension optimistically with the same
// write-then-confirm-or-revert shape as the gateway toggle, but without the
// tri-state rule: loan statuses are set directly.
func (s *Service) UpdateLoanStatus(ctx context.Context, clientID uuid.UUID, requested entity.LoanStatus) (entity.DeliveryOutcome, error) {
	if !requested.IsValid() {
		return entity.DeliveryNone, fmt.Errorf("%w: loan status %q", entity.ErrInvalidInput, requested)
	}

	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.DeliveryNone, fmt.Errorf("get user from context: %w", err)
	}

	prev, err := s.statusRepo.ClientStatus(ctx, clientID, entity.DimensionLoan, "")
	hadPrev := true
	if err != nil {
		if !errors.Is(err, entity.ErrNotFound) {
			return entity.DeliveryNone, fmt.Errorf("get client status: %w", err)
		}

		hadPrev = false
		prev = entity.ClientStatus{
			ClientID:  clientID,
			Dimension: entity.DimensionLoan,
			Status:    entity.LoanPending.String(),
		}
	}

	err = s.statusRepo.UpsertClientStatus(ctx, entity.ClientStatus{
		ClientID:  clientID,
		Dimension: entity.DimensionLoan,
		Status:    requested.String(),
		UpdatedBy: user.ID,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		return entity.DeliveryNone, fmt.Errorf("upsert client status: %w", err)
	}

	outcome, err := s.status.UpdateLoanStatus(ctx, clientID, requested)
	if err != nil {
		if !hadPrev {
			prev.Status = entity.LoanPending.String()
		}
		prev.UpdatedAt = time.Now()

		if revertErr := s.statusRepo.UpsertClientStatus(ctx, prev); revertErr != nil {
			slog.ErrorContext(ctx, "revert loan status", "client_id", clientID, "error", revertErr)
		}

		return entity.DeliveryNone, fmt.Errorf("update loan status: %w", err)
	}

	s.producer.SendStatusChanged(ctx, clientID, entity.DimensionLoan.String(), "", requested.String(), user.ID)

	return outcome, nil
}

// BatchUpdateStatus applies several status updates as one backend call. All
// local records are written before the call and all of them are restored on
// failure: the batch either sticks or leaves no trace.
func (s *Service) BatchUpdateStatus(ctx context.Context, updates []entity.StatusUpdate) error {
	if len(updates) == 0 {
		return fmt.Errorf("%w: empty batch", entity.ErrInvalidInput)
	}

	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return fmt.Errorf("get user from context: %w", err)
	}

	for _, u := range updates {
		if !u.Dimension.IsValid() {
			return fmt.Errorf("%w: dimension %q", entity.ErrInvalidInput, u.Dimension)
		}

		switch u.Dimension {
		case entity.DimensionPaymentGateway:
			if !entity.GatewayStatus(u.Status).IsValid() {
				return fmt.Errorf("%w: gateway status %q", entity.ErrInvalidInput, u.Status)
			}
		case entity.DimensionLoan:
			if !entity.LoanStatus(u.Status).IsValid() {
				return fmt.Errorf("%w: loan status %q", entity.ErrInvalidInput, u.Status)
			}
		}
	}

	prevs := make([]entity.ClientStatus, 0, len(updates))

	for _, u := range updates {
		prev, err := s.statusRepo.ClientStatus(ctx, u.ClientID, u.Dimension, u.Gateway)
		if err != nil {
			if !errors.Is(err, entity.ErrNotFound) {
				return fmt.Errorf("get client status: %w", err)
			}

			prev = entity.ClientStatus{
				ClientID:  u.ClientID,
				Dimension: u.Dimension,
				Gateway:   u.Gateway,
				Status:    defaultStatus(u.Dimension),
			}
		}

		prevs = append(prevs, prev)

		err = s.statusRepo.UpsertClientStatus(ctx, entity.ClientStatus{
			ClientID:  u.ClientID,
			Dimension: u.Dimension,
			Gateway:   u.Gateway,
			Status:    u.Status,
			UpdatedBy: user.ID,
			UpdatedAt: time.Now(),
		})
		if err != nil {
			s.revertAll(ctx, prevs[:len(prevs)-1])
			return fmt.Errorf("upsert client status: %w", err)
		}
	}

	err = s.status.UpdateBatch(ctx, updates)
	if err != nil {
		s.revertAll(ctx, prevs)
		return fmt.Errorf("update status batch: %w", err)
	}

	for _, u := range updates {
		s.producer.SendStatusChanged(ctx, u.ClientID, u.Dimension.String(), u.Gateway, u.Status, user.ID)
	}

	return nil
}

func (s *Service) revertAll(ctx context.Context, prevs []entity.ClientStatus) {
	for _, prev := range prevs {
		prev.UpdatedAt = time.Now()

		err := s.statusRepo.UpsertClientStatus(ctx, prev)
		if err != nil {
			slog.ErrorContext(ctx, "revert client status", "client_id", prev.ClientID, "dimension", prev.Dimension, "error", err)
		}
	}
}

func defaultStatus(d entity.StatusDimension) string {
	if d == entity.DimensionLoan {
		return entity.LoanPending.String()
	}

	return entity.GatewayPending.String()
}
