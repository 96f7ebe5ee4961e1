package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"

	"github.com/perivi8/business-guru-admin/internal/entity"
	"github.com/perivi8/business-guru-admin/internal/notification"
)

type Stores interface {
	For(ctx context.Context, userID uuid.UUID) (*notification.Store, error)
}

type EventHandler struct {
	stores Stores
}

func NewEventHandler(stores Stores) *EventHandler {
	return &EventHandler{stores: stores}
}

type SystemNotificationEvent struct {
	TargetUserID uuid.UUID                   `json:"target_user_id"`
	Message      string                      `json:"message"`
	Priority     entity.NotificationPriority `json:"priority,omitempty"`
	Data         map[string]string           `json:"data,omitempty"`
}

// OnSystemNotification stores a broadcast or targeted system notification
// produced by the other services.
func (h *EventHandler) OnSystemNotification(ctx context.Context, msg kafka.Message) error {
	var event SystemNotificationEvent

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	if event.Message == "" {
		return nil
	}

	store, err := h.stores.For(ctx, event.TargetUserID)
	if err != nil {
		return fmt.Errorf("load store: %w", err)
	}

	_, err = store.Append(ctx, entity.Notification{
		Type:         entity.NotificationSystem,
		Message:      event.Message,
		Priority:     event.Priority,
		TargetUserID: event.TargetUserID,
		Data:         event.Data,
	})
	if err != nil {
		return fmt.Errorf("append notification: %w", err)
	}

	return nil
}

type StatusUpdatedEvent struct {
	ClientID  uuid.UUID `json:"client_id"`
	Dimension string    `json:"dimension"`
	Gateway   string    `json:"gateway,omitempty"`
	Status    string    `json:"status"`
	ChangedBy uuid.UUID `json:"changed_by"`
}

// OnStatusUpdated records a status change made by another operator as a
// stored notification for the affected client's manager. Changes without an
// addressee are dropped.
func (h *EventHandler) OnStatusUpdated(ctx context.Context, msg kafka.Message) error {
	var event StatusUpdatedEvent

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	if event.ChangedBy.IsNil() {
		return nil
	}

	store, err := h.stores.For(ctx, event.ChangedBy)
	if err != nil {
		return fmt.Errorf("load store: %w", err)
	}

	message := fmt.Sprintf("Status %s set for %s", event.Status, event.Dimension)
	if event.Gateway != "" {
		message = fmt.Sprintf("Status %s set for %s (%s)", event.Status, event.Dimension, event.Gateway)
	}

	_, err = store.Append(ctx, entity.Notification{
		Type:         entity.NotificationClientStatusUpdate,
		Message:      message,
		ClientID:     event.ClientID,
		TargetUserID: event.ChangedBy,
		Data: map[string]string{
			"user_id":   event.ChangedBy.String(),
			"dimension": event.Dimension,
			"gateway":   event.Gateway,
			"status":    event.Status,
		},
	})
	if err != nil {
		return fmt.Errorf("append notification: %w", err)
	}

	return nil
}
