package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type NotificationType string

const (
	NotificationNewClient          NotificationType = "new_client"
	NotificationUpdatedClient      NotificationType = "updated_client"
	NotificationAdminChange        NotificationType = "admin_change"
	NotificationClientStatusUpdate NotificationType = "client_status_update"
	NotificationSystem             NotificationType = "system"
)

func (t NotificationType) String() string {
	return string(t)
}

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationNewClient, NotificationUpdatedClient, NotificationAdminChange,
		NotificationClientStatusUpdate, NotificationSystem:
		return true
	}

	return false
}

type NotificationPriority string

const (
	PriorityNormal NotificationPriority = "normal"
	PriorityHigh   NotificationPriority = "high"
)

type Notification struct {
	ID           uuid.UUID            `json:"id"`
	Type         NotificationType     `json:"type"`
	Message      string               `json:"message"`
	Priority     NotificationPriority `json:"priority,omitempty"`
	ClientID     uuid.UUID            `json:"client_id,omitempty"`
	TargetUserID uuid.UUID            `json:"target_user_id,omitempty"`
	Data         map[string]string    `json:"data,omitempty"`
	Read         bool                 `json:"read"`
	CreatedAt    time.Time            `json:"created_at"`
}

// ClientFeed is the derived part of the notification center: it is computed
// from the client list against the viewer's watermark, never stored.
type ClientFeed struct {
	New          []Notification `json:"new"`
	Updated      []Notification `json:"updated"`
	AdminChanges []Notification `json:"admin_changes"`
}

func (f ClientFeed) Unread() int {
	return len(f.New) + len(f.Updated) + len(f.AdminChanges)
}
