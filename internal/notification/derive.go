package notification

import (
	"fmt"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/perivi8/business-guru-admin/internal/entity"
)

// DeriveParams carries the viewer-specific inputs of a feed derivation.
// Watermark must already be the later of the viewer's last visit and the
// last notifications clear.
type DeriveParams struct {
	Viewer               entity.User
	Watermark            time.Time
	RecentCreationWindow time.Duration
	NewLimit             int
	UpdatedLimit         int
	AdminLimit           int

	// Hidden reports whether the viewer dismissed this client+type
	// combination at or after the event time. Nil means nothing is hidden.
	Hidden func(typ entity.NotificationType, clientID uuid.UUID, at time.Time) bool
}

// Derive computes the new/updated/admin-changed client feeds from the full
// client list. The feeds are never stored: the watermark plus the hidden
// markers fully determine them.
func Derive(clients []entity.Client, p DeriveParams) entity.ClientFeed {
	hidden := p.Hidden
	if hidden == nil {
		hidden = func(entity.NotificationType, uuid.UUID, time.Time) bool { return false }
	}

	var feed entity.ClientFeed

	for _, c := range clients {
		if c.CreatedAt.After(p.Watermark) && !hidden(entity.NotificationNewClient, c.ID, c.CreatedAt) {
			feed.New = append(feed.New, clientNotification(entity.NotificationNewClient, c,
				fmt.Sprintf("New client registered: %s", clientLabel(c)), c.CreatedAt))
			continue
		}

		if !isEdit(c, p.RecentCreationWindow) || !c.UpdatedAt.After(p.Watermark) {
			continue
		}

		byViewer := c.UpdatedBy == p.Viewer.ID

		if !p.Viewer.IsAdmin() && !byViewer && c.UpdatedByRole == entity.RoleAdmin {
			if !hidden(entity.NotificationAdminChange, c.ID, c.UpdatedAt) {
				feed.AdminChanges = append(feed.AdminChanges, clientNotification(entity.NotificationAdminChange, c,
					fmt.Sprintf("Admin updated client: %s", clientLabel(c)), c.UpdatedAt))
			}

			continue
		}

		if !p.Viewer.IsAdmin() && byViewer {
			continue
		}

		if !hidden(entity.NotificationUpdatedClient, c.ID, c.UpdatedAt) {
			feed.Updated = append(feed.Updated, clientNotification(entity.NotificationUpdatedClient, c,
				fmt.Sprintf("Client updated: %s", clientLabel(c)), c.UpdatedAt))
		}
	}

	sortNewestFirst(feed.New)
	sortNewestFirst(feed.Updated)
	sortNewestFirst(feed.AdminChanges)

	feed.New = capped(feed.New, p.NewLimit)
	feed.Updated = capped(feed.Updated, p.UpdatedLimit)
	feed.AdminChanges = capped(feed.AdminChanges, p.AdminLimit)

	return feed
}

// isEdit tells a genuine edit apart from the burst of writes that follows a
// creation: an update landing within the recent-creation window of
// created_at is treated as part of the creation.
func isEdit(c entity.Client, window time.Duration) bool {
	return c.UpdatedAt.Sub(c.CreatedAt) >= window
}

func clientNotification(typ entity.NotificationType, c entity.Client, message string, at time.Time) entity.Notification {
	return entity.Notification{
		ID:        uuid.Must(uuid.NewV4()),
		Type:      typ,
		Message:   message,
		ClientID:  c.ID,
		CreatedAt: at,
	}
}

func clientLabel(c entity.Client) string {
	if c.BusinessName != "" {
		return c.BusinessName
	}

	return c.LegalName
}

func sortNewestFirst(list []entity.Notification) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
}

func capped(list []entity.Notification, limit int) []entity.Notification {
	if limit > 0 && len(list) > limit {
		return list[:limit]
	}

	return list
}
