package notification_test

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/perivi8/business-guru-admin/internal/entity"
	"github.com/perivi8/business-guru-admin/internal/notification"
)

const window = time.Minute

func admin() entity.User {
	return entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleAdmin}
}

func employee() entity.User {
	return entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleEmployee}
}

func params(viewer entity.User, watermark time.Time) notification.DeriveParams {
	return notification.DeriveParams{
		Viewer:               viewer,
		Watermark:            watermark,
		RecentCreationWindow: window,
		NewLimit:             10,
		UpdatedLimit:         10,
		AdminLimit:           5,
	}
}

func TestDerive_NewClients(t *testing.T) {
	t.Parallel()

	now := time.Now()
	watermark := now.Add(-time.Hour)

	clients := []entity.Client{
		{ID: uuid.Must(uuid.NewV4()), LegalName: "fresh", CreatedAt: now.Add(-time.Minute), UpdatedAt: now.Add(-time.Minute)},
		{ID: uuid.Must(uuid.NewV4()), LegalName: "stale", CreatedAt: now.Add(-2 * time.Hour), UpdatedAt: now.Add(-2 * time.Hour)},
	}

	feed := notification.Derive(clients, params(admin(), watermark))

	require.Len(t, feed.New, 1)
	require.Equal(t, entity.NotificationNewClient, feed.New[0].Type)
	require.Equal(t, clients[0].ID, feed.New[0].ClientID)
	require.Empty(t, feed.Updated)
}

func TestDerive_RecentCreationIsNotAnEdit(t *testing.T) {
	t.Parallel()

	now := time.Now()
	watermark := now.Add(-time.Hour)

	// Created before the watermark, "updated" 30s after creation: the
	// update is part of the creation burst and must never show up as an
	// edit.
	created := now.Add(-2 * time.Hour)
	clients := []entity.Client{
		{ID: uuid.Must(uuid.NewV4()), CreatedAt: created, UpdatedAt: created.Add(30 * time.Second)},
	}

	feed := notification.Derive(clients, params(admin(), watermark))

	require.Empty(t, feed.New)
	require.Empty(t, feed.Updated)
	require.Empty(t, feed.AdminChanges)
}

func TestDerive_UpdatedExcludesViewerOwnEdits(t *testing.T) {
	t.Parallel()

	now := time.Now()
	viewer := employee()
	watermark := now.Add(-time.Hour)
	created := now.Add(-24 * time.Hour)

	clients := []entity.Client{
		{ID: uuid.Must(uuid.NewV4()), CreatedAt: created, UpdatedAt: now.Add(-time.Minute), UpdatedBy: viewer.ID, UpdatedByRole: entity.RoleEmployee},
		{ID: uuid.Must(uuid.NewV4()), CreatedAt: created, UpdatedAt: now.Add(-time.Minute), UpdatedBy: uuid.Must(uuid.NewV4()), UpdatedByRole: entity.RoleEmployee},
	}

	feed := notification.Derive(clients, params(viewer, watermark))

	require.Len(t, feed.Updated, 1)
	require.Equal(t, clients[1].ID, feed.Updated[0].ClientID)
}

func TestDerive_AdminChangesOnlyForNonAdminViewers(t *testing.T) {
	t.Parallel()

	now := time.Now()
	watermark := now.Add(-time.Hour)
	created := now.Add(-24 * time.Hour)

	clients := []entity.Client{
		{ID: uuid.Must(uuid.NewV4()), CreatedAt: created, UpdatedAt: now.Add(-time.Minute), UpdatedBy: uuid.Must(uuid.NewV4()), UpdatedByRole: entity.RoleAdmin},
	}

	employeeFeed := notification.Derive(clients, params(employee(), watermark))
	require.Len(t, employeeFeed.AdminChanges, 1)
	require.Empty(t, employeeFeed.Updated)

	adminFeed := notification.Derive(clients, params(admin(), watermark))
	require.Empty(t, adminFeed.AdminChanges)
	require.Len(t, adminFeed.Updated, 1)
}

func TestDerive_HiddenMarkersSuppress(t *testing.T) {
	t.Parallel()

	now := time.Now()
	watermark := now.Add(-time.Hour)
	hiddenID := uuid.Must(uuid.NewV4())

	clients := []entity.Client{
		{ID: hiddenID, CreatedAt: now.Add(-time.Minute), UpdatedAt: now.Add(-time.Minute)},
		{ID: uuid.Must(uuid.NewV4()), CreatedAt: now.Add(-time.Minute), UpdatedAt: now.Add(-time.Minute)},
	}

	p := params(admin(), watermark)
	p.Hidden = func(typ entity.NotificationType, clientID uuid.UUID, _ time.Time) bool {
		return typ == entity.NotificationNewClient && clientID == hiddenID
	}

	feed := notification.Derive(clients, p)

	require.Len(t, feed.New, 1)
	require.NotEqual(t, hiddenID, feed.New[0].ClientID)
}

func TestDerive_SortedNewestFirstAndCapped(t *testing.T) {
	t.Parallel()

	now := time.Now()
	watermark := now.Add(-time.Hour)

	clients := make([]entity.Client, 0, 15)
	for i := 0; i < 15; i++ {
		clients = append(clients, entity.Client{
			ID:        uuid.Must(uuid.NewV4()),
			CreatedAt: now.Add(-time.Duration(i) * time.Minute),
			UpdatedAt: now.Add(-time.Duration(i) * time.Minute),
		})
	}

	feed := notification.Derive(clients, params(admin(), watermark))

	require.Len(t, feed.New, 10)

	for i := 1; i < len(feed.New); i++ {
		require.False(t, feed.New[i].CreatedAt.After(feed.New[i-1].CreatedAt))
	}
}

func TestDerive_WatermarkAdvanceEmptiesFeed(t *testing.T) {
	t.Parallel()

	now := time.Now()

	clients := []entity.Client{
		{ID: uuid.Must(uuid.NewV4()), CreatedAt: now.Add(-time.Minute), UpdatedAt: now.Add(-time.Minute)},
	}

	before := notification.Derive(clients, params(admin(), now.Add(-time.Hour)))
	require.Equal(t, 1, before.Unread())

	// Closing then reopening the panel advances the watermark to now:
	// without new activity the badge must read zero.
	after := notification.Derive(clients, params(admin(), now))
	require.Equal(t, 0, after.Unread())
}
