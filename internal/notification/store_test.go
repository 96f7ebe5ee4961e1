package notification_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/perivi8/business-guru-admin/internal/entity"
	"github.com/perivi8/business-guru-admin/internal/notification"
)

var errRepoDown = errors.New("repo down")

// fakeRepo keeps persisted notifications in a map, standing in for the
// Postgres repository.
type fakeRepo struct {
	saved map[uuid.UUID]entity.Notification
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{saved: make(map[uuid.UUID]entity.Notification)}
}

func (f *fakeRepo) SaveNotification(_ context.Context, n entity.Notification) error {
	f.saved[n.ID] = n
	return nil
}

func (f *fakeRepo) MarkNotificationRead(_ context.Context, id uuid.UUID) error {
	n := f.saved[id]
	n.Read = true
	f.saved[id] = n

	return nil
}

func (f *fakeRepo) MarkAllNotificationsRead(_ context.Context, _ uuid.UUID) error {
	for id, n := range f.saved {
		n.Read = true
		f.saved[id] = n
	}

	return nil
}

func (f *fakeRepo) DeleteNotification(_ context.Context, id uuid.UUID) error {
	delete(f.saved, id)
	return nil
}

func (f *fakeRepo) DeleteAllNotifications(_ context.Context, _ uuid.UUID) error {
	f.saved = make(map[uuid.UUID]entity.Notification)
	return nil
}

func (f *fakeRepo) NotificationsForUser(_ context.Context, _ uuid.UUID) ([]entity.Notification, error) {
	out := make([]entity.Notification, 0, len(f.saved))
	for _, n := range f.saved {
		out = append(out, n)
	}

	return out, nil
}

func TestStore_AppendAssignsIdentity(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	store := notification.NewStore(repo, uuid.Must(uuid.NewV4()))

	n, err := store.Append(context.Background(), entity.Notification{
		Type:    entity.NotificationSystem,
		Message: "maintenance tonight",
	})
	require.NoError(t, err)
	require.False(t, n.ID.IsNil())
	require.False(t, n.CreatedAt.IsZero())
	require.False(t, n.Read)

	require.Contains(t, repo.saved, n.ID)
	require.Equal(t, 1, store.Unread())
}

func TestStore_AppendRejectsUnknownType(t *testing.T) {
	t.Parallel()

	store := notification.NewStore(newFakeRepo(), uuid.Must(uuid.NewV4()))

	_, err := store.Append(context.Background(), entity.Notification{Type: "bogus"})
	require.ErrorIs(t, err, entity.ErrIncorrectRequestBody)
}

func TestStore_MarkReadAndUnreadCount(t *testing.T) {
	t.Parallel()

	store := notification.NewStore(newFakeRepo(), uuid.Must(uuid.NewV4()))
	ctx := context.Background()

	first, err := store.Append(ctx, entity.Notification{Type: entity.NotificationSystem, Message: "a"})
	require.NoError(t, err)

	_, err = store.Append(ctx, entity.Notification{Type: entity.NotificationSystem, Message: "b"})
	require.NoError(t, err)

	require.Equal(t, 2, store.Unread())

	require.NoError(t, store.MarkRead(ctx, first.ID))
	require.Equal(t, 1, store.Unread())

	require.NoError(t, store.MarkAllRead(ctx))
	require.Equal(t, 0, store.Unread())
}

func TestStore_MarkReadUnknownID(t *testing.T) {
	t.Parallel()

	store := notification.NewStore(newFakeRepo(), uuid.Must(uuid.NewV4()))

	err := store.MarkRead(context.Background(), uuid.Must(uuid.NewV4()))
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestStore_RemoveAndClear(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	store := notification.NewStore(repo, uuid.Must(uuid.NewV4()))
	ctx := context.Background()

	first, err := store.Append(ctx, entity.Notification{Type: entity.NotificationSystem, Message: "a"})
	require.NoError(t, err)

	_, err = store.Append(ctx, entity.Notification{Type: entity.NotificationSystem, Message: "b"})
	require.NoError(t, err)

	require.NoError(t, store.Remove(ctx, first.ID))
	require.Len(t, store.Items(), 1)
	require.NotContains(t, repo.saved, first.ID)

	require.NoError(t, store.Clear(ctx))
	require.Empty(t, store.Items())
	require.Empty(t, repo.saved)
}

func TestStore_LoadFiltersByTarget(t *testing.T) {
	t.Parallel()

	me := uuid.Must(uuid.NewV4())
	other := uuid.Must(uuid.NewV4())

	repo := newFakeRepo()

	broadcast := entity.Notification{ID: uuid.Must(uuid.NewV4()), Type: entity.NotificationSystem, Message: "for all"}
	mine := entity.Notification{ID: uuid.Must(uuid.NewV4()), Type: entity.NotificationSystem, Message: "for me", TargetUserID: me}
	foreign := entity.Notification{ID: uuid.Must(uuid.NewV4()), Type: entity.NotificationSystem, Message: "not mine", TargetUserID: other}
	statusForMe := entity.Notification{
		ID:           uuid.Must(uuid.NewV4()),
		Type:         entity.NotificationClientStatusUpdate,
		Message:      "status changed",
		TargetUserID: other,
		Data:         map[string]string{"user_id": me.String()},
	}

	for _, n := range []entity.Notification{broadcast, mine, foreign, statusForMe} {
		require.NoError(t, repo.SaveNotification(context.Background(), n))
	}

	store := notification.NewStore(repo, me)
	require.NoError(t, store.Load(context.Background()))

	ids := make([]uuid.UUID, 0)
	for _, n := range store.Items() {
		ids = append(ids, n.ID)
	}

	require.ElementsMatch(t, []uuid.UUID{broadcast.ID, mine.ID, statusForMe.ID}, ids)
}

// brokenRepo fails every mutation and load.
type brokenRepo struct {
	*fakeRepo
}

func (b *brokenRepo) SaveNotification(_ context.Context, _ entity.Notification) error {
	return errRepoDown
}

func (b *brokenRepo) MarkNotificationRead(_ context.Context, _ uuid.UUID) error {
	return errRepoDown
}

func (b *brokenRepo) NotificationsForUser(_ context.Context, _ uuid.UUID) ([]entity.Notification, error) {
	return nil, errRepoDown
}

func TestStore_AppendFailureLeavesFeedUntouched(t *testing.T) {
	t.Parallel()

	store := notification.NewStore(&brokenRepo{newFakeRepo()}, uuid.Must(uuid.NewV4()))

	_, err := store.Append(context.Background(), entity.Notification{
		Type:    entity.NotificationSystem,
		Message: "a",
	})
	require.ErrorIs(t, err, errRepoDown)
	require.Empty(t, store.Items())
	require.Equal(t, 0, store.Unread())
}

// readFlagFailRepo persists appends but refuses the read flag.
type readFlagFailRepo struct {
	*fakeRepo
}

func (r *readFlagFailRepo) MarkNotificationRead(_ context.Context, _ uuid.UUID) error {
	return errRepoDown
}

func TestStore_MarkReadFailureKeepsUnread(t *testing.T) {
	t.Parallel()

	store := notification.NewStore(&readFlagFailRepo{newFakeRepo()}, uuid.Must(uuid.NewV4()))
	ctx := context.Background()

	n, err := store.Append(ctx, entity.Notification{Type: entity.NotificationSystem, Message: "a"})
	require.NoError(t, err)

	err = store.MarkRead(ctx, n.ID)
	require.ErrorIs(t, err, errRepoDown)

	// The failed flag must not stick in memory either.
	require.Equal(t, 1, store.Unread())
	require.False(t, store.Items()[0].Read)
}

func TestStore_SubscribeReceivesSnapshots(t *testing.T) {
	t.Parallel()

	store := notification.NewStore(newFakeRepo(), uuid.Must(uuid.NewV4()))
	ch := store.Subscribe()

	_, err := store.Append(context.Background(), entity.Notification{Type: entity.NotificationSystem, Message: "a"})
	require.NoError(t, err)

	snap := <-ch
	require.Equal(t, 1, snap.Unread)
	require.Len(t, snap.Items, 1)
}
