package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/perivi8/business-guru-admin/internal/entity"
	"github.com/perivi8/business-guru-admin/internal/notification"
)

// NotificationFeed derives the viewer's client feeds from the cached client
// list and returns them together with the stored notifications. The
// watermark is the later of the viewer's last panel visit and the last
// explicit clear.
func (s *Service) NotificationFeed(ctx context.Context) (entity.ClientFeed, notification.Snapshot, error) {
	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.ClientFeed{}, notification.Snapshot{}, fmt.Errorf("get user from context: %w", err)
	}

	clients, err := s.cachedClients(ctx)
	if err != nil {
		return entity.ClientFeed{}, notification.Snapshot{}, err
	}

	watermark, err := s.watermark(ctx, user)
	if err != nil {
		return entity.ClientFeed{}, notification.Snapshot{}, err
	}

	hidden := func(typ entity.NotificationType, clientID uuid.UUID, at time.Time) bool {
		marker, found, err := s.prefs.GetPref(ctx, notification.HiddenKey(typ, clientID, user.Role, user.ID))
		if err != nil || !found {
			return false
		}

		// A client touched again after the dismissal resurfaces.
		return !at.After(marker)
	}

	feed := notification.Derive(clients, notification.DeriveParams{
		Viewer:               user,
		Watermark:            watermark,
		RecentCreationWindow: s.cfg.RecentCreationWindow,
		NewLimit:             s.cfg.NewLimit,
		UpdatedLimit:         s.cfg.UpdatedLimit,
		AdminLimit:           s.cfg.AdminLimit,
		Hidden:               hidden,
	})

	store, err := s.stores.For(ctx, user.ID)
	if err != nil {
		return entity.ClientFeed{}, notification.Snapshot{}, fmt.Errorf("load notification store: %w", err)
	}

	return feed, notification.Snapshot{Items: store.Items(), Unread: store.Unread()}, nil
}

func (s *Service) watermark(ctx context.Context, user entity.User) (time.Time, error) {
	lastVisit, _, err := s.prefs.GetPref(ctx, notification.LastVisitKey(user.Role, user.ID))
	if err != nil {
		return time.Time{}, fmt.Errorf("get last visit: %w", err)
	}

	lastClear, _, err := s.prefs.GetPref(ctx, notification.ClearKey(user.Role, user.ID))
	if err != nil {
		return time.Time{}, fmt.Errorf("get last clear: %w", err)
	}

	if lastClear.After(lastVisit) {
		return lastClear, nil
	}

	return lastVisit, nil
}

// PanelOpened records the viewer opening the notification panel: stored
// notifications become read and both watermark components advance to now,
// so the next derivation starts from an empty feed.
func (s *Service) PanelOpened(ctx context.Context) error {
	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return fmt.Errorf("get user from context: %w", err)
	}

	store, err := s.stores.For(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("load notification store: %w", err)
	}

	err = store.MarkAllRead(ctx)
	if err != nil {
		return err
	}

	now := time.Now()

	err = s.prefs.SetPref(ctx, notification.LastVisitKey(user.Role, user.ID), now)
	if err != nil {
		return fmt.Errorf("set last visit: %w", err)
	}

	err = s.prefs.SetPref(ctx, notification.ClearKey(user.Role, user.ID), now)
	if err != nil {
		return fmt.Errorf("set last clear: %w", err)
	}

	return nil
}

// PanelClosed only advances the last-visit component. A close without an
// explicit clear keeps the clear marker where it was.
func (s *Service) PanelClosed(ctx context.Context) error {
	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return fmt.Errorf("get user from context: %w", err)
	}

	err = s.prefs.SetPref(ctx, notification.LastVisitKey(user.Role, user.ID), time.Now())
	if err != nil {
		return fmt.Errorf("set last visit: %w", err)
	}

	return nil
}

// HideClientNotification records a per-viewer dismissal of one client+type
// combination. The marker carries the dismissal time so later activity on
// the same client resurfaces.
func (s *Service) HideClientNotification(ctx context.Context, typ entity.NotificationType, clientID uuid.UUID) error {
	if !typ.IsValid() {
		return fmt.Errorf("%w: notification type %q", entity.ErrInvalidInput, typ)
	}

	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return fmt.Errorf("get user from context: %w", err)
	}

	err = s.prefs.SetPref(ctx, notification.HiddenKey(typ, clientID, user.Role, user.ID), time.Now())
	if err != nil {
		return fmt.Errorf("set hidden marker: %w", err)
	}

	return nil
}

// AppendNotification stores a new notification for the addressed user, or
// for the caller when none is addressed.
func (s *Service) AppendNotification(ctx context.Context, n entity.Notification) (entity.Notification, error) {
	target := n.TargetUserID

	if target.IsNil() {
		user, err := entity.UserFromContext(ctx)
		if err != nil {
			return entity.Notification{}, fmt.Errorf("get user from context: %w", err)
		}

		target = user.ID
		n.TargetUserID = user.ID
	}

	store, err := s.stores.For(ctx, target)
	if err != nil {
		return entity.Notification{}, fmt.Errorf("load notification store: %w", err)
	}

	return store.Append(ctx, n)
}

func (s *Service) MarkNotificationRead(ctx context.Context, id uuid.UUID) error {
	store, err := s.userStore(ctx)
	if err != nil {
		return err
	}

	return store.MarkRead(ctx, id)
}

func (s *Service) RemoveNotification(ctx context.Context, id uuid.UUID) error {
	store, err := s.userStore(ctx)
	if err != nil {
		return err
	}

	return store.Remove(ctx, id)
}

func (s *Service) ClearNotifications(ctx context.Context) error {
	store, err := s.userStore(ctx)
	if err != nil {
		return err
	}

	err = store.Clear(ctx)
	if err != nil {
		return err
	}

	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return fmt.Errorf("get user from context: %w", err)
	}

	err = s.prefs.SetPref(ctx, notification.ClearKey(user.Role, user.ID), time.Now())
	if err != nil {
		return fmt.Errorf("set last clear: %w", err)
	}

	return nil
}

func (s *Service) userStore(ctx context.Context) (*notification.Store, error) {
	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("get user from context: %w", err)
	}

	store, err := s.stores.For(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("load notification store: %w", err)
	}

	return store, nil
}
