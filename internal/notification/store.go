package notification

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/perivi8/business-guru-admin/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=store.go -destination=../mocks/notification.go -package=mocks

// Repository persists store mutations. The store is the source of truth for
// ordering; the repository only mirrors it.
type Repository interface {
	SaveNotification(ctx context.Context, n entity.Notification) error
	MarkNotificationRead(ctx context.Context, id uuid.UUID) error
	MarkAllNotificationsRead(ctx context.Context, userID uuid.UUID) error
	DeleteNotification(ctx context.Context, id uuid.UUID) error
	DeleteAllNotifications(ctx context.Context, userID uuid.UUID) error
	NotificationsForUser(ctx context.Context, userID uuid.UUID) ([]entity.Notification, error)
}

// Snapshot is what subscribers receive after every mutation.
type Snapshot struct {
	Items  []entity.Notification
	Unread int
}

// Store holds the per-user list of stored notifications in memory and
// mirrors every mutation to the repository. Mutations are synchronous and
// guarded by a single mutex.
type Store struct {
	repo   Repository
	userID uuid.UUID

	mu    sync.Mutex
	items []entity.Notification
	subs  []chan Snapshot
}

func NewStore(repo Repository, userID uuid.UUID) *Store {
	return &Store{
		repo:   repo,
		userID: userID,
	}
}

// Load replaces the in-memory list with the persisted one, filtered to
// entries visible to the store's user: untargeted entries, entries targeted
// at the user, and client-status updates addressed to the user.
func (s *Store) Load(ctx context.Context) error {
	persisted, err := s.repo.NotificationsForUser(ctx, s.userID)
	if err != nil {
		return fmt.Errorf("load notifications: %w", err)
	}

	items := make([]entity.Notification, 0, len(persisted))

	for _, n := range persisted {
		if s.visible(n) {
			items = append(items, n)
		}
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()

	s.publish()

	return nil
}

func (s *Store) visible(n entity.Notification) bool {
	if n.TargetUserID.IsNil() {
		return true
	}

	if n.TargetUserID == s.userID {
		return true
	}

	// Old status-update entries carried the addressee in data instead of
	// target_user_id.
	return n.Type == entity.NotificationClientStatusUpdate && n.Data["user_id"] == s.userID.String()
}

// Append assigns identity and timestamp, stores the notification and
// persists it.
func (s *Store) Append(ctx context.Context, n entity.Notification) (entity.Notification, error) {
	n.ID = uuid.Must(uuid.NewV4())
	n.CreatedAt = time.Now()
	n.Read = false

	if !n.Type.IsValid() {
		return entity.Notification{}, fmt.Errorf("%w: unknown notification type %q", entity.ErrIncorrectRequestBody, n.Type)
	}

	// Persist first so a repository failure never leaves a phantom entry
	// in the feed.
	err := s.repo.SaveNotification(ctx, n)
	if err != nil {
		return entity.Notification{}, fmt.Errorf("persist notification: %w", err)
	}

	s.mu.Lock()
	s.items = append([]entity.Notification{n}, s.items...)
	s.mu.Unlock()

	s.publish()

	return n, nil
}

func (s *Store) MarkRead(ctx context.Context, id uuid.UUID) error {
	if !s.contains(id) {
		return fmt.Errorf("notification %s: %w", id, entity.ErrNotFound)
	}

	err := s.repo.MarkNotificationRead(ctx, id)
	if err != nil {
		return fmt.Errorf("persist read flag: %w", err)
	}

	s.mu.Lock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Read = true

			break
		}
	}

	s.mu.Unlock()

	s.publish()

	return nil
}

func (s *Store) contains(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			return true
		}
	}

	return false
}

func (s *Store) MarkAllRead(ctx context.Context) error {
	err := s.repo.MarkAllNotificationsRead(ctx, s.userID)
	if err != nil {
		return fmt.Errorf("persist read flags: %w", err)
	}

	s.mu.Lock()

	for i := range s.items {
		s.items[i].Read = true
	}

	s.mu.Unlock()

	s.publish()

	return nil
}

func (s *Store) Remove(ctx context.Context, id uuid.UUID) error {
	if !s.contains(id) {
		return fmt.Errorf("notification %s: %w", id, entity.ErrNotFound)
	}

	err := s.repo.DeleteNotification(ctx, id)
	if err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}

	s.mu.Lock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)

			break
		}
	}

	s.mu.Unlock()

	s.publish()

	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	err := s.repo.DeleteAllNotifications(ctx, s.userID)
	if err != nil {
		return fmt.Errorf("delete notifications: %w", err)
	}

	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()

	s.publish()

	return nil
}

func (s *Store) Items() []entity.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]entity.Notification, len(s.items))
	copy(items, s.items)

	return items
}

func (s *Store) Unread() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.unreadLocked()
}

func (s *Store) unreadLocked() int {
	count := 0

	for _, n := range s.items {
		if !n.Read {
			count++
		}
	}

	return count
}

// Subscribe returns a channel that receives a snapshot after every
// mutation. Slow subscribers miss intermediate snapshots instead of
// blocking mutations.
func (s *Store) Subscribe() <-chan Snapshot {
	ch := make(chan Snapshot, 1)

	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()

	return ch
}

func (s *Store) publish() {
	s.mu.Lock()

	snap := Snapshot{
		Items:  make([]entity.Notification, len(s.items)),
		Unread: s.unreadLocked(),
	}
	copy(snap.Items, s.items)

	subs := s.subs

	s.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- snap:
		default:
			// drop stale snapshot so the latest one fits
			select {
			case <-ch:
			default:
			}

			select {
			case ch <- snap:
			default:
			}
		}
	}
}
