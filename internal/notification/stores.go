package notification

import (
	"context"
	"sync"

	"github.com/gofrs/uuid/v5"
)

// Stores hands out one Store per user, loading each from the repository the
// first time it is asked for.
type Stores struct {
	repo Repository

	mu     sync.Mutex
	byUser map[uuid.UUID]*Store
}

func NewStores(repo Repository) *Stores {
	return &Stores{
		repo:   repo,
		byUser: make(map[uuid.UUID]*Store),
	}
}

func (s *Stores) For(ctx context.Context, userID uuid.UUID) (*Store, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	store, ok := s.byUser[userID]
	if ok {
		return store, nil
	}

	store = NewStore(s.repo, userID)

	// Cache only a loaded store; a failed load must not leave an empty
	// store answering for the user until restart.
	err := store.Load(ctx)
	if err != nil {
		return nil, err
	}

	s.byUser[userID] = store

	return store, nil
}
