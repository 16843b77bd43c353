// Package memory provides an in-memory implementation of the repository
// interface, used in development and as the fallback when Redis is disabled.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/catalodge/roomboard/internal/cart"
	"github.com/catalodge/roomboard/internal/models"
)

// ErrNotFound is returned when a requested entity is not found.
var ErrNotFound = errors.New("entity not found")

// Repository implements the repository interface with in-memory storage.
type Repository struct {
	roster []models.Room
	carts  map[string]cart.Cart
	mu     sync.RWMutex
}

// NewRepository creates a new in-memory repository.
func NewRepository() *Repository {
	return &Repository{
		carts: make(map[string]cart.Cart),
	}
}

// SaveRoster stores the latest roster snapshot.
func (r *Repository) SaveRoster(ctx context.Context, rooms []models.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.roster = make([]models.Room, len(rooms))
	copy(r.roster, rooms)
	return nil
}

// GetRoster returns the cached roster snapshot.
func (r *Repository) GetRoster(ctx context.Context) ([]models.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.roster == nil {
		return nil, ErrNotFound
	}
	rooms := make([]models.Room, len(r.roster))
	copy(rooms, r.roster)
	return rooms, nil
}

// SaveCart stores a session's cart.
func (r *Repository) SaveCart(ctx context.Context, sessionID string, c *cart.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cart.Cart{Items: make([]cart.LineItem, len(c.Items))}
	copy(stored.Items, c.Items)
	r.carts[sessionID] = stored
	return nil
}

// GetCart retrieves a session's cart.
func (r *Repository) GetCart(ctx context.Context, sessionID string) (*cart.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.carts[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	c := cart.Cart{Items: make([]cart.LineItem, len(stored.Items))}
	copy(c.Items, stored.Items)
	return &c, nil
}

// DeleteCart removes a session's cart.
func (r *Repository) DeleteCart(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, sessionID)
	return nil
}
