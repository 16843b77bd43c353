// Package repository defines interfaces for local data storage. Roomboard
// keeps no durable booking state of its own - the admin API owns that - but
// it persists menu carts across sessions and caches the last good roster
// snapshot so a restart with the admin API down still renders something.
package repository

import (
	"context"
	"errors"

	"github.com/catalodge/roomboard/internal/cart"
	"github.com/catalodge/roomboard/internal/models"
)

// ErrNotFound is returned when a requested entity is not found.
var ErrNotFound = errors.New("entity not found")

// Repository defines the interface for storing roster snapshots and menu
// carts.
type Repository interface {
	// Roster snapshot cache
	SaveRoster(ctx context.Context, rooms []models.Room) error
	GetRoster(ctx context.Context) ([]models.Room, error)

	// Menu carts, keyed by opaque session id
	SaveCart(ctx context.Context, sessionID string, c *cart.Cart) error
	GetCart(ctx context.Context, sessionID string) (*cart.Cart, error)
	DeleteCart(ctx context.Context, sessionID string) error
}
