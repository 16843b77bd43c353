// Package redis provides a Redis/Valkey implementation of the repository
// interface.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/catalodge/roomboard/internal/cart"
	"github.com/catalodge/roomboard/internal/config"
	"github.com/catalodge/roomboard/internal/models"
	"github.com/redis/go-redis/v9"
)

// Common errors
var (
	ErrNotFound = errors.New("entity not found")
)

// Repository implements the repository interface with Redis storage.
type Repository struct {
	client    *redis.Client
	keyPrefix string
	cartTTL   time.Duration
}

// NewRepository creates a new Redis repository.
func NewRepository(cfg config.RedisConfig) (*Repository, error) {
	var client *redis.Client

	// Use URI if provided, otherwise build connection from individual parameters
	if cfg.URI != "" {
		opt, err := redis.ParseURL(cfg.URI)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URI: %w", err)
		}

		if opt.DB == 0 {
			opt.DB = cfg.DB
		}
		if opt.Password == "" && cfg.Password != "" {
			opt.Password = cfg.Password
		}

		client = redis.NewClient(opt)
	} else {
		address := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
		client = redis.NewClient(&redis.Options{
			Addr:     address,
			Username: cfg.Username,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	}

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Repository{
		client:    client,
		keyPrefix: cfg.KeyPrefix,
		cartTTL:   cfg.CartTTL,
	}, nil
}

// Close closes the Redis connection.
func (r *Repository) Close() error {
	return r.client.Close()
}

// rosterKey returns the Redis key for the roster snapshot.
func (r *Repository) rosterKey() string {
	return r.keyPrefix + "roster"
}

// cartKey returns the Redis key for a session's cart.
func (r *Repository) cartKey(sessionID string) string {
	return fmt.Sprintf("%scarts:%s", r.keyPrefix, sessionID)
}

// SaveRoster stores the latest roster snapshot. The snapshot never expires;
// it is a degraded-start cache, overwritten on every successful fetch.
func (r *Repository) SaveRoster(ctx context.Context, rooms []models.Room) error {
	data, err := json.Marshal(rooms)
	if err != nil {
		return fmt.Errorf("failed to marshal roster: %w", err)
	}

	if err := r.client.Set(ctx, r.rosterKey(), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save roster: %w", err)
	}
	return nil
}

// GetRoster retrieves the cached roster snapshot.
func (r *Repository) GetRoster(ctx context.Context) ([]models.Room, error) {
	data, err := r.client.Get(ctx, r.rosterKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get roster: %w", err)
	}

	var rooms []models.Room
	if err := json.Unmarshal(data, &rooms); err != nil {
		return nil, fmt.Errorf("failed to unmarshal roster: %w", err)
	}
	return rooms, nil
}

// SaveCart stores a session's cart with the configured TTL.
func (r *Repository) SaveCart(ctx context.Context, sessionID string, c *cart.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	if err := r.client.Set(ctx, r.cartKey(sessionID), data, r.cartTTL).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// GetCart retrieves a session's cart.
func (r *Repository) GetCart(ctx context.Context, sessionID string) (*cart.Cart, error) {
	data, err := r.client.Get(ctx, r.cartKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	var c cart.Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart: %w", err)
	}
	return &c, nil
}

// DeleteCart removes a session's cart.
func (r *Repository) DeleteCart(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, r.cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}
