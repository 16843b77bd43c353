// Package repository provides the initialization for repository implementations
package repository

import (
	"errors"

	"github.com/catalodge/roomboard/internal/config"
	"github.com/catalodge/roomboard/internal/repository/memory"
	"github.com/catalodge/roomboard/internal/repository/redis"
)

// Constructor indirection keeps the factory testable without a live Redis.
var (
	newRedisRepository  func(cfg config.RedisConfig) (Repository, error)
	newMemoryRepository func() Repository
)

// init registers the actual repository implementations.
func init() {
	newRedisRepository = func(cfg config.RedisConfig) (Repository, error) {
		return redis.NewRepository(cfg)
	}
	newMemoryRepository = func() Repository {
		return memory.NewRepository()
	}
}

// NewRepository returns the configured repository implementation: Redis when
// enabled, otherwise the in-memory fallback.
func NewRepository(cfg config.RedisConfig) (Repository, error) {
	if cfg.Enabled {
		return newRedisRepository(cfg)
	}
	return newMemoryRepository(), nil
}

// IsNotFound reports whether err is a not-found error from any repository
// implementation.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, memory.ErrNotFound) ||
		errors.Is(err, redis.ErrNotFound)
}
