package config_test

import (
	"testing"
	"time"

	"github.com/catalodge/roomboard/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestAdminAPIConfigDefaults(t *testing.T) {
	cfg := config.GetAdminAPIConfig()
	assert.Equal(t, "http://localhost:9000/api", cfg.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.Zero(t, cfg.PricePerNight)
}

func TestAdminAPIConfigFromEnv(t *testing.T) {
	t.Setenv("ADMIN_API_URL", "https://admin.catalodge.example/api")
	t.Setenv("ADMIN_API_TIMEOUT", "5s")
	t.Setenv("ROOM_TYPE_ID", "rt-executive")
	t.Setenv("PRICE_PER_NIGHT", "25000")

	cfg := config.GetAdminAPIConfig()
	assert.Equal(t, "https://admin.catalodge.example/api", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "rt-executive", cfg.RoomTypeID)
	assert.Equal(t, int64(25000), cfg.PricePerNight)
}

func TestRedisConfig(t *testing.T) {
	cfg := config.GetRedisConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, "roomboard:", cfg.KeyPrefix)
	assert.Equal(t, 72*time.Hour, cfg.CartTTL)

	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_HOST", "redis.internal")
	t.Setenv("REDIS_CART_TTL_HOURS", "24")

	cfg = config.GetRedisConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "redis.internal", cfg.Host)
	assert.Equal(t, 24*time.Hour, cfg.CartTTL)
}

func TestPollConfig(t *testing.T) {
	assert.Equal(t, 30*time.Second, config.GetPollConfig().OccupancyInterval)

	t.Setenv("OCCUPANCY_POLL_INTERVAL", "10s")
	assert.Equal(t, 10*time.Second, config.GetPollConfig().OccupancyInterval)

	// Malformed durations fall back to the default.
	t.Setenv("OCCUPANCY_POLL_INTERVAL", "soon")
	assert.Equal(t, 30*time.Second, config.GetPollConfig().OccupancyInterval)
}
