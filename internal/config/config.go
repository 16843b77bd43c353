// Package config provides configuration management for the application.
// Everything comes from environment variables; main loads a .env file first
// when one is present.
package config

import (
	"os"
	"strconv"
	"time"
)

// AdminAPIConfig holds the connection settings for the hotel's admin API.
type AdminAPIConfig struct {
	BaseURL    string
	Timeout    time.Duration
	RoomTypeID string
	// PricePerNight is the per-night rate for the configured room type, in
	// currency subunits.
	PricePerNight int64
}

// PaymentConfig holds the payment gateway settings.
type PaymentConfig struct {
	BaseURL   string
	SecretKey string
	Timeout   time.Duration
}

// RedisConfig holds Redis/Valkey configuration.
type RedisConfig struct {
	Enabled bool
	// URI is prioritized if provided, otherwise individual connection
	// parameters are used.
	URI       string
	Host      string
	Port      string
	Username  string
	Password  string
	DB        int
	KeyPrefix string
	// CartTTL bounds how long an abandoned menu cart survives (0 means no
	// expiration).
	CartTTL time.Duration
}

// PollConfig holds the background refresh settings.
type PollConfig struct {
	// OccupancyInterval is how often the live occupancy feed is re-fetched.
	OccupancyInterval time.Duration
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port string
}

// GetAdminAPIConfig loads admin API configuration from environment variables.
func GetAdminAPIConfig() AdminAPIConfig {
	price, _ := strconv.ParseInt(getEnv("PRICE_PER_NIGHT", "0"), 10, 64)
	return AdminAPIConfig{
		BaseURL:       getEnv("ADMIN_API_URL", "http://localhost:9000/api"),
		Timeout:       getEnvDuration("ADMIN_API_TIMEOUT", 15*time.Second),
		RoomTypeID:    getEnv("ROOM_TYPE_ID", ""),
		PricePerNight: price,
	}
}

// GetPaymentConfig loads payment gateway configuration from environment
// variables.
func GetPaymentConfig() PaymentConfig {
	return PaymentConfig{
		BaseURL:   getEnv("PAYMENT_API_URL", "https://api.paystack.co"),
		SecretKey: getEnv("PAYMENT_SECRET_KEY", ""),
		Timeout:   getEnvDuration("PAYMENT_API_TIMEOUT", 30*time.Second),
	}
}

// GetRedisConfig loads Redis/Valkey configuration from environment variables.
func GetRedisConfig() RedisConfig {
	ttlHours, _ := strconv.Atoi(getEnv("REDIS_CART_TTL_HOURS", "72"))
	db, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	return RedisConfig{
		Enabled:   getEnvBool("REDIS_ENABLED", false),
		URI:       getEnv("REDIS_URI", ""),
		Host:      getEnv("REDIS_HOST", getEnv("REDIS_ADDRESS", "localhost")),
		Port:      getEnv("REDIS_PORT", "6379"),
		Username:  getEnv("REDIS_USERNAME", ""),
		Password:  getEnv("REDIS_PASSWORD", ""),
		DB:        db,
		KeyPrefix: getEnv("REDIS_KEY_PREFIX", "roomboard:"),
		CartTTL:   time.Duration(ttlHours) * time.Hour,
	}
}

// GetPollConfig loads background polling configuration from environment
// variables.
func GetPollConfig() PollConfig {
	return PollConfig{
		OccupancyInterval: getEnvDuration("OCCUPANCY_POLL_INTERVAL", 30*time.Second),
	}
}

// GetServerConfig loads HTTP server configuration from environment variables.
func GetServerConfig() ServerConfig {
	return ServerConfig{
		Port: getEnv("PORT", "8080"),
	}
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvBool retrieves a boolean environment variable.
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

// getEnvDuration retrieves a duration environment variable ("30s", "2m").
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
