package config

import "time"

// DBConfig contains PostgreSQL database configuration.
type DBConfig struct {
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"rentr"`
	Password string `env:"PASSWORD" envDefault:"rentr"`
	Name     string `env:"NAME"     envDefault:"rentr"`
	SSLMode  string `env:"SSL_MODE" envDefault:"disable"` // Use 'disable' for local dev, 'require' for production
	// RunMigrationsOnStart controls whether the application automatically applies migrations during startup.
	RunMigrationsOnStart bool `env:"RUN_MIGRATIONS_ON_START" envDefault:"true"`
}

// RedisConfig contains Redis configuration for the profile cache.
type RedisConfig struct {
	URI      string `env:"URI"      envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
	// Enabled controls whether the Redis-backed profile cache is used at all.
	// When false the service reads contractor profiles straight from Postgres.
	Enabled bool `env:"ENABLED" envDefault:"true"`
}

// CacheConfig contains cache tuning knobs.
type CacheConfig struct {
	// ProfileTTL is the TTL for cached contractor profiles.
	ProfileTTL time.Duration `env:"CACHE_PROFILE_TTL" envDefault:"15m"`
}
