// Package config holds the application configuration. Values come from an
// optional YAML file and are overridden by environment variables, so a
// container deployment can run without any file at all.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	pkgconfig "nashra/pkg/config"
)

// Store drivers selectable via StoreDriver.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// Config is the full application configuration.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string `yaml:"addr"`

	// StoreDriver selects the article/user store: "memory" or "postgres".
	StoreDriver string `yaml:"store_driver"`

	// DatabaseURL is the PostgreSQL DSN. Required when StoreDriver is
	// "postgres", ignored otherwise.
	DatabaseURL string `yaml:"database_url"`

	// SessionSecret signs session tokens. Must be at least 32 bytes.
	SessionSecret string `yaml:"session_secret"`

	// SessionTTL is how long issued sessions stay valid.
	SessionTTL Duration `yaml:"session_ttl"`

	// BcryptCost is the work factor for password hashing.
	BcryptCost int `yaml:"bcrypt_cost"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"` // "json" or "text"

	// Seed populates an empty store with sample articles and an admin user.
	Seed bool `yaml:"seed"`

	// MaxBodyBytes caps request body sizes.
	MaxBodyBytes int64 `yaml:"max_body_bytes"`

	// LoginRateLimit and LoginRateWindow throttle login attempts per IP.
	LoginRateLimit  int      `yaml:"login_rate_limit"`
	LoginRateWindow Duration `yaml:"login_rate_window"`

	// StatsSchedule is the cron spec for refreshing article count gauges.
	StatsSchedule string `yaml:"stats_schedule"`
}

// Duration wraps time.Duration so YAML values like "5m" parse directly.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Default returns the configuration used when nothing is specified.
func Default() Config {
	return Config{
		Addr:            ":8080",
		StoreDriver:     DriverMemory,
		SessionTTL:      Duration(7 * 24 * time.Hour),
		BcryptCost:      10,
		LogLevel:        "info",
		LogFormat:       "json",
		MaxBodyBytes:    1 << 20, // 1 MiB
		LoginRateLimit:  5,
		LoginRateWindow: Duration(time.Minute),
		StatsSchedule:   "@every 1m",
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if it
// exists), then environment variable overrides. An empty path falls back to
// CONFIG_FILE or "config.yaml".
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = pkgconfig.GetEnvString("CONFIG_FILE", "config.yaml")
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// No file is fine; env and defaults carry the configuration
	default:
		return Config{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Addr = pkgconfig.GetEnvString("ADDR", c.Addr)
	c.StoreDriver = pkgconfig.GetEnvString("STORE_DRIVER", c.StoreDriver)
	c.DatabaseURL = pkgconfig.GetEnvString("DATABASE_URL", c.DatabaseURL)
	c.SessionSecret = pkgconfig.GetEnvString("SESSION_SECRET", c.SessionSecret)
	c.SessionTTL = Duration(pkgconfig.GetEnvDuration("SESSION_TTL", c.SessionTTL.Std()))
	c.BcryptCost = pkgconfig.GetEnvInt("BCRYPT_COST", c.BcryptCost)
	c.LogLevel = pkgconfig.GetEnvString("LOG_LEVEL", c.LogLevel)
	c.LogFormat = pkgconfig.GetEnvString("LOG_FORMAT", c.LogFormat)
	c.Seed = pkgconfig.GetEnvBool("SEED", c.Seed)
	c.MaxBodyBytes = int64(pkgconfig.GetEnvInt("MAX_BODY_BYTES", int(c.MaxBodyBytes)))
	c.LoginRateLimit = pkgconfig.GetEnvInt("LOGIN_RATE_LIMIT", c.LoginRateLimit)
	c.LoginRateWindow = Duration(pkgconfig.GetEnvDuration("LOGIN_RATE_WINDOW", c.LoginRateWindow.Std()))
	c.StatsSchedule = pkgconfig.GetEnvString("STATS_SCHEDULE", c.StatsSchedule)
}

// Validate rejects configurations the server cannot run with.
func (c Config) Validate() error {
	switch c.StoreDriver {
	case DriverMemory:
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required when store driver is postgres")
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.StoreDriver)
	}

	if c.SessionSecret == "" {
		return errors.New("SESSION_SECRET is required")
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("bcrypt cost %d out of range [4, 31]", c.BcryptCost)
	}
	if c.LoginRateLimit < 1 {
		return errors.New("login rate limit must be at least 1")
	}
	if c.LoginRateWindow.Std() <= 0 {
		return errors.New("login rate window must be positive")
	}
	if c.MaxBodyBytes < 1 {
		return errors.New("max body bytes must be positive")
	}
	return nil
}
