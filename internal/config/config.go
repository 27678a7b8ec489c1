// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/travelink/hotel-search/internal/infrastructure/logger"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig
	Timeouts    TimeoutConfig
	Booking     BookingConfig
	Cache       CacheConfig
	Preferences PreferencesConfig
	CORS        CORSConfig
	Search      SearchConfig
	Logging     logger.Config
	App         AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
}

// TimeoutConfig holds timeout settings for hotel search operations.
type TimeoutConfig struct {
	// Upstream bounds a single upstream HTTP call
	Upstream time.Duration `env:"TIMEOUT_UPSTREAM" envDefault:"8s"`

	// Search bounds a whole search (lookup plus listing fetch, retries included)
	Search time.Duration `env:"TIMEOUT_SEARCH" envDefault:"20s"`
}

// BookingConfig holds the RapidAPI booking-com15 settings.
type BookingConfig struct {
	BaseURL       string `env:"BOOKING_BASE_URL" envDefault:"https://booking-com15.p.rapidapi.com/api/v1"`
	APIKey        string `env:"BOOKING_API_KEY"`
	APIHost       string `env:"BOOKING_API_HOST" envDefault:"booking-com15.p.rapidapi.com"`
	RetryAttempts int    `env:"BOOKING_RETRY_ATTEMPTS" envDefault:"2"`
}

// CacheConfig holds the search result cache settings.
type CacheConfig struct {
	Enabled  bool          `env:"CACHE_ENABLED" envDefault:"true"`
	TTL      time.Duration `env:"CACHE_TTL" envDefault:"1h"`
	Capacity uint64        `env:"CACHE_CAPACITY" envDefault:"256"`
}

// PreferencesConfig selects where favorites and theme are kept.
type PreferencesConfig struct {
	// Backend is file or memory
	Backend string `env:"PREFS_BACKEND" envDefault:"file"`
	Path    string `env:"PREFS_PATH" envDefault:"data/preferences.json"`
}

// CORSConfig lists the origins allowed to call the API from a browser.
type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// SearchConfig holds search behaviour settings.
type SearchConfig struct {
	DefaultDestination string `env:"DEFAULT_DESTINATION" envDefault:"Paris"`

	// LoadOnStart runs the default destination search at startup
	LoadOnStart bool `env:"SEARCH_LOAD_ON_START" envDefault:"true"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// A missing .env file is fine
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.normalize()

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

func (c *Config) normalize() {
	origins := c.CORS.AllowedOrigins[:0]
	for _, o := range c.CORS.AllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	c.CORS.AllowedOrigins = origins

	c.Preferences.Backend = strings.ToLower(strings.TrimSpace(c.Preferences.Backend))
	c.Search.DefaultDestination = strings.TrimSpace(c.Search.DefaultDestination)
	c.Booking.BaseURL = strings.TrimRight(c.Booking.BaseURL, "/")
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Timeouts.Upstream <= 0 {
		return fmt.Errorf("TIMEOUT_UPSTREAM must be positive")
	}
	if cfg.Timeouts.Search <= 0 {
		return fmt.Errorf("TIMEOUT_SEARCH must be positive")
	}

	// A search makes at least two sequential upstream calls
	if cfg.Timeouts.Upstream >= cfg.Timeouts.Search {
		return fmt.Errorf("TIMEOUT_UPSTREAM (%s) should be less than TIMEOUT_SEARCH (%s)",
			cfg.Timeouts.Upstream, cfg.Timeouts.Search)
	}

	u, err := url.Parse(cfg.Booking.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("BOOKING_BASE_URL must be an absolute http(s) URL, got %q", cfg.Booking.BaseURL)
	}
	if cfg.Booking.RetryAttempts < 1 || cfg.Booking.RetryAttempts > 5 {
		return fmt.Errorf("BOOKING_RETRY_ATTEMPTS must be between 1 and 5, got %d", cfg.Booking.RetryAttempts)
	}

	if cfg.Cache.Enabled {
		if cfg.Cache.TTL <= 0 {
			return fmt.Errorf("CACHE_TTL must be positive when the cache is enabled")
		}
		if cfg.Cache.Capacity == 0 {
			return fmt.Errorf("CACHE_CAPACITY must be positive when the cache is enabled")
		}
	}

	validBackends := map[string]bool{"file": true, "memory": true}
	if !validBackends[cfg.Preferences.Backend] {
		return fmt.Errorf("PREFS_BACKEND must be one of: file, memory; got %q", cfg.Preferences.Backend)
	}
	if cfg.Preferences.Backend == "file" && strings.TrimSpace(cfg.Preferences.Path) == "" {
		return fmt.Errorf("PREFS_PATH is required for the file backend")
	}

	if cfg.Search.DefaultDestination == "" {
		return fmt.Errorf("DEFAULT_DESTINATION must not be empty")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// HasAPIKey reports whether upstream credentials are configured. Without
// them every search degrades to the fallback catalog.
func (c *Config) HasAPIKey() bool {
	return strings.TrimSpace(c.Booking.APIKey) != ""
}
