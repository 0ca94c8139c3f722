// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/gigboard/internal/recommend"
	"github.com/tomtom215/gigboard/internal/resilience"
)

// Config holds all application configuration loaded from defaults, an
// optional config file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml) for persistent settings
//  3. Environment Variables: Override any setting via environment variables
//
// Configuration Categories:
//
//  1. Engine:
//     - Recommend: strategy weights, thresholds, diversity, limits and result cache
//
//  2. Data:
//     - Catalog: where profiles and projects come from (HTTP API or local badger store)
//     - Feedback: forwarding of user feedback to the message broker
//
//  3. Serving:
//     - Server: HTTP listener and timeouts
//     - Security: CORS and rate limiting
//
//  4. Observability:
//     - Logging: Log levels and output formats
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	engine, err := recommend.NewEngine(&cfg.Recommend, provider, nil, logger)
type Config struct {
	Server    ServerConfig     `koanf:"server"`
	Logging   LoggingConfig    `koanf:"logging"`
	Recommend recommend.Config `koanf:"recommend"`
	Catalog   CatalogConfig    `koanf:"catalog"`
	Feedback  FeedbackConfig   `koanf:"feedback"`
	Security  SecurityConfig   `koanf:"security"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // "development", "staging", "production"
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Catalog modes.
const (
	CatalogModeHTTP   = "http"
	CatalogModeBadger = "badger"
)

// CatalogConfig selects and configures the project catalog.
//
// Environment Variables:
//   - CATALOG_MODE: http or badger (default: badger)
//   - CATALOG_URL: marketplace API base URL (http mode)
//   - CATALOG_API_KEY: bearer token for the marketplace API
//   - CATALOG_TIMEOUT: per-request timeout (default: 5s)
//   - CATALOG_RATE_LIMIT: requests per second to the API, 0 = unlimited (default: 50)
//   - CATALOG_BADGER_PATH: badger directory (badger mode)
//   - CATALOG_SEED_FILE: JSON file loaded into the badger store at startup
type CatalogConfig struct {
	Mode   string              `koanf:"mode"`
	HTTP   CatalogHTTPConfig   `koanf:"http"`
	Badger CatalogBadgerConfig `koanf:"badger"`
}

// CatalogHTTPConfig configures the marketplace API client.
type CatalogHTTPConfig struct {
	BaseURL   string                   `koanf:"base_url"`
	APIKey    string                   `koanf:"api_key"`
	Timeout   time.Duration            `koanf:"timeout"`
	RateLimit float64                  `koanf:"rate_limit"`
	RateBurst int                      `koanf:"rate_burst"`
	Breaker   resilience.BreakerConfig `koanf:"breaker"`
}

// CatalogBadgerConfig configures the local catalog store.
type CatalogBadgerConfig struct {
	Path     string `koanf:"path"`
	InMemory bool   `koanf:"in_memory"`
	SeedFile string `koanf:"seed_file"`
}

// Feedback transports.
const (
	FeedbackTransportChannel = "gochannel"
	FeedbackTransportNATS    = "nats"
)

// FeedbackConfig configures feedback forwarding.
//
// Environment Variables:
//   - FEEDBACK_ENABLED: forward feedback events (default: true)
//   - FEEDBACK_BUFFER_SIZE: events buffered before new ones are dropped (default: 1024)
//   - FEEDBACK_TOPIC: broker topic (default: recommendation.feedback)
//   - FEEDBACK_TRANSPORT: gochannel or nats (default: gochannel)
//   - NATS_URL: broker URL for the nats transport
type FeedbackConfig struct {
	Enabled        bool                     `koanf:"enabled"`
	BufferSize     int                      `koanf:"buffer_size"`
	Topic          string                   `koanf:"topic"`
	Transport      string                   `koanf:"transport"`
	NATSURL        string                   `koanf:"nats_url"`
	PublishTimeout time.Duration            `koanf:"publish_timeout"`
	Breaker        resilience.BreakerConfig `koanf:"breaker"`
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// Load reads configuration from, in increasing priority:
//
//  1. Built-in defaults
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH env var)
//  3. Environment variables
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
