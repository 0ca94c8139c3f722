// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/gigboard/internal/recommend"
	"github.com/tomtom215/gigboard/internal/resilience"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/gigboard/config.yaml",
	"/etc/gigboard/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Recommend: *recommend.DefaultConfig(),
		Catalog: CatalogConfig{
			Mode: CatalogModeBadger,
			HTTP: CatalogHTTPConfig{
				BaseURL:   "",
				Timeout:   5 * time.Second,
				RateLimit: 50,
				RateBurst: 10,
				Breaker:   resilience.DefaultBreakerConfig("catalog-api"),
			},
			Badger: CatalogBadgerConfig{
				Path:     "/data/catalog",
				InMemory: false,
				SeedFile: "",
			},
		},
		Feedback: FeedbackConfig{
			Enabled:        true,
			BufferSize:     1024,
			Topic:          "recommendation.feedback",
			Transport:      FeedbackTransportChannel,
			NATSURL:        "nats://127.0.0.1:4222",
			PublishTimeout: 5 * time.Second,
			Breaker:        resilience.DefaultBreakerConfig("feedback-publisher"),
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings; YAML lists are left alone.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment variable names (lower-cased) to koanf paths.
var envMappings = map[string]string{
	// Server mappings
	"http_port":             "server.port",
	"http_host":             "server.host",
	"http_timeout":          "server.timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"environment":           "server.environment",

	// Logging mappings
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Recommendation engine mappings
	"recommend_version":                "recommend.version",
	"recommend_default_limit":          "recommend.limits.default_limit",
	"recommend_max_limit":              "recommend.limits.max_limit",
	"recommend_cache_enabled":          "recommend.cache.enabled",
	"recommend_cache_max_entries":      "recommend.cache.max_entries",
	"recommend_cache_ttl":              "recommend.cache.ttl",
	"recommend_diversity_enabled":      "recommend.diversity.enabled",
	"recommend_max_per_category":       "recommend.diversity.max_similar_items_per_category",
	"recommend_user_based_enabled":     "recommend.strategies.user_based.enabled",
	"recommend_user_based_weight":      "recommend.strategies.user_based.weight",
	"recommend_user_based_threshold":   "recommend.strategies.user_based.threshold",
	"recommend_similarity_enabled":     "recommend.strategies.similarity.enabled",
	"recommend_similarity_weight":      "recommend.strategies.similarity.weight",
	"recommend_similarity_threshold":   "recommend.strategies.similarity.threshold",
	"recommend_popularity_enabled":     "recommend.strategies.popularity.enabled",
	"recommend_popularity_weight":      "recommend.strategies.popularity.weight",
	"recommend_popularity_threshold":   "recommend.strategies.popularity.threshold",

	// Catalog mappings
	"catalog_mode":               "catalog.mode",
	"catalog_url":                "catalog.http.base_url",
	"catalog_api_key":            "catalog.http.api_key",
	"catalog_timeout":            "catalog.http.timeout",
	"catalog_rate_limit":         "catalog.http.rate_limit",
	"catalog_rate_burst":         "catalog.http.rate_burst",
	"catalog_breaker_timeout":    "catalog.http.breaker.timeout",
	"catalog_breaker_min_reqs":   "catalog.http.breaker.min_requests",
	"catalog_breaker_fail_ratio": "catalog.http.breaker.failure_ratio",
	"catalog_badger_path":        "catalog.badger.path",
	"catalog_badger_in_memory":   "catalog.badger.in_memory",
	"catalog_seed_file":          "catalog.badger.seed_file",

	// Feedback mappings
	"feedback_enabled":         "feedback.enabled",
	"feedback_buffer_size":     "feedback.buffer_size",
	"feedback_topic":           "feedback.topic",
	"feedback_transport":       "feedback.transport",
	"feedback_publish_timeout": "feedback.publish_timeout",
	"nats_url":                 "feedback.nats_url",

	// Security mappings
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - CATALOG_URL -> catalog.http.base_url
//   - RECOMMEND_CACHE_TTL -> recommend.cache.ttl
//
// Unmapped variables return "" and are skipped.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
