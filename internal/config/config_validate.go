// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package config

import (
	"fmt"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.Recommend.Validate(); err != nil {
		return fmt.Errorf("recommend: %w", err)
	}

	if err := c.validateCatalog(); err != nil {
		return err
	}

	if err := c.validateFeedback(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// validateCatalog validates the selected catalog mode
func (c *Config) validateCatalog() error {
	switch c.Catalog.Mode {
	case CatalogModeHTTP:
		if c.Catalog.HTTP.BaseURL == "" {
			return fmt.Errorf("CATALOG_URL is required when CATALOG_MODE=http")
		}
		if err := validateHTTPURL(c.Catalog.HTTP.BaseURL, "CATALOG_URL"); err != nil {
			return err
		}
		if c.Catalog.HTTP.Timeout <= 0 {
			return fmt.Errorf("CATALOG_TIMEOUT must be positive")
		}
		if c.Catalog.HTTP.RateLimit < 0 {
			return fmt.Errorf("CATALOG_RATE_LIMIT must be non-negative")
		}
	case CatalogModeBadger:
		if !c.Catalog.Badger.InMemory && c.Catalog.Badger.Path == "" {
			return fmt.Errorf("CATALOG_BADGER_PATH is required unless CATALOG_BADGER_IN_MEMORY=true")
		}
	default:
		return fmt.Errorf("CATALOG_MODE must be one of: http, badger")
	}
	return nil
}

// validateFeedback validates feedback forwarding (only if enabled)
func (c *Config) validateFeedback() error {
	if !c.Feedback.Enabled {
		return nil
	}
	if c.Feedback.BufferSize < 1 {
		return fmt.Errorf("FEEDBACK_BUFFER_SIZE must be at least 1")
	}
	if c.Feedback.Topic == "" {
		return fmt.Errorf("FEEDBACK_TOPIC is required")
	}
	switch c.Feedback.Transport {
	case FeedbackTransportChannel:
		return nil
	case FeedbackTransportNATS:
		if err := validateNATSURL(c.Feedback.NATSURL); err != nil {
			return fmt.Errorf("invalid NATS_URL: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("FEEDBACK_TRANSPORT must be one of: gochannel, nats")
	}
}

// validateSecurity validates security configuration
func (c *Config) validateSecurity() error {
	if err := c.validateCORS(); err != nil {
		return err
	}
	return c.validateRateLimits()
}

// validateCORS rejects wildcard origins in production.
func (c *Config) validateCORS() error {
	if c.hasWildcardCORS() && c.IsProduction() {
		return fmt.Errorf("CORS_ORIGINS=* (wildcard) is not allowed in production. " +
			"Set specific origins: CORS_ORIGINS=https://yourdomain.com,https://app.yourdomain.com")
	}
	return nil
}

// hasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// ShouldWarnAboutCORS returns true if CORS configuration should be logged at startup
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.hasWildcardCORS()
}

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
