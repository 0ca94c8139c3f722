// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

/*
Package config provides centralized configuration management for Gigboard.

# Configuration Sources

Configuration is layered with Koanf v2, later layers overriding earlier ones:
  - Struct defaults (defaultConfig)
  - Optional YAML file: CONFIG_PATH, else config.yaml / config.yml in the
    working directory, else /etc/gigboard/config.yaml
  - Environment variables, mapped explicitly to config paths

Environment variables that are not in the mapping table are ignored.

# Environment Variables

HTTP Server:
  - HTTP_HOST, HTTP_PORT (default: 0.0.0.0:8080)
  - HTTP_TIMEOUT: per-request timeout (default: 30s)
  - HTTP_SHUTDOWN_TIMEOUT: graceful shutdown budget (default: 10s)
  - ENVIRONMENT: development, staging, production

Recommendation Engine:
  - RECOMMEND_DEFAULT_LIMIT, RECOMMEND_MAX_LIMIT (default: 10, 100)
  - RECOMMEND_CACHE_ENABLED, RECOMMEND_CACHE_MAX_ENTRIES, RECOMMEND_CACHE_TTL
    (default: true, 1000, 30m)
  - RECOMMEND_DIVERSITY_ENABLED, RECOMMEND_MAX_PER_CATEGORY (default: true, 3)
  - RECOMMEND_{USER_BASED,SIMILARITY,POPULARITY}_{ENABLED,WEIGHT,THRESHOLD}

Catalog:
  - CATALOG_MODE: http or badger (default: badger)
  - CATALOG_URL, CATALOG_API_KEY, CATALOG_TIMEOUT, CATALOG_RATE_LIMIT
  - CATALOG_BADGER_PATH, CATALOG_BADGER_IN_MEMORY, CATALOG_SEED_FILE

Feedback:
  - FEEDBACK_ENABLED, FEEDBACK_BUFFER_SIZE, FEEDBACK_TOPIC
  - FEEDBACK_TRANSPORT: gochannel or nats
  - NATS_URL

Security:
  - CORS_ORIGINS: comma-separated (default: *; rejected in production)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Nested settings without an environment variable (hybrid component weights,
breaker tuning) are set through the YAML file:

	recommend:
	  hybrid:
	    similarity_score: 0.5
	catalog:
	  http:
	    breaker:
	      timeout: 1m

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatalf("Configuration error: %v", err)
	}
*/
package config
