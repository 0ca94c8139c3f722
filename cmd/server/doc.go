// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

/*
Package main is the entry point for the Gigboard recommendation service.

Gigboard ranks marketplace projects for freelancers. It combines user-based
affinity scoring, project-to-project similarity and a popularity fallback
into hybrid recommendations, caches the results, and forwards user feedback
to a message broker.

# Application Architecture

	gigboard
	├── messaging-layer
	│   ├── feedback forwarder (sink → watermill publisher)
	│   └── feedback recorder (in-process transport only)
	└── api-layer
	    └── HTTP server (chi router)

Startup order:

 1. Configuration: koanf v2 (defaults, optional YAML file, environment)
 2. Logging: zerolog, JSON or console
 3. Catalog: marketplace API client or local badger store
 4. Engine: strategies, diversity reranker, result cache
 5. Feedback: sink, forwarder and broker transport
 6. Supervisor tree: suture v4
 7. HTTP server

# Configuration

	HTTP_PORT=8080
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

	CATALOG_MODE=badger          # badger or http
	CATALOG_BADGER_PATH=/data/catalog
	CATALOG_SEED_FILE=/data/seed.json
	CATALOG_URL=https://marketplace.example.com
	CATALOG_API_KEY=<token>

	RECOMMEND_CACHE_TTL=30m
	RECOMMEND_DIVERSITY_ENABLED=false

	FEEDBACK_ENABLED=true
	FEEDBACK_TRANSPORT=gochannel # gochannel or nats
	NATS_URL=nats://127.0.0.1:4222

	CORS_ORIGINS=*
	RATE_LIMIT_REQUESTS=100
	RATE_LIMIT_WINDOW=1m

A YAML file at CONFIG_PATH (or ./config.yaml, /etc/gigboard/config.yaml) is
loaded before the environment.

# Graceful Shutdown

SIGINT or SIGTERM cancels the root context. The HTTP server drains in-flight
requests, the forwarder publishes what is still buffered, and the feedback
publisher is closed once the tree has stopped.
*/
package main
