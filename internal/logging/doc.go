// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

// Package logging provides the zerolog-based structured logging used across Gigboard.
//
// A global logger is configured once at startup from the logging section of
// the config; components derive children tagged with their name:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	log := logging.WithComponent("catalog")
//	log.Info().Str("mode", "badger").Msg("Catalog ready")
//
// Request-scoped logging picks up the request ID set by the HTTP middleware:
//
//	logging.Ctx(r.Context()).Warn().Err(err).Msg("catalog lookup failed")
//
// # Adapters
//
// Two libraries log through their own interfaces and are bridged here:
//
//   - SlogHandler / NewSlogLogger: slog.Handler for sutureslog (supervisor events)
//   - WatermillAdapter: watermill.LoggerAdapter for the feedback publisher
//
// # Configuration
//
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: include file:line (default: false)
//
// Always terminate event chains with Msg or Send; an unterminated event is
// never written.
package logging
