// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

/*
Package catalog provides the recommend.DataProvider implementations.

Two sources are available, selected by CATALOG_MODE:

  - Client (http): the marketplace REST API, throttled with x/time/rate and
    guarded by a circuit breaker. A 404 means the record is unknown.
  - Store (badger): a local BadgerDB catalog for development and mock data,
    optionally seeded from a JSON file at startup.

Both record catalog_request_duration_seconds and catalog_request_errors_total
labelled by source and operation.

# Seed Format

	{
	  "projects": [{"id": "p1", "title": "...", "skills": ["Go"], ...}],
	  "profiles": [{"id": "u1", "skills": ["Go"], ...}]
	}

# Usage

	store, err := catalog.OpenStore(cfg.Catalog.Badger, logger)
	if err != nil {
	    return err
	}
	defer store.Close()

	if _, err := store.LoadSeedFile(ctx, cfg.Catalog.Badger.SeedFile); err != nil {
	    return err
	}
	engine, err := recommend.NewEngine(&cfg.Recommend, store, nil, logger)
*/
package catalog
