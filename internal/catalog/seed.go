// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package catalog

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/tomtom215/gigboard/internal/recommend"
)

// Seed is the on-disk format for mock catalog data.
//
//	{"projects": [...], "profiles": [...]}
type Seed struct {
	Projects []recommend.Project     `json:"projects"`
	Profiles []recommend.UserProfile `json:"profiles"`
}

// SeedResult reports how many records a seed load wrote.
type SeedResult struct {
	Projects int
	Profiles int
}

// LoadSeedFile reads a seed file and stores its records.
func (s *Store) LoadSeedFile(ctx context.Context, path string) (SeedResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return SeedResult{}, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	return s.LoadSeed(ctx, f)
}

// LoadSeed decodes a seed document from r and stores its records.
// Records without an ID are skipped.
func (s *Store) LoadSeed(ctx context.Context, r io.Reader) (SeedResult, error) {
	var seed Seed
	if err := json.NewDecoder(r).Decode(&seed); err != nil {
		return SeedResult{}, fmt.Errorf("decode seed: %w", err)
	}

	var res SeedResult
	for i := range seed.Projects {
		if seed.Projects[i].ID == "" {
			continue
		}
		if err := s.PutProject(ctx, &seed.Projects[i]); err != nil {
			return res, fmt.Errorf("store project %s: %w", seed.Projects[i].ID, err)
		}
		res.Projects++
	}
	for i := range seed.Profiles {
		if seed.Profiles[i].ID == "" {
			continue
		}
		if err := s.PutProfile(ctx, &seed.Profiles[i]); err != nil {
			return res, fmt.Errorf("store profile %s: %w", seed.Profiles[i].ID, err)
		}
		res.Profiles++
	}

	s.logger.Info().Int("projects", res.Projects).Int("profiles", res.Profiles).Msg("Catalog seed loaded")
	return res, nil
}
