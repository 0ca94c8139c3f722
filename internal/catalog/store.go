// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/gigboard/internal/config"
	"github.com/tomtom215/gigboard/internal/metrics"
	"github.com/tomtom215/gigboard/internal/recommend"
)

// Key prefixes for BadgerDB storage
const (
	projectKeyPrefix = "project:"
	profileKeyPrefix = "profile:"
)

const sourceBadger = "badger"

// ErrEmptyID is returned when storing a record without an ID.
var ErrEmptyID = errors.New("catalog: record id is required")

// Store is a BadgerDB-backed catalog. It serves local development and
// mock-data deployments and implements recommend.DataProvider.
type Store struct {
	db     *badger.DB
	owned  bool
	logger zerolog.Logger
}

// OpenStore opens the badger database described by cfg. The store owns
// the database and closes it in Close.
//
//nolint:gocritic // zerolog.Logger is passed by value by convention
func OpenStore(cfg config.CatalogBadgerConfig, logger zerolog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(cfg.Path)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts.Logger = nil // Suppress BadgerDB internal logs

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open catalog store: %w", err)
	}

	s := NewStore(db, logger)
	s.owned = true
	return s, nil
}

// NewStore wraps an existing database. The caller keeps ownership.
//
//nolint:gocritic // zerolog.Logger is passed by value by convention
func NewStore(db *badger.DB, logger zerolog.Logger) *Store {
	return &Store{
		db:     db,
		logger: logger.With().Str("component", "catalog_store").Logger(),
	}
}

// Close closes the database if the store opened it.
func (s *Store) Close() error {
	if !s.owned {
		return nil
	}
	return s.db.Close()
}

// PutProject stores or replaces a project.
func (s *Store) PutProject(ctx context.Context, p *recommend.Project) error {
	if p.ID == "" {
		return ErrEmptyID
	}
	return s.put(ctx, projectKeyPrefix+p.ID, p)
}

// PutProfile stores or replaces a user profile.
func (s *Store) PutProfile(ctx context.Context, u *recommend.UserProfile) error {
	if u.ID == "" {
		return ErrEmptyID
	}
	return s.put(ctx, profileKeyPrefix+u.ID, u)
}

func (s *Store) put(ctx context.Context, key string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// GetUserProfile implements recommend.DataProvider.
func (s *Store) GetUserProfile(ctx context.Context, userID string) (profile *recommend.UserProfile, err error) {
	start := time.Now()
	defer func() { metrics.RecordCatalogRequest(sourceBadger, "get_profile", time.Since(start), err) }()

	var u recommend.UserProfile
	found, err := s.get(ctx, profileKeyPrefix+userID, &u)
	if err != nil || !found {
		return nil, err
	}
	return &u, nil
}

// GetProject implements recommend.DataProvider.
func (s *Store) GetProject(ctx context.Context, projectID string) (project *recommend.Project, err error) {
	start := time.Now()
	defer func() { metrics.RecordCatalogRequest(sourceBadger, "get_project", time.Since(start), err) }()

	var p recommend.Project
	found, err := s.get(ctx, projectKeyPrefix+projectID, &p)
	if err != nil || !found {
		return nil, err
	}
	return &p, nil
}

func (s *Store) get(ctx context.Context, key string, out any) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get %s: %w", key, err)
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, out)
		})
	})
	return found, err
}

// GetAllProjects implements recommend.DataProvider. Projects are returned in key order.
func (s *Store) GetAllProjects(ctx context.Context, excludeIDs []string) (projects []recommend.Project, err error) {
	start := time.Now()
	defer func() { metrics.RecordCatalogRequest(sourceBadger, "list_projects", time.Since(start), err) }()

	skip := make(map[string]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		skip[id] = struct{}{}
	}

	projects = make([]recommend.Project, 0)
	err = s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(projectKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			id := string(it.Item().Key()[len(prefix):])
			if _, excluded := skip[id]; excluded {
				continue
			}

			var p recommend.Project
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &p)
			}); err != nil {
				s.logger.Warn().Err(err).Str("project_id", id).Msg("Skipping unreadable project")
				continue
			}
			projects = append(projects, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// DeleteProject removes a project. Deleting an unknown project is not an error.
func (s *Store) DeleteProject(ctx context.Context, projectID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(projectKeyPrefix + projectID))
	})
}

// CountProjects returns the number of stored projects.
func (s *Store) CountProjects() (int, error) {
	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(projectKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}
