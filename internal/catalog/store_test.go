// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"

	"github.com/tomtom215/gigboard/internal/config"
	"github.com/tomtom215/gigboard/internal/recommend"
)

// setupTestStore creates an in-memory store
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		t.Fatalf("Failed to open badger: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewStore(db, zerolog.Nop())
}

func TestStore_ProjectRoundTrip(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	in := &recommend.Project{
		ID:              "p1",
		Title:           "React dashboard",
		Category:        "web",
		Skills:          []string{"React", "TypeScript"},
		BudgetMin:       3_000_000,
		BudgetMax:       5_000_000,
		ProjectType:     recommend.ProjectContract,
		ExperienceLevel: recommend.ExperienceSenior,
		Location:        "서울",
		Views:           120,
		CreatedAt:       created,
	}
	if err := s.PutProject(ctx, in); err != nil {
		t.Fatalf("PutProject() error = %v", err)
	}

	got, err := s.GetProject(ctx, "p1")
	if err != nil {
		t.Fatalf("GetProject() error = %v", err)
	}
	if got == nil || got.Title != in.Title || got.BudgetMax != in.BudgetMax || !got.CreatedAt.Equal(created) || got.Location != "서울" {
		t.Errorf("GetProject() = %+v", got)
	}
}

func TestStore_UnknownIsNil(t *testing.T) {
	s := setupTestStore(t)

	p, err := s.GetProject(context.Background(), "nope")
	if err != nil || p != nil {
		t.Errorf("GetProject(unknown) = %v, %v", p, err)
	}
	u, err := s.GetUserProfile(context.Background(), "nope")
	if err != nil || u != nil {
		t.Errorf("GetUserProfile(unknown) = %v, %v", u, err)
	}
}

func TestStore_ProfileRoundTrip(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	in := &recommend.UserProfile{
		ID:              "u1",
		Skills:          []string{"Go"},
		PreferredBudget: &recommend.BudgetRange{Min: 1, Max: 2},
		AppliedProjects: []string{"p9"},
	}
	if err := s.PutProfile(ctx, in); err != nil {
		t.Fatalf("PutProfile() error = %v", err)
	}

	got, err := s.GetUserProfile(ctx, "u1")
	if err != nil {
		t.Fatalf("GetUserProfile() error = %v", err)
	}
	if got.PreferredBudget == nil || got.PreferredBudget.Max != 2 || len(got.AppliedProjects) != 1 {
		t.Errorf("GetUserProfile() = %+v", got)
	}
}

func TestStore_EmptyID(t *testing.T) {
	s := setupTestStore(t)
	if err := s.PutProject(context.Background(), &recommend.Project{}); !errors.Is(err, ErrEmptyID) {
		t.Errorf("PutProject(no id) error = %v", err)
	}
	if err := s.PutProfile(context.Background(), &recommend.UserProfile{}); !errors.Is(err, ErrEmptyID) {
		t.Errorf("PutProfile(no id) error = %v", err)
	}
}

func TestStore_GetAllProjects(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"p3", "p1", "p2"} {
		if err := s.PutProject(ctx, &recommend.Project{ID: id, Title: id}); err != nil {
			t.Fatal(err)
		}
	}
	// Profiles share the keyspace and must not leak into project listings.
	if err := s.PutProfile(ctx, &recommend.UserProfile{ID: "u1"}); err != nil {
		t.Fatal(err)
	}

	all, err := s.GetAllProjects(ctx, nil)
	if err != nil {
		t.Fatalf("GetAllProjects() error = %v", err)
	}
	if len(all) != 3 || all[0].ID != "p1" || all[2].ID != "p3" {
		t.Errorf("GetAllProjects() = %+v", all)
	}

	some, err := s.GetAllProjects(ctx, []string{"p2", "unknown"})
	if err != nil {
		t.Fatal(err)
	}
	if len(some) != 2 || some[0].ID != "p1" || some[1].ID != "p3" {
		t.Errorf("GetAllProjects(exclude p2) = %+v", some)
	}

	count, err := s.CountProjects()
	if err != nil || count != 3 {
		t.Errorf("CountProjects() = %d, %v", count, err)
	}
}

func TestStore_EmptyListIsNotNil(t *testing.T) {
	s := setupTestStore(t)
	all, err := s.GetAllProjects(context.Background(), nil)
	if err != nil || all == nil || len(all) != 0 {
		t.Errorf("GetAllProjects(empty) = %v, %v", all, err)
	}
}

func TestStore_DeleteProject(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	_ = s.PutProject(ctx, &recommend.Project{ID: "p1"})
	if err := s.DeleteProject(ctx, "p1"); err != nil {
		t.Fatalf("DeleteProject() error = %v", err)
	}
	if err := s.DeleteProject(ctx, "never-existed"); err != nil {
		t.Errorf("DeleteProject(unknown) error = %v", err)
	}
	if p, _ := s.GetProject(ctx, "p1"); p != nil {
		t.Error("project should be gone")
	}
}

func TestStore_CancelledContext(t *testing.T) {
	s := setupTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.GetProject(ctx, "p1"); !errors.Is(err, context.Canceled) {
		t.Errorf("GetProject() error = %v, want context.Canceled", err)
	}
	if err := s.PutProject(ctx, &recommend.Project{ID: "p1"}); !errors.Is(err, context.Canceled) {
		t.Errorf("PutProject() error = %v, want context.Canceled", err)
	}
}

func TestOpenStore_Persists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "catalog")
	cfg := config.CatalogBadgerConfig{Path: dir}

	s, err := OpenStore(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("OpenStore() error = %v", err)
	}
	if err := s.PutProject(context.Background(), &recommend.Project{ID: "p1", Title: "kept"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	s, err = OpenStore(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer s.Close()

	p, err := s.GetProject(context.Background(), "p1")
	if err != nil || p == nil || p.Title != "kept" {
		t.Errorf("GetProject() after reopen = %v, %v", p, err)
	}
}

func TestLoadSeed(t *testing.T) {
	s := setupTestStore(t)

	seed := `{
		"projects": [
			{"id": "p1", "title": "API", "category": "backend", "skills": ["Go"]},
			{"id": "", "title": "no id"},
			{"id": "p2", "title": "UI", "category": "web", "skills": ["React"]}
		],
		"profiles": [
			{"id": "u1", "skills": ["Go"], "location": "Busan"}
		]
	}`

	res, err := s.LoadSeed(context.Background(), strings.NewReader(seed))
	if err != nil {
		t.Fatalf("LoadSeed() error = %v", err)
	}
	if res.Projects != 2 || res.Profiles != 1 {
		t.Errorf("LoadSeed() = %+v, want 2 projects, 1 profile", res)
	}

	u, _ := s.GetUserProfile(context.Background(), "u1")
	if u == nil || u.Location != "Busan" {
		t.Errorf("seeded profile = %+v", u)
	}
}

func TestLoadSeed_Invalid(t *testing.T) {
	s := setupTestStore(t)
	if _, err := s.LoadSeed(context.Background(), strings.NewReader(`{"projects": [`)); err == nil {
		t.Error("LoadSeed() should fail on malformed JSON")
	}
}

func TestLoadSeedFile(t *testing.T) {
	s := setupTestStore(t)

	path := filepath.Join(t.TempDir(), "seed.json")
	if err := os.WriteFile(path, []byte(`{"projects":[{"id":"p1","title":"x","skills":[]}]}`), 0o600); err != nil {
		t.Fatal(err)
	}
	res, err := s.LoadSeedFile(context.Background(), path)
	if err != nil || res.Projects != 1 {
		t.Errorf("LoadSeedFile() = %+v, %v", res, err)
	}

	if _, err := s.LoadSeedFile(context.Background(), filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("LoadSeedFile() should fail for a missing file")
	}
}
