// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/gigboard/internal/config"
	"github.com/tomtom215/gigboard/internal/metrics"
	"github.com/tomtom215/gigboard/internal/recommend"
	"github.com/tomtom215/gigboard/internal/resilience"
)

// maxErrorBodySize limits how much of an error response is read for diagnostics.
const maxErrorBodySize = 64 * 1024

const sourceHTTP = "http"

// Client reads profiles and projects from the marketplace REST API.
//
// Endpoints (relative to the configured base URL):
//   - GET /users/{id}/profile   -> UserProfile
//   - GET /projects?exclude=a,b -> []Project
//   - GET /projects/{id}        -> Project
//
// A 404 means "unknown" and yields (nil, nil). Every call waits on the
// client-side rate limiter and runs through a circuit breaker.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *resilience.Breaker
	logger     zerolog.Logger
}

// NewClient creates a marketplace API client.
//
//nolint:gocritic // zerolog.Logger is passed by value by convention
func NewClient(cfg *config.CatalogHTTPConfig, logger zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	breakerCfg := cfg.Breaker
	if breakerCfg.Name == "" {
		breakerCfg.Name = "catalog-api"
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    limiter,
		breaker:    resilience.NewBreaker(breakerCfg, logger),
		logger:     logger.With().Str("component", "catalog_client").Logger(),
	}
}

// GetUserProfile implements recommend.DataProvider.
func (c *Client) GetUserProfile(ctx context.Context, userID string) (*recommend.UserProfile, error) {
	return getJSON[recommend.UserProfile](ctx, c, "get_profile", "/users/"+url.PathEscape(userID)+"/profile", nil)
}

// GetProject implements recommend.DataProvider.
func (c *Client) GetProject(ctx context.Context, projectID string) (*recommend.Project, error) {
	return getJSON[recommend.Project](ctx, c, "get_project", "/projects/"+url.PathEscape(projectID), nil)
}

// GetAllProjects implements recommend.DataProvider. Exclusions are sent to
// the API and also applied locally.
func (c *Client) GetAllProjects(ctx context.Context, excludeIDs []string) ([]recommend.Project, error) {
	var query url.Values
	if len(excludeIDs) > 0 {
		query = url.Values{"exclude": []string{strings.Join(excludeIDs, ",")}}
	}

	projects, err := getJSON[[]recommend.Project](ctx, c, "list_projects", "/projects", query)
	if err != nil || projects == nil {
		return nil, err
	}
	return excludeProjects(*projects, excludeIDs), nil
}

// BreakerState reports the circuit state for health checks.
func (c *Client) BreakerState() string {
	return c.breaker.State()
}

// getJSON fetches path and decodes the body into T. A 404 returns (nil, nil).
func getJSON[T any](ctx context.Context, c *Client, op, path string, query url.Values) (result *T, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordCatalogRequest(sourceHTTP, op, time.Since(start), err)
	}()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%s: rate limiter: %w", op, err)
		}
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	result, err = resilience.Do(c.breaker, func() (*T, error) {
		return fetch[T](ctx, c, reqURL)
	})
	if err != nil {
		c.logger.Debug().Err(err).Str("operation", op).Msg("Catalog request failed")
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

func fetch[T any](ctx context.Context, c *Client, reqURL string) (*T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, nil
	case resp.StatusCode != http.StatusOK:
		body := readBodyForError(resp.Body)
		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &out, nil
}

// readBodyForError reads at most maxErrorBodySize bytes of r.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

// excludeProjects drops projects whose ID is in ids.
func excludeProjects(projects []recommend.Project, ids []string) []recommend.Project {
	if len(ids) == 0 {
		return projects
	}
	skip := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		skip[id] = struct{}{}
	}
	out := projects[:0]
	for i := range projects {
		if _, ok := skip[projects[i].ID]; !ok {
			out = append(out, projects[i])
		}
	}
	return out
}
