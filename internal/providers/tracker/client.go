// Package tracker scrapes draft picks from the public draft-tracker page.
// It is the fallback pick source for when the stats API is unavailable; the
// page markup is not a stable contract, so parsing tries several strategies
// and keeps whatever yields plausible picks.
package tracker

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"mlb-draft-tracker/internal/domain"
)

const (
	// ProviderName identifies this provider in config, logs, and metrics.
	ProviderName = "tracker"

	defaultBaseURL     = "https://www.mlb.com/draft/tracker"
	defaultHTTPTimeout = 30 * time.Second
	userAgent          = "mlb-draft-tracker/1.0"
)

// Config controls how the scraper reaches the tracker page.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches and parses the draft-tracker page.
type Client struct {
	baseURL    string
	httpClient *http.Client
	now        func() time.Time
}

// NewClient constructs a tracker scraper with the provided configuration.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		now:        time.Now,
	}
}

// FetchPicks downloads the tracker page and extracts the announced picks.
func (c *Client) FetchPicks(ctx context.Context) ([]domain.DraftPick, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return parsePicks(resp.Body, c.now().UTC())
}
