package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"mlb-draft-tracker/internal/domain"
)

// Config controls how the stats API client reaches the upstream.
type Config struct {
	BaseURL    string
	Year       string
	HTTPClient *http.Client
}

// Client fetches draft picks from the MLB stats API and maps them to domain
// records.
type Client struct {
	baseURL    string
	year       string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a stats API client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		year:       cfg.Year,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
	}
}

// FetchPicks retrieves the draft picks announced so far for the configured
// year. Pass picks and slots without a selection yet are filtered out.
func (c *Client) FetchPicks(ctx context.Context) ([]domain.DraftPick, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/draft/%s", c.baseURL, c.year), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("statsapi: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload draftResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return nil, decodeErr
	}

	observed := c.now().UTC()
	picks := make([]domain.DraftPick, 0)
	for _, round := range payload.Drafts.Rounds {
		for _, p := range round.Picks {
			if pick, ok := mapPick(p, observed); ok {
				picks = append(picks, pick)
			}
		}
	}
	return picks, nil
}
