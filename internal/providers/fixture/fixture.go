package fixture

import (
	"context"
	"time"

	"mlb-draft-tracker/internal/domain"
)

// Provider returns a static roster and pick list useful for local testing
// and bootstrapping without sheet credentials or a live draft.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{now: time.Now}
}

// FetchRoster returns a deterministic example roster.
func (p *Provider) FetchRoster(ctx context.Context) ([]domain.Prospect, error) {
	_ = ctx
	return []domain.Prospect{
		{Name: "Eli Willits", Position: "SS", School: "Fort Cobb-Broxton HS", Rank: "2"},
		{Name: "Ethan Holliday", Position: "SS", School: "Stillwater HS", Rank: "1"},
		{Name: "Kade Anderson", Position: "LHP", School: "LSU", Rank: "3"},
		{Name: "Liam Doyle", Position: "LHP", School: "Tennessee", Rank: "4"},
		{Name: "Aiva Arquette", Position: "SS", School: "Oregon State", Rank: "5"},
	}, nil
}

// FetchPicks returns a deterministic set of example picks.
func (p *Provider) FetchPicks(ctx context.Context) ([]domain.DraftPick, error) {
	_ = ctx
	now := p.now().UTC()
	return []domain.DraftPick{
		{PickNumber: "1", PlayerName: "Eli Willits", Position: "SS", School: "Fort Cobb-Broxton HS", Team: "Washington Nationals", Timestamp: now},
		{PickNumber: "2", PlayerName: "Tyler Bremner", Position: "RHP", School: "UC Santa Barbara", Team: "Los Angeles Angels", Timestamp: now},
		{PickNumber: "3", PlayerName: "Kade Anderson", Position: "LHP", School: "LSU", Team: "Seattle Mariners", Timestamp: now},
	}, nil
}
