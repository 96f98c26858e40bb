package fixture

import (
	"context"
	"testing"
	"time"

	"mlb-draft-tracker/internal/domain"
)

func TestFetchRosterIsDeterministic(t *testing.T) {
	p := New()

	first, err := p.FetchRoster(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _ := p.FetchRoster(context.Background())

	if len(first) == 0 || len(first) != len(second) {
		t.Fatalf("fixture roster should be stable: %d vs %d", len(first), len(second))
	}
	for _, pr := range first {
		if pr.Name == "" || pr.Position == "" || pr.School == "" {
			t.Fatalf("fixture record incomplete: %+v", pr)
		}
	}
}

func TestFetchPicksUsesTimeSource(t *testing.T) {
	p := New()
	fixed := time.Date(2025, 7, 13, 18, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return fixed }

	picks, err := p.FetchPicks(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(picks) == 0 {
		t.Fatal("expected fixture picks")
	}
	for _, pick := range picks {
		if !pick.Timestamp.Equal(fixed) {
			t.Fatalf("timestamp not from time source: %v", pick.Timestamp)
		}
		if pick.Team == domain.Unknown {
			t.Fatalf("fixture pick should name a team: %+v", pick)
		}
	}
}
