package providers

import (
	"context"
	"errors"
	"testing"

	"mlb-draft-tracker/internal/domain"
)

type flakyPickProvider struct {
	failures int
	calls    int
	picks    []domain.DraftPick
}

func (f *flakyPickProvider) FetchPicks(ctx context.Context) ([]domain.DraftPick, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, errors.New("transient")
	}
	return f.picks, nil
}

type flakyRosterProvider struct {
	failures int
	calls    int
	roster   []domain.Prospect
}

func (f *flakyRosterProvider) FetchRoster(ctx context.Context) ([]domain.Prospect, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, errors.New("transient")
	}
	return f.roster, nil
}

func TestRetryingPickProviderRecoversFromTransientFailure(t *testing.T) {
	inner := &flakyPickProvider{
		failures: 1,
		picks:    []domain.DraftPick{{PickNumber: "1", PlayerName: "Eli Willits"}},
	}
	p := NewRetryingPickProvider(inner, nil, "statsapi", 2)

	picks, err := p.FetchPicks(context.Background())
	if err != nil {
		t.Fatalf("expected recovery, got %v", err)
	}
	if len(picks) != 1 || picks[0].PlayerName != "Eli Willits" {
		t.Fatalf("unexpected picks: %+v", picks)
	}
	if inner.calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", inner.calls)
	}
}

func TestRetryingPickProviderExhaustsRetries(t *testing.T) {
	inner := &flakyPickProvider{failures: 10}
	p := NewRetryingPickProvider(inner, nil, "statsapi", 2)

	_, err := p.FetchPicks(context.Background())
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	suErr, ok := AsSourceUnavailable(err)
	if !ok {
		t.Fatalf("expected SourceUnavailableError, got %T", err)
	}
	if suErr.Source != "statsapi" {
		t.Fatalf("unexpected source: %q", suErr.Source)
	}
	// 1 initial attempt + 2 retries.
	if inner.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", inner.calls)
	}
}

func TestRetryingRosterProviderWrapsFailure(t *testing.T) {
	inner := &flakyRosterProvider{failures: 10}
	p := NewRetryingRosterProvider(inner, nil, "sheets", 1)

	_, err := p.FetchRoster(context.Background())
	if _, ok := AsSourceUnavailable(err); !ok {
		t.Fatalf("expected SourceUnavailableError, got %v", err)
	}
}

func TestRetryingRosterProviderPassesThroughSuccess(t *testing.T) {
	inner := &flakyRosterProvider{
		roster: []domain.Prospect{{Name: "Kade Anderson", Position: "LHP", School: "LSU"}},
	}
	p := NewRetryingRosterProvider(inner, nil, "sheets", 1)

	roster, err := p.FetchRoster(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roster) != 1 || inner.calls != 1 {
		t.Fatalf("unexpected roster or attempts: %d records, %d calls", len(roster), inner.calls)
	}
}

func TestSourceUnavailableErrorUnwraps(t *testing.T) {
	base := errors.New("connection refused")
	err := &SourceUnavailableError{Source: "tracker", Err: base}

	if !errors.Is(err, base) {
		t.Fatal("expected wrapped error to survive errors.Is")
	}
	if err.Error() == "" {
		t.Fatal("expected a message")
	}
}
