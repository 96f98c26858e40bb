package teststubs

import (
	"context"
	"errors"
	"testing"

	"mlb-draft-tracker/internal/domain"
	"mlb-draft-tracker/internal/poller"
	"mlb-draft-tracker/internal/providers"
)

var (
	_ providers.RosterProvider = (*StubRosterProvider)(nil)
	_ providers.PickProvider   = (*StubPickProvider)(nil)
	_ providers.RosterSink     = (*StubRosterSink)(nil)
	_ poller.SnapshotWriter    = (*StubSnapshotWriter)(nil)
	_ poller.Broadcaster       = (*StubBroadcaster)(nil)
)

func TestStubProvidersTrackCalls(t *testing.T) {
	roster := &StubRosterProvider{Roster: []domain.Prospect{{Name: "Eli Willits"}}}
	picks := &StubPickProvider{Err: errors.New("down")}

	if _, err := roster.FetchRoster(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := picks.FetchPicks(context.Background()); err == nil {
		t.Fatal("expected configured error")
	}
	if roster.Calls.Load() != 1 || picks.Calls.Load() != 1 {
		t.Fatalf("calls not tracked: %d/%d", roster.Calls.Load(), picks.Calls.Load())
	}
}

func TestStubSinkRecordsWrites(t *testing.T) {
	sink := &StubRosterSink{}

	if err := sink.WriteRoster(context.Background(), []domain.Prospect{{Name: "Kade Anderson"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := sink.Written(); len(got) != 1 || got[0][0].Name != "Kade Anderson" {
		t.Fatalf("write not recorded: %v", got)
	}

	sink.Err = errors.New("quota")
	if err := sink.WriteRoster(context.Background(), nil); err == nil {
		t.Fatal("expected configured error")
	}
	if len(sink.Written()) != 1 {
		t.Fatal("failed write must not be recorded")
	}
}
