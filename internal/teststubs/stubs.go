package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"mlb-draft-tracker/internal/domain"
)

// StubRosterProvider is a test double for providers.RosterProvider.
type StubRosterProvider struct {
	Roster []domain.Prospect
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}
}

// FetchRoster returns the configured roster and error while tracking calls.
func (s *StubRosterProvider) FetchRoster(ctx context.Context) ([]domain.Prospect, error) {
	_ = ctx
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	return s.Roster, s.Err
}

// StubPickProvider is a test double for providers.PickProvider.
type StubPickProvider struct {
	Picks  []domain.DraftPick
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}
}

// FetchPicks returns the configured picks and error while tracking calls.
func (s *StubPickProvider) FetchPicks(ctx context.Context) ([]domain.DraftPick, error) {
	_ = ctx
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	return s.Picks, s.Err
}

// StubRosterSink is a test double for providers.RosterSink.
type StubRosterSink struct {
	Err error

	mu      sync.Mutex
	written [][]domain.Prospect
}

// WriteRoster records the roster for verification in tests.
func (s *StubRosterSink) WriteRoster(ctx context.Context, roster []domain.Prospect) error {
	_ = ctx
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.written = append(s.written, roster)
	return nil
}

// Written returns every roster passed to WriteRoster, in order.
func (s *StubRosterSink) Written() [][]domain.Prospect {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]domain.Prospect, len(s.written))
	copy(out, s.written)
	return out
}

// StubSnapshotWriter is a test double for poller.SnapshotWriter.
type StubSnapshotWriter struct {
	Err error

	mu      sync.Mutex
	written []domain.Snapshot
}

// WriteSnapshot records the snapshot for verification in tests.
func (w *StubSnapshotWriter) WriteSnapshot(snap domain.Snapshot) error {
	if w.Err != nil {
		return w.Err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.written = append(w.written, snap)
	return nil
}

// Written returns every snapshot passed to WriteSnapshot, in order.
func (w *StubSnapshotWriter) Written() []domain.Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]domain.Snapshot, len(w.written))
	copy(out, w.written)
	return out
}

// StubBroadcaster is a test double for poller.Broadcaster.
type StubBroadcaster struct {
	Err   error
	Calls atomic.Int32

	mu   sync.Mutex
	last domain.Snapshot
}

// Broadcast records the snapshot and returns the configured error.
func (b *StubBroadcaster) Broadcast(ctx context.Context, snap domain.Snapshot) error {
	_ = ctx
	b.Calls.Add(1)
	b.mu.Lock()
	b.last = snap
	b.mu.Unlock()
	return b.Err
}

// Last returns the most recently broadcast snapshot.
func (b *StubBroadcaster) Last() domain.Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.last
}
