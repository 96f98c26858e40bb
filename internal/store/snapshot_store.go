package store

import (
	"sync"
	"time"

	"mlb-draft-tracker/internal/domain"
)

// SnapshotStore holds the last successfully published reconciliation
// snapshot. Replacement is atomic from a reader's point of view: roster and
// picks always come from the same cycle, and reads never block on a cycle
// in flight.
type SnapshotStore struct {
	mu         sync.RWMutex
	snap       domain.Snapshot
	cycleStart time.Time
	published  bool
}

// NewSnapshotStore constructs an empty SnapshotStore.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// Publish replaces the current snapshot if cycleStart is not older than the
// cycle that produced the held snapshot. It reports whether the snapshot was
// accepted; a false return means a newer cycle already published and the
// caller's result is stale.
func (s *SnapshotStore) Publish(snap domain.Snapshot, cycleStart time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.published && cycleStart.Before(s.cycleStart) {
		return false
	}
	s.snap = cloneSnapshot(snap)
	s.cycleStart = cycleStart
	s.published = true
	return true
}

// Current returns the latest published snapshot. The second return is false
// until the first successful publish (cold start).
func (s *SnapshotStore) Current() (domain.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSnapshot(s.snap), s.published
}

// Roster returns the roster from the latest snapshot.
func (s *SnapshotStore) Roster() []domain.Prospect {
	snap, _ := s.Current()
	return snap.Roster
}

// Picks returns the pick list from the latest snapshot.
func (s *SnapshotStore) Picks() []domain.DraftPick {
	snap, _ := s.Current()
	return snap.Picks
}

// cloneSnapshot copies the slices so readers and the single writer never
// share backing arrays. DraftInfo pointers are copied too since resolution
// rebuilds them each cycle.
func cloneSnapshot(snap domain.Snapshot) domain.Snapshot {
	out := domain.Snapshot{LastUpdate: snap.LastUpdate}
	if snap.Roster != nil {
		out.Roster = make([]domain.Prospect, len(snap.Roster))
		for i, p := range snap.Roster {
			if p.DraftInfo != nil {
				info := *p.DraftInfo
				p.DraftInfo = &info
			}
			out.Roster[i] = p
		}
	}
	if snap.Picks != nil {
		out.Picks = make([]domain.DraftPick, len(snap.Picks))
		copy(out.Picks, snap.Picks)
	}
	return out
}
