package store

import (
	"sync"
	"testing"
	"time"

	"mlb-draft-tracker/internal/domain"
)

func snapshotWith(names ...string) domain.Snapshot {
	roster := make([]domain.Prospect, len(names))
	for i, n := range names {
		roster[i] = domain.Prospect{Name: n, Position: "SS", School: "LSU"}
	}
	return domain.Snapshot{Roster: roster, LastUpdate: time.Now().UTC()}
}

func TestCurrentColdStart(t *testing.T) {
	s := NewSnapshotStore()

	snap, ok := s.Current()
	if ok {
		t.Fatal("expected no snapshot before first publish")
	}
	if snap.Roster != nil || snap.Picks != nil {
		t.Fatalf("cold snapshot should be empty: %+v", snap)
	}
	if roster := s.Roster(); len(roster) != 0 {
		t.Fatalf("expected empty roster on cold start, got %d", len(roster))
	}
}

func TestPublishReplacesWholeSnapshot(t *testing.T) {
	s := NewSnapshotStore()
	t0 := time.Now().UTC()

	if !s.Publish(snapshotWith("Eli Willits"), t0) {
		t.Fatal("first publish rejected")
	}
	if !s.Publish(snapshotWith("Kade Anderson", "Liam Doyle"), t0.Add(time.Second)) {
		t.Fatal("newer publish rejected")
	}

	snap, ok := s.Current()
	if !ok {
		t.Fatal("expected a published snapshot")
	}
	if len(snap.Roster) != 2 || snap.Roster[0].Name != "Kade Anderson" {
		t.Fatalf("old snapshot leaked through: %+v", snap.Roster)
	}
}

func TestPublishRejectsStaleCycle(t *testing.T) {
	s := NewSnapshotStore()
	t0 := time.Now().UTC()

	s.Publish(snapshotWith("Kade Anderson"), t0)

	if s.Publish(snapshotWith("Eli Willits"), t0.Add(-time.Second)) {
		t.Fatal("stale cycle was accepted")
	}
	if s.Roster()[0].Name != "Kade Anderson" {
		t.Fatalf("stale publish replaced data: %+v", s.Roster())
	}
}

func TestCurrentReturnsIndependentCopies(t *testing.T) {
	s := NewSnapshotStore()
	snap := snapshotWith("Eli Willits")
	snap.Roster[0].DraftInfo = &domain.DraftInfo{PickNumber: "1", Team: "Nationals"}
	s.Publish(snap, time.Now().UTC())

	got, _ := s.Current()
	got.Roster[0].Name = "mutated"
	got.Roster[0].DraftInfo.PickNumber = "99"

	again, _ := s.Current()
	if again.Roster[0].Name != "Eli Willits" {
		t.Fatalf("reader mutation leaked into store: %+v", again.Roster[0])
	}
	if again.Roster[0].DraftInfo.PickNumber != "1" {
		t.Fatalf("draft info shared between readers: %+v", again.Roster[0].DraftInfo)
	}
}

func TestConcurrentReadersAndWriter(t *testing.T) {
	s := NewSnapshotStore()
	start := time.Now().UTC()

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				s.Publish(snapshotWith("Eli Willits"), start.Add(time.Duration(i)*time.Millisecond))
			}
		}(w)
	}
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				if snap, ok := s.Current(); ok && len(snap.Roster) != 1 {
					t.Errorf("torn read: %+v", snap)
					return
				}
			}
		}()
	}
	wg.Wait()
}
