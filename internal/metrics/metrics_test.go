package metrics

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRecordFetchCountsCallsAndErrors(t *testing.T) {
	r := NewRecorder()

	r.RecordFetch("sheets", 10*time.Millisecond, nil)
	r.RecordFetch("sheets", 20*time.Millisecond, errors.New("boom"))
	r.RecordFetch("statsapi", 5*time.Millisecond, nil)

	snap := r.Snapshot("sheets")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected sheets stats: %+v", snap)
	}
	if snap.LastCallLatency != 20*time.Millisecond {
		t.Fatalf("expected last latency recorded, got %v", snap.LastCallLatency)
	}
	if r.FetchCalls("statsapi") != 1 || r.FetchErrors("statsapi") != 0 {
		t.Fatalf("unexpected statsapi stats: calls=%d errors=%d", r.FetchCalls("statsapi"), r.FetchErrors("statsapi"))
	}
}

func TestRecordMergeAccumulates(t *testing.T) {
	r := NewRecorder()

	r.RecordMerge(2, 1, 0)
	r.RecordMerge(1, 0, 3)

	added, updated, skipped := r.MergeCounts()
	if added != 3 || updated != 1 || skipped != 3 {
		t.Fatalf("unexpected merge counts: %d/%d/%d", added, updated, skipped)
	}
}

func TestRecorderNilSafe(t *testing.T) {
	var r *Recorder

	// None of these may panic.
	r.RecordFetch("sheets", time.Millisecond, nil)
	r.RecordCycle(time.Millisecond, nil)
	r.RecordMerge(1, 1, 1)
	r.RecordHTTPRequest("GET", "/api/data", 200, time.Millisecond)
	r.RecordBroadcastClients(3)

	if r.FetchCalls("sheets") != 0 {
		t.Fatal("nil recorder should report zero calls")
	}
	if a, u, s := r.MergeCounts(); a != 0 || u != 0 || s != 0 {
		t.Fatal("nil recorder should report zero merge counts")
	}
}

func TestSnapshotUnknownSourceIsZero(t *testing.T) {
	r := NewRecorder()
	if snap := r.Snapshot("never-seen"); snap.Calls != 0 || snap.Errors != 0 {
		t.Fatalf("expected zero snapshot, got %+v", snap)
	}
}

func TestSetupDisabledReturnsPlainRecorder(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec == nil {
		t.Fatal("expected a recorder even when disabled")
	}
	if handler != nil {
		t.Fatal("disabled setup should not expose a metrics handler")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown of disabled setup failed: %v", err)
	}
	// The plain recorder still counts.
	rec.RecordFetch("sheets", time.Millisecond, nil)
	if rec.FetchCalls("sheets") != 1 {
		t.Fatal("disabled recorder should still count fetches")
	}
}

func TestSetupEnabledExposesPrometheusHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true, ServiceName: "test"})
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	defer shutdown(context.Background())

	if handler == nil {
		t.Fatal("expected a prometheus handler")
	}
	rec.RecordCycle(50*time.Millisecond, nil)
	rec.RecordMerge(1, 0, 0)
	rec.RecordBroadcastClients(2)
}
