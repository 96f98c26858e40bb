package metrics

import (
	"sync"
	"time"
)

type sourceStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

type mergeStats struct {
	added   int
	updated int
	skipped int
}

// Recorder captures lightweight, in-memory metrics about fetches and
// reconciliation cycles. It is intentionally simple so it can be swapped for
// a real backend later.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*sourceStats
	merge mergeStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*sourceStats),
		otel:  otel,
	}
}

// RecordFetch increments counters for a source fetch and stores the last
// observed latency.
func (r *Recorder) RecordFetch(source string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(source)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	if r.otel != nil {
		r.otel.recordFetch(source, duration, err)
	}
}

// RecordCycle tracks reconciliation cycles and their outcome.
func (r *Recorder) RecordCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordCycle(duration, err)
}

// RecordMerge accumulates merge outcome counts for the latest cycle.
func (r *Recorder) RecordMerge(added, updated, skipped int) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.merge.added += added
	r.merge.updated += updated
	r.merge.skipped += skipped
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordMerge(added, updated, skipped)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordBroadcastClients tracks the connected WebSocket client count.
func (r *Recorder) RecordBroadcastClients(count int) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordBroadcastClients(count)
}

// Snapshot is a copy of the current stats for a source.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(source string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(source)
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
	}
}

// FetchCalls returns the total fetch attempts recorded for a source.
func (r *Recorder) FetchCalls(source string) int {
	return r.Snapshot(source).Calls
}

// FetchErrors returns the total failed fetches recorded for a source.
func (r *Recorder) FetchErrors(source string) int {
	return r.Snapshot(source).Errors
}

// MergeCounts returns the accumulated added/updated/skipped counts.
func (r *Recorder) MergeCounts() (added, updated, skipped int) {
	if r == nil {
		return 0, 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.merge.added, r.merge.updated, r.merge.skipped
}

func (r *Recorder) ensureStats(source string) *sourceStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[source]
	if !ok {
		stats = &sourceStats{}
		r.stats[source] = stats
	}
	return stats
}

func (r *Recorder) snapshot(source string) sourceStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[source]; ok && stats != nil {
		return *stats
	}
	return sourceStats{}
}
