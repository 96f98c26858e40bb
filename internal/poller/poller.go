// Package poller drives the reconciliation cycle: fetch roster and picks,
// merge, resolve draft status, persist, publish, broadcast. It is the only
// writer of the publication cache.
package poller

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"mlb-draft-tracker/internal/domain"
	"mlb-draft-tracker/internal/logging"
	"mlb-draft-tracker/internal/metrics"
	"mlb-draft-tracker/internal/providers"
	"mlb-draft-tracker/internal/reconcile"
	"mlb-draft-tracker/internal/store"
)

const (
	defaultInterval     = 30 * time.Second
	defaultFetchTimeout = 30 * time.Second
)

// SnapshotWriter persists snapshots to disk for warm restarts.
type SnapshotWriter interface {
	WriteSnapshot(snapshot domain.Snapshot) error
}

// Broadcaster pushes a published snapshot to live consumers.
type Broadcaster interface {
	Broadcast(ctx context.Context, snapshot domain.Snapshot) error
}

// Poller runs reconciliation cycles on an interval.
type Poller struct {
	rosterSource providers.RosterProvider
	pickSource   providers.PickProvider
	rosterSink   providers.RosterSink
	writer       SnapshotWriter
	broadcaster  Broadcaster
	cache        *store.SnapshotStore
	logger       *slog.Logger
	metrics      *metrics.Recorder
	interval     time.Duration
	fetchTimeout time.Duration
	now          func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	// cycleMu serializes cycles: a timer tick that fires while a cycle is
	// still in flight waits for it rather than racing it, and the cache's
	// cycle-start check rejects anything stale that slips through via the
	// admin refresh path.
	cycleMu    sync.Mutex
	roster     []domain.Prospect
	lastRoster []domain.Prospect
	lastPicks  []domain.DraftPick

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the reconciliation loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// Options bundles the optional collaborators of a Poller.
type Options struct {
	RosterSink   providers.RosterSink
	Writer       SnapshotWriter
	Broadcaster  Broadcaster
	Logger       *slog.Logger
	Metrics      *metrics.Recorder
	Interval     time.Duration
	FetchTimeout time.Duration
}

// New constructs a Poller with sane defaults.
func New(rosterSource providers.RosterProvider, pickSource providers.PickProvider, cache *store.SnapshotStore, opts Options) *Poller {
	if opts.Interval <= 0 {
		opts.Interval = defaultInterval
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = defaultFetchTimeout
	}
	return &Poller{
		rosterSource: rosterSource,
		pickSource:   pickSource,
		rosterSink:   opts.RosterSink,
		writer:       opts.Writer,
		broadcaster:  opts.Broadcaster,
		cache:        cache,
		logger:       opts.Logger,
		metrics:      opts.Metrics,
		interval:     opts.Interval,
		fetchTimeout: opts.FetchTimeout,
		now:          time.Now,
		done:         make(chan struct{}),
	}
}

// Seed primes the poller and cache with a previously persisted snapshot so a
// restart serves data before the first cycle completes.
func (p *Poller) Seed(snap domain.Snapshot, cycleStart time.Time) {
	p.cycleMu.Lock()
	p.roster = snap.Roster
	p.lastRoster = snap.Roster
	p.lastPicks = snap.Picks
	p.cycleMu.Unlock()
	p.cache.Publish(snap, cycleStart)
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		logging.Info(p.logger, "poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial cycle to warm data on boot.
		p.cycleOnce(ctx, false)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.ticker.C:
				p.cycleOnce(ctx, false)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// RunCycle runs one reconciliation cycle immediately, outside the timer.
func (p *Poller) RunCycle(ctx context.Context) error {
	return p.cycleOnce(ctx, false)
}

// RunReplace runs one cycle that rebuilds the roster from the fetched batch
// alone instead of merging into the current collection. This is the explicit
// replace operation; the regular cycle is additive.
func (p *Poller) RunReplace(ctx context.Context) error {
	return p.cycleOnce(ctx, true)
}

func (p *Poller) cycleOnce(ctx context.Context, replace bool) error {
	p.cycleMu.Lock()
	defer p.cycleMu.Unlock()

	start := p.now().UTC()
	p.recordAttempt(start)

	rosterBatch, picksBatch := p.fetchBoth(ctx)

	existing := p.roster
	if replace {
		existing = nil
	}
	merged := reconcile.Merge(existing, rosterBatch)
	p.metrics.RecordMerge(merged.Added, merged.Updated, merged.Skipped)

	picks := reconcile.DedupePicks(picksBatch)
	reconcile.SortPicks(picks)

	annotated := reconcile.ResolveDraftStatus(merged.Result, picks)
	snap := domain.Snapshot{
		Roster:     annotated,
		Picks:      picks,
		LastUpdate: p.now().UTC(),
	}

	// Persist before publishing: the cache and the durable store must not
	// diverge on a failed write.
	if p.rosterSink != nil {
		if err := p.rosterSink.WriteRoster(ctx, annotated); err != nil {
			err = fmt.Errorf("roster write-back: %w", err)
			logging.Error(p.logger, "cycle publication failed", err)
			p.recordFailure(err, start)
			p.metrics.RecordCycle(time.Since(start), err)
			return err
		}
	}
	if p.writer != nil {
		// Disk persistence is best-effort durability; a failure degrades
		// restart warmth, not the cycle.
		if err := p.writer.WriteSnapshot(snap); err != nil {
			logging.Error(p.logger, "snapshot write failed", err)
		}
	}

	if !p.cache.Publish(snap, start) {
		logging.Warn(p.logger, "stale cycle discarded", slog.Time("cycle_start", start))
		p.metrics.RecordCycle(time.Since(start), nil)
		return nil
	}
	p.roster = annotated

	if p.broadcaster != nil {
		if err := p.broadcaster.Broadcast(ctx, snap); err != nil {
			logging.Error(p.logger, "broadcast failed", err)
		}
	}

	p.recordSuccess(start)
	p.metrics.RecordCycle(time.Since(start), nil)
	logging.Info(p.logger, "cycle completed",
		logging.FieldCount, len(annotated),
		logging.FieldAdded, merged.Added,
		logging.FieldUpdated, merged.Updated,
		logging.FieldSkipped, merged.Skipped,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return nil
}

// fetchBoth runs the roster and pick fetches concurrently, each under its
// own timeout. A failed fetch falls back to that source's last successful
// batch, so one flaky source degrades to stale data instead of aborting the
// cycle. On a cold start the fallback is simply empty.
func (p *Poller) fetchBoth(ctx context.Context) ([]domain.Prospect, []domain.DraftPick) {
	var (
		rosterBatch []domain.Prospect
		picksBatch  []domain.DraftPick
		rosterErr   error
		picksErr    error
	)

	g := new(errgroup.Group)
	g.Go(func() error {
		fetchCtx, cancel := context.WithTimeout(ctx, p.fetchTimeout)
		defer cancel()
		t0 := time.Now()
		rosterBatch, rosterErr = p.rosterSource.FetchRoster(fetchCtx)
		p.metrics.RecordFetch("roster", time.Since(t0), rosterErr)
		return nil
	})
	g.Go(func() error {
		fetchCtx, cancel := context.WithTimeout(ctx, p.fetchTimeout)
		defer cancel()
		t0 := time.Now()
		picksBatch, picksErr = p.pickSource.FetchPicks(fetchCtx)
		p.metrics.RecordFetch("picks", time.Since(t0), picksErr)
		return nil
	})
	_ = g.Wait()

	if rosterErr != nil {
		logging.Warn(p.logger, "roster source unavailable, reusing last batch", "error", rosterErr)
		rosterBatch = p.lastRoster
	} else {
		p.lastRoster = rosterBatch
	}
	if picksErr != nil {
		logging.Warn(p.logger, "pick source unavailable, reusing last batch", "error", picksErr)
		picksBatch = p.lastPicks
	} else {
		p.lastPicks = picksBatch
	}
	return rosterBatch, picksBatch
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
