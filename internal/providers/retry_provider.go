package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"mlb-draft-tracker/internal/domain"
	"mlb-draft-tracker/internal/logging"
)

const (
	defaultRetries         = 2
	defaultInitialInterval = 200 * time.Millisecond
)

// retryingPickProvider wraps a PickProvider with exponential backoff.
type retryingPickProvider struct {
	inner   PickProvider
	logger  *slog.Logger
	name    string
	retries uint64
}

// NewRetryingPickProvider wraps the given provider with retries. A
// maxRetries of 0 uses the default.
func NewRetryingPickProvider(inner PickProvider, logger *slog.Logger, name string, maxRetries uint64) PickProvider {
	if maxRetries == 0 {
		maxRetries = defaultRetries
	}
	return &retryingPickProvider{inner: inner, logger: logger, name: name, retries: maxRetries}
}

func (r *retryingPickProvider) FetchPicks(ctx context.Context) ([]domain.DraftPick, error) {
	var picks []domain.DraftPick
	err := retry(ctx, r.retries, func() error {
		var fetchErr error
		picks, fetchErr = r.inner.FetchPicks(ctx)
		if fetchErr != nil {
			logWithSource(ctx, r.logger, slog.LevelWarn, r.name, "pick fetch retry", "err", fetchErr)
		}
		return fetchErr
	})
	if err != nil {
		return nil, &SourceUnavailableError{Source: r.name, Err: err}
	}
	return picks, nil
}

// retryingRosterProvider wraps a RosterProvider with exponential backoff.
type retryingRosterProvider struct {
	inner   RosterProvider
	logger  *slog.Logger
	name    string
	retries uint64
}

// NewRetryingRosterProvider wraps the given provider with retries.
func NewRetryingRosterProvider(inner RosterProvider, logger *slog.Logger, name string, maxRetries uint64) RosterProvider {
	if maxRetries == 0 {
		maxRetries = defaultRetries
	}
	return &retryingRosterProvider{inner: inner, logger: logger, name: name, retries: maxRetries}
}

func (r *retryingRosterProvider) FetchRoster(ctx context.Context) ([]domain.Prospect, error) {
	var roster []domain.Prospect
	err := retry(ctx, r.retries, func() error {
		var fetchErr error
		roster, fetchErr = r.inner.FetchRoster(ctx)
		if fetchErr != nil {
			logWithSource(ctx, r.logger, slog.LevelWarn, r.name, "roster fetch retry", "err", fetchErr)
		}
		return fetchErr
	})
	if err != nil {
		return nil, &SourceUnavailableError{Source: r.name, Err: err}
	}
	return roster, nil
}

func retry(ctx context.Context, maxRetries uint64, op func() error) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = defaultInitialInterval
	return backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(bo, maxRetries), ctx))
}

// logWithSource emits a log entry if logger is non-nil and always includes the source name.
func logWithSource(ctx context.Context, logger *slog.Logger, level slog.Level, source string, msg string, args ...any) {
	logger = logging.FromContext(ctx, logger)
	if logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldSource, source))
	logger.Log(ctx, level, msg, args...)
}
