package server

import (
	"context"

	"mlb-draft-tracker/internal/poller"
)

// Poller defines the minimal reconciliation-loop behavior needed by the server.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() poller.Status
	RunCycle(ctx context.Context) error
	RunReplace(ctx context.Context) error
}
