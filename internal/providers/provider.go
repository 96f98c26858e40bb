package providers

import (
	"context"

	"mlb-draft-tracker/internal/domain"
)

// RosterProvider fetches the authoritative prospect roster. Implementations
// return plain records with sentinel defaults applied; an empty slice is a
// valid result (empty source), while an error means no data this cycle.
type RosterProvider interface {
	FetchRoster(ctx context.Context) ([]domain.Prospect, error)
}

// PickProvider fetches the confirmed draft picks. Each successful fetch is
// authoritative for its cycle and replaces, never appends to, the previous
// pick list.
type PickProvider interface {
	FetchPicks(ctx context.Context) ([]domain.DraftPick, error)
}

// RosterSink accepts the merged roster for full-overwrite write-back. It is
// always given the complete collection, never a diff.
type RosterSink interface {
	WriteRoster(ctx context.Context, roster []domain.Prospect) error
}
