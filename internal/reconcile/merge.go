// Package reconcile combines independently sourced, partially overlapping
// prospect and pick lists into one consistent dataset: an additive merge of
// roster batches and a pure cross-annotation of roster entries with draft
// status. All decisions go through the identity matcher; nothing here talks
// to the network or mutates shared state.
package reconcile

import (
	"mlb-draft-tracker/internal/domain"
	"mlb-draft-tracker/internal/identity"
)

// MergeResult is the outcome of merging an incoming batch into an existing
// roster collection.
type MergeResult struct {
	Result  []domain.Prospect
	Added   int
	Updated int
	Skipped int
}

type poolEntry struct {
	key      identity.Key
	prospect domain.Prospect
}

// Merge folds incoming prospect records into the existing collection.
//
// Each incoming record is normalized and matched against the pool. On a
// match, only fields that are sentinel on the existing record and real on
// the incoming one are filled; authoritative data is never overwritten, and
// Updated counts only records where something actually changed, which makes
// the operation idempotent. Unmatched records are appended as new entries.
// Records whose name normalizes to nothing are skipped and counted, never
// an error. Existing records keep their original order; new records append
// in batch order. No two records in the result share a normalized name key.
func Merge(existing, incoming []domain.Prospect) MergeResult {
	pool := make([]poolEntry, 0, len(existing)+len(incoming))
	for _, p := range existing {
		p = p.ApplyDefaults()
		pool = append(pool, poolEntry{key: identity.Normalize(p.Name, p.School), prospect: p})
	}

	var res MergeResult
	for _, in := range incoming {
		in = in.ApplyDefaults()
		key := identity.Normalize(in.Name, in.School)
		if key.NameKey == "" {
			res.Skipped++
			continue
		}

		idx := identity.Match(key, poolKeys(pool))
		if idx < 0 {
			pool = append(pool, poolEntry{key: key, prospect: in})
			res.Added++
			continue
		}

		merged, changed := fillMissing(pool[idx].prospect, in)
		if changed {
			pool[idx].prospect = merged
			// Re-derive the key in case a sentinel school was filled in.
			pool[idx].key = identity.Normalize(merged.Name, merged.School)
			res.Updated++
		}
	}

	res.Result = make([]domain.Prospect, len(pool))
	for i, e := range pool {
		res.Result[i] = e.prospect
	}
	return res
}

// fillMissing copies incoming fields onto dst only where dst still holds the
// sentinel and the incoming value is real. Rank follows the same policy with
// empty string as its "missing" form.
func fillMissing(dst, in domain.Prospect) (domain.Prospect, bool) {
	changed := false
	if dst.Position == domain.Unknown && in.Position != domain.Unknown {
		dst.Position = in.Position
		changed = true
	}
	if dst.School == domain.Unknown && in.School != domain.Unknown {
		dst.School = in.School
		changed = true
	}
	if dst.Rank == "" && in.Rank != "" {
		dst.Rank = in.Rank
		changed = true
	}
	return dst, changed
}

func poolKeys(pool []poolEntry) []identity.Key {
	keys := make([]identity.Key, len(pool))
	for i, e := range pool {
		keys[i] = e.key
	}
	return keys
}
