package reconcile

import (
	"sort"
	"strconv"

	"mlb-draft-tracker/internal/domain"
	"mlb-draft-tracker/internal/identity"
)

// ResolveDraftStatus cross-references the roster against the cycle's picks,
// marking each roster entry that a pick identifies as drafted. The pick's
// name and school act as the match candidate against the roster pool, using
// the same ordered rules as the merge path. Picks that match no roster entry
// are simply players outside the tracked roster, not errors; they stay in
// the pick list untouched.
//
// The function is pure: it returns a fresh roster slice with annotations
// rebuilt from scratch, so the same inputs always produce the same output
// and no state leaks between invocations.
func ResolveDraftStatus(roster []domain.Prospect, picks []domain.DraftPick) []domain.Prospect {
	out := make([]domain.Prospect, len(roster))
	keys := make([]identity.Key, len(roster))
	for i, p := range roster {
		p = p.ApplyDefaults()
		p.IsDrafted = false
		p.DraftInfo = nil
		out[i] = p
		keys[i] = identity.Normalize(p.Name, p.School)
	}

	for _, pick := range picks {
		pick = pick.ApplyDefaults()
		candidate := identity.Normalize(pick.PlayerName, pick.School)
		idx := identity.Match(candidate, keys)
		if idx < 0 || out[idx].IsDrafted {
			continue
		}
		out[idx].IsDrafted = true
		out[idx].DraftInfo = &domain.DraftInfo{
			PickNumber: pick.PickNumber,
			Team:       pick.Team,
			Timestamp:  pick.Timestamp,
		}
	}

	return out
}

// DedupePicks collapses repeated observations of the same pick. Two scrape
// passes can extract one selection twice, so pick number plus normalized
// player name forms the de-duplication key; the first observation wins.
// Pick numbers carry no roster meaning and are never used to match players.
func DedupePicks(picks []domain.DraftPick) []domain.DraftPick {
	seen := make(map[string]struct{}, len(picks))
	out := make([]domain.DraftPick, 0, len(picks))
	for _, p := range picks {
		p = p.ApplyDefaults()
		key := p.PickNumber + "|" + identity.Normalize(p.PlayerName, "").NameKey
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	return out
}

// SortPicks orders picks by numeric pick number, with non-numeric pick
// numbers sorting last in their original relative order.
func SortPicks(picks []domain.DraftPick) {
	sort.SliceStable(picks, func(i, j int) bool {
		return pickOrdinal(picks[i]) < pickOrdinal(picks[j])
	})
}

func pickOrdinal(p domain.DraftPick) int {
	n, err := strconv.Atoi(p.PickNumber)
	if err != nil || n <= 0 {
		return int(^uint(0) >> 1) // max int
	}
	return n
}
