package statsapi

import (
	"strconv"
	"strings"
	"time"

	"mlb-draft-tracker/internal/domain"
)

// mapPick converts an upstream pick to a domain record. It reports false for
// slots that do not represent an announced selection yet: passed picks and
// picks with no player name.
func mapPick(p apiPick, observed time.Time) (domain.DraftPick, bool) {
	if p.IsPass || !p.IsDrafted {
		return domain.DraftPick{}, false
	}
	name := strings.TrimSpace(p.Person.FullName)
	if name == "" {
		return domain.DraftPick{}, false
	}

	pick := domain.DraftPick{
		PickNumber: strconv.Itoa(p.PickNumber),
		PlayerName: name,
		Position:   strings.TrimSpace(p.Person.PrimaryPosition.Abbreviation),
		School:     strings.TrimSpace(p.School.Name),
		Team:       strings.TrimSpace(p.Team.Name),
		Timestamp:  observed,
	}
	return pick.ApplyDefaults(), true
}
