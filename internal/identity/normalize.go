package identity

import (
	"strings"

	"mlb-draft-tracker/internal/domain"
)

// sentinelSchool aliases the shared sentinel so an absent school still
// produces a non-empty key.
const sentinelSchool = domain.Unknown

// Key is the normalized comparison form of a name (and optionally a school).
// It is derived transiently for matching and never persisted. An empty
// NameKey means normalization failed and the record carries no identity.
type Key struct {
	NameKey   string
	SchoolKey string
	NameParts []string
}

// surnameVariants maps documented alternate spellings of the same surname to
// a canonical form so both sides of a comparison normalize identically. This
// is a static table, not general fuzzy matching.
var surnameVariants = map[string]string{
	"holliday": "holiday",
}

// Normalize canonicalizes a raw name and school into a Key. It trims and
// lowercases, collapses whitespace runs, splits the name into tokens, and
// applies the surname-variant table per token. It never fails: malformed
// input yields an empty NameKey, which callers must treat as unmatchable.
// An absent school normalizes to the sentinel.
func Normalize(rawName, rawSchool string) Key {
	parts := tokens(rawName)
	for i, p := range parts {
		if canonical, ok := surnameVariants[p]; ok {
			parts[i] = canonical
		}
	}

	school := strings.ToLower(strings.TrimSpace(rawSchool))
	if school == "" {
		school = sentinelSchool
	}

	return Key{
		NameKey:   strings.Join(parts, " "),
		SchoolKey: school,
		NameParts: parts,
	}
}

// HasSchool reports whether the key carries a real (non-sentinel) school.
func (k Key) HasSchool() bool {
	return k.SchoolKey != "" && k.SchoolKey != sentinelSchool
}

func tokens(raw string) []string {
	// Fields both collapses whitespace runs and discards empty tokens.
	return strings.Fields(strings.ToLower(strings.TrimSpace(raw)))
}
