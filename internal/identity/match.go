package identity

import "strings"

// Match decides whether candidate refers to one of the entries and returns
// its index, or -1 for no match. Entries are scanned in order, so callers
// control tie-breaking by how they order the pool.
//
// Rules are tried in strictly decreasing confidence and the first one that
// fires wins; there is no scoring across rules:
//
//  1. Exact NameKey equality.
//  2. First and last name tokens equal, when both sides have at least two
//     tokens. Covers middle names and suffixes differing between sources.
//  3. School-anchored partial match: both sides carry a real school, the
//     schools are equal, and at least one candidate token is a substring of
//     (or contains) an entry token. The school anchor bounds false positives
//     from the loose token comparison.
//
// When several entries satisfy rule 1 or 2 (duplicate display names on the
// roster), an entry whose school equals the candidate's is preferred; with
// no school to disambiguate, the first entry in order wins.
//
// A candidate with an empty NameKey never matches, regardless of school.
func Match(candidate Key, entries []Key) int {
	if candidate.NameKey == "" {
		return -1
	}

	if idx := matchExact(candidate, entries); idx >= 0 {
		return idx
	}
	if idx := matchFirstLast(candidate, entries); idx >= 0 {
		return idx
	}
	return matchSchoolAnchored(candidate, entries)
}

func matchExact(candidate Key, entries []Key) int {
	return preferSchool(candidate, entries, func(e Key) bool {
		return e.NameKey == candidate.NameKey
	})
}

func matchFirstLast(candidate Key, entries []Key) int {
	if len(candidate.NameParts) < 2 {
		return -1
	}
	first := candidate.NameParts[0]
	last := candidate.NameParts[len(candidate.NameParts)-1]

	return preferSchool(candidate, entries, func(e Key) bool {
		if len(e.NameParts) < 2 {
			return false
		}
		return e.NameParts[0] == first && e.NameParts[len(e.NameParts)-1] == last
	})
}

func matchSchoolAnchored(candidate Key, entries []Key) int {
	if !candidate.HasSchool() {
		return -1
	}
	for i, e := range entries {
		if !e.HasSchool() || e.SchoolKey != candidate.SchoolKey {
			continue
		}
		if tokensOverlap(candidate.NameParts, e.NameParts) {
			return i
		}
	}
	return -1
}

// preferSchool collects entries satisfying the rule and, when the candidate
// has a real school and more than one entry qualifies, prefers the entry
// whose school agrees. Otherwise the first qualifying entry wins.
func preferSchool(candidate Key, entries []Key, rule func(Key) bool) int {
	first := -1
	for i, e := range entries {
		if !rule(e) {
			continue
		}
		if first < 0 {
			first = i
		}
		if candidate.HasSchool() && e.SchoolKey == candidate.SchoolKey {
			return i
		}
	}
	return first
}

func tokensOverlap(a, b []string) bool {
	for _, p := range a {
		for _, q := range b {
			if strings.Contains(q, p) || strings.Contains(p, q) {
				return true
			}
		}
	}
	return false
}
