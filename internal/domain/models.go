package domain

import "time"

// Unknown is the sentinel stored in place of any absent field so downstream
// consumers never branch on missing values.
const Unknown = "unknown"

// DraftInfo records the selection details for a drafted prospect.
type DraftInfo struct {
	PickNumber string    `json:"pickNumber"`
	Team       string    `json:"team"`
	Timestamp  time.Time `json:"timestamp"`
}

// Prospect is a player tracked on the roster, independent of whether they
// have been picked. IsDrafted and DraftInfo are set only by draft-status
// resolution; IsDrafted is true iff DraftInfo is non-nil.
type Prospect struct {
	Name      string     `json:"name"`
	Position  string     `json:"position"`
	School    string     `json:"school"`
	Rank      string     `json:"rank,omitempty"`
	IsDrafted bool       `json:"isDrafted"`
	DraftInfo *DraftInfo `json:"draftInfo,omitempty"`
}

// DraftPick is a confirmed selection event observed by a pick source:
// player X was taken at pick N by team T. Timestamp is when the observation
// was made, not the real-world draft time.
type DraftPick struct {
	PickNumber string    `json:"pickNumber"`
	PlayerName string    `json:"playerName"`
	Position   string    `json:"position"`
	School     string    `json:"school"`
	Team       string    `json:"team"`
	Timestamp  time.Time `json:"timestamp"`
}

// Snapshot is the published output of one reconciliation cycle.
type Snapshot struct {
	Roster     []Prospect  `json:"players"`
	Picks      []DraftPick `json:"draftPicks"`
	LastUpdate time.Time   `json:"lastUpdate"`
}

// ApplyDefaults fills absent optional fields with the sentinel.
func (p Prospect) ApplyDefaults() Prospect {
	if p.Position == "" {
		p.Position = Unknown
	}
	if p.School == "" {
		p.School = Unknown
	}
	return p
}

// ApplyDefaults fills absent optional fields with the sentinel.
func (d DraftPick) ApplyDefaults() DraftPick {
	if d.Position == "" {
		d.Position = Unknown
	}
	if d.School == "" {
		d.School = Unknown
	}
	if d.Team == "" {
		d.Team = Unknown
	}
	return d
}
