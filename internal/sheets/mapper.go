package sheets

import (
	"strings"

	"mlb-draft-tracker/internal/domain"
)

// Column layout shared by reads and writes: Name, Position, School, Rank.
var headerRow = []interface{}{"Name", "Position", "School", "Rank"}

// rowsToProspects maps sheet rows to prospect records, skipping the header
// row and rows without a name. Missing cells fall back to sentinels.
func rowsToProspects(rows [][]interface{}) []domain.Prospect {
	out := make([]domain.Prospect, 0, len(rows))
	for i, row := range rows {
		name := cell(row, 0)
		if name == "" {
			continue
		}
		if i == 0 && strings.EqualFold(name, "name") {
			continue
		}
		p := domain.Prospect{
			Name:     name,
			Position: cell(row, 1),
			School:   cell(row, 2),
			Rank:     cell(row, 3),
		}
		out = append(out, p.ApplyDefaults())
	}
	return out
}

// prospectsToRows maps the roster back to sheet rows, header first. The
// sentinel is written as an empty cell so the sheet stays readable.
func prospectsToRows(roster []domain.Prospect) [][]interface{} {
	rows := make([][]interface{}, 0, len(roster)+1)
	rows = append(rows, headerRow)
	for _, p := range roster {
		rows = append(rows, []interface{}{
			p.Name,
			blankSentinel(p.Position),
			blankSentinel(p.School),
			p.Rank,
		})
	}
	return rows
}

func cell(row []interface{}, idx int) string {
	if idx >= len(row) {
		return ""
	}
	s, _ := row[idx].(string)
	return strings.TrimSpace(s)
}

func blankSentinel(v string) string {
	if v == domain.Unknown {
		return ""
	}
	return v
}
