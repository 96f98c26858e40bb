package tracker

import (
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"mlb-draft-tracker/internal/domain"
)

// Pattern for flat text lines like "Pick 5: Eli Willits - SS - Fort Cobb-Broxton HS".
var pickLinePattern = regexp.MustCompile(`(?i)^(?:pick|#)\s*(\d+)[:.]?\s+(.+)$`)

// parsePicks extracts draft picks from the tracker page HTML.
//
// Two strategies run in order and their results are combined: structured
// elements carrying data-pick-number attributes (the tracker's pick cards),
// then a regex sweep over text lines for markup we do not recognize.
// Duplicate observations across strategies are left in place; the reconcile
// layer collapses them by pick number and player name.
func parsePicks(r io.Reader, observed time.Time) ([]domain.DraftPick, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	picks := parseStructured(doc, observed)
	picks = append(picks, parseTextLines(doc, observed)...)
	return picks, nil
}

func parseStructured(doc *goquery.Document, observed time.Time) []domain.DraftPick {
	picks := make([]domain.DraftPick, 0)

	doc.Find("[data-pick-number], [data-pick]").Each(func(i int, sel *goquery.Selection) {
		number := sel.AttrOr("data-pick-number", "")
		if number == "" {
			number = sel.AttrOr("data-pick", "")
		}
		name := firstText(sel, ".player-name", ".prospect-name", "h3", "h4")
		if number == "" || name == "" {
			return
		}

		pick := domain.DraftPick{
			PickNumber: strings.TrimSpace(number),
			PlayerName: name,
			Position:   firstText(sel, ".player-position", ".position"),
			School:     firstText(sel, ".player-school", ".school"),
			Team:       firstText(sel, ".team-name", ".team"),
			Timestamp:  observed,
		}
		picks = append(picks, pick.ApplyDefaults())
	})

	return picks
}

func parseTextLines(doc *goquery.Document, observed time.Time) []domain.DraftPick {
	picks := make([]domain.DraftPick, 0)

	for _, line := range strings.Split(doc.Text(), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		matches := pickLinePattern.FindStringSubmatch(line)
		if matches == nil {
			continue
		}
		if pick, ok := parsePickDetails(matches[1], matches[2], observed); ok {
			picks = append(picks, pick)
		}
	}

	return picks
}

// parsePickDetails splits the remainder of a pick line into name, position,
// school, and team. Fields are separated by " - " with the team, when
// present, last.
func parsePickDetails(number, rest string, observed time.Time) (domain.DraftPick, bool) {
	parts := strings.Split(rest, " - ")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	name := parts[0]
	// Guard against footer noise that happens to look like a pick line.
	if len(name) < 3 || strings.Contains(name, "©") || strings.Contains(name, "http") {
		return domain.DraftPick{}, false
	}

	pick := domain.DraftPick{
		PickNumber: number,
		PlayerName: name,
		Timestamp:  observed,
	}
	if len(parts) > 1 {
		pick.Position = parts[1]
	}
	if len(parts) > 2 {
		pick.School = parts[2]
	}
	if len(parts) > 3 {
		pick.Team = parts[3]
	}
	return pick.ApplyDefaults(), true
}

func firstText(sel *goquery.Selection, selectors ...string) string {
	for _, s := range selectors {
		if text := strings.TrimSpace(sel.Find(s).First().Text()); text != "" {
			return text
		}
	}
	return ""
}
