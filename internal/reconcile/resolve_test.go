package reconcile

import (
	"reflect"
	"testing"
	"time"

	"mlb-draft-tracker/internal/domain"
)

var pickTime = time.Date(2025, 7, 13, 18, 5, 0, 0, time.UTC)

func pick(number, name, school, team string) domain.DraftPick {
	return domain.DraftPick{
		PickNumber: number,
		PlayerName: name,
		School:     school,
		Team:       team,
		Timestamp:  pickTime,
	}
}

func TestResolveMarksDraftedProspects(t *testing.T) {
	roster := []domain.Prospect{
		prospect("Eli Willits", "SS", "Fort Cobb-Broxton HS"),
		prospect("Kade Anderson", "LHP", "LSU"),
	}
	picks := []domain.DraftPick{pick("1", "Eli Willits", "", "Nationals")}

	out := ResolveDraftStatus(roster, picks)

	if !out[0].IsDrafted || out[0].DraftInfo == nil {
		t.Fatalf("expected first prospect drafted: %+v", out[0])
	}
	if out[0].DraftInfo.PickNumber != "1" || out[0].DraftInfo.Team != "Nationals" {
		t.Fatalf("unexpected draft info: %+v", out[0].DraftInfo)
	}
	if !out[0].DraftInfo.Timestamp.Equal(pickTime) {
		t.Fatalf("timestamp not carried: %v", out[0].DraftInfo.Timestamp)
	}
	if out[1].IsDrafted || out[1].DraftInfo != nil {
		t.Fatalf("undrafted prospect was marked: %+v", out[1])
	}
}

func TestResolveUnmatchedPickLeavesRosterAlone(t *testing.T) {
	roster := []domain.Prospect{prospect("Kade Anderson", "LHP", "LSU")}
	picks := []domain.DraftPick{pick("2", "Tyler Bremner", "UC Santa Barbara", "Angels")}

	out := ResolveDraftStatus(roster, picks)

	if out[0].IsDrafted {
		t.Fatalf("pick for an untracked player must not mark anyone: %+v", out[0])
	}
}

func TestResolveDuplicateNamesUseSchool(t *testing.T) {
	roster := []domain.Prospect{
		prospect("Chris Smith", "RHP", "Florida"),
		prospect("Chris Smith", "OF", "Texas"),
	}
	picks := []domain.DraftPick{pick("7", "Chris Smith", "Texas", "Marlins")}

	out := ResolveDraftStatus(roster, picks)

	if out[0].IsDrafted {
		t.Fatalf("wrong duplicate marked: %+v", out[0])
	}
	if !out[1].IsDrafted {
		t.Fatalf("school-consistent duplicate not marked: %+v", out[1])
	}
}

func TestResolveFirstPickWinsForSameProspect(t *testing.T) {
	roster := []domain.Prospect{prospect("Eli Willits", "SS", "Fort Cobb-Broxton HS")}
	picks := []domain.DraftPick{
		pick("1", "Eli Willits", "", "Nationals"),
		pick("9", "Eli Willits", "", "Reds"),
	}

	out := ResolveDraftStatus(roster, picks)

	if out[0].DraftInfo == nil || out[0].DraftInfo.PickNumber != "1" {
		t.Fatalf("first observation should win: %+v", out[0].DraftInfo)
	}
}

func TestResolveIsPureAndRebuildsAnnotations(t *testing.T) {
	roster := []domain.Prospect{
		{Name: "Kade Anderson", Position: "LHP", School: "LSU", IsDrafted: true, DraftInfo: &domain.DraftInfo{PickNumber: "99"}},
	}

	out := ResolveDraftStatus(roster, nil)

	if out[0].IsDrafted || out[0].DraftInfo != nil {
		t.Fatalf("stale annotation survived resolution: %+v", out[0])
	}
	if !roster[0].IsDrafted {
		t.Fatalf("input slice was mutated")
	}
}

func TestResolveDeterministic(t *testing.T) {
	roster := []domain.Prospect{
		prospect("Eli Willits", "SS", "Fort Cobb-Broxton HS"),
		prospect("Tyler Bremner", "RHP", "UC Santa Barbara"),
		prospect("Kade Anderson", "LHP", "LSU"),
	}
	picks := []domain.DraftPick{
		pick("1", "Eli Willits", "", "Nationals"),
		pick("2", "Tyler Bremner", "", "Angels"),
		pick("3", "Kade Anderson", "", "Mariners"),
	}

	base := ResolveDraftStatus(roster, picks)
	for i := 0; i < 5; i++ {
		if !reflect.DeepEqual(base, ResolveDraftStatus(roster, picks)) {
			t.Fatalf("resolution varies across runs (iteration %d)", i)
		}
	}
}

func TestDedupePicksCollapsesRepeats(t *testing.T) {
	picks := []domain.DraftPick{
		pick("1", "Eli Willits", "", "Nationals"),
		pick("1", "eli  willits", "", "Nationals"),
		pick("2", "Tyler Bremner", "", "Angels"),
	}

	out := DedupePicks(picks)

	if len(out) != 2 {
		t.Fatalf("expected 2 picks after dedupe, got %d", len(out))
	}
	if out[0].PlayerName != "Eli Willits" {
		t.Fatalf("first observation should win: %+v", out[0])
	}
}

func TestDedupePicksKeepsSameNumberDifferentPlayers(t *testing.T) {
	picks := []domain.DraftPick{
		pick("1", "Eli Willits", "", "Nationals"),
		pick("1", "Kade Anderson", "", "Nationals"),
	}

	if out := DedupePicks(picks); len(out) != 2 {
		t.Fatalf("conflicting observations must both survive, got %d", len(out))
	}
}

func TestSortPicksNumericOrder(t *testing.T) {
	picks := []domain.DraftPick{
		pick("10", "J", "", ""),
		pick("2", "B", "", ""),
		pick("1", "A", "", ""),
	}

	SortPicks(picks)

	if picks[0].PickNumber != "1" || picks[1].PickNumber != "2" || picks[2].PickNumber != "10" {
		t.Fatalf("picks not in numeric order: %+v", picks)
	}
}

func TestSortPicksNonNumericLast(t *testing.T) {
	picks := []domain.DraftPick{
		pick("comp-a", "X", "", ""),
		pick("3", "C", "", ""),
		pick("comp-b", "Y", "", ""),
	}

	SortPicks(picks)

	if picks[0].PickNumber != "3" {
		t.Fatalf("numeric pick should sort first: %+v", picks)
	}
	if picks[1].PickNumber != "comp-a" || picks[2].PickNumber != "comp-b" {
		t.Fatalf("non-numeric picks must keep relative order: %+v", picks)
	}
}
