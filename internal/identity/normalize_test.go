package identity

import (
	"strings"
	"testing"
)

func TestNormalizeLowercasesAndCollapsesWhitespace(t *testing.T) {
	key := Normalize("  Paul   SKENES ", "LSU")

	if key.NameKey != "paul skenes" {
		t.Fatalf("expected name key %q, got %q", "paul skenes", key.NameKey)
	}
	if key.SchoolKey != "lsu" {
		t.Fatalf("expected school key %q, got %q", "lsu", key.SchoolKey)
	}
	if len(key.NameParts) != 2 || key.NameParts[0] != "paul" || key.NameParts[1] != "skenes" {
		t.Fatalf("unexpected name parts: %v", key.NameParts)
	}
}

func TestNormalizeEmptyNameYieldsEmptyKey(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t\n"} {
		key := Normalize(raw, "Stanford")
		if key.NameKey != "" {
			t.Fatalf("expected empty name key for %q, got %q", raw, key.NameKey)
		}
	}
}

func TestNormalizeMissingSchoolUsesSentinel(t *testing.T) {
	key := Normalize("Jac Caglianone", "")

	if key.SchoolKey != sentinelSchool {
		t.Fatalf("expected sentinel school, got %q", key.SchoolKey)
	}
	if key.HasSchool() {
		t.Fatal("sentinel school should not count as a real school")
	}
}

func TestNormalizeAppliesSurnameVariants(t *testing.T) {
	a := Normalize("Ethan Holliday", "Stillwater HS")
	b := Normalize("Ethan Holiday", "Stillwater HS")

	if a.NameKey != b.NameKey {
		t.Fatalf("variant surnames should normalize identically: %q vs %q", a.NameKey, b.NameKey)
	}
	if !strings.Contains(a.NameKey, "holiday") {
		t.Fatalf("expected canonical surname in key, got %q", a.NameKey)
	}
}

func TestNormalizeIsDeterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		key := Normalize("Seth  Hernandez", "Corona HS")
		if key.NameKey != "seth hernandez" || key.SchoolKey != "corona hs" {
			t.Fatalf("normalization drifted on iteration %d: %+v", i, key)
		}
	}
}
