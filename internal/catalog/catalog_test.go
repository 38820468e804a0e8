package catalog

import (
	"testing"
	"time"
)

func TestForLevel_KnownLevels(t *testing.T) {
	c := New()

	for _, level := range []string{"beginner", "intermediate", "advanced"} {
		entries := c.ForLevel(level)
		if len(entries) == 0 {
			t.Errorf("Expected entries for level %q, got none", level)
		}
	}
}

func TestForLevel_UnknownLevelFallsBackToBeginner(t *testing.T) {
	c := New()

	entries := c.ForLevel("transcendent")
	beginner := c.ForLevel("beginner")

	if len(entries) != len(beginner) {
		t.Fatalf("Expected fallback to beginner set (%d entries), got %d", len(beginner), len(entries))
	}
	for i := range entries {
		if entries[i].ID != beginner[i].ID {
			t.Errorf("Entry %d: expected %q, got %q", i, beginner[i].ID, entries[i].ID)
		}
	}
}

func TestLookup(t *testing.T) {
	c := New()

	entry, ok := c.Lookup("reconnection_breathing")
	if !ok {
		t.Fatal("Expected to find reconnection_breathing")
	}
	if entry.Duration != 5 {
		t.Errorf("Expected duration 5, got %d", entry.Duration)
	}

	if _, ok := c.Lookup("nonexistent_practice"); ok {
		t.Error("Expected lookup miss for unknown id")
	}
}

func TestValidate(t *testing.T) {
	if err := New().Validate(); err != nil {
		t.Errorf("Expected populated catalog to validate, got %v", err)
	}
}

func TestValidate_EmptyCatalog(t *testing.T) {
	c := &Catalog{byLevel: nil}
	if err := c.Validate(); err != ErrEmptyCatalog {
		t.Errorf("Expected ErrEmptyCatalog, got %v", err)
	}
}

func TestSelectDaily_Deterministic(t *testing.T) {
	c := New()
	now := time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)

	first := c.SelectDaily(now, "beginner", nil)
	for i := 0; i < 10; i++ {
		again := c.SelectDaily(now, "beginner", nil)
		if again.ID != first.ID {
			t.Fatalf("Selection not deterministic: got %q then %q", first.ID, again.ID)
		}
	}
}

func TestSelectDaily_RotatesByDay(t *testing.T) {
	c := New()
	day1 := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	p1 := c.SelectDaily(day1, "beginner", nil)
	p2 := c.SelectDaily(day2, "beginner", nil)

	// Beginner has 2 entries, so consecutive days alternate.
	if p1.ID == p2.ID {
		t.Errorf("Expected consecutive days to pick different entries, both got %q", p1.ID)
	}
}

func TestSelectDaily_ExcludesRecent(t *testing.T) {
	c := New()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	picked := c.SelectDaily(now, "beginner", []string{"reconnection_breathing"})
	if picked.ID == "reconnection_breathing" {
		t.Error("Expected recently completed practice to be excluded")
	}
}

func TestSelectDaily_FallsBackWhenAllExcluded(t *testing.T) {
	c := New()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	picked := c.SelectDaily(now, "beginner", []string{"reconnection_breathing", "ancestral_grounding"})
	if picked.ID == "" {
		t.Fatal("Expected a practice even when every candidate is excluded")
	}
}

func TestSelectDaily_LeapYearDay(t *testing.T) {
	c := New()
	// Dec 31 of a leap year is ordinal day 366.
	now := time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC)

	picked := c.SelectDaily(now, "intermediate", nil)
	if picked.ID != "identity_integration" {
		t.Errorf("Expected the single intermediate entry, got %q", picked.ID)
	}
}
