package services

import (
	"testing"
	"time"
)

func day(t time.Time, offset int) time.Time {
	return t.AddDate(0, 0, offset)
}

func TestCalculateStreak(t *testing.T) {
	today := time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		offsets  []int // days back from today, descending
		expected int
	}{
		{"no completions", nil, 0},
		{"only today", []int{0}, 1},
		{"three consecutive days", []int{0, -1, -2}, 3},
		{"one gap forgiven", []int{0, -2}, 2},
		{"two consecutive misses break", []int{0, -3}, 1},
		{"gap then continuation", []int{0, -2, -3}, 3},
		{"streak not starting today", []int{-1, -2}, 2},
		{"last activity two days back", []int{-2, -3}, 0},
		{"second isolated gap ends the walk", []int{0, -2, -4}, 2},
		{"long clean run", []int{0, -1, -2, -3, -4, -5, -6}, 7},
		{"old history only", []int{-10, -11}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dates := make([]time.Time, 0, len(tc.offsets))
			for _, off := range tc.offsets {
				dates = append(dates, day(today, off))
			}

			result := CalculateStreak(today, dates)
			if result != tc.expected {
				t.Errorf("Expected streak %d, got %d", tc.expected, result)
			}
		})
	}
}

func TestCalculateStreak_AcrossYearBoundary(t *testing.T) {
	today := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	dates := []time.Time{
		time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	}

	if got := CalculateStreak(today, dates); got != 3 {
		t.Errorf("Expected streak 3 across year boundary, got %d", got)
	}
}

func TestJourneyState(t *testing.T) {
	if journeyState(0) != "beginning" {
		t.Error("Expected 'beginning' for zero weekly completions")
	}
	if journeyState(1) != "active" {
		t.Error("Expected 'active' for nonzero weekly completions")
	}
}
