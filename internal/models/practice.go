package models

import (
	"time"

	"github.com/google/uuid"
)

// PracticeEntry is a static catalog item. Entries are defined at process
// start and never mutated.
type PracticeEntry struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Duration int      `json:"duration"`
	Steps    []string `json:"steps"`
	Focus    string   `json:"focus"`
	Benefits []string `json:"benefits"`
}

// CompletionRecord is immutable once written.
type CompletionRecord struct {
	ID              uuid.UUID `json:"id"`
	AccountID       uuid.UUID `json:"account_id"`
	PracticeID      string    `json:"practice_id"`
	CompletedAt     time.Time `json:"completed_at"`
	Notes           *string   `json:"notes"`
	DurationMinutes int       `json:"duration_minutes"`
}

type CompleteRequest struct {
	PracticeID string `json:"practice_id"`
	Notes      string `json:"notes"`
}

type UpdateLevelRequest struct {
	UserLevel string `json:"user_level"`
}

type ProgressMetricRequest struct {
	CoherenceScore    *int   `json:"coherence_score"`
	ContinuityFeeling *int   `json:"continuity_feeling"`
	Notes             string `json:"notes"`
}

// RecentCompletion is the trimmed view returned inside a progress summary.
type RecentCompletion struct {
	PracticeID  string    `json:"practice_id"`
	CompletedAt time.Time `json:"completed_at"`
	Notes       *string   `json:"notes"`
}

// ProgressSummary collects all counters for the progress read model. Every
// field is recomputed from persisted history at call time.
type ProgressSummary struct {
	UserID             uuid.UUID          `json:"user_id"`
	TotalPractices     int                `json:"total_practices"`
	WeeklyCompletions  int                `json:"weekly_completions"`
	MonthlyCompletions int                `json:"monthly_completions"`
	CurrentStreak      int                `json:"current_streak"`
	RecentPractices    []RecentCompletion `json:"recent_practices"`
	HealingJourney     string             `json:"healing_journey"`
	Message            string             `json:"message"`
}

// StreakDay is one entry of the trailing-30-day streak history.
type StreakDay struct {
	Date      string `json:"date"`
	Practices int    `json:"practices"`
}

type StreakDetail struct {
	CurrentStreak int         `json:"current_streak"`
	StreakHistory []StreakDay `json:"streak_history"`
	LongestStreak int         `json:"longest_streak"`
}
