package services

import (
	"context"
	"time"

	"benkhawiya-backend/internal/catalog"
	"benkhawiya-backend/internal/models"
	"benkhawiya-backend/internal/repository"
)

const (
	// Daily selection ignores practices completed in the trailing 3 days.
	exclusionWindowDays = 3
	exclusionFetchLimit = 5

	recentCompletionLimit = 5
)

type PracticeService struct {
	catalog        *catalog.Catalog
	completionRepo *repository.CompletionRepo
	metricRepo     *repository.ProgressMetricRepo
}

func NewPracticeService(cat *catalog.Catalog, completionRepo *repository.CompletionRepo, metricRepo *repository.ProgressMetricRepo) *PracticeService {
	return &PracticeService{
		catalog:        cat,
		completionRepo: completionRepo,
		metricRepo:     metricRepo,
	}
}

// Daily resolves today's practice for the account: recently completed ids
// are excluded, then the catalog's deterministic day-of-year selection
// picks from what remains.
func (s *PracticeService) Daily(ctx context.Context, account *models.Account) (models.PracticeEntry, error) {
	recentIDs, err := s.completionRepo.RecentPracticeIDs(ctx, account.ID, exclusionWindowDays, exclusionFetchLimit)
	if err != nil {
		return models.PracticeEntry{}, storeError(err)
	}

	return s.catalog.SelectDaily(time.Now(), account.UserLevel, recentIDs), nil
}

// Complete validates the practice against the catalog, then appends the
// completion and reads the new total in one transaction.
func (s *PracticeService) Complete(ctx context.Context, account *models.Account, req models.CompleteRequest) (*models.CompletionRecord, int, error) {
	if req.PracticeID == "" {
		return nil, 0, &ValidationError{Fields: map[string]string{
			"practice_id": "Practice ID is required",
		}}
	}

	entry, ok := s.catalog.Lookup(req.PracticeID)
	if !ok {
		return nil, 0, &ValidationError{Fields: map[string]string{
			"practice_id": "Unknown practice ID",
		}}
	}

	record := &models.CompletionRecord{
		AccountID:       account.ID,
		PracticeID:      entry.ID,
		DurationMinutes: entry.Duration,
	}
	if req.Notes != "" {
		record.Notes = &req.Notes
	}

	total, err := s.completionRepo.RecordAndCount(ctx, record)
	if err != nil {
		return nil, 0, storeError(err)
	}
	return record, total, nil
}

// Progress recomputes the full progress read model from persisted
// history. Nothing is cached or incrementally maintained.
func (s *PracticeService) Progress(ctx context.Context, account *models.Account) (*models.ProgressSummary, error) {
	total, weekly, monthly, err := s.completionRepo.Counts(ctx, account.ID)
	if err != nil {
		return nil, storeError(err)
	}

	dates, err := s.completionRepo.DistinctDates(ctx, account.ID)
	if err != nil {
		return nil, storeError(err)
	}

	recent, err := s.completionRepo.Recent(ctx, account.ID, recentCompletionLimit)
	if err != nil {
		return nil, storeError(err)
	}

	return &models.ProgressSummary{
		UserID:             account.ID,
		TotalPractices:     total,
		WeeklyCompletions:  weekly,
		MonthlyCompletions: monthly,
		CurrentStreak:      CalculateStreak(today(), dates),
		RecentPractices:    recent,
		HealingJourney:     journeyState(weekly),
		Message:            "Every practice moves you toward wholeness and continuity",
	}, nil
}

// Streak returns the detailed streak read model: the current streak plus
// per-day completion counts over the trailing 30 days.
func (s *PracticeService) Streak(ctx context.Context, account *models.Account) (*models.StreakDetail, error) {
	dates, err := s.completionRepo.DistinctDates(ctx, account.ID)
	if err != nil {
		return nil, storeError(err)
	}

	history, err := s.completionRepo.DailyHistory(ctx, account.ID)
	if err != nil {
		return nil, storeError(err)
	}
	if history == nil {
		history = []models.StreakDay{}
	}

	current := CalculateStreak(today(), dates)
	return &models.StreakDetail{
		CurrentStreak: current,
		StreakHistory: history,
		LongestStreak: current,
	}, nil
}

// RecordMetrics stores a self-reported progress submission. Both scores
// are required and must fall in [1,10]; out-of-range values are rejected
// outright rather than clamped.
func (s *PracticeService) RecordMetrics(ctx context.Context, account *models.Account, req models.ProgressMetricRequest) error {
	if req.CoherenceScore == nil || req.ContinuityFeeling == nil {
		return &ValidationError{Fields: map[string]string{
			"scores": "Both coherence_score and continuity_feeling are required",
		}}
	}
	if *req.CoherenceScore < 1 || *req.CoherenceScore > 10 ||
		*req.ContinuityFeeling < 1 || *req.ContinuityFeeling > 10 {
		return &ValidationError{Fields: map[string]string{
			"scores": "Scores must be between 1 and 10",
		}}
	}

	if err := s.metricRepo.Record(ctx, account.ID, *req.CoherenceScore, *req.ContinuityFeeling, req.Notes); err != nil {
		return storeError(err)
	}
	return nil
}

// CalculateStreak counts consecutive qualifying days backward from today
// over distinct completion dates sorted most recent first. A single
// missed day is forgiven: a date landing exactly one day before the next
// expected slot still extends the streak. Two consecutive missed days end
// it. The forgiveness applies per gap, not once per streak.
func CalculateStreak(today time.Time, dates []time.Time) int {
	streak := 0
	for _, date := range dates {
		expected := today.AddDate(0, 0, -streak)
		switch {
		case sameDay(date, expected):
			streak++
		case sameDay(date, expected.AddDate(0, 0, -1)):
			streak++
		default:
			return streak
		}
	}
	return streak
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func journeyState(weeklyCompletions int) string {
	if weeklyCompletions > 0 {
		return "active"
	}
	return "beginning"
}
