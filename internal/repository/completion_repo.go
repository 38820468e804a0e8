package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"benkhawiya-backend/internal/models"
)

type CompletionRepo struct {
	pool *pgxpool.Pool
}

func NewCompletionRepo(pool *pgxpool.Pool) *CompletionRepo {
	return &CompletionRepo{pool: pool}
}

// RecordAndCount appends a completion and reads back the account's total
// inside one transaction, so the returned count always includes the row
// just written even when other accounts are completing concurrently.
func (r *CompletionRepo) RecordAndCount(ctx context.Context, record *models.CompletionRecord) (int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	record.ID = uuid.New()
	err = tx.QueryRow(ctx,
		`INSERT INTO completions (id, account_id, practice_id, notes, duration_minutes)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING completed_at`,
		record.ID, record.AccountID, record.PracticeID, record.Notes, record.DurationMinutes,
	).Scan(&record.CompletedAt)
	if err != nil {
		return 0, err
	}

	var total int
	err = tx.QueryRow(ctx,
		"SELECT COUNT(*) FROM completions WHERE account_id = $1",
		record.AccountID,
	).Scan(&total)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return total, nil
}

// RecentPracticeIDs returns the ids completed within the trailing window,
// newest first, capped at limit. Feeds daily-selection exclusion.
func (r *CompletionRepo) RecentPracticeIDs(ctx context.Context, accountID uuid.UUID, windowDays, limit int) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT practice_id FROM completions
		 WHERE account_id = $1 AND completed_at >= NOW() - make_interval(days => $2)
		 ORDER BY completed_at DESC LIMIT $3`,
		accountID, windowDays, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]string, 0, limit)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Counts returns all-time, trailing-7-day, and trailing-30-day completion
// counts in a single round trip.
func (r *CompletionRepo) Counts(ctx context.Context, accountID uuid.UUID) (total, weekly, monthly int, err error) {
	err = r.pool.QueryRow(ctx, `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE completed_at >= NOW() - INTERVAL '7 days') AS weekly,
			COUNT(*) FILTER (WHERE completed_at >= NOW() - INTERVAL '30 days') AS monthly
		FROM completions
		WHERE account_id = $1
	`, accountID).Scan(&total, &weekly, &monthly)
	return
}

// DistinctDates returns the distinct calendar days with at least one
// completion, most recent first.
func (r *CompletionRepo) DistinctDates(ctx context.Context, accountID uuid.UUID) ([]time.Time, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT DATE(completed_at) AS d FROM completions
		 WHERE account_id = $1 ORDER BY d DESC`,
		accountID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d pgtype.Date
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d.Time)
	}
	return dates, rows.Err()
}

func (r *CompletionRepo) Recent(ctx context.Context, accountID uuid.UUID, limit int) ([]models.RecentCompletion, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT practice_id, completed_at, notes FROM completions
		 WHERE account_id = $1 ORDER BY completed_at DESC LIMIT $2`,
		accountID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recent := make([]models.RecentCompletion, 0, limit)
	for rows.Next() {
		var rc models.RecentCompletion
		if err := rows.Scan(&rc.PracticeID, &rc.CompletedAt, &rc.Notes); err != nil {
			return nil, err
		}
		recent = append(recent, rc)
	}
	return recent, rows.Err()
}

// DailyHistory returns per-day completion counts for the trailing 30 days,
// most recent day first.
func (r *CompletionRepo) DailyHistory(ctx context.Context, accountID uuid.UUID) ([]models.StreakDay, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT DATE(completed_at) AS d, COUNT(*) FROM completions
		 WHERE account_id = $1 AND completed_at >= NOW() - INTERVAL '30 days'
		 GROUP BY d ORDER BY d DESC`,
		accountID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []models.StreakDay
	for rows.Next() {
		var d pgtype.Date
		var count int
		if err := rows.Scan(&d, &count); err != nil {
			return nil, err
		}
		history = append(history, models.StreakDay{
			Date:      d.Time.Format("2006-01-02"),
			Practices: count,
		})
	}
	return history, rows.Err()
}
