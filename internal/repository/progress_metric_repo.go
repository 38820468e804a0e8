package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProgressMetricRepo struct {
	pool *pgxpool.Pool
}

func NewProgressMetricRepo(pool *pgxpool.Pool) *ProgressMetricRepo {
	return &ProgressMetricRepo{pool: pool}
}

// Record stores one self-reported metric submission dated today. Scores
// must already be validated to [1,10] by the caller.
func (r *ProgressMetricRepo) Record(ctx context.Context, accountID uuid.UUID, coherenceScore, continuityFeeling int, notes string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO progress_metrics (id, account_id, coherence_score, continuity_feeling, notes)
		 VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), accountID, coherenceScore, continuityFeeling, notes,
	)
	return err
}
