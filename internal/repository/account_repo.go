package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"benkhawiya-backend/internal/models"
)

type AccountRepo struct {
	pool *pgxpool.Pool
}

func NewAccountRepo(pool *pgxpool.Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

func (r *AccountRepo) Create(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (id, email, password_hash, display_name, user_level)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`

	account.ID = uuid.New()
	account.IsActive = true
	if account.UserLevel == "" {
		account.UserLevel = models.LevelBeginner
	}

	return r.pool.QueryRow(ctx, query,
		account.ID, account.Email, account.PasswordHash, account.DisplayName, account.UserLevel,
	).Scan(&account.CreatedAt, &account.UpdatedAt)
}

func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	account := &models.Account{}
	query := `SELECT id, email, password_hash, display_name, user_level, healing_focus, is_active, created_at, updated_at
		FROM accounts WHERE email = $1`

	err := r.pool.QueryRow(ctx, query, email).Scan(
		&account.ID, &account.Email, &account.PasswordHash, &account.DisplayName,
		&account.UserLevel, &account.HealingFocus, &account.IsActive,
		&account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (r *AccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	account := &models.Account{}
	query := `SELECT id, email, password_hash, display_name, user_level, healing_focus, is_active, created_at, updated_at
		FROM accounts WHERE id = $1`

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&account.ID, &account.Email, &account.PasswordHash, &account.DisplayName,
		&account.UserLevel, &account.HealingFocus, &account.IsActive,
		&account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return account, nil
}

// TouchLastSeen bumps updated_at on successful login.
func (r *AccountRepo) TouchLastSeen(ctx context.Context, accountID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, "UPDATE accounts SET updated_at = $1 WHERE id = $2", time.Now(), accountID)
	return err
}

func (r *AccountRepo) UpdateLevel(ctx context.Context, accountID uuid.UUID, level string) error {
	_, err := r.pool.Exec(ctx,
		"UPDATE accounts SET user_level = $1, updated_at = NOW() WHERE id = $2",
		level, accountID,
	)
	return err
}

// Deactivate soft-deletes; account rows are never physically removed.
func (r *AccountRepo) Deactivate(ctx context.Context, accountID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		"UPDATE accounts SET is_active = FALSE, updated_at = NOW() WHERE id = $1",
		accountID,
	)
	return err
}
