package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"palay-protector/internal/account/domain"
	"palay-protector/internal/db"
)

const usernameConstraint = "accounts_username_key"

const accountColumns = `id, username, email, phone, password_hash, created_at, updated_at`

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns an account repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create persists the account. The account must have ID set; it is not assigned by this method.
func (r *PostgresRepository) Create(ctx context.Context, a *domain.Account) error {
	if err := a.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO accounts (`+accountColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.Username, a.Email, a.Phone, a.PasswordHash, a.CreatedAt, a.UpdatedAt,
	)
	if db.IsUniqueViolation(err, usernameConstraint) {
		return domain.ErrDuplicateUsername
	}
	return err
}

// GetByID returns the account for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
	return scanAccount(row)
}

// GetByUsername returns the account with the exact username, or nil if not found.
func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE username = $1`, username)
	return scanAccount(row)
}

// GetByEmail returns the oldest account with email, or nil if not found.
func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE email = $1 ORDER BY created_at ASC, id ASC LIMIT 1`, email)
	return scanAccount(row)
}

// UpdatePasswordHash sets password_hash for all accounts with email.
func (r *PostgresRepository) UpdatePasswordHash(ctx context.Context, email, passwordHash string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE accounts SET password_hash = $2, updated_at = $3 WHERE email = $1`,
		email, passwordHash, time.Now().UTC(),
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func scanAccount(row *sql.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.ID, &a.Username, &a.Email, &a.Phone, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}
