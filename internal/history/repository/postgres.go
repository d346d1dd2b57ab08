package repository

import (
	"context"
	"database/sql"
	"fmt"

	"palay-protector/internal/history/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a history repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Append inserts the record; seq is assigned by the database.
func (r *PostgresRepository) Append(ctx context.Context, rec *domain.Record) error {
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("history: %w", err)
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO history (id, account_id, created_at, label, confidence) VALUES ($1, $2, $3, $4, $5)`,
		rec.ID, rec.AccountID, rec.CreatedAt, rec.Label, rec.Confidence,
	)
	return err
}

// ListByAccount returns records for accountID ordered by created_at DESC; records sharing a timestamp keep insertion order.
func (r *PostgresRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.Record, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, account_id, created_at, label, confidence FROM history
		 WHERE account_id = $1 ORDER BY created_at DESC, seq ASC`, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*domain.Record, 0)
	for rows.Next() {
		var rec domain.Record
		if err := rows.Scan(&rec.ID, &rec.AccountID, &rec.CreatedAt, &rec.Label, &rec.Confidence); err != nil {
			return nil, err
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}
