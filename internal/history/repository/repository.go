package repository

import (
	"context"

	"palay-protector/internal/history/domain"
)

// Repository defines persistence for detection history.
type Repository interface {
	// Append stores one record. Records are never updated afterwards.
	Append(ctx context.Context, r *domain.Record) error
	// ListByAccount returns the account's records, newest first. Records with equal CreatedAt keep
	// insertion order, so one scan's predictions stay in classifier order. An account without
	// records yields an empty slice.
	ListByAccount(ctx context.Context, accountID string) ([]*domain.Record, error)
}
