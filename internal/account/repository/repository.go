package repository

import (
	"context"

	"palay-protector/internal/account/domain"
)

// Repository defines persistence for accounts.
type Repository interface {
	// Create inserts the account. Returns domain.ErrDuplicateUsername when the username is taken;
	// the check and the insert are one atomic step.
	Create(ctx context.Context, a *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	// GetByEmail returns the oldest account registered with email, or nil if none.
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	// UpdatePasswordHash overwrites the hash of every account with email. Reports whether any row matched.
	UpdatePasswordHash(ctx context.Context, email, passwordHash string) (bool, error)
}
