package domain

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for the credential store; the session handler maps them to gRPC codes.
var (
	ErrValidation        = errors.New("validation failed")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrNotFound          = errors.New("account not found")
)

// MinPasswordLength is the minimum accepted length for a new or reset password.
const MinPasswordLength = 6

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// Account is a registered farmer. It is created on signup and only ever mutated by a password change.
type Account struct {
	ID           string
	Username     string
	Email        string
	Phone        string // optional
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate validates the account for persistence. Returns ErrValidation wrapping the first failure.
func (a *Account) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("%w: id is required", ErrValidation)
	}
	if a.Username == "" {
		return fmt.Errorf("%w: username is required", ErrValidation)
	}
	if a.PasswordHash == "" {
		return fmt.Errorf("%w: password hash is required", ErrValidation)
	}
	return nil
}
