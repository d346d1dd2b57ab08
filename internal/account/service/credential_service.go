package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"palay-protector/internal/account/domain"
	"palay-protector/internal/security"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// AccountRepo is the minimal account repository needed by the credential service.
type AccountRepo interface {
	Create(ctx context.Context, a *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	UpdatePasswordHash(ctx context.Context, email, passwordHash string) (bool, error)
}

// CredentialService creates accounts, authenticates them and resets their passwords.
// Plaintext passwords are only ever passed to the hasher.
type CredentialService struct {
	repo   AccountRepo
	hasher *security.Hasher
	nowF   func() time.Time
}

// NewCredentialService returns a CredentialService with the given dependencies.
func NewCredentialService(repo AccountRepo, hasher *security.Hasher) *CredentialService {
	return &CredentialService{repo: repo, hasher: hasher, nowF: time.Now}
}

// CreateAccount registers a new account. Returns domain.ErrValidation (wrapped with detail) for bad
// input and domain.ErrDuplicateUsername when the username is taken; the store is unchanged on error.
func (s *CredentialService) CreateAccount(ctx context.Context, username, email, phone, password string) (*domain.Account, error) {
	username = strings.TrimSpace(username)
	email = NormalizeEmail(email)
	phone = strings.TrimSpace(phone)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	now := s.nowF().UTC()
	a := &domain.Account{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Authenticate returns the account whose username matches exactly and whose password verifies.
// Unknown usernames and wrong passwords both yield domain.ErrNotFound.
func (s *CredentialService) Authenticate(ctx context.Context, username, password string) (*domain.Account, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrValidation)
	}
	a, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if a == nil || !s.hasher.Matches(a.PasswordHash, password) {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

// FindByEmail returns the account registered with email, or domain.ErrNotFound.
func (s *CredentialService) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	email = NormalizeEmail(email)
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	a, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

// GetAccount returns the account with id, or domain.ErrNotFound.
func (s *CredentialService) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

// UpdatePassword replaces the password of the account(s) registered with email. Idempotent.
func (s *CredentialService) UpdatePassword(ctx context.Context, email, newPassword string) error {
	email = NormalizeEmail(email)
	if err := ValidatePassword(newPassword); err != nil {
		return err
	}
	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	ok, err := s.repo.UpdatePasswordHash(ctx, email, hash)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail checks that email is present and well formed.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: invalid email format", domain.ErrValidation)
	}
	return nil
}

// ValidatePassword enforces the password length bounds. The upper bound is in bytes, as bcrypt counts it.
func ValidatePassword(password string) error {
	if len(password) < domain.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, domain.MinPasswordLength)
	}
	if len(password) > domain.MaxPasswordBytes {
		return fmt.Errorf("%w: password must be at most %d bytes", domain.ErrValidation, domain.MaxPasswordBytes)
	}
	return nil
}
