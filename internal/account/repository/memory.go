package repository

import (
	"context"
	"sync"
	"time"

	"palay-protector/internal/account/domain"
)

// MemoryRepository keeps accounts in process memory. Used when DATABASE_URL is empty and in tests.
type MemoryRepository struct {
	mu         sync.Mutex
	byID       map[string]*domain.Account
	byUsername map[string]*domain.Account
	order      []string
	nowF       func() time.Time
}

// NewMemoryRepository returns an empty in-memory account repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:       make(map[string]*domain.Account),
		byUsername: make(map[string]*domain.Account),
		nowF:       time.Now,
	}
}

// Create inserts a copy of a. The username check and insert happen under one lock.
func (r *MemoryRepository) Create(ctx context.Context, a *domain.Account) error {
	if err := a.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byUsername[a.Username]; ok {
		return domain.ErrDuplicateUsername
	}
	cp := *a
	r.byID[cp.ID] = &cp
	r.byUsername[cp.Username] = &cp
	r.order = append(r.order, cp.ID)
	return nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return clone(r.byID[id]), nil
}

func (r *MemoryRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return clone(r.byUsername[username]), nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.order {
		if a := r.byID[id]; a.Email == email {
			return clone(a), nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) UpdatePasswordHash(ctx context.Context, email, passwordHash string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.nowF().UTC()
	matched := false
	for _, a := range r.byID {
		if a.Email == email {
			a.PasswordHash = passwordHash
			a.UpdatedAt = now
			matched = true
		}
	}
	return matched, nil
}

func clone(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	cp := *a
	return &cp
}
