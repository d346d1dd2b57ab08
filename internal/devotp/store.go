// Package devotp keeps the latest recovery code per email in memory so it can be read back through
// DevService.GetOTP. Only used when OTP_RETURN_TO_CLIENT is enabled outside production.
package devotp

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Store holds the plain code for an email until it expires. Not used in production.
type Store interface {
	// Put stores code for email until expiresAt, replacing any earlier code for that email.
	Put(ctx context.Context, email, code string, expiresAt time.Time)
	// Get returns the code for email if present and not expired.
	Get(ctx context.Context, email string) (code string, ok bool)
}

type entry struct {
	code      string
	expiresAt time.Time
}

// MemoryStore is an in-memory Store implementation.
type MemoryStore struct {
	mu   sync.RWMutex
	m    map[string]entry
	nowF func() time.Time
}

// NewMemoryStore returns a new in-memory dev OTP store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		m:    make(map[string]entry),
		nowF: time.Now,
	}
}

func key(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Put stores code for email until expiresAt.
func (s *MemoryStore) Put(ctx context.Context, email, code string, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key(email)] = entry{code: code, expiresAt: expiresAt}
}

// Get returns the code for email if present and not expired. Expired entries are dropped.
func (s *MemoryStore) Get(ctx context.Context, email string) (string, bool) {
	k := key(email)
	s.mu.RLock()
	e, ok := s.m[k]
	s.mu.RUnlock()
	if !ok {
		return "", false
	}
	if !s.nowF().Before(e.expiresAt) {
		s.mu.Lock()
		if cur, ok := s.m[k]; ok && cur == e {
			delete(s.m, k)
		}
		s.mu.Unlock()
		return "", false
	}
	return e.code, true
}
