// Package otp issues and verifies time-boxed one-time codes for password recovery.
package otp

import (
	"strings"
	"time"
)

// DefaultTTL is how long an issued code stays valid.
const DefaultTTL = 180 * time.Second

// Challenge is an outstanding recovery code for one email. Only the code hash is kept.
type Challenge struct {
	Email     string
	CodeHash  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Result is the outcome of verifying a submitted code.
type Result int

const (
	Mismatch Result = iota
	Verified
	Expired
)

func (r Result) String() string {
	switch r {
	case Verified:
		return "verified"
	case Expired:
		return "expired"
	default:
		return "mismatch"
	}
}

// Manager creates challenges and checks codes against them. Expiry is evaluated on demand.
type Manager struct {
	ttl       time.Duration
	nowF      func() time.Time
	generateF func() (string, error)
}

// NewManager returns a Manager whose challenges live for ttl (DefaultTTL when ttl <= 0).
func NewManager(ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{ttl: ttl, nowF: time.Now, generateF: Generate}
}

// TTL returns the challenge lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue creates a new challenge for email and returns it with the plaintext code to deliver.
// The caller replaces any previous challenge with the returned one.
func (m *Manager) Issue(email string) (*Challenge, string, error) {
	code, err := m.generateF()
	if err != nil {
		return nil, "", err
	}
	now := m.nowF().UTC()
	return &Challenge{
		Email:     email,
		CodeHash:  HashCode(code),
		IssuedAt:  now,
		ExpiresAt: now.Add(m.ttl),
	}, code, nil
}

// Verify checks submitted against ch at now. The expiry instant itself is already expired, and an
// expired challenge reports Expired whatever the code. A nil challenge never verifies.
func (m *Manager) Verify(ch *Challenge, submitted string, now time.Time) Result {
	if ch == nil {
		return Mismatch
	}
	if !now.Before(ch.ExpiresAt) {
		return Expired
	}
	if !CodeEqual(strings.TrimSpace(submitted), ch.CodeHash) {
		return Mismatch
	}
	return Verified
}

// Remaining returns how long ch stays valid after now, never negative.
func (m *Manager) Remaining(ch *Challenge, now time.Time) time.Duration {
	if ch == nil {
		return 0
	}
	d := ch.ExpiresAt.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// SetClock replaces the time source used by Issue and Now.
func (m *Manager) SetClock(now func() time.Time) {
	m.nowF = now
}

// Now returns the manager's current time.
func (m *Manager) Now() time.Time {
	return m.nowF()
}
