package domain

import (
	"sync"
	"time"

	"palay-protector/internal/otp"
)

// State is the state of one client session. Callers hold Lock for the duration of an operation.
type State struct {
	mu sync.Mutex

	ID     string
	Screen Screen
	// AccountID and DisplayName are set while logged in.
	AccountID   string
	DisplayName string
	// RecoveryEmail, Challenge and Verified track an in-progress password recovery.
	RecoveryEmail string
	Challenge     *otp.Challenge
	Verified      bool
	// LastError is the message of the last failed operation, cleared on success.
	LastError string
	// Notice is an informational message for the current screen.
	Notice    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewState returns an anonymous session on the login screen.
func NewState(id string, now time.Time) *State {
	return &State{ID: id, Screen: ScreenLogin, CreatedAt: now, UpdatedAt: now}
}

func (s *State) Lock()   { s.mu.Lock() }
func (s *State) Unlock() { s.mu.Unlock() }

// LoggedIn reports whether an account is bound to the session.
func (s *State) LoggedIn() bool {
	return s.AccountID != ""
}

// ClearRecovery discards any in-progress password recovery.
func (s *State) ClearRecovery() {
	s.RecoveryEmail = ""
	s.Challenge = nil
	s.Verified = false
}

// ClearIdentity forgets the logged-in account.
func (s *State) ClearIdentity() {
	s.AccountID = ""
	s.DisplayName = ""
}
