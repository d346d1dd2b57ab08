// Package service implements the session state machine: login, signup, OTP-based password
// recovery and the logged-in screens.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	accountdomain "palay-protector/internal/account/domain"
	"palay-protector/internal/detection"
	historydomain "palay-protector/internal/history/domain"
	"palay-protector/internal/notify"
	"palay-protector/internal/otp"
	"palay-protector/internal/policy/engine"
	"palay-protector/internal/session/domain"
	"palay-protector/internal/telemetry"
	telemetrydomain "palay-protector/internal/telemetry/domain"
)

// Notices shown after successful transitions.
const (
	NoticeAccountCreated  = "Account created. Please log in."
	NoticePasswordUpdated = "Password updated. Please log in."
	NoticeCodeSent        = "A verification code was sent to your email."
)

// Credentials is the credential store used by the machine.
type Credentials interface {
	CreateAccount(ctx context.Context, username, email, phone, password string) (*accountdomain.Account, error)
	Authenticate(ctx context.Context, username, password string) (*accountdomain.Account, error)
	FindByEmail(ctx context.Context, email string) (*accountdomain.Account, error)
	GetAccount(ctx context.Context, id string) (*accountdomain.Account, error)
	UpdatePassword(ctx context.Context, email, newPassword string) error
}

// Detector classifies images for an account.
type Detector interface {
	Classify(ctx context.Context, image []byte, accountID string) (*detection.Outcome, error)
}

// HistoryReader lists an account's detection records, newest first.
type HistoryReader interface {
	ListByAccount(ctx context.Context, accountID string) ([]*historydomain.Record, error)
}

// Profile is the data shown on the profile screen.
type Profile struct {
	Account *accountdomain.Account
	Summary historydomain.Summary
}

// Machine applies operations to an explicit session State. It holds no per-session data, so one
// Machine serves every session. Callers must hold the State's lock while calling an operation.
type Machine struct {
	creds    Credentials
	otp      *otp.Manager
	notifier notify.Notifier
	detector Detector
	history  HistoryReader
	policy   engine.Evaluator
	events   telemetry.EventEmitter
}

// NewMachine returns a Machine with the given dependencies. events may be nil.
func NewMachine(
	creds Credentials,
	otpManager *otp.Manager,
	notifier notify.Notifier,
	detector Detector,
	history HistoryReader,
	policy engine.Evaluator,
	events telemetry.EventEmitter,
) *Machine {
	return &Machine{
		creds:    creds,
		otp:      otpManager,
		notifier: notifier,
		detector: detector,
		history:  history,
		policy:   policy,
		events:   events,
	}
}

// Login authenticates and moves to Home. Allowed on Login only.
func (m *Machine) Login(ctx context.Context, st *domain.State, username, password string) error {
	if err := m.require(st, "login", domain.ScreenLogin); err != nil {
		return err
	}
	a, err := m.creds.Authenticate(ctx, username, password)
	if err != nil {
		return m.fail(st, storage(err))
	}
	st.AccountID = a.ID
	st.DisplayName = a.Username
	st.ClearRecovery()
	m.move(ctx, st, "login", domain.ScreenHome, "")
	return nil
}

// GoToSignup shows the signup form. Allowed on Login only.
func (m *Machine) GoToSignup(ctx context.Context, st *domain.State) error {
	if err := m.require(st, "go_to_signup", domain.ScreenLogin); err != nil {
		return err
	}
	m.move(ctx, st, "go_to_signup", domain.ScreenSignup, "")
	return nil
}

// Signup creates an account and returns to Login. Allowed on Signup only.
// password and confirm must match; the store is unchanged on any error.
func (m *Machine) Signup(ctx context.Context, st *domain.State, username, email, phone, password, confirm string) error {
	if err := m.require(st, "signup", domain.ScreenSignup); err != nil {
		return err
	}
	if password != confirm {
		return m.fail(st, fmt.Errorf("%w: passwords do not match", domain.ErrValidation))
	}
	if _, err := m.creds.CreateAccount(ctx, username, email, phone, password); err != nil {
		return m.fail(st, storage(err))
	}
	m.move(ctx, st, "signup", domain.ScreenLogin, NoticeAccountCreated)
	return nil
}

// BackToLogin abandons signup or recovery. Allowed on Signup and the recovery screens.
func (m *Machine) BackToLogin(ctx context.Context, st *domain.State) error {
	if !st.Screen.IsRecovery() {
		return m.invalid(st, "back_to_login")
	}
	st.ClearRecovery()
	m.move(ctx, st, "back_to_login", domain.ScreenLogin, "")
	return nil
}

// ForgotPassword starts recovery. Allowed on Login only.
func (m *Machine) ForgotPassword(ctx context.Context, st *domain.State) error {
	if err := m.require(st, "forgot_password", domain.ScreenLogin); err != nil {
		return err
	}
	st.ClearRecovery()
	m.move(ctx, st, "forgot_password", domain.ScreenRecoverRequestOtp, "")
	return nil
}

// SubmitEmail issues a code for a registered email and sends it. The session only advances when
// the account exists and the notifier accepted the message.
func (m *Machine) SubmitEmail(ctx context.Context, st *domain.State, email string) error {
	if err := m.require(st, "send_otp", domain.ScreenRecoverRequestOtp); err != nil {
		return err
	}
	a, err := m.creds.FindByEmail(ctx, email)
	if err != nil {
		return m.fail(st, storage(err))
	}
	ch, err := m.send(ctx, a.Email)
	if err != nil {
		return m.fail(st, err)
	}
	st.RecoveryEmail = a.Email
	st.Challenge = ch
	st.Verified = false
	m.move(ctx, st, "send_otp", domain.ScreenRecoverVerifyOtp, NoticeCodeSent)
	return nil
}

// SubmitCode checks a code against the outstanding challenge. Allowed on RecoverVerifyOtp only.
func (m *Machine) SubmitCode(ctx context.Context, st *domain.State, code string) error {
	if err := m.require(st, "verify_otp", domain.ScreenRecoverVerifyOtp); err != nil {
		return err
	}
	if strings.TrimSpace(code) == "" {
		return m.fail(st, fmt.Errorf("%w: code is required", domain.ErrValidation))
	}
	switch m.otp.Verify(st.Challenge, code, m.otp.Now()) {
	case otp.Verified:
		st.Verified = true
		m.move(ctx, st, "verify_otp", domain.ScreenResetPassword, "")
		return nil
	case otp.Expired:
		return m.fail(st, domain.ErrOtpExpired)
	default:
		return m.fail(st, domain.ErrOtpMismatch)
	}
}

// ResendCode replaces the outstanding challenge with a new one and sends it. The previous code is
// invalid afterwards even when sending fails.
func (m *Machine) ResendCode(ctx context.Context, st *domain.State) error {
	if err := m.require(st, "resend_otp", domain.ScreenRecoverVerifyOtp); err != nil {
		return err
	}
	ch, code, err := m.otp.Issue(st.RecoveryEmail)
	if err != nil {
		return m.fail(st, fmt.Errorf("issue code: %w", err))
	}
	st.Challenge = ch
	if err := m.deliver(ctx, ch, code); err != nil {
		return m.fail(st, err)
	}
	st.LastError = ""
	st.Notice = NoticeCodeSent
	st.UpdatedAt = time.Now().UTC()
	return nil
}

// ResetPassword sets a new password for the recovery email and returns to Login. Requires a
// verified code; newPassword and confirm must match.
func (m *Machine) ResetPassword(ctx context.Context, st *domain.State, newPassword, confirm string) error {
	if err := m.require(st, "change_password", domain.ScreenResetPassword); err != nil {
		return err
	}
	if !st.Verified || st.Challenge == nil {
		return m.invalid(st, "change_password")
	}
	if newPassword != confirm {
		return m.fail(st, fmt.Errorf("%w: passwords do not match", domain.ErrValidation))
	}
	if err := m.creds.UpdatePassword(ctx, st.RecoveryEmail, newPassword); err != nil {
		return m.fail(st, storage(err))
	}
	st.ClearRecovery()
	m.move(ctx, st, "change_password", domain.ScreenLogin, NoticePasswordUpdated)
	return nil
}

// Navigate moves between the main screens as the navigation policy allows. Anonymous sessions
// denied by the policy are sent back to Login with ErrUnauthenticated.
func (m *Machine) Navigate(ctx context.Context, st *domain.State, to domain.Screen) error {
	if !to.IsMain() {
		return m.invalid(st, "navigate")
	}
	return m.enter(ctx, st, "navigate", to)
}

// Detect classifies image for the logged-in account, moving to Detect first.
func (m *Machine) Detect(ctx context.Context, st *domain.State, image []byte) (*detection.Outcome, error) {
	if err := m.enter(ctx, st, "detect", domain.ScreenDetect); err != nil {
		return nil, err
	}
	out, err := m.detector.Classify(ctx, image, st.AccountID)
	if err != nil {
		if errors.Is(err, detection.ErrInvalidImage) {
			err = fmt.Errorf("%w: %w", domain.ErrValidation, err)
		}
		return nil, m.fail(st, err)
	}
	st.LastError = ""
	if out.FailedCount > 0 {
		st.Notice = fmt.Sprintf("%d result(s) could not be saved.", out.FailedCount)
	}
	return out, nil
}

// History moves to the History screen and lists the account's records, newest first. Anonymous
// sessions get an empty list and a notice.
func (m *Machine) History(ctx context.Context, st *domain.State) ([]*historydomain.Record, error) {
	if err := m.enter(ctx, st, "history", domain.ScreenHistory); err != nil {
		return nil, err
	}
	if !st.LoggedIn() {
		return []*historydomain.Record{}, nil
	}
	records, err := m.history.ListByAccount(ctx, st.AccountID)
	if err != nil {
		return nil, m.fail(st, storage(err))
	}
	return records, nil
}

// Profile moves to the Profile screen and returns the account with its scan summary.
func (m *Machine) Profile(ctx context.Context, st *domain.State) (*Profile, error) {
	if err := m.enter(ctx, st, "profile", domain.ScreenProfile); err != nil {
		return nil, err
	}
	a, err := m.creds.GetAccount(ctx, st.AccountID)
	if err != nil {
		return nil, m.fail(st, storage(err))
	}
	records, err := m.history.ListByAccount(ctx, st.AccountID)
	if err != nil {
		return nil, m.fail(st, storage(err))
	}
	return &Profile{Account: a, Summary: historydomain.Summarize(records)}, nil
}

// Logout forgets the account and any recovery state and returns to Login. Allowed on the main screens.
func (m *Machine) Logout(ctx context.Context, st *domain.State) error {
	if !st.Screen.IsMain() {
		return m.invalid(st, "logout")
	}
	st.ClearIdentity()
	st.ClearRecovery()
	m.move(ctx, st, "logout", domain.ScreenLogin, "")
	return nil
}

// OtpSecondsLeft returns the whole seconds left on the outstanding challenge, rounded up.
func (m *Machine) OtpSecondsLeft(st *domain.State) int64 {
	if st.Challenge == nil || st.Screen != domain.ScreenRecoverVerifyOtp {
		return 0
	}
	d := m.otp.Remaining(st.Challenge, m.otp.Now())
	return int64(math.Ceil(d.Seconds()))
}

// enter moves to a main screen after consulting the navigation policy.
func (m *Machine) enter(ctx context.Context, st *domain.State, op string, to domain.Screen) error {
	loggedIn := st.LoggedIn()
	d, err := m.policy.Decide(ctx, to.String(), loggedIn)
	if err != nil {
		d = engine.DefaultDecision(to.String(), loggedIn)
	}
	if !d.Allow {
		if loggedIn {
			return m.invalid(st, op)
		}
		st.ClearRecovery()
		m.move(ctx, st, op, domain.ScreenLogin, "")
		return m.fail(st, domain.ErrUnauthenticated)
	}
	m.move(ctx, st, op, to, d.Notice)
	return nil
}

func (m *Machine) send(ctx context.Context, email string) (*otp.Challenge, error) {
	ch, code, err := m.otp.Issue(email)
	if err != nil {
		return nil, fmt.Errorf("issue code: %w", err)
	}
	if err := m.deliver(ctx, ch, code); err != nil {
		return nil, err
	}
	return ch, nil
}

func (m *Machine) deliver(ctx context.Context, ch *otp.Challenge, code string) error {
	msg := notify.OTPMessage(code, ch.ExpiresAt, m.otp.TTL())
	if err := m.notifier.Send(ctx, ch.Email, msg); err != nil {
		if errors.Is(err, domain.ErrNotifier) {
			return err
		}
		return fmt.Errorf("%w: %w", domain.ErrNotifier, err)
	}
	return nil
}

func (m *Machine) require(st *domain.State, op string, screen domain.Screen) error {
	if st.Screen != screen {
		return m.invalid(st, op)
	}
	return nil
}

// invalid reports an operation attempted from the wrong screen. State is left unchanged.
func (m *Machine) invalid(st *domain.State, op string) error {
	return fmt.Errorf("%w: %s on %s", domain.ErrInvalidTransition, op, st.Screen)
}

func (m *Machine) fail(st *domain.State, err error) error {
	st.LastError = err.Error()
	st.UpdatedAt = time.Now().UTC()
	return err
}

func (m *Machine) move(ctx context.Context, st *domain.State, op string, to domain.Screen, notice string) {
	from := st.Screen
	st.Screen = to
	st.Notice = notice
	st.LastError = ""
	st.UpdatedAt = time.Now().UTC()
	if from == to || m.events == nil {
		return
	}
	event := telemetrydomain.NewEvent(telemetrydomain.EventSessionTransition, "session", transitionMetadata{
		Operation: op,
		From:      from.String(),
		To:        to.String(),
	})
	event.SessionID = st.ID
	event.AccountID = st.AccountID
	telemetry.EmitAsync(m.events, ctx, event)
}

type transitionMetadata struct {
	Operation string `json:"operation"`
	From      string `json:"from"`
	To        string `json:"to"`
}

// storage passes known errors through and wraps anything else as ErrStorage.
func storage(err error) error {
	for _, known := range []error{
		domain.ErrValidation,
		domain.ErrDuplicateUsername,
		domain.ErrNotFound,
		context.Canceled,
		context.DeadlineExceeded,
	} {
		if errors.Is(err, known) {
			return err
		}
	}
	log.Printf("session: storage error: %v", err)
	return fmt.Errorf("%w: %w", domain.ErrStorage, err)
}
