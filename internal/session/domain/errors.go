package domain

import (
	"errors"

	accountdomain "palay-protector/internal/account/domain"
	"palay-protector/internal/detection"
	"palay-protector/internal/notify"
)

// Errors returned by the session state machine. Component errors are aliased so errors.Is works
// across layers; the handler maps them to gRPC codes.
var (
	ErrValidation        = accountdomain.ErrValidation
	ErrDuplicateUsername = accountdomain.ErrDuplicateUsername
	ErrNotFound          = accountdomain.ErrNotFound
	ErrNotifier          = notify.ErrDelivery
	ErrClassifier        = detection.ErrClassifier

	ErrOtpExpired        = errors.New("code has expired")
	ErrOtpMismatch       = errors.New("code does not match")
	ErrStorage           = errors.New("storage failure")
	ErrUnauthenticated   = errors.New("login required")
	ErrInvalidTransition = errors.New("operation not allowed on this screen")
)
