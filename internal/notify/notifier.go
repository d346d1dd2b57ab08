// Package notify delivers one-time recovery codes to account email addresses.
package notify

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrDelivery is returned (wrapped) when a message could not be handed to the delivery channel.
var ErrDelivery = errors.New("notification delivery failed")

// OTPSubject is the subject line of recovery code emails.
const OTPSubject = "Palay Protector - Your OTP Code"

// Message is one notification. Code and ExpiresAt are set for recovery codes so that dev mode can
// expose the code without parsing Body.
type Message struct {
	Subject   string
	Body      string
	Code      string
	ExpiresAt time.Time
}

// Notifier sends a message to an email address. A nil error means the message was handed off;
// delivery is not guaranteed.
type Notifier interface {
	Send(ctx context.Context, email string, msg Message) error
}

// OTPMessage builds the recovery code message for code, valid until expiresAt (ttl after issue).
func OTPMessage(code string, expiresAt time.Time, ttl time.Duration) Message {
	return Message{
		Subject:   OTPSubject,
		Body:      fmt.Sprintf("Your OTP code is: %s\nValid for %s only.", code, validity(ttl)),
		Code:      code,
		ExpiresAt: expiresAt,
	}
}

func validity(ttl time.Duration) string {
	switch {
	case ttl >= time.Minute && ttl%time.Minute == 0:
		n := int(ttl / time.Minute)
		if n == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", n)
	default:
		return fmt.Sprintf("%d seconds", int(ttl/time.Second))
	}
}
