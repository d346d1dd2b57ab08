package notify

import (
	"context"
	"log"

	"palay-protector/internal/devotp"
)

// DevNotifier keeps codes in the dev OTP store instead of sending mail. The code is readable via
// DevService.GetOTP. Never used in production.
type DevNotifier struct {
	store devotp.Store
}

// NewDevNotifier returns a notifier that writes codes to store.
func NewDevNotifier(store devotp.Store) *DevNotifier {
	return &DevNotifier{store: store}
}

func (n *DevNotifier) Send(ctx context.Context, email string, msg Message) error {
	if msg.Code == "" {
		log.Printf("notify: dev mode, dropping non-OTP message for %s", email)
		return nil
	}
	n.store.Put(ctx, email, msg.Code, msg.ExpiresAt)
	log.Printf("notify: dev mode, recovery code for %s available via DevService.GetOTP", email)
	return nil
}
