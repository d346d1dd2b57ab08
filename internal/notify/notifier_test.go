package notify

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"palay-protector/internal/devotp"
)

func TestOTPMessage(t *testing.T) {
	exp := time.Date(2025, 6, 1, 8, 3, 0, 0, time.UTC)
	msg := OTPMessage("042917", exp, 180*time.Second)
	if msg.Subject != "Palay Protector - Your OTP Code" {
		t.Errorf("Subject = %q", msg.Subject)
	}
	want := "Your OTP code is: 042917\nValid for 3 minutes only."
	if msg.Body != want {
		t.Errorf("Body = %q, want %q", msg.Body, want)
	}
	if msg.Code != "042917" || !msg.ExpiresAt.Equal(exp) {
		t.Errorf("message = %+v", msg)
	}
}

func TestValidity(t *testing.T) {
	tests := []struct {
		ttl  time.Duration
		want string
	}{
		{time.Minute, "1 minute"},
		{2 * time.Minute, "2 minutes"},
		{90 * time.Second, "90 seconds"},
		{30 * time.Second, "30 seconds"},
	}
	for _, tt := range tests {
		if got := validity(tt.ttl); got != tt.want {
			t.Errorf("validity(%v) = %q, want %q", tt.ttl, got, tt.want)
		}
	}
}

func TestDevNotifier_StoresCode(t *testing.T) {
	store := devotp.NewMemoryStore()
	n := NewDevNotifier(store)
	ctx := context.Background()
	msg := OTPMessage("123456", time.Now().Add(time.Minute), time.Minute)
	if err := n.Send(ctx, "ana@example.com", msg); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if code, ok := store.Get(ctx, "ana@example.com"); !ok || code != "123456" {
		t.Errorf("store.Get = %q, %v", code, ok)
	}
	if err := n.Send(ctx, "ana@example.com", Message{Subject: "hello"}); err != nil {
		t.Errorf("Send without code: %v", err)
	}
}

func TestNewEmailNotifier_Validation(t *testing.T) {
	if _, err := NewEmailNotifier(EmailConfig{From: "noreply@example.com"}); err == nil {
		t.Error("missing host should fail")
	}
	if _, err := NewEmailNotifier(EmailConfig{Host: "smtp.example.com"}); err == nil {
		t.Error("missing sender should fail")
	}
	n, err := NewEmailNotifier(EmailConfig{Host: "smtp.example.com", From: "noreply@example.com"})
	if err != nil {
		t.Fatalf("NewEmailNotifier: %v", err)
	}
	if n.cfg.Port != 587 {
		t.Errorf("Port = %d, want default 587", n.cfg.Port)
	}
}

func TestEmailNotifier_BuildMsg(t *testing.T) {
	n, _ := NewEmailNotifier(EmailConfig{Host: "smtp.example.com", From: "noreply@example.com"})
	m, err := n.buildMsg(" ana@example.com ", OTPMessage("123456", time.Now(), 3*time.Minute))
	if err != nil {
		t.Fatalf("buildMsg: %v", err)
	}
	rcpts, err := m.GetRecipients()
	if err != nil {
		t.Fatalf("GetRecipients: %v", err)
	}
	if len(rcpts) != 1 || !strings.Contains(rcpts[0], "ana@example.com") {
		t.Errorf("recipients = %v", rcpts)
	}
}

func TestEmailNotifier_InvalidRecipientWrapsErrDelivery(t *testing.T) {
	n, _ := NewEmailNotifier(EmailConfig{Host: "smtp.example.com", From: "noreply@example.com"})
	err := n.Send(context.Background(), "not an address", OTPMessage("123456", time.Now(), time.Minute))
	if !errors.Is(err, ErrDelivery) {
		t.Errorf("want ErrDelivery, got %v", err)
	}
}

func TestEmailNotifier_UnreachableServer(t *testing.T) {
	n, _ := NewEmailNotifier(EmailConfig{Host: "127.0.0.1", Port: 1, From: "noreply@example.com"})
	n.timeout = time.Second
	err := n.Send(context.Background(), "ana@example.com", OTPMessage("123456", time.Now(), time.Minute))
	if !errors.Is(err, ErrDelivery) {
		t.Errorf("want ErrDelivery, got %v", err)
	}
}
