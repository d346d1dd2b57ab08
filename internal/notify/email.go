package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wneessen/go-mail"
)

const defaultSendTimeout = 15 * time.Second

// EmailConfig configures SMTP delivery.
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// EmailNotifier sends messages over SMTP. Auth is used only when a username is configured.
type EmailNotifier struct {
	cfg     EmailConfig
	timeout time.Duration
}

// NewEmailNotifier returns a notifier that sends through the given SMTP server.
func NewEmailNotifier(cfg EmailConfig) (*EmailNotifier, error) {
	if strings.TrimSpace(cfg.Host) == "" {
		return nil, errors.New("notify: SMTP host is required")
	}
	if strings.TrimSpace(cfg.From) == "" {
		return nil, errors.New("notify: sender address is required")
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	return &EmailNotifier{cfg: cfg, timeout: defaultSendTimeout}, nil
}

// Send delivers msg to email. Errors wrap ErrDelivery. Does not log the message body.
func (n *EmailNotifier) Send(ctx context.Context, email string, msg Message) error {
	m, err := n.buildMsg(email, msg)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}
	client, err := mail.NewClient(n.cfg.Host, n.clientOptions()...)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}
	return nil
}

func (n *EmailNotifier) buildMsg(email string, msg Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(n.cfg.From); err != nil {
		return nil, fmt.Errorf("invalid sender: %w", err)
	}
	if err := m.To(strings.TrimSpace(email)); err != nil {
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)
	return m, nil
}

func (n *EmailNotifier) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(n.cfg.Port),
		mail.WithTimeout(n.timeout),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if n.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(n.cfg.Username),
			mail.WithPassword(n.cfg.Password),
		)
	}
	return opts
}
