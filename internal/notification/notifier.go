package notification

import (
	"context"
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

// BookingConfirmation holds everything needed to notify a customer that their
// appointment was admitted.
type BookingConfirmation struct {
	To       string
	Name     string
	Service  string
	Date     string
	TimeSlot string
}

// Notifier sends customer-facing notifications. Implementations are called
// best-effort: a failure must never affect the admission decision.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, msg BookingConfirmation) error
}

// SMTPConfig configures the gomail-backed notifier.
type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

type mailNotifier struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailNotifier creates a Notifier that delivers over SMTP via gomail.
func NewMailNotifier(cfg SMTPConfig) Notifier {
	return &mailNotifier{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass),
		from:   cfg.From,
	}
}

func (n *mailNotifier) SendBookingConfirmation(_ context.Context, msg BookingConfirmation) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", "Your appointment request")
	m.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nWe received your appointment request for %s on %s at %s. "+
			"We'll let you know once it is confirmed.\n\nSee you soon!",
		msg.Name, msg.Service, msg.Date, msg.TimeSlot,
	))

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send booking confirmation failed: %w", err)
	}
	return nil
}

type nopNotifier struct{}

// NewNopNotifier returns a Notifier that silently discards everything.
// Used when SMTP is not configured, and in tests.
func NewNopNotifier() Notifier {
	return nopNotifier{}
}

func (nopNotifier) SendBookingConfirmation(context.Context, BookingConfirmation) error {
	return nil
}
