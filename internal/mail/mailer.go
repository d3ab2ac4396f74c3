// Package mail implements the outbound notification sender. Delivery goes
// through SMTP via gomail; the Mailer interface keeps the service layer
// testable without a live mail server.
package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// Message is a plain-text email ready for delivery.
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// Mailer delivers a single message. Implementations must be safe for
// concurrent use; the HTTP layer calls Send from multiple request goroutines.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPConfig holds the transport settings for SMTPMailer.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	// UseSSL selects implicit TLS (typically port 465). When false, the
	// dialer negotiates STARTTLS if the server advertises it (port 587).
	UseSSL bool
}

// SMTPMailer sends mail through a long-lived gomail dialer. Each Send dials,
// authenticates, delivers, and closes; there is no connection pooling, which
// matches the low-volume contact-form workload.
type SMTPMailer struct {
	dialer *gomail.Dialer
}

// NewSMTPMailer constructs a mailer from transport settings.
func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.SSL = cfg.UseSSL
	return &SMTPMailer{dialer: d}
}

// Send delivers msg synchronously. The context is checked before dialing;
// gomail itself does not support mid-flight cancellation, so a send that has
// started runs to completion or fails outright.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	gm := gomail.NewMessage()
	gm.SetHeader("From", msg.From)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/plain", msg.Body)

	return m.dialer.DialAndSend(gm)
}

// NewContactNotification composes the operator notification for one
// contact-form submission.
func NewContactNotification(from, to, name, email, body string) Message {
	return Message{
		From:    from,
		To:      to,
		Subject: fmt.Sprintf("New message from %s", name),
		Body:    fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s", name, email, body),
	}
}
