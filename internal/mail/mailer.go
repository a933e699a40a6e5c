// Package mail relays contact-form submissions over SMTP.
package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"
)

// Mailer sends a relayed contact message.
type Mailer interface {
	Relay(ctx context.Context, fromName, replyTo, message string) error
}

// SMTPOptions configures the SMTP mailer.
type SMTPOptions struct {
	Host     string
	Port     int
	Username string
	Password string
	// From is the envelope sender address.
	From string
	// To is the mailbox contact messages are relayed to.
	To string
}

// SMTP is a Mailer backed by an SMTP server.
type SMTP struct {
	opts SMTPOptions
}

// NewSMTP creates an SMTP mailer.
func NewSMTP(opts SMTPOptions) (*SMTP, error) {
	if opts.Host == "" || opts.From == "" || opts.To == "" {
		return nil, fmt.Errorf("smtp host, from and to addresses must be configured")
	}
	return &SMTP{opts: opts}, nil
}

// Relay sends the contact message to the configured mailbox, with the
// submitter's address as reply-to.
func (s *SMTP) Relay(ctx context.Context, fromName, replyTo, message string) error {
	msg := gomail.NewMsg()
	if err := msg.From(s.opts.From); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(s.opts.To); err != nil {
		return fmt.Errorf("invalid to address: %w", err)
	}
	if err := msg.ReplyTo(replyTo); err != nil {
		return fmt.Errorf("invalid reply-to address: %w", err)
	}
	msg.Subject(fmt.Sprintf("Contact form message from %s", fromName))
	msg.SetBodyString(gomail.TypeTextPlain, message)

	clientOpts := []gomail.Option{gomail.WithPort(s.opts.Port)}
	if s.opts.Username != "" {
		clientOpts = append(clientOpts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.opts.Username),
			gomail.WithPassword(s.opts.Password),
		)
	}

	client, err := gomail.NewClient(s.opts.Host, clientOpts...)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to relay contact message: %w", err)
	}
	return nil
}
