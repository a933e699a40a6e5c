package services

import (
	"context"
	"errors"
	"regexp"

	"github.com/coopfed/portal/internal/db/models"
	"github.com/coopfed/portal/internal/db/repos"
	"github.com/coopfed/portal/internal/logger"
	"github.com/coopfed/portal/internal/mail"
	"github.com/coopfed/portal/internal/validation"
)

// ErrRelayFailed is returned when the contact message was stored but could
// not be relayed by email.
var ErrRelayFailed = errors.New("failed to relay contact message")

// Field constraints for contact submissions
var contactSchema = validation.Schema{
	"name":    {Kind: validation.Text, MaxLen: 100},
	"email":   {Kind: validation.Text, MaxLen: 254},
	"message": {Kind: validation.Text, MaxLen: 2000},
}

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Contact provides business logic for the public contact form.
type Contact struct {
	repo   *repos.ContentRepository[models.ContactMessage]
	mailer mail.Mailer
}

// NewContactService creates a new contact service instance
func NewContactService(repo *repos.ContentRepository[models.ContactMessage], mailer mail.Mailer) *Contact {
	return &Contact{repo: repo, mailer: mailer}
}

// Submit validates and stores a contact submission, then relays it by
// email. The stored record is kept even when the relay fails, so the
// message is not lost.
func (s *Contact) Submit(ctx context.Context, fields map[string]interface{}) (uint, error) {
	clean, err := contactSchema.Clean(fields)
	if err != nil {
		return 0, err
	}
	email := clean["email"].(string)
	if !emailRe.MatchString(email) {
		return 0, &validation.ValidationError{Field: "email", Reason: "invalid email address"}
	}

	msg := &models.ContactMessage{
		Name:    clean["name"].(string),
		Email:   email,
		Message: clean["message"].(string),
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return 0, err
	}

	if err := s.mailer.Relay(ctx, msg.Name, msg.Email, msg.Message); err != nil {
		logger.ErrorWithFields("contact relay failed", map[string]interface{}{
			"id":    msg.ID,
			"error": err.Error(),
		})
		return msg.ID, errors.Join(ErrRelayFailed, err)
	}

	if err := s.repo.Patch(ctx, msg.ID, map[string]interface{}{"relayed": true}); err != nil {
		logger.Warnf("failed to mark contact message %d as relayed: %v", msg.ID, err)
	}
	return msg.ID, nil
}

// List retrieves stored contact messages, newest first.
func (s *Contact) List(ctx context.Context, opts *models.ListOptions) ([]models.ContactMessage, error) {
	return s.repo.List(ctx, opts)
}
