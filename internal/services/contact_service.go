// Package services – ContactService
//
// This file implements the ContactService, which governs the contact-form
// submission workflow: field validation, transactional persistence, then a
// best-effort operator notification. Service-level errors (ErrMissingFields,
// ErrPersistFailed, ErrNotifyFailed) are returned for predictable cases so
// handlers can map them to HTTP results consistently.
package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tbourn/go-portfolio-backend/internal/domain"
	"github.com/tbourn/go-portfolio-backend/internal/mail"
	"github.com/tbourn/go-portfolio-backend/internal/repo"
)

// ContactService implements the use-cases around contact messages. It is
// stateless across requests; the GORM handle and the mailer are long-lived
// process-wide dependencies injected at startup.
type ContactService struct {
	// DB is the database handle used for all contact operations.
	DB *gorm.DB

	// Mailer delivers the operator notification for each stored submission.
	Mailer mail.Mailer

	// Recipient is the operator mailbox that receives notifications.
	Recipient string

	// Sender is the From address on outgoing notifications.
	Sender string
}

// Submit runs the full submission workflow for one contact-form post.
//
// Semantics:
//   - name, email, and message must all be non-empty; otherwise
//     ErrMissingFields is returned and nothing is written or sent. No
//     further format checking (email syntax included) is performed.
//   - The row is inserted inside a transaction. On commit failure the
//     transaction is rolled back and the error is wrapped in ErrPersistFailed.
//   - After a successful commit the operator notification is sent. This step
//     is deliberately outside the transaction: when delivery fails the
//     committed row is NOT retracted, the stored record is returned together
//     with an error wrapping ErrNotifyFailed, and the caller reports failure
//     even though the data was saved.
//
// No retry is attempted on notification failure.
func (s *ContactService) Submit(ctx context.Context, name, email, message string) (*domain.ContactMessage, error) {
	if name == "" || email == "" || message == "" {
		return nil, ErrMissingFields
	}

	var rec *domain.ContactMessage
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := repo.CreateContactMessage(ctx, tx, name, email, message)
		if err != nil {
			return err
		}
		rec = m
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistFailed, err)
	}

	notification := mail.NewContactNotification(s.Sender, s.Recipient, name, email, message)
	if err := s.Mailer.Send(ctx, notification); err != nil {
		return rec, fmt.Errorf("%w: %w", ErrNotifyFailed, err)
	}

	return rec, nil
}

// ListMessages returns every stored contact message, newest first. Used by
// the access-gated admin listing; there is no pagination or filtering.
func (s *ContactService) ListMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	return repo.ListContactMessages(ctx, s.DB)
}
