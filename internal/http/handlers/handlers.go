package handlers

import (
	"context"

	"github.com/tbourn/go-portfolio-backend/internal/domain"
)

// ContactService is the application-service surface the handlers depend on.
// The concrete implementation lives in internal/services; tests substitute
// stubs.
type ContactService interface {
	// Submit runs the full submission workflow (validate, persist, notify).
	Submit(ctx context.Context, name, email, message string) (*domain.ContactMessage, error)

	// ListMessages returns all stored messages newest-first.
	ListMessages(ctx context.Context) ([]domain.ContactMessage, error)
}

// Handlers bundles the HTTP endpoints with their injected dependencies.
type Handlers struct {
	contactSvc ContactService
}

// New constructs the handler set.
func New(contactSvc ContactService) *Handlers {
	return &Handlers{contactSvc: contactSvc}
}
