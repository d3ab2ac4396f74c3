// Package repo implements the data persistence layer for contact messages,
// backed by GORM. This file provides repository functions for the
// ContactMessage model.
//
// The repository follows a "thin" approach: it performs persistence and
// simple query composition, leaving business rules (field validation,
// notification sequencing) to the services package. Raw gorm errors are
// propagated unchanged; the service layer translates them.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-portfolio-backend/internal/domain"
)

// CreateContactMessage inserts a new contact message row. The store assigns
// the identifier and the creation timestamp; the three text fields are
// persisted verbatim.
func CreateContactMessage(ctx context.Context, db *gorm.DB, name, email, message string) (*domain.ContactMessage, error) {
	m := &domain.ContactMessage{
		Name:    name,
		Email:   email,
		Message: message,
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// ListContactMessages returns all messages ordered newest-first
// (CreatedAt DESC, ID DESC as a tiebreaker for same-second inserts).
func ListContactMessages(ctx context.Context, db *gorm.DB) ([]domain.ContactMessage, error) {
	var out []domain.ContactMessage
	err := db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

// CountContactMessages uses a raw COUNT so a missing table surfaces as an error.
func CountContactMessages(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Raw("SELECT COUNT(*) FROM contact_messages").Scan(&total).Error
	return total, err
}
