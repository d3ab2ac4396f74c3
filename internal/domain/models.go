// Package domain defines the persistence model for contact-form submissions.
// The single entity is mapped with GORM and forms the data layer of the
// portfolio backend.
package domain

import "time"

// ContactMessage represents one submission of the public contact form.
// Rows are insert-only: the application never updates or deletes them.
//
// Fields:
//   - ID: auto-incrementing integer primary key, assigned by the store.
//   - Name / Email: sender identity as typed into the form. Both are
//     required to be non-empty; email syntax is deliberately not validated.
//   - Message: full message text.
//   - CreatedAt: set by GORM exactly once at insert time (autoCreateTime);
//     never client-supplied and never updated afterwards.
type ContactMessage struct {
	ID        uint      `json:"id"         gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name"       gorm:"type:varchar(100);not null"`
	Email     string    `json:"email"      gorm:"type:varchar(100);not null"`
	Message   string    `json:"message"    gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index:idx_contact_created"`
}

// TableName returns the database table name for ContactMessage.
func (ContactMessage) TableName() string { return "contact_messages" }
