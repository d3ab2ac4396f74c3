package repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite (no CGO)
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-portfolio-backend/internal/domain"
)

func newContactDB(t *testing.T, migrate bool) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:contactrepo_%s?mode=memory&cache=shared", t.Name())), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if migrate {
		if err := AutoMigrate(db); err != nil {
			t.Fatalf("automigrate: %v", err)
		}
	}
	return db
}

func TestCreateContactMessage_Error_NoTable(t *testing.T) {
	db := newContactDB(t, false /* no migrations */)
	if _, err := CreateContactMessage(context.Background(), db, "Ana", "ana@x.com", "Hi"); err == nil {
		t.Fatalf("expected error when contact_messages table is missing")
	}
}

func TestCreateContactMessage_Success_AssignsIDAndTimestamp(t *testing.T) {
	db := newContactDB(t, true)

	start := time.Now().UTC()
	m, err := CreateContactMessage(context.Background(), db, "Ana", "ana@x.com", "Hi")
	if err != nil {
		t.Fatalf("CreateContactMessage error: %v", err)
	}
	if m.ID == 0 {
		t.Fatalf("expected store-assigned ID, got 0")
	}
	if m.CreatedAt.IsZero() || m.CreatedAt.Before(start.Add(-time.Minute)) {
		t.Fatalf("CreatedAt not set reasonably: %v", m.CreatedAt)
	}

	// Stored values must match the input verbatim.
	var got domain.ContactMessage
	if err := db.First(&got, m.ID).Error; err != nil {
		t.Fatalf("load contact message: %v", err)
	}
	if got.Name != "Ana" || got.Email != "ana@x.com" || got.Message != "Hi" {
		t.Fatalf("unexpected row: %+v", got)
	}
}

func TestListContactMessages_NewestFirst(t *testing.T) {
	db := newContactDB(t, true)
	ctx := context.Background()

	// Insert with explicit timestamps so the DESC ordering is observable.
	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		m := domain.ContactMessage{
			Name:      fmt.Sprintf("user-%d", i),
			Email:     fmt.Sprintf("u%d@x.com", i),
			Message:   "hello",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := db.Create(&m).Error; err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}

	out, err := ListContactMessages(ctx, db)
	if err != nil {
		t.Fatalf("ListContactMessages error: %v", err)
	}
	if len(out) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(out))
	}
	for i := 1; i < len(out); i++ {
		if out[i].CreatedAt.After(out[i-1].CreatedAt) {
			t.Fatalf("rows not in descending created_at order at %d: %v > %v", i, out[i].CreatedAt, out[i-1].CreatedAt)
		}
	}
	if out[0].Name != "user-4" || out[4].Name != "user-0" {
		t.Fatalf("unexpected ordering: first=%q last=%q", out[0].Name, out[4].Name)
	}
}

func TestListContactMessages_SameTimestamp_TiebreakByID(t *testing.T) {
	db := newContactDB(t, true)

	ts := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		m := domain.ContactMessage{Name: fmt.Sprintf("n%d", i), Email: "e@x.com", Message: "m", CreatedAt: ts}
		if err := db.Create(&m).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	out, err := ListContactMessages(context.Background(), db)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for i := 1; i < len(out); i++ {
		if out[i].ID > out[i-1].ID {
			t.Fatalf("same-timestamp rows not ordered by id DESC: %d before %d", out[i-1].ID, out[i].ID)
		}
	}
}

func TestCountContactMessages(t *testing.T) {
	db := newContactDB(t, true)
	ctx := context.Background()

	n, err := CountContactMessages(ctx, db)
	if err != nil {
		t.Fatalf("count (empty): %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 rows, got %d", n)
	}

	if _, err := CreateContactMessage(ctx, db, "Ana", "ana@x.com", "Hi"); err != nil {
		t.Fatalf("create: %v", err)
	}
	n, err = CountContactMessages(ctx, db)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 row, got %d", n)
	}
}

func TestCountContactMessages_Error_NoTable(t *testing.T) {
	db := newContactDB(t, false)
	if _, err := CountContactMessages(context.Background(), db); err == nil {
		t.Fatalf("expected error when contact_messages table is missing")
	}
}
