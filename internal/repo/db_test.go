package repo

import (
	"path/filepath"
	"testing"

	"github.com/tbourn/go-portfolio-backend/internal/domain"
)

func TestOpenSQLite_CreatesFileAndMigrates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.db")

	db, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}
	if !db.Migrator().HasTable(&domain.ContactMessage{}) {
		t.Fatalf("expected contact_messages table after migration")
	}
}

func TestOpenSQLite_MissingParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist", "portfolio.db")
	if _, err := OpenSQLite(path); err == nil {
		t.Fatalf("expected error for missing parent directory")
	}
}

func TestOpen_FallsBackToSQLiteWhenURLUnset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.db")
	db, err := Open("", path)
	if err != nil {
		t.Fatalf("Open with empty DATABASE_URL: %v", err)
	}
	if db == nil {
		t.Fatalf("expected a live handle")
	}
}
