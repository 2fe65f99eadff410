package storage

import (
	"path/filepath"
	"testing"
)

func TestSQLiteStorage_IsQueryOnly(t *testing.T) {
	s, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "bookmarks.db"))
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	defer s.Close()

	_, err = s.db.Exec(`INSERT INTO bookmarks (id, title, url, category) VALUES ('b1', 't', 'u', 'c')`)
	if err == nil {
		t.Fatal("expected write to fail on a query-only connection")
	}
}

func TestOpenSQLiteStorage_IsQueryOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks.db")
	seed, err := NewSQLiteStorage(path)
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	seed.Close()

	s, err := OpenSQLiteStorage(path)
	if err != nil {
		t.Fatalf("failed to open storage: %v", err)
	}
	defer s.Close()

	_, err = s.db.Exec(`INSERT INTO bookmarks (id, title, url, category) VALUES ('b1', 't', 'u', 'c')`)
	if err == nil {
		t.Fatal("expected write to fail on a query-only connection")
	}
}
