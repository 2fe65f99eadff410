package storage

import (
	"cmp"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	_ "modernc.org/sqlite"

	"github.com/nikbrunner/shelf/internal/model"
)

// SQLiteStorage loads the dataset from a SQLite database. The connection is
// switched to query-only once the schema exists; nothing is ever written back.
type SQLiteStorage struct {
	db   *sql.DB
	path string
}

// ErrMalformedTags marks a row whose tags column is not a JSON string array.
var ErrMalformedTags = errors.New("malformed tags")

// NewSQLiteStorage opens the database at path, creating the file and the
// schema if needed.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := openSQLite(path)
	if err != nil {
		return nil, err
	}

	s := &SQLiteStorage{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	if err := queryOnly(db); err != nil {
		return nil, err
	}
	return s, nil
}

// OpenSQLiteStorage opens an existing database for loading. Unlike
// NewSQLiteStorage it never creates files or tables, so a missing path is
// reported as an error wrapping os.ErrNotExist.
func OpenSQLiteStorage(path string) (*SQLiteStorage, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	db, err := openSQLite(path)
	if err != nil {
		return nil, err
	}
	if err := queryOnly(db); err != nil {
		return nil, err
	}
	return &SQLiteStorage{db: db, path: path}, nil
}

func openSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// PRAGMA query_only is per connection
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// queryOnly closes db if the pragma fails.
func queryOnly(db *sql.DB) error {
	if _, err := db.Exec("PRAGMA query_only = ON"); err != nil {
		db.Close()
		return err
	}
	return nil
}

// Path returns the database file path.
func (s *SQLiteStorage) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// migrate creates the schema on an empty database.
func (s *SQLiteStorage) migrate() error {
	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		// Table doesn't exist or is empty, start fresh
		version = 0
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	return nil
}

// migrateV1 creates the initial schema.
func (s *SQLiteStorage) migrateV1() error {
	schema := `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS bookmarks (
			id TEXT PRIMARY KEY NOT NULL,
			title TEXT NOT NULL,
			url TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL,
			tags TEXT NOT NULL DEFAULT '[]'
		);

		CREATE INDEX IF NOT EXISTS idx_bookmarks_category ON bookmarks(category);

		INSERT OR REPLACE INTO schema_version (version) VALUES (1);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Load reads all bookmarks in insertion order. Rows with unreadable tags are
// rejected alongside the records model.NewDataset skips.
func (s *SQLiteStorage) Load() (*model.Dataset, error) {
	rows, err := s.db.Query(`
		SELECT id, title, url, description, category, tags
		FROM bookmarks
		ORDER BY rowid
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookmarks := []model.Bookmark{}
	rowIndex := []int{} // row position of each entry in bookmarks
	rejected := []model.Rejection{}
	for i := 0; rows.Next(); i++ {
		var b model.Bookmark
		var tagsJSON string

		if err := rows.Scan(&b.ID, &b.Title, &b.URL, &b.Description, &b.Category, &tagsJSON); err != nil {
			return nil, err
		}

		if err := json.Unmarshal([]byte(tagsJSON), &b.Tags); err != nil {
			rejected = append(rejected, model.Rejection{
				Index: i,
				ID:    b.ID,
				Title: b.Title,
				Err:   fmt.Errorf("%w: %v", ErrMalformedTags, err),
			})
			continue
		}

		bookmarks = append(bookmarks, b)
		rowIndex = append(rowIndex, i)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	ds := model.NewDataset(bookmarks)
	for k := range ds.Rejected {
		ds.Rejected[k].Index = rowIndex[ds.Rejected[k].Index]
	}
	ds.Rejected = append(ds.Rejected, rejected...)
	slices.SortFunc(ds.Rejected, func(a, b model.Rejection) int {
		return cmp.Compare(a.Index, b.Index)
	})

	return ds, nil
}
