package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nikbrunner/shelf/internal/model"
)

// ErrUnsupportedFormat is returned by Open for unknown dataset file types.
var ErrUnsupportedFormat = errors.New("unsupported dataset format")

// Loader supplies the dataset at startup.
type Loader interface {
	Load() (*model.Dataset, error)
}

// Open picks a loader by file extension: .json, .yaml/.yml, .db/.sqlite/.sqlite3
// or .html/.htm (Netscape bookmark export).
func Open(path string) (Loader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return NewJSONStorage(path), nil
	case ".yaml", ".yml":
		return NewYAMLStorage(path), nil
	case ".db", ".sqlite", ".sqlite3":
		return OpenSQLiteStorage(path)
	case ".html", ".htm":
		return NewHTMLStorage(path), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// LoadDataset opens the dataset at path, loads it and releases the loader.
func LoadDataset(path string) (*model.Dataset, error) {
	loader, err := Open(path)
	if err != nil {
		return nil, err
	}
	if c, ok := loader.(io.Closer); ok {
		defer c.Close()
	}

	ds, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", path, err)
	}
	return ds, nil
}

// DefaultDatasetPath returns the default dataset path: ~/.config/shelf/bookmarks.json
func DefaultDatasetPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "bookmarks.json"), nil
}

// configDir returns ~/.config/shelf
func configDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "shelf"), nil
}
