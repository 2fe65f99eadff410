package storage

import (
	"os"

	"github.com/nikbrunner/shelf/internal/importer"
	"github.com/nikbrunner/shelf/internal/model"
)

// HTMLStorage loads the dataset from a Netscape bookmark export.
type HTMLStorage struct {
	path string
}

// NewHTMLStorage creates a new HTMLStorage with the given file path.
func NewHTMLStorage(path string) *HTMLStorage {
	return &HTMLStorage{path: path}
}

// Path returns the storage file path.
func (s *HTMLStorage) Path() string {
	return s.path
}

// Load parses the export. Ids are generated, so they differ between loads.
func (s *HTMLStorage) Load() (*model.Dataset, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	bookmarks, err := importer.ParseHTMLBookmarks(file)
	if err != nil {
		return nil, err
	}
	return model.NewDataset(bookmarks), nil
}
