package storage

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/nikbrunner/shelf/internal/model"
)

// JSONStorage loads the dataset from a JSON file holding either a bare array
// of records or an object with a "bookmarks" array.
type JSONStorage struct {
	path string
}

// NewJSONStorage creates a new JSONStorage with the given file path.
func NewJSONStorage(path string) *JSONStorage {
	return &JSONStorage{path: path}
}

// Path returns the storage file path.
func (s *JSONStorage) Path() string {
	return s.path
}

// jsonRecord accepts ids written as strings or numbers.
type jsonRecord struct {
	ID          json.RawMessage `json:"id"`
	Title       string          `json:"title"`
	URL         string          `json:"url"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Tags        []string        `json:"tags"`
}

// Load reads and validates the dataset.
func (s *JSONStorage) Load() (*model.Dataset, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	return parseJSON(data)
}

func parseJSON(data []byte) (*model.Dataset, error) {
	var records []jsonRecord

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var wrapped struct {
			Bookmarks []jsonRecord `json:"bookmarks"`
		}
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return nil, err
		}
		records = wrapped.Bookmarks
	} else {
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, err
		}
	}

	bookmarks := make([]model.Bookmark, len(records))
	for i, r := range records {
		bookmarks[i] = model.Bookmark{
			ID:          rawID(r.ID),
			Title:       r.Title,
			URL:         r.URL,
			Description: r.Description,
			Category:    r.Category,
			Tags:        r.Tags,
		}
	}

	return model.NewDataset(bookmarks), nil
}

// rawID turns a JSON string or number into an id. Anything else is treated
// as missing.
func rawID(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}
