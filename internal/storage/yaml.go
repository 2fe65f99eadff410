package storage

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nikbrunner/shelf/internal/model"
)

// YAMLStorage loads the dataset from a YAML file. Accepted shapes match
// JSONStorage: a sequence of records or a mapping with a "bookmarks" key.
type YAMLStorage struct {
	path string
}

// NewYAMLStorage creates a new YAMLStorage with the given file path.
func NewYAMLStorage(path string) *YAMLStorage {
	return &YAMLStorage{path: path}
}

// Path returns the storage file path.
func (s *YAMLStorage) Path() string {
	return s.path
}

// Load reads and validates the dataset.
func (s *YAMLStorage) Load() (*model.Dataset, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	return parseYAML(data)
}

func parseYAML(data []byte) (*model.Dataset, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	// Empty document
	if len(doc.Content) == 0 {
		return model.NewDataset(nil), nil
	}

	var bookmarks []model.Bookmark
	root := doc.Content[0]
	if root.Kind == yaml.MappingNode {
		var wrapped struct {
			Bookmarks []model.Bookmark `yaml:"bookmarks"`
		}
		if err := root.Decode(&wrapped); err != nil {
			return nil, err
		}
		bookmarks = wrapped.Bookmarks
	} else {
		if err := root.Decode(&bookmarks); err != nil {
			return nil, err
		}
	}

	return model.NewDataset(bookmarks), nil
}
