package storage_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nikbrunner/shelf/internal/model"
	"github.com/nikbrunner/shelf/internal/storage"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

// writeFile writes content to name inside a temp dir and returns the path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func titles(ds *model.Dataset) []string {
	out := make([]string, len(ds.Bookmarks))
	for i, b := range ds.Bookmarks {
		out[i] = b.Title
	}
	return out
}

const arrayJSON = `[
  {"id": 1, "title": "MDN Web Docs", "url": "https://developer.mozilla.org", "description": "Web reference", "category": "Docs", "tags": ["html", "css"]},
  {"id": 2, "title": "Tailwind CSS", "url": "https://tailwindcss.com", "description": "Utility-first CSS", "category": "CSS"},
  {"id": "three", "title": "Figma", "url": "https://figma.com", "description": "Design tool", "category": "Design", "tags": []}
]`

func TestJSONStorage_LoadArray(t *testing.T) {
	path := writeFile(t, "bookmarks.json", arrayJSON)

	ds, err := storage.NewJSONStorage(path).Load()

	assert.NilError(t, err)
	assert.DeepEqual(t, titles(ds), []string{"MDN Web Docs", "Tailwind CSS", "Figma"})
	assert.Equal(t, ds.Bookmarks[0].ID, "1", "numeric ids become strings")
	assert.Equal(t, ds.Bookmarks[2].ID, "three")
	assert.DeepEqual(t, ds.Bookmarks[0].Tags, []string{"html", "css"})
	assert.Assert(t, ds.Bookmarks[1].Tags != nil, "absent tags default to empty")
	assert.Equal(t, ds.Bookmarks[1].Description, "Utility-first CSS")
	assert.Check(t, is.Len(ds.Rejected, 0))
}

func TestJSONStorage_LoadWrappedObject(t *testing.T) {
	path := writeFile(t, "bookmarks.json", `{"bookmarks": [
		{"id": "a", "title": "Go", "url": "https://go.dev", "category": "Docs"}
	]}`)

	ds, err := storage.NewJSONStorage(path).Load()

	assert.NilError(t, err)
	assert.DeepEqual(t, titles(ds), []string{"Go"})
}

func TestJSONStorage_SkipsMalformedRecords(t *testing.T) {
	path := writeFile(t, "bookmarks.json", `[
		{"id": 1, "title": "Kept", "url": "https://kept.dev", "category": "Tools"},
		{"title": "No id", "url": "https://noid.dev", "category": "Tools"},
		{"id": 3, "url": "https://notitle.dev", "category": "Tools"},
		{"id": true, "title": "Bad id", "url": "https://badid.dev", "category": "Tools"},
		{"id": 1, "title": "Duplicate", "url": "https://dup.dev", "category": "Tools"}
	]`)

	ds, err := storage.NewJSONStorage(path).Load()

	assert.NilError(t, err)
	assert.DeepEqual(t, titles(ds), []string{"Kept"})
	assert.Assert(t, is.Len(ds.Rejected, 4))
	assert.Assert(t, errors.Is(ds.Rejected[3], model.ErrDuplicateID))
}

func TestJSONStorage_LoadNonexistent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.json")

	_, err := storage.NewJSONStorage(path).Load()

	assert.Assert(t, errors.Is(err, os.ErrNotExist))
}

func TestJSONStorage_InvalidJSON(t *testing.T) {
	path := writeFile(t, "bookmarks.json", `[{"id": 1,`)

	_, err := storage.NewJSONStorage(path).Load()

	assert.Assert(t, err != nil)
}

func TestJSONStorage_PreservesOrder(t *testing.T) {
	path := writeFile(t, "bookmarks.json", `[
		{"id": "1", "title": "Third", "url": "https://3.dev", "category": "c"},
		{"id": "2", "title": "First", "url": "https://1.dev", "category": "c"},
		{"id": "3", "title": "Second", "url": "https://2.dev", "category": "c"}
	]`)

	ds, err := storage.NewJSONStorage(path).Load()

	assert.NilError(t, err)
	assert.DeepEqual(t, titles(ds), []string{"Third", "First", "Second"})
}

func TestYAMLStorage_Load(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "sequence",
			content: `
- id: 1
  title: MDN Web Docs
  url: https://developer.mozilla.org
  category: Docs
  tags: [html, css]
- id: two
  title: Figma
  url: https://figma.com
  description: Design tool
  category: Design
`,
		},
		{
			name: "mapping",
			content: `
bookmarks:
  - id: 1
    title: MDN Web Docs
    url: https://developer.mozilla.org
    category: Docs
    tags: [html, css]
  - id: two
    title: Figma
    url: https://figma.com
    description: Design tool
    category: Design
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "bookmarks.yaml", tt.content)

			ds, err := storage.NewYAMLStorage(path).Load()

			assert.NilError(t, err)
			assert.DeepEqual(t, titles(ds), []string{"MDN Web Docs", "Figma"})
			assert.Equal(t, ds.Bookmarks[0].ID, "1")
			assert.DeepEqual(t, ds.Bookmarks[0].Tags, []string{"html", "css"})
			assert.Equal(t, ds.Bookmarks[1].Description, "Design tool")
			assert.Assert(t, ds.Bookmarks[1].Tags != nil)
		})
	}
}

func TestYAMLStorage_EmptyFile(t *testing.T) {
	path := writeFile(t, "bookmarks.yml", "")

	ds, err := storage.NewYAMLStorage(path).Load()

	assert.NilError(t, err)
	assert.Equal(t, ds.Len(), 0)
}

func TestHTMLStorage_Load(t *testing.T) {
	path := writeFile(t, "export.html", `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<DL><p>
    <DT><H3>Reading</H3>
    <DL><p>
        <DT><A HREF="https://lobste.rs" TAGS="news">Lobsters</A>
    </DL><p>
</DL><p>`)

	ds, err := storage.NewHTMLStorage(path).Load()

	assert.NilError(t, err)
	assert.DeepEqual(t, titles(ds), []string{"Lobsters"})
	assert.Equal(t, ds.Bookmarks[0].Category, "Reading")
	assert.DeepEqual(t, ds.Bookmarks[0].Tags, []string{"news"})
}

func TestOpen_PicksLoaderByExtension(t *testing.T) {
	dir := t.TempDir()
	seedSQLite(t, filepath.Join(dir, "bookmarks.db"), nil)

	tests := []struct {
		name string
		want any
	}{
		{"bookmarks.json", &storage.JSONStorage{}},
		{"bookmarks.JSON", &storage.JSONStorage{}},
		{"bookmarks.yaml", &storage.YAMLStorage{}},
		{"bookmarks.yml", &storage.YAMLStorage{}},
		{"bookmarks.html", &storage.HTMLStorage{}},
		{"bookmarks.htm", &storage.HTMLStorage{}},
		{"bookmarks.db", &storage.SQLiteStorage{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, err := storage.Open(filepath.Join(dir, tt.name))
			assert.NilError(t, err)
			if s, ok := loader.(*storage.SQLiteStorage); ok {
				defer s.Close()
			}
			assert.Equal(t, typeName(loader), typeName(tt.want))
		})
	}
}

func typeName(v any) string {
	switch v.(type) {
	case *storage.JSONStorage:
		return "json"
	case *storage.YAMLStorage:
		return "yaml"
	case *storage.HTMLStorage:
		return "html"
	case *storage.SQLiteStorage:
		return "sqlite"
	default:
		return "unknown"
	}
}

func TestOpen_UnsupportedFormat(t *testing.T) {
	_, err := storage.Open("bookmarks.csv")

	assert.Assert(t, errors.Is(err, storage.ErrUnsupportedFormat))
}

func TestLoadDataset(t *testing.T) {
	path := writeFile(t, "bookmarks.json", arrayJSON)

	ds, err := storage.LoadDataset(path)

	assert.NilError(t, err)
	assert.Equal(t, ds.Len(), 3)
}

func TestLoadDataset_WrapsErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	_, err := storage.LoadDataset(path)

	assert.Assert(t, errors.Is(err, os.ErrNotExist))
	assert.ErrorContains(t, err, "missing.json")
}
