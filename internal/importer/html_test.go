package importer_test

import (
	"strings"
	"testing"

	"github.com/nikbrunner/shelf/internal/importer"
	"github.com/nikbrunner/shelf/internal/model"
)

func findByTitle(bookmarks []model.Bookmark, title string) *model.Bookmark {
	for i := range bookmarks {
		if bookmarks[i].Title == title {
			return &bookmarks[i]
		}
	}
	return nil
}

func TestParseHTML_SingleBookmark(t *testing.T) {
	html := `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
    <DT><A HREF="https://example.com" ADD_DATE="1234567890">Example Site</A>
</DL><p>`

	bookmarks, err := importer.ParseHTMLBookmarks(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(bookmarks) != 1 {
		t.Fatalf("expected 1 bookmark, got %d", len(bookmarks))
	}

	b := bookmarks[0]
	if b.Title != "Example Site" {
		t.Errorf("expected title 'Example Site', got %q", b.Title)
	}
	if b.URL != "https://example.com" {
		t.Errorf("expected URL 'https://example.com', got %q", b.URL)
	}
	if b.Category != importer.DefaultCategory {
		t.Errorf("expected root bookmark in %q, got %q", importer.DefaultCategory, b.Category)
	}
	if b.ID == "" {
		t.Error("expected non-empty ID")
	}
	if b.Tags == nil {
		t.Error("expected empty tags, got nil")
	}
}

func TestParseHTML_InnermostFolderIsCategory(t *testing.T) {
	html := `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<DL><p>
    <DT><H3 ADD_DATE="1234567890">Development</H3>
    <DL><p>
        <DT><H3 ADD_DATE="1234567890">React</H3>
        <DL><p>
            <DT><A HREF="https://react.dev" ADD_DATE="1234567890">React Docs</A>
        </DL><p>
        <DT><A HREF="https://github.com" ADD_DATE="1234567890">GitHub</A>
    </DL><p>
    <DT><A HREF="https://google.com" ADD_DATE="1234567890">Google</A>
</DL><p>`

	bookmarks, err := importer.ParseHTMLBookmarks(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(bookmarks) != 3 {
		t.Fatalf("expected 3 bookmarks, got %d", len(bookmarks))
	}

	tests := []struct {
		title    string
		category string
	}{
		{"React Docs", "React"},
		{"GitHub", "Development"},
		{"Google", importer.DefaultCategory},
	}
	for _, tt := range tests {
		b := findByTitle(bookmarks, tt.title)
		if b == nil {
			t.Fatalf("%s not found", tt.title)
		}
		if b.Category != tt.category {
			t.Errorf("%s: expected category %q, got %q", tt.title, tt.category, b.Category)
		}
	}
}

func TestParseHTML_TagsAndDescription(t *testing.T) {
	html := `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<DL><p>
    <DT><H3>Tools</H3>
    <DD>Things I use daily
    <DL><p>
        <DT><A HREF="https://github.com/BurntSushi/ripgrep" TAGS="cli, search,cli,">ripgrep</A>
        <DD>Recursive line-oriented search
        <DT><A HREF="https://github.com/junegunn/fzf">fzf</A>
    </DL><p>
</DL><p>`

	bookmarks, err := importer.ParseHTMLBookmarks(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(bookmarks) != 2 {
		t.Fatalf("expected 2 bookmarks, got %d", len(bookmarks))
	}

	rg := findByTitle(bookmarks, "ripgrep")
	if rg == nil {
		t.Fatal("ripgrep not found")
	}
	if rg.Category != "Tools" {
		t.Errorf("expected category Tools, got %q", rg.Category)
	}
	if strings.Join(rg.Tags, ",") != "cli,search" {
		t.Errorf("expected tags [cli search], got %v", rg.Tags)
	}
	if rg.Description != "Recursive line-oriented search" {
		t.Errorf("unexpected description %q", rg.Description)
	}

	fzf := findByTitle(bookmarks, "fzf")
	if fzf == nil {
		t.Fatal("fzf not found")
	}
	if fzf.Description != "" {
		t.Errorf("fzf should have no description, got %q", fzf.Description)
	}
	if len(fzf.Tags) != 0 {
		t.Errorf("fzf should have no tags, got %v", fzf.Tags)
	}
}

func TestParseHTML_SkipsLinksWithoutHref(t *testing.T) {
	html := `<DL><p>
    <DT><A>No link</A>
    <DT><A HREF="https://example.com"></A>
</DL><p>`

	bookmarks, err := importer.ParseHTMLBookmarks(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(bookmarks) != 1 {
		t.Fatalf("expected 1 bookmark, got %d", len(bookmarks))
	}
	if bookmarks[0].Title != "https://example.com" {
		t.Errorf("expected URL as fallback title, got %q", bookmarks[0].Title)
	}
}

func TestParseHTML_Empty(t *testing.T) {
	bookmarks, err := importer.ParseHTMLBookmarks(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bookmarks) != 0 {
		t.Errorf("expected 0 bookmarks, got %d", len(bookmarks))
	}
}

func TestParseHTML_UniqueIDs(t *testing.T) {
	html := `<DL><p>
    <DT><A HREF="https://a.example">A</A>
    <DT><A HREF="https://b.example">B</A>
</DL><p>`

	bookmarks, err := importer.ParseHTMLBookmarks(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ds := model.NewDataset(bookmarks)
	if len(ds.Rejected) != 0 {
		t.Errorf("expected every imported record to be valid, got %v", ds.Rejected)
	}
	if ds.Len() != 2 {
		t.Errorf("expected 2 bookmarks, got %d", ds.Len())
	}
}
