// Package exporter renders bookmarks as standalone HTML.
package exporter

import (
	"fmt"
	"html"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nikbrunner/shelf/internal/filter"
	"github.com/nikbrunner/shelf/internal/model"
)

// EmptyStateText is rendered when there are no bookmarks to show.
const EmptyStateText = "No bookmarks match"

// RenderParams holds parameters for RenderHTML.
type RenderParams struct {
	Title string         // page title, "Bookmarks" if empty
	View  model.ViewMode // grid of cards or a plain list
}

// DefaultRenderPath returns the default output file path.
// Format: ~/Downloads/bookmarks-YYYY-MM-DD.html
func DefaultRenderPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("bookmarks-%s.html", time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

// RenderHTML renders bookmarks, in the given order, as a standalone page.
// Links open in a new browsing context without referrer or opener access.
func RenderHTML(bookmarks []model.Bookmark, params RenderParams) string {
	title := params.Title
	if title == "" {
		title = "Bookmarks"
	}

	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(title))
	b.WriteString("<style>\n" + pageCSS + "</style>\n")
	b.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", html.EscapeString(title))
	fmt.Fprintf(&b, "<p class=\"count\">%d bookmarks</p>\n", len(bookmarks))

	if len(bookmarks) == 0 {
		fmt.Fprintf(&b, "<p class=\"empty\">%s</p>\n", EmptyStateText)
	} else {
		class := "grid"
		if params.View == model.ViewList {
			class = "list"
		}
		fmt.Fprintf(&b, "<ul class=\"%s\">\n", class)
		for _, bm := range bookmarks {
			writeBookmark(&b, bm)
		}
		b.WriteString("</ul>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func writeBookmark(b *strings.Builder, bm model.Bookmark) {
	fmt.Fprintf(b, "  <li class=\"bookmark\" id=\"bookmark-%s\">\n", html.EscapeString(bm.ID))
	if linkable(bm.URL) {
		fmt.Fprintf(b,
			"    <a class=\"title\" href=\"%s\" target=\"_blank\" rel=\"noopener noreferrer\">%s</a>\n",
			html.EscapeString(bm.URL),
			html.EscapeString(bm.Title),
		)
	} else {
		fmt.Fprintf(b, "    <span class=\"title\">%s</span>\n", html.EscapeString(bm.Title))
	}
	fmt.Fprintf(b, "    <span class=\"url\">%s</span>\n", html.EscapeString(bm.URL))
	if bm.Description != "" {
		fmt.Fprintf(b, "    <p class=\"description\">%s</p>\n", html.EscapeString(bm.Description))
	}
	fmt.Fprintf(b, "    <span class=\"category\">%s</span>\n", html.EscapeString(bm.Category))
	if len(bm.Tags) > 0 {
		b.WriteString("    <ul class=\"tags\">")
		for _, t := range bm.Tags {
			fmt.Fprintf(b, "<li class=\"tag\">%s</li>", html.EscapeString(t))
		}
		b.WriteString("</ul>\n")
	}
	b.WriteString("  </li>\n")
}

// linkable reports whether rawURL may become an href. Other schemes, such as
// javascript: or data:, are shown as text only.
func linkable(rawURL string) bool {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https", "mailto":
		return true
	default:
		return false
	}
}

// ExportNetscape renders bookmarks in Netscape bookmark HTML format, one
// folder per category in first-seen order. The output can be imported by
// browsers and read back by the HTML dataset loader.
func ExportNetscape(bookmarks []model.Bookmark) string {
	var b strings.Builder

	// Header
	b.WriteString("<!DOCTYPE NETSCAPE-Bookmark-file-1>\n")
	b.WriteString("<META HTTP-EQUIV=\"Content-Type\" CONTENT=\"text/html; charset=UTF-8\">\n")
	b.WriteString("<TITLE>Bookmarks</TITLE>\n")
	b.WriteString("<H1>Bookmarks</H1>\n")
	b.WriteString("<DL><p>\n")

	for _, category := range filter.DistinctCategories(bookmarks) {
		fmt.Fprintf(&b, "    <DT><H3>%s</H3>\n", html.EscapeString(category))
		b.WriteString("    <DL><p>\n")
		for _, bm := range bookmarks {
			if bm.Category != category {
				continue
			}
			fmt.Fprintf(&b, "        <DT><A HREF=\"%s\"", html.EscapeString(bm.URL))
			if len(bm.Tags) > 0 {
				fmt.Fprintf(&b, " TAGS=\"%s\"", html.EscapeString(strings.Join(bm.Tags, ",")))
			}
			fmt.Fprintf(&b, ">%s</A>\n", html.EscapeString(bm.Title))
			if bm.Description != "" {
				fmt.Fprintf(&b, "        <DD>%s\n", html.EscapeString(bm.Description))
			}
		}
		b.WriteString("    </DL><p>\n")
	}

	// Footer
	b.WriteString("</DL><p>\n")

	return b.String()
}

const pageCSS = `body { font-family: system-ui, sans-serif; margin: 2rem; color: #303030; background: #FAFAFA; }
h1 { color: #4A7070; margin-bottom: 0.25rem; }
.count, .url, .tag { color: #888888; }
.empty { color: #888888; font-style: italic; }
ul.grid { list-style: none; padding: 0; display: grid; grid-template-columns: repeat(auto-fill, minmax(18rem, 1fr)); gap: 1rem; }
ul.grid > li { border: 1px solid #D0D0D0; border-radius: 6px; padding: 0.75rem 1rem; background: #FFFFFF; }
ul.list { list-style: none; padding: 0; }
ul.list > li { padding: 0.5rem 0; border-bottom: 1px solid #E0E0E0; }
.bookmark .title { display: block; font-weight: 600; color: #4A7070; text-decoration: none; }
.bookmark .url { display: block; font-size: 0.85em; overflow-wrap: anywhere; }
.bookmark .description { margin: 0.4rem 0; }
.category { display: inline-block; font-size: 0.8em; padding: 0 0.4rem; border-radius: 3px; background: #5F8787; color: #FFFFFF; }
ul.tags { display: inline; list-style: none; padding: 0; margin: 0 0 0 0.4rem; }
ul.tags li { display: inline; margin-right: 0.4rem; font-size: 0.85em; }
ul.tags li::before { content: "#"; }
`
