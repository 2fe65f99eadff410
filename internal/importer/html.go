package importer

import (
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"

	"github.com/nikbrunner/shelf/internal/model"
)

// DefaultCategory is assigned to bookmarks that sit outside any folder.
const DefaultCategory = "Uncategorized"

// ParseHTMLBookmarks parses Netscape bookmark HTML (the format browsers export)
// into bookmark records. A bookmark's category is the name of its innermost
// folder, its tags come from the TAGS attribute and its description from a
// following <DD>. Every record gets a generated id.
func ParseHTMLBookmarks(r io.Reader) ([]model.Bookmark, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var bookmarks []model.Bookmark

	var folderStack []string // folder names, innermost last
	var pendingFolder string // folder waiting to be pushed on next DL
	describable := -1        // index of the bookmark a <DD> would describe

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "h3":
				pendingFolder = getTextContent(n)
				describable = -1
				return // Don't recurse into H3

			case "a":
				href := getAttr(n, "href")
				if href == "" {
					return
				}

				title := getTextContent(n)
				if title == "" {
					title = href
				}

				category := DefaultCategory
				if len(folderStack) > 0 {
					category = folderStack[len(folderStack)-1]
				}

				bookmarks = append(bookmarks, model.NewBookmark(model.NewBookmarkParams{
					Title:    title,
					URL:      href,
					Category: category,
					Tags:     parseTags(getAttr(n, "tags")),
				}))
				describable = len(bookmarks) - 1
				return // Don't recurse into A

			case "dd":
				// Only direct text belongs to the description; a folder's
				// DD can swallow the folder's DL, which is parsed below.
				if describable >= 0 {
					bookmarks[describable].Description = getDirectText(n)
					describable = -1
				}

			case "dl":
				pushed := false
				if pendingFolder != "" {
					folderStack = append(folderStack, pendingFolder)
					pendingFolder = ""
					pushed = true
				}
				describable = -1

				for c := n.FirstChild; c != nil; c = c.NextSibling {
					parse(c)
				}

				if pushed {
					folderStack = folderStack[:len(folderStack)-1]
				}
				describable = -1
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	if bookmarks == nil {
		bookmarks = []model.Bookmark{}
	}
	return bookmarks, nil
}

// parseTags splits a comma separated TAGS attribute.
func parseTags(raw string) []string {
	tags := []string{}
	for _, tag := range strings.Split(raw, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "" || slices.Contains(tags, tag) {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

// getTextContent returns the text content of a node.
func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}

// getDirectText returns the text of a node's immediate text children.
func getDirectText(n *html.Node) string {
	var text strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			text.WriteString(c.Data)
		}
	}
	return strings.TrimSpace(text.String())
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == key {
			return attr.Val
		}
	}
	return ""
}
