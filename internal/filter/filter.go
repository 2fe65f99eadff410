// Package filter derives the visible subset of a bookmark dataset from a set
// of predicates. Every function here is pure: inputs are never modified.
package filter

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/nikbrunner/shelf/internal/model"
)

// Engine filters and sorts bookmarks using the collation rules of one locale.
// It holds no other state and is safe for concurrent use.
type Engine struct {
	tag language.Tag
}

// EngineParams holds parameters for creating an Engine.
type EngineParams struct {
	Locale string // BCP 47 tag, e.g. "en" or "de-CH"; "" = English
}

// NewEngine creates an Engine for the given locale.
func NewEngine(params EngineParams) (*Engine, error) {
	if params.Locale == "" {
		return &Engine{tag: language.English}, nil
	}
	tag, err := language.Parse(params.Locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", params.Locale, err)
	}
	return &Engine{tag: tag}, nil
}

// Locale returns the collation locale.
func (e *Engine) Locale() string {
	return e.tag.String()
}

var defaultEngine = &Engine{tag: language.English}

// Compute returns the bookmarks matching p, sorted by title with the default
// (English) collation. See Engine.Compute.
func Compute(dataset []model.Bookmark, p Predicates) ([]model.Bookmark, error) {
	return defaultEngine.Compute(dataset, p)
}

// Compute returns a new slice holding the bookmarks of dataset that match all
// predicates, sorted by title in p.Sort direction. Records with equal titles
// keep their dataset order in either direction.
func (e *Engine) Compute(dataset []model.Bookmark, p Predicates) ([]model.Bookmark, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	fold := cases.Fold()
	needle := fold.String(p.SearchText)

	visible := make([]model.Bookmark, 0, len(dataset))
	for _, b := range dataset {
		if !matches(b, p, needle, fold) {
			continue
		}
		b.Tags = slices.Clone(b.Tags)
		visible = append(visible, b)
	}

	c := collate.New(e.tag)
	slices.SortStableFunc(visible, func(a, b model.Bookmark) int {
		if p.Sort == SortDescending {
			return c.CompareString(b.Title, a.Title)
		}
		return c.CompareString(a.Title, b.Title)
	})

	return visible, nil
}

// Matches reports whether b satisfies every predicate in p.
func Matches(b model.Bookmark, p Predicates) bool {
	fold := cases.Fold()
	return matches(b, p, fold.String(p.SearchText), fold)
}

func matches(b model.Bookmark, p Predicates, needle string, fold cases.Caser) bool {
	if needle != "" && !strings.Contains(fold.String(b.Title), needle) {
		return false
	}
	if p.Category != nil && b.Category != *p.Category {
		return false
	}
	if len(p.Tags) == 0 {
		return true
	}
	for _, tag := range p.Tags {
		if b.HasTag(tag) {
			return true
		}
	}
	return false
}
