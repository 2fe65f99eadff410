package filter

import (
	"slices"

	"golang.org/x/text/collate"

	"github.com/nikbrunner/shelf/internal/model"
)

// DistinctCategories returns each category once, in first-seen order.
func DistinctCategories(dataset []model.Bookmark) []string {
	seen := make(map[string]bool)
	categories := []string{}
	for _, b := range dataset {
		if seen[b.Category] {
			continue
		}
		seen[b.Category] = true
		categories = append(categories, b.Category)
	}
	return categories
}

// DistinctTags returns the union of all tags, in first-seen order.
func DistinctTags(dataset []model.Bookmark) []string {
	seen := make(map[string]bool)
	tags := []string{}
	for _, b := range dataset {
		for _, tag := range b.Tags {
			if seen[tag] {
				continue
			}
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	return tags
}

// SortLabels returns a copy of labels in alphabetical order for display.
func (e *Engine) SortLabels(labels []string) []string {
	sorted := slices.Clone(labels)
	c := collate.New(e.tag)
	c.SortStrings(sorted)
	return sorted
}

// SortLabels sorts with the default collation. See Engine.SortLabels.
func SortLabels(labels []string) []string {
	return defaultEngine.SortLabels(labels)
}

// CategoryCounts returns, per category, how many bookmarks would be visible
// if that category were selected with the remaining predicates of p unchanged.
func CategoryCounts(dataset []model.Bookmark, p Predicates) map[string]int {
	p.Category = nil
	counts := make(map[string]int)
	for _, b := range dataset {
		if Matches(b, p) {
			counts[b.Category]++
		}
	}
	return counts
}
