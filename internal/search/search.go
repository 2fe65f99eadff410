// Package search narrows picker option lists (category and tag labels) as the
// user types. It never ranks bookmarks; bookmark matching is the exact
// substring filter in package filter.
package search

import "github.com/sahilm/fuzzy"

// Result is a label that matched the query.
type Result struct {
	Index          int    // position in the input labels
	Label          string // the matched label
	MatchedIndexes []int  // byte offsets of matched characters, for highlighting
	Score          int
}

// labelSource implements fuzzy.Source.
type labelSource []string

func (ls labelSource) String(i int) string {
	return ls[i]
}

func (ls labelSource) Len() int {
	return len(ls)
}

// FuzzyFindLabels matches query against labels.
// An empty query keeps every label in its original order. Otherwise results
// are sorted by match score (best first).
func FuzzyFindLabels(labels []string, query string) []Result {
	if query == "" {
		results := make([]Result, len(labels))
		for i, l := range labels {
			results[i] = Result{Index: i, Label: l}
		}
		return results
	}

	matches := fuzzy.FindFrom(query, labelSource(labels))

	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = Result{
			Index:          m.Index,
			Label:          m.Str,
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}
