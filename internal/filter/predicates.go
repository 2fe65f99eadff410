package filter

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrInvalidSortOrder is returned for a sort order outside the known set.
var ErrInvalidSortOrder = errors.New("invalid sort order")

// SortOrder is the direction of the title sort.
type SortOrder int

const (
	SortAscending SortOrder = iota
	SortDescending
)

func (s SortOrder) String() string {
	switch s {
	case SortAscending:
		return "asc"
	case SortDescending:
		return "desc"
	default:
		return fmt.Sprintf("SortOrder(%d)", int(s))
	}
}

// ParseSortOrder parses "asc"/"ascending" or "desc"/"descending",
// case-insensitively. An empty string means ascending.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return SortAscending, nil
	case "desc", "descending":
		return SortDescending, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSortOrder, s)
	}
}

// Predicates is the set of user-chosen criteria the engine filters and sorts by.
// The zero value matches everything and sorts ascending.
type Predicates struct {
	SearchText string
	Category   *string  // nil = all categories
	Tags       []string // empty = any tags; otherwise at least one must match
	Sort       SortOrder
}

// PredicatesParams holds raw user input for building Predicates.
type PredicatesParams struct {
	SearchText string
	Category   string // "" = all categories
	Tags       []string
	Sort       string
}

// NewPredicates normalises raw input into Predicates.
// Blank and repeated tags are dropped; an unknown sort order is rejected.
func NewPredicates(params PredicatesParams) (Predicates, error) {
	sort, err := ParseSortOrder(params.Sort)
	if err != nil {
		return Predicates{}, err
	}

	p := Predicates{
		SearchText: params.SearchText,
		Tags:       []string{},
		Sort:       sort,
	}
	if params.Category != "" {
		category := params.Category
		p.Category = &category
	}
	for _, tag := range params.Tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || slices.Contains(p.Tags, tag) {
			continue
		}
		p.Tags = append(p.Tags, tag)
	}

	return p, nil
}

// Validate rejects structurally invalid predicates.
func (p Predicates) Validate() error {
	err := validation.ValidateStruct(&p,
		validation.Field(&p.Sort, validation.In(SortAscending, SortDescending)),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSortOrder, err)
	}
	return nil
}

// IsZero reports whether no filter is active. Sort order is ignored.
func (p Predicates) IsZero() bool {
	return p.SearchText == "" && p.Category == nil && len(p.Tags) == 0
}

// CategoryLabel returns the selected category, or "" when none is set.
func (p Predicates) CategoryLabel() string {
	if p.Category == nil {
		return ""
	}
	return *p.Category
}

// HasTag reports whether tag is among the selected tags.
func (p Predicates) HasTag(tag string) bool {
	return slices.Contains(p.Tags, tag)
}

// WithSearchText returns a copy with the search text replaced.
func (p Predicates) WithSearchText(text string) Predicates {
	p.SearchText = text
	return p
}

// WithCategory returns a copy with the category replaced. "" clears it.
func (p Predicates) WithCategory(category string) Predicates {
	if category == "" {
		p.Category = nil
		return p
	}
	p.Category = &category
	return p
}

// ToggleTag returns a copy with tag added to or removed from the selection.
func (p Predicates) ToggleTag(tag string) Predicates {
	tags := make([]string, 0, len(p.Tags)+1)
	found := false
	for _, t := range p.Tags {
		if t == tag {
			found = true
			continue
		}
		tags = append(tags, t)
	}
	if !found {
		tags = append(tags, tag)
	}
	p.Tags = tags
	return p
}

// ToggleSort returns a copy with the sort direction flipped.
func (p Predicates) ToggleSort() Predicates {
	if p.Sort == SortAscending {
		p.Sort = SortDescending
	} else {
		p.Sort = SortAscending
	}
	return p
}

// Cleared returns predicates with every filter removed, keeping the sort order.
func (p Predicates) Cleared() Predicates {
	return Predicates{Tags: []string{}, Sort: p.Sort}
}
