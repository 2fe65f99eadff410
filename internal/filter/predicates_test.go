package filter_test

import (
	"errors"
	"testing"

	"github.com/nikbrunner/shelf/internal/filter"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestParseSortOrder(t *testing.T) {
	tests := []struct {
		input   string
		want    filter.SortOrder
		wantErr bool
	}{
		{input: "", want: filter.SortAscending},
		{input: "asc", want: filter.SortAscending},
		{input: "Ascending", want: filter.SortAscending},
		{input: "DESC", want: filter.SortDescending},
		{input: " descending ", want: filter.SortDescending},
		{input: "sideways", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := filter.ParseSortOrder(tt.input)
			if tt.wantErr {
				assert.Assert(t, errors.Is(err, filter.ErrInvalidSortOrder))
				return
			}
			assert.NilError(t, err)
			assert.Equal(t, got, tt.want)
		})
	}
}

func TestNewPredicates_Defaults(t *testing.T) {
	p, err := filter.NewPredicates(filter.PredicatesParams{})

	assert.NilError(t, err)
	assert.Equal(t, p.SearchText, "")
	assert.Assert(t, p.Category == nil)
	assert.Assert(t, p.Tags != nil)
	assert.Equal(t, len(p.Tags), 0)
	assert.Equal(t, p.Sort, filter.SortAscending)
	assert.Check(t, p.IsZero())
}

func TestNewPredicates_Normalises(t *testing.T) {
	p, err := filter.NewPredicates(filter.PredicatesParams{
		SearchText: "Docs",
		Category:   "Frontend",
		Tags:       []string{"ui", " ", "css", "ui", " css "},
		Sort:       "desc",
	})

	assert.NilError(t, err)
	assert.Equal(t, p.SearchText, "Docs")
	assert.Equal(t, p.CategoryLabel(), "Frontend")
	assert.DeepEqual(t, p.Tags, []string{"ui", "css"})
	assert.Equal(t, p.Sort, filter.SortDescending)
	assert.Check(t, !p.IsZero())
}

func TestNewPredicates_RejectsUnknownSort(t *testing.T) {
	_, err := filter.NewPredicates(filter.PredicatesParams{Sort: "random"})

	assert.Assert(t, errors.Is(err, filter.ErrInvalidSortOrder))
}

func TestPredicates_Validate(t *testing.T) {
	assert.NilError(t, filter.Predicates{Sort: filter.SortAscending}.Validate())
	assert.NilError(t, filter.Predicates{Sort: filter.SortDescending}.Validate())

	err := filter.Predicates{Sort: filter.SortOrder(-1)}.Validate()
	assert.Assert(t, errors.Is(err, filter.ErrInvalidSortOrder))
}

func TestPredicates_ToggleTag(t *testing.T) {
	p := filter.Predicates{Tags: []string{"cli"}}

	added := p.ToggleTag("ui")
	assert.DeepEqual(t, added.Tags, []string{"cli", "ui"})
	assert.Check(t, is.DeepEqual(p.Tags, []string{"cli"}), "original must be unchanged")

	removed := added.ToggleTag("cli")
	assert.DeepEqual(t, removed.Tags, []string{"ui"})
	assert.Check(t, removed.HasTag("ui"))
	assert.Check(t, !removed.HasTag("cli"))
}

func TestPredicates_WithCategory(t *testing.T) {
	p := filter.Predicates{}.WithCategory("Design")
	assert.Equal(t, p.CategoryLabel(), "Design")

	p = p.WithCategory("")
	assert.Assert(t, p.Category == nil)
}

func TestPredicates_ToggleSortAndClear(t *testing.T) {
	p := filter.Predicates{SearchText: "go", Tags: []string{"cli"}}.WithCategory("Tools")

	p = p.ToggleSort()
	assert.Equal(t, p.Sort, filter.SortDescending)
	assert.Equal(t, p.ToggleSort().Sort, filter.SortAscending)

	cleared := p.Cleared()
	assert.Check(t, cleared.IsZero())
	assert.Equal(t, cleared.Sort, filter.SortDescending, "clearing keeps the sort order")
}

func TestSortOrder_String(t *testing.T) {
	assert.Equal(t, filter.SortAscending.String(), "asc")
	assert.Equal(t, filter.SortDescending.String(), "desc")
	assert.Equal(t, filter.SortOrder(9).String(), "SortOrder(9)")
}
