package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/nikbrunner/shelf/internal/search"
	"github.com/nikbrunner/shelf/internal/tui/layout"
)

// Mode is the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeCategory
	ModeTags
	ModeHelp
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeSearch:
		return "search"
	case ModeCategory:
		return "category"
	case ModeTags:
		return "tags"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// MessageType determines the styling of the status message.
type MessageType int

const (
	MessageInfo MessageType = iota
	MessageSuccess
	MessageWarning
	MessageError
)

// SearchState holds the search box.
type SearchState struct {
	Input textinput.Model
}

// NewSearchState creates a new SearchState with an initialized input.
func NewSearchState(cfg layout.LayoutConfig) SearchState {
	input := textinput.New()
	input.Prompt = "/ "
	input.Placeholder = "Search titles..."
	input.CharLimit = cfg.Input.SearchCharLimit
	input.Width = cfg.Input.SearchWidth

	return SearchState{Input: input}
}

// Reset clears the search box.
func (s *SearchState) Reset() {
	s.Input.Reset()
	s.Input.Blur()
}

// PickerOption is one row of the category or tag picker.
type PickerOption struct {
	Label  string // display text
	Value  string // "" selects all categories
	Count  int
	Active bool // currently part of the predicates
}

// PickerState holds the category/tag picker overlay.
type PickerState struct {
	Input   textinput.Model // narrows Options
	Options []PickerOption
	Results []search.Result // Options narrowed by Input, indexes into Options
	Cursor  int
}

// NewPickerState creates a new PickerState with an initialized input.
func NewPickerState(cfg layout.LayoutConfig) PickerState {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "Filter..."
	input.CharLimit = cfg.Input.FilterCharLimit
	input.Width = cfg.Input.FilterWidth

	return PickerState{Input: input}
}

// Open installs options and resets narrowing.
func (p *PickerState) Open(options []PickerOption) {
	p.Options = options
	p.Input.Reset()
	p.Cursor = 0
	p.Narrow()
}

// Reset closes the picker.
func (p *PickerState) Reset() {
	p.Input.Reset()
	p.Input.Blur()
	p.Options = nil
	p.Results = nil
	p.Cursor = 0
}

// Narrow re-runs the fuzzy match of the input against option labels and
// clamps the cursor.
func (p *PickerState) Narrow() {
	labels := make([]string, len(p.Options))
	for i, o := range p.Options {
		labels[i] = o.Label
	}
	p.Results = search.FuzzyFindLabels(labels, p.Input.Value())
	if p.Cursor >= len(p.Results) {
		p.Cursor = max(len(p.Results)-1, 0)
	}
}

// Selected returns the option under the cursor.
func (p *PickerState) Selected() (PickerOption, bool) {
	if p.Cursor < 0 || p.Cursor >= len(p.Results) {
		return PickerOption{}, false
	}
	return p.Options[p.Results[p.Cursor].Index], true
}

// SetActive updates the Active flag of the option with the given value.
func (p *PickerState) SetActive(value string, active bool) {
	for i := range p.Options {
		if p.Options[i].Value == value {
			p.Options[i].Active = active
		}
	}
}
