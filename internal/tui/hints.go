package tui

import (
	"strings"

	"github.com/nikbrunner/shelf/internal/model"
)

// Hint represents a single keybind hint for display.
type Hint struct {
	Key  string // Display key (e.g., "j/k", "Enter")
	Desc string // Short description (e.g., "move", "open")
}

// renderHint renders a single hint as "key:desc" with styling.
func (a App) renderHint(h Hint) string {
	return a.styles.HintKey.Render(h.Key) + ":" + a.styles.HintDesc.Render(h.Desc)
}

// renderHints renders hints in horizontal format for bottom bar: "j/k:move /:search c:category"
func (a App) renderHints(hints HintSet) string {
	allHints := hints.All()
	if len(allHints) == 0 {
		return ""
	}

	parts := make([]string, len(allHints))
	for i, h := range allHints {
		parts[i] = a.renderHint(h)
	}
	return strings.Join(parts, " ")
}

// renderHintsInline renders hints in inline format for modals: "Enter select  Esc close"
func (a App) renderHintsInline(hints []Hint) string {
	if len(hints) == 0 {
		return ""
	}

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = a.styles.HintKey.Render(h.Key) + " " + a.styles.HintDesc.Render(h.Desc)
	}
	return strings.Join(parts, "  ")
}

// HintSet is an ordered collection of hints by group.
type HintSet struct {
	Nav    []Hint // Navigation hints (j/k, h/l, etc.)
	Filter []Hint // Predicate hints (/, c, t, s, x)
	Action []Hint // Action hints (open, yank)
	System []Hint // System hints (?, q, Esc)
}

// All returns all hints flattened in display order: Nav + Filter + Action + System.
func (h HintSet) All() []Hint {
	result := make([]Hint, 0, len(h.Nav)+len(h.Filter)+len(h.Action)+len(h.System))
	result = append(result, h.Nav...)
	result = append(result, h.Filter...)
	result = append(result, h.Action...)
	result = append(result, h.System...)
	return result
}

// getContextualHints returns the appropriate hints for the current mode.
func (a App) getContextualHints() HintSet {
	switch a.mode {
	case ModeNormal:
		return a.getNormalModeHints()
	case ModeSearch:
		return HintSet{
			Action: []Hint{{Key: "Enter", Desc: "keep"}},
			System: []Hint{{Key: "Esc", Desc: "clear"}},
		}
	case ModeCategory:
		return HintSet{
			Nav:    []Hint{{Key: "↑/↓", Desc: "nav"}, {Key: "type", Desc: "filter"}},
			Action: []Hint{{Key: "Enter", Desc: "select"}},
			System: []Hint{{Key: "Esc", Desc: "close"}},
		}
	case ModeTags:
		return HintSet{
			Nav:    []Hint{{Key: "↑/↓", Desc: "nav"}, {Key: "type", Desc: "filter"}},
			Action: []Hint{{Key: "Enter", Desc: "toggle"}},
			System: []Hint{{Key: "Esc", Desc: "done"}},
		}
	case ModeHelp:
		// Help overlay covers screen, minimal hints
		return HintSet{
			System: []Hint{{Key: "?/q/Esc", Desc: "close"}},
		}
	default:
		return HintSet{}
	}
}

// getNormalModeHints returns hints for ModeNormal (main browse).
func (a App) getNormalModeHints() HintSet {
	nav := []Hint{{Key: "j/k", Desc: "move"}}
	if a.viewMode == model.ViewGrid {
		nav = append(nav, Hint{Key: "h/l", Desc: "col"})
	}

	hints := HintSet{
		Nav: nav,
		Filter: []Hint{
			{Key: "/", Desc: "search"},
			{Key: "c", Desc: "category"},
			{Key: "t", Desc: "tags"},
			{Key: "s", Desc: "sort"},
			{Key: "v", Desc: "view"},
		},
		System: []Hint{
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		},
	}

	if !a.predicates.IsZero() {
		hints.Filter = append(hints.Filter, Hint{Key: "x", Desc: "clear"})
	}
	if len(a.visible) > 0 {
		hints.Action = []Hint{
			{Key: "o", Desc: "open"},
			{Key: "Y", Desc: "yank"},
		}
	}

	return hints
}
