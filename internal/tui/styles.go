package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	App            lipgloss.Style
	Title          lipgloss.Style
	Count          lipgloss.Style
	Card           lipgloss.Style
	CardSelected   lipgloss.Style
	Row            lipgloss.Style
	RowSelected    lipgloss.Style
	BookmarkTitle  lipgloss.Style
	URL            lipgloss.Style
	Description    lipgloss.Style
	Category       lipgloss.Style // category badge
	Tag            lipgloss.Style
	TagActive      lipgloss.Style // tag that is part of the current filter
	FilterLabel    lipgloss.Style
	FilterValue    lipgloss.Style
	Modal          lipgloss.Style
	PickerItem     lipgloss.Style
	PickerSelected lipgloss.Style
	Help           lipgloss.Style
	Empty          lipgloss.Style
	HintKey        lipgloss.Style // Key portion of hints (e.g., "Enter", "j/k")
	HintDesc       lipgloss.Style // Description portion of hints (e.g., "confirm", "move")
	HintLabel      lipgloss.Style // Row label in the help bar
}

// DefaultStyles returns the default style configuration.
// Industrial design: grayscale with single desaturated teal accent.
func DefaultStyles() Styles {
	primary := lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"} // main text
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}  // secondary text
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}  // desaturated teal
	border := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#505050"}  // inactive borders
	ink := lipgloss.Color("#1A1A1A")

	return Styles{
		App: lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(2),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Count: lipgloss.NewStyle().
			Foreground(subtle),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),

		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(accent).
			Padding(0, 1),

		Row: lipgloss.NewStyle().
			Foreground(primary).
			PaddingLeft(1),

		RowSelected: lipgloss.NewStyle().
			PaddingLeft(1).
			Background(accent).
			Foreground(ink),

		BookmarkTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),

		URL: lipgloss.NewStyle().
			Foreground(subtle),

		Description: lipgloss.NewStyle().
			Foreground(primary),

		Category: lipgloss.NewStyle().
			Foreground(accent),

		Tag: lipgloss.NewStyle().
			Foreground(subtle),

		TagActive: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		FilterLabel: lipgloss.NewStyle().
			Foreground(subtle),

		FilterValue: lipgloss.NewStyle().
			Foreground(accent),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(accent).
			Padding(1, 2),

		PickerItem: lipgloss.NewStyle().
			Foreground(primary).
			PaddingLeft(1),

		PickerSelected: lipgloss.NewStyle().
			PaddingLeft(1).
			Background(accent).
			Foreground(ink),

		Help: lipgloss.NewStyle().
			Foreground(subtle).
			Padding(1, 0),

		Empty: lipgloss.NewStyle().
			Foreground(subtle),

		HintKey: lipgloss.NewStyle().
			Foreground(subtle),

		HintDesc: lipgloss.NewStyle().
			Foreground(subtle),

		HintLabel: lipgloss.NewStyle().
			Foreground(border),
	}
}
