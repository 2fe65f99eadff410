package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Search   key.Binding
	Category key.Binding
	Tags     key.Binding
	Sort     key.Binding
	View     key.Binding
	Clear    key.Binding
	Open     key.Binding
	YankURL  key.Binding
	Help     key.Binding
	Quit     key.Binding

	// Overlay and input bindings. Letters are typed into inputs, so these
	// avoid them.
	Confirm    key.Binding
	Cancel     key.Binding
	PickerUp   key.Binding
	PickerDown key.Binding
}

// DefaultKeyMap returns the default vim-style key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/left", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/right", "move right"),
		),
		Top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("gg", "go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "go to bottom"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Category: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "category"),
		),
		Tags: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "tags"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle sort"),
		),
		View: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "grid/list"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear filters"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", "o"),
			key.WithHelp("o/enter", "open url"),
		),
		YankURL: key.NewBinding(
			key.WithKeys("Y"),
			key.WithHelp("Y", "yank URL"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "cancel"),
		),
		PickerUp: key.NewBinding(
			key.WithKeys("up", "ctrl+p", "ctrl+k"),
			key.WithHelp("↑", "up"),
		),
		PickerDown: key.NewBinding(
			key.WithKeys("down", "ctrl+n", "ctrl+j"),
			key.WithHelp("↓", "down"),
		),
	}
}
