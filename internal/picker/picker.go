// Package picker is a one-shot list for choosing among several bookmarks
// that matched a query on the command line.
package picker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nikbrunner/shelf/internal/model"
	"github.com/nikbrunner/shelf/internal/tui/layout"
)

var (
	accent = lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}
	subtle = lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}

	selectedStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"})

	metaStyle = lipgloss.NewStyle().
			Foreground(subtle)

	headerStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			MarginBottom(1)
)

// Picker is a simple TUI for selecting from matched bookmarks.
type Picker struct {
	bookmarks []model.Bookmark
	query     string
	cursor    int
	selected  bool
	cancelled bool
	width     int
	height    int
}

// New creates a new Picker over bookmarks, shown in the given order.
func New(bookmarks []model.Bookmark, query string) Picker {
	return Picker{
		bookmarks: bookmarks,
		query:     query,
		cursor:    0,
		width:     80,
		height:    24,
	}
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		return p, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			p.cancelled = true
			return p, tea.Quit

		case tea.KeyEnter:
			if len(p.bookmarks) > 0 {
				p.selected = true
			} else {
				p.cancelled = true
			}
			return p, tea.Quit

		case tea.KeyDown:
			p.moveDown()
			return p, nil

		case tea.KeyUp:
			p.moveUp()
			return p, nil
		}

		// Handle j/k vim keys
		if msg.Type == tea.KeyRunes {
			switch string(msg.Runes) {
			case "j":
				p.moveDown()
			case "k":
				p.moveUp()
			case "q":
				p.cancelled = true
				return p, tea.Quit
			}
		}
	}

	return p, nil
}

func (p *Picker) moveDown() {
	if p.cursor < len(p.bookmarks)-1 {
		p.cursor++
	}
}

func (p *Picker) moveUp() {
	if p.cursor > 0 {
		p.cursor--
	}
}

// View implements tea.Model.
func (p Picker) View() string {
	var b strings.Builder
	textCfg := layout.DefaultConfig().Text

	b.WriteString(headerStyle.Render(fmt.Sprintf("Matches for %q (%d)", p.query, len(p.bookmarks))))
	b.WriteString("\n\n")

	// Each entry takes two lines; header and footer take four
	maxVisible := max((p.height-4)/2, 1)
	start, end := layout.CalculateVisibleListItems(maxVisible, p.cursor, len(p.bookmarks))
	width := max(p.width-3, 10)

	for i := start; i < end; i++ {
		bm := p.bookmarks[i]
		cursor := "  "
		style := normalStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedStyle
		}

		title, _ := layout.TruncateText(bm.Title, width, textCfg)
		meta, _ := layout.TruncateText("["+bm.Category+"] "+bm.URL, width, textCfg)

		b.WriteString(cursor + style.Render(title) + "\n")
		b.WriteString("   " + metaStyle.Render(meta) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(metaStyle.Render("j/k: move  Enter: open  q/Esc: cancel"))

	return b.String()
}

// SelectedBookmark returns the chosen bookmark. ok is false if the user
// cancelled.
func (p Picker) SelectedBookmark() (b model.Bookmark, ok bool) {
	if p.cancelled || !p.selected || p.cursor >= len(p.bookmarks) {
		return model.Bookmark{}, false
	}
	return p.bookmarks[p.cursor], true
}

// Cancelled returns true if the user cancelled the selection.
func (p Picker) Cancelled() bool {
	return p.cancelled
}
