package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nikbrunner/shelf/internal/model"
	"github.com/nikbrunner/shelf/internal/tui/layout"
)

// EmptyStateText is shown when no bookmark satisfies the predicates.
const EmptyStateText = "No bookmarks match"

// renderView creates the complete screen.
func (a App) renderView() string {
	switch a.mode {
	case ModeHelp:
		return a.renderHelpOverlay()
	case ModeCategory, ModeTags:
		return a.renderPicker()
	}

	header := a.renderHeader()
	filterBar := a.renderFilterBar()
	results := a.renderResults()
	helpBar := a.renderHelpBar()

	content := a.styles.App.Render(
		lipgloss.JoinVertical(lipgloss.Left, header, filterBar, "", results, helpBar),
	)

	// Use Place to ensure exact terminal dimensions and prevent overflow
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

// renderHeader renders "shelf  n/N" with the visible and total counts.
func (a App) renderHeader() string {
	count := fmt.Sprintf("%d/%d", len(a.visible), a.dataset.Len())
	return a.styles.Title.Render("shelf") + "  " + a.styles.Count.Render(count)
}

// renderFilterBar shows the active predicates. In search mode the search
// input replaces the search segment.
func (a App) renderFilterBar() string {
	var parts []string

	if a.mode == ModeSearch {
		parts = append(parts, a.search.Input.View())
	} else if a.predicates.SearchText != "" {
		parts = append(parts, a.renderFilterSegment("search", strconv.Quote(a.predicates.SearchText)))
	}

	category := AllCategoriesLabel
	if a.predicates.Category != nil {
		category = *a.predicates.Category
	}
	parts = append(parts, a.renderFilterSegment("category", category))

	if len(a.predicates.Tags) > 0 {
		parts = append(parts, a.renderFilterSegment("tags", strings.Join(a.predicates.Tags, ", ")))
	}

	parts = append(parts,
		a.renderFilterSegment("sort", sortLabel(a.predicates.Sort)),
		a.renderFilterSegment("view", a.viewMode.String()),
	)

	bar := strings.Join(parts, "  ")
	if layout.VisibleLength(bar) > a.contentWidth() {
		bar = layout.TruncateANSIAware(bar, a.contentWidth(), a.layoutConfig.Text)
	}
	return bar
}

func (a App) renderFilterSegment(label, value string) string {
	return a.styles.FilterLabel.Render(label+":") + a.styles.FilterValue.Render(value)
}

// renderResults renders the visible set in the current view mode.
func (a App) renderResults() string {
	if len(a.visible) == 0 {
		return a.renderEmptyState()
	}
	if a.viewMode == model.ViewList {
		return a.renderList()
	}
	return a.renderGrid()
}

func (a App) renderEmptyState() string {
	height := layout.CalculateResultsHeight(a.height, a.layoutConfig.List)

	lines := []string{a.styles.Empty.Render(EmptyStateText)}
	if !a.predicates.IsZero() {
		lines = append(lines, a.styles.Empty.Render("press x to clear filters"))
	}

	return lipgloss.NewStyle().
		Height(height).
		Render(strings.Join(lines, "\n"))
}

// renderGrid renders cards row by row, scrolled so the cursor's row stays visible.
func (a App) renderGrid() string {
	grid := layout.CalculateGrid(a.contentWidth(), a.height, a.layoutConfig.Grid, a.layoutConfig.List)

	totalRows := layout.RowCount(len(a.visible), grid.Columns)
	offset := layout.CalculateViewportOffset(a.cursor/grid.Columns, totalRows, grid.VisibleRows)

	var rows []string
	for row := offset; row < totalRows && row < offset+grid.VisibleRows; row++ {
		var cards []string
		for col := 0; col < grid.Columns; col++ {
			i := row*grid.Columns + col
			if i >= len(a.visible) {
				break
			}
			if col > 0 {
				cards = append(cards, strings.Repeat(" ", a.layoutConfig.Grid.Gap))
			}
			cards = append(cards, a.renderCard(a.visible[i], i == a.cursor, grid.CardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return strings.Join(rows, "\n")
}

// renderList renders one row per bookmark, scrolled to keep the cursor visible.
func (a App) renderList() string {
	height := layout.CalculateResultsHeight(a.height, a.layoutConfig.List)
	offset := layout.CalculateViewportOffset(a.cursor, len(a.visible), height)

	var lines []string
	for i := offset; i < len(a.visible) && i < offset+height; i++ {
		lines = append(lines, a.renderRow(a.visible[i], i == a.cursor, a.contentWidth()))
	}

	return strings.Join(lines, "\n")
}

// renderHelpBar renders the message line and the contextual hints.
func (a App) renderHelpBar() string {
	var lines []string

	// Line 1: Empty spacer OR message (message replaces the gap)
	if a.messageText != "" {
		lines = append(lines, a.renderMessageLine())
	} else {
		lines = append(lines, "")
	}

	if hints := a.renderHints(a.getContextualHints()); hints != "" {
		lines = append(lines, hints)
	}

	return strings.Join(lines, "\n")
}

// renderMessageLine renders the styled message with prefix icon based on type.
func (a App) renderMessageLine() string {
	var msgStyle lipgloss.Style
	var prefix string

	switch a.messageType {
	case MessageError:
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#CC3333", Dark: "#FF6666"}).
			Bold(true)
		prefix = "✗ "
	case MessageWarning:
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#CC8800", Dark: "#FFAA00"}).
			Bold(true)
		prefix = "⚠ "
	case MessageSuccess:
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#338833", Dark: "#66CC66"}).
			Bold(true)
		prefix = "✓ "
	default: // MessageInfo
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}).
			Bold(true)
		prefix = ""
	}

	return msgStyle.Render(prefix + a.messageText)
}

// renderPicker renders the category or tag picker as a centered modal.
func (a App) renderPicker() string {
	modalWidth := layout.CalculateModalWidth(a.width, a.layoutConfig.Modal.DefaultWidthPercent, a.layoutConfig.Modal)
	// Border (2) + padding (4)
	inner := max(modalWidth-6, 1)

	title := "Category"
	if a.mode == ModeTags {
		title = "Tags"
	}

	var content strings.Builder
	content.WriteString(a.styles.Title.Render(title) + "\n\n")
	content.WriteString(a.picker.Input.View() + "\n\n")

	if len(a.picker.Results) == 0 {
		content.WriteString(a.styles.Empty.Render("(no matches)") + "\n")
	} else {
		start, end := layout.CalculateVisibleListItems(a.layoutConfig.Modal.PickerMaxVisible, a.picker.Cursor, len(a.picker.Results))
		for i := start; i < end; i++ {
			content.WriteString(a.renderPickerOption(i, i == a.picker.Cursor, inner) + "\n")
		}
	}

	hints := []Hint{{Key: "Enter", Desc: "select"}, {Key: "Esc", Desc: "close"}}
	if a.mode == ModeTags {
		hints = []Hint{{Key: "Enter", Desc: "toggle"}, {Key: "Esc", Desc: "done"}}
	}
	content.WriteString("\n" + a.renderHintsInline(hints))

	modal := a.styles.Modal.Width(modalWidth - 2).Render(content.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, modal)
}

// renderPickerOption renders one picker row: a marker for active options,
// the label with fuzzy matches highlighted, and the count right-aligned.
func (a App) renderPickerOption(i int, selected bool, width int) string {
	r := a.picker.Results[i]
	opt := a.picker.Options[r.Index]

	marker := "  "
	if opt.Active {
		marker = "● "
	}
	count := " " + strconv.Itoa(opt.Count)

	// Apply highlighting to matched characters
	matchSet := make(map[int]bool, len(r.MatchedIndexes))
	for _, idx := range r.MatchedIndexes {
		matchSet[idx] = true
	}
	var label strings.Builder
	for j, ch := range opt.Label {
		if matchSet[j] {
			label.WriteString("\033[1;4m")
			label.WriteRune(ch)
			label.WriteString("\033[22;24m")
		} else {
			label.WriteRune(ch)
		}
	}

	// One cell for the item padding
	labelWidth := max(width-1-layout.VisibleLength(marker)-layout.VisibleLength(count), 1)
	styled := label.String()
	if layout.VisibleLength(styled) > labelWidth {
		styled = layout.TruncateANSIAware(styled, labelWidth, a.layoutConfig.Text)
	}

	line := marker + layout.PadRight(styled, labelWidth) + a.styles.Count.Render(count)
	if selected {
		return a.styles.PickerSelected.Render(line)
	}
	return a.styles.PickerItem.Render(line)
}

// renderHelpOverlay renders the help overlay.
func (a App) renderHelpOverlay() string {
	// Brutalist style: no border, just raw columns
	modalStyle := lipgloss.NewStyle().
		Padding(1, 2)

	k := func(keys, desc string) string {
		return layout.PadRight(keys, 5) + desc + "\n"
	}

	var left strings.Builder
	left.WriteString(a.styles.Title.Render("nav") + "\n")
	left.WriteString(k("j/k", "down/up"))
	left.WriteString(k("h/l", "left/right"))
	left.WriteString(k("gg", "top"))
	left.WriteString(k("G", "bottom"))
	left.WriteString("\n")
	left.WriteString(a.styles.Title.Render("act") + "\n")
	left.WriteString(k("o", "open url"))
	left.WriteString(k("Y", "yank url"))

	var right strings.Builder
	right.WriteString(a.styles.Title.Render("filter") + "\n")
	right.WriteString(k("/", "search titles"))
	right.WriteString(k("c", "category"))
	right.WriteString(k("t", "tags (any)"))
	right.WriteString(k("s", "sort A-Z/Z-A"))
	right.WriteString(k("v", "grid/list"))
	right.WriteString(k("x", "clear filters"))
	right.WriteString("\n")
	right.WriteString(a.styles.Help.Render("[?/q/esc] close"))

	leftCol := lipgloss.NewStyle().Width(a.layoutConfig.Modal.HelpLeftColumnWidth).Render(left.String())
	rightCol := lipgloss.NewStyle().Render(right.String())
	cols := lipgloss.JoinHorizontal(lipgloss.Top, leftCol, "  ", rightCol)

	// Top-left aligned, brutalist style
	return lipgloss.Place(
		a.width,
		a.height,
		lipgloss.Left,
		lipgloss.Top,
		modalStyle.Render(cols),
	)
}
