package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nikbrunner/shelf/internal/model"
	"github.com/nikbrunner/shelf/internal/tui/layout"
)

// renderCard renders one bookmark as a bordered grid card of the given
// outer width. Every card has the same height.
func (a App) renderCard(b model.Bookmark, selected bool, width int) string {
	style := a.styles.Card
	if selected {
		style = a.styles.CardSelected
	}

	// Border (2) + padding (2)
	inner := max(width-4, 1)
	textCfg := a.layoutConfig.Text

	title, _ := layout.TruncateText(b.Title, inner, textCfg)
	url, _ := layout.TruncateText(b.URL, inner, textCfg)
	desc, _ := layout.TruncateText(b.Description, inner, textCfg)

	lines := []string{
		a.styles.BookmarkTitle.Render(title),
		a.styles.URL.Render(url),
		a.styles.Description.Render(desc),
		a.renderBadges(b, inner),
	}

	return style.
		Width(width - 2).
		Height(a.layoutConfig.Grid.CardHeight - 2).
		Render(strings.Join(lines, "\n"))
}

// renderRow renders one bookmark as a single list line:
// title | category | tags | url
func (a App) renderRow(b model.Bookmark, selected bool, width int) string {
	textCfg := a.layoutConfig.Text
	available := max(width-a.layoutConfig.List.ContentPadding, 10)

	titleWidth := available * 35 / 100
	catWidth := a.layoutConfig.List.CategoryWidth
	rest := max(available-titleWidth-catWidth-2, 0)

	title, _ := layout.TruncateText(b.Title, titleWidth, textCfg)
	cat, _ := layout.TruncateText(b.Category, catWidth, textCfg)

	tail := b.URL
	if len(b.Tags) > 0 {
		tail = "#" + strings.Join(b.Tags, " #") + "  " + b.URL
	}
	tail, _ = layout.TruncateText(tail, rest, textCfg)

	line := layout.PadRight(title, titleWidth) + " " +
		layout.PadRight(cat, catWidth) + " " +
		tail

	if selected {
		return a.styles.RowSelected.Render(layout.PadRight(line, available))
	}
	return a.styles.Row.Render(line)
}

// renderBadges renders "[Category] #tag #tag" within width cells. Tags that
// are part of the active filter are highlighted.
func (a App) renderBadges(b model.Bookmark, width int) string {
	badge := "[" + b.Category + "]"
	if layout.VisibleLength(badge) >= width {
		badge, _ = layout.TruncateText(badge, width, a.layoutConfig.Text)
		return a.styles.Category.Render(badge)
	}

	var out strings.Builder
	out.WriteString(a.styles.Category.Render(badge))
	used := layout.VisibleLength(badge)

	for _, t := range b.Tags {
		label := "#" + t
		if used+1+layout.VisibleLength(label) > width {
			out.WriteString(a.styles.Tag.Render(" " + a.layoutConfig.Text.Ellipsis))
			break
		}
		style := a.styles.Tag
		if a.predicates.HasTag(t) {
			style = a.styles.TagActive
		}
		out.WriteString(" " + style.Render(label))
		used += 1 + layout.VisibleLength(label)
	}

	return lipgloss.NewStyle().MaxWidth(width).Render(out.String())
}
