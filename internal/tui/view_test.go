package tui_test

import (
	"strings"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/nikbrunner/shelf/internal/model"
	"github.com/nikbrunner/shelf/internal/tui"
	"github.com/nikbrunner/shelf/internal/tui/layout"
)

func render(app tui.App) string {
	return layout.StripANSI(app.View())
}

func TestView_Grid(t *testing.T) {
	out := render(newTestApp(t, model.ViewGrid))

	assert.Check(t, is.Contains(out, "shelf"))
	assert.Check(t, is.Contains(out, "5/5"))
	assert.Check(t, is.Contains(out, "category:All Categories"))
	assert.Check(t, is.Contains(out, "sort:A-Z"))
	assert.Check(t, is.Contains(out, "view:grid"))
	for _, title := range []string{"Cobra", "Figma", "Go by Example", "React Docs", "Tailwind CSS"} {
		assert.Check(t, is.Contains(out, title))
	}
	assert.Check(t, is.Contains(out, "[Frontend]"))
	assert.Check(t, is.Contains(out, "#react"))
	assert.Check(t, is.Contains(out, "https://figma.com"))
}

func TestView_GridRowsInSortedOrder(t *testing.T) {
	out := render(newTestApp(t, model.ViewGrid))

	// First row holds the first three titles, second row the rest
	cobra := strings.Index(out, "Cobra")
	react := strings.Index(out, "React Docs")
	assert.Assert(t, cobra >= 0 && react > cobra)
}

func TestView_List(t *testing.T) {
	out := render(newTestApp(t, model.ViewList))

	assert.Check(t, is.Contains(out, "view:list"))
	lines := strings.Split(out, "\n")

	var rows []string
	for _, l := range lines {
		if strings.Contains(l, "https://") {
			rows = append(rows, l)
		}
	}
	assert.Assert(t, is.Len(rows, 5))
	assert.Check(t, is.Contains(rows[0], "Cobra"))
	assert.Check(t, is.Contains(rows[0], "Tools"))
	assert.Check(t, is.Contains(rows[0], "#go #cli"))
	assert.Check(t, is.Contains(rows[4], "Tailwind CSS"))
}

func TestView_EmptyState(t *testing.T) {
	app := press(newTestApp(t, model.ViewGrid), runes("/"), runes("zzz"), enter)

	out := render(app)

	assert.Check(t, is.Contains(out, tui.EmptyStateText))
	assert.Check(t, is.Contains(out, "press x to clear filters"))
	assert.Check(t, is.Contains(out, "0/5"))
	assert.Check(t, is.Contains(out, `search:"zzz"`))
}

func TestView_EmptyDataset(t *testing.T) {
	app := tui.NewApp(tui.AppParams{Dataset: model.NewDataset(nil)})

	out := render(app)

	assert.Check(t, is.Contains(out, tui.EmptyStateText))
	assert.Check(t, !strings.Contains(out, "press x"), "nothing to clear")
}

func TestView_ActiveFilters(t *testing.T) {
	app := press(newTestApp(t, model.ViewList), runes("t"), enter, esc, runes("s"))

	out := render(app)

	assert.Check(t, is.Contains(out, "tags:cli"))
	assert.Check(t, is.Contains(out, "sort:Z-A"))
	assert.Check(t, is.Contains(out, "1/5"))
}

func TestView_CategoryPicker(t *testing.T) {
	app := press(newTestApp(t, model.ViewGrid), runes("c"))

	out := render(app)

	assert.Check(t, is.Contains(out, "Category"))
	assert.Check(t, is.Contains(out, "● All Categories"))
	assert.Check(t, is.Contains(out, "Frontend"))
	assert.Check(t, is.Contains(out, "Enter select"))
}

func TestView_TagPickerMarksActive(t *testing.T) {
	app := press(newTestApp(t, model.ViewGrid), runes("t"), enter)

	out := render(app)

	assert.Check(t, is.Contains(out, "● cli"))
	assert.Check(t, !strings.Contains(out, "● css"))
}

func TestView_Help(t *testing.T) {
	app := press(newTestApp(t, model.ViewGrid), runes("?"))

	out := render(app)

	assert.Check(t, is.Contains(out, "search titles"))
	assert.Check(t, is.Contains(out, "grid/list"))
}

func TestView_Message(t *testing.T) {
	app := press(newTestApp(t, model.ViewGrid), runes("Y"))

	assert.Check(t, is.Contains(render(app), "✓ Copied URL"))
}
