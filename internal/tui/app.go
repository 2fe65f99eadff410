package tui

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikbrunner/shelf/internal/browser"
	"github.com/nikbrunner/shelf/internal/filter"
	"github.com/nikbrunner/shelf/internal/model"
	"github.com/nikbrunner/shelf/internal/tui/layout"
)

// AllCategoriesLabel is the picker entry that clears the category filter.
const AllCategoriesLabel = "All Categories"

// App is the main bubbletea model for the bookmark browser.
type App struct {
	dataset      *model.Dataset
	engine       *filter.Engine
	keys         KeyMap
	styles       Styles
	layoutConfig layout.LayoutConfig
	logger       *slog.Logger

	openURL func(string) error
	copyURL func(string) error

	// Derived state: visible is recomputed from predicates on every change
	predicates filter.Predicates
	visible    []model.Bookmark
	cursor     int
	viewMode   model.ViewMode

	mode   Mode
	search SearchState
	picker PickerState

	// For gg command
	lastKeyWasG bool

	messageText string
	messageType MessageType

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Dataset      *model.Dataset
	Engine       *filter.Engine          // optional, English collation if nil
	Predicates   *filter.Predicates      // optional, nothing filtered if nil
	View         model.ViewMode          // initial presentation
	Keys         *KeyMap                 // optional, uses default if nil
	Styles       *Styles                 // optional, uses default if nil
	LayoutConfig *layout.LayoutConfig    // optional, uses default if nil
	Logger       *slog.Logger            // optional, discards if nil
	OpenURL      func(url string) error  // optional, uses the system browser if nil
	CopyURL      func(text string) error // optional, uses the system clipboard if nil
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	layoutCfg := layout.DefaultConfig()
	if params.LayoutConfig != nil {
		layoutCfg = *params.LayoutConfig
	}

	engine := params.Engine
	if engine == nil {
		engine, _ = filter.NewEngine(filter.EngineParams{})
	}

	dataset := params.Dataset
	if dataset == nil {
		dataset = model.NewDataset(nil)
	}

	predicates := filter.Predicates{Tags: []string{}}
	if params.Predicates != nil {
		predicates = *params.Predicates
	}

	logger := params.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	openURL := params.OpenURL
	if openURL == nil {
		openURL = browser.Open
	}
	copyURL := params.CopyURL
	if copyURL == nil {
		copyURL = clipboard.WriteAll
	}

	app := App{
		dataset:      dataset,
		engine:       engine,
		keys:         keys,
		styles:       styles,
		layoutConfig: layoutCfg,
		logger:       logger,
		openURL:      openURL,
		copyURL:      copyURL,
		predicates:   predicates,
		viewMode:     params.View,
		mode:         ModeNormal,
		search:       NewSearchState(layoutCfg),
		picker:       NewPickerState(layoutCfg),
		width:        80,
		height:       24,
	}
	app.search.Input.SetValue(predicates.SearchText)

	app.refresh()
	return app
}

// refresh recomputes the visible set from the current predicates.
func (a *App) refresh() {
	visible, err := a.engine.Compute(a.dataset.Bookmarks, a.predicates)
	if err != nil {
		a.logger.Error("compute visible set", "error", err)
		a.setMessage(MessageError, err.Error())
		visible = []model.Bookmark{}
	}
	a.visible = visible

	if a.cursor >= len(a.visible) {
		a.cursor = max(len(a.visible)-1, 0)
	}

	a.logger.Debug("visible set recomputed",
		"search", a.predicates.SearchText,
		"category", a.predicates.CategoryLabel(),
		"tags", a.predicates.Tags,
		"sort", a.predicates.Sort.String(),
		"visible", len(a.visible),
	)
}

func (a *App) setPredicates(p filter.Predicates) {
	a.predicates = p
	a.refresh()
}

func (a *App) setMessage(t MessageType, text string) {
	a.messageType = t
	a.messageText = text
}

func (a *App) clearMessage() {
	a.messageText = ""
}

// Cursor returns the current cursor position.
func (a App) Cursor() int {
	return a.cursor
}

// Mode returns the current interaction mode.
func (a App) Mode() Mode {
	return a.mode
}

// ViewMode returns the current presentation.
func (a App) ViewMode() model.ViewMode {
	return a.viewMode
}

// Predicates returns the active predicates.
func (a App) Predicates() filter.Predicates {
	return a.predicates
}

// Visible returns the bookmarks currently shown, in display order.
func (a App) Visible() []model.Bookmark {
	return a.visible
}

// Selected returns the bookmark under the cursor.
func (a App) Selected() (model.Bookmark, bool) {
	if a.cursor < 0 || a.cursor >= len(a.visible) {
		return model.Bookmark{}, false
	}
	return a.visible[a.cursor], true
}

// Message returns the status message, if any.
func (a App) Message() string {
	return a.messageText
}

// PickerLabels returns the labels of the picker options currently listed.
func (a App) PickerLabels() []string {
	labels := make([]string, len(a.picker.Results))
	for i, r := range a.picker.Results {
		labels[i] = r.Label
	}
	return labels
}

// WithDimensions returns a copy sized as if the terminal had reported it.
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	return a
}

// columns returns how many bookmarks share a row in the current view.
func (a App) columns() int {
	if a.viewMode == model.ViewList {
		return 1
	}
	return layout.CalculateGridColumns(a.contentWidth(), a.layoutConfig.Grid)
}

// contentWidth is the terminal width minus app padding (left=2, right=2).
func (a App) contentWidth() int {
	return max(a.width-4, 1)
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

		switch a.mode {
		case ModeSearch:
			return a.updateSearch(msg)
		case ModeCategory, ModeTags:
			return a.updatePicker(msg)
		case ModeHelp:
			if key.Matches(msg, a.keys.Help, a.keys.Quit, a.keys.Cancel) {
				a.mode = ModeNormal
			}
			return a, nil
		default:
			return a.updateNormal(msg)
		}
	}

	return a, nil
}

func (a App) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle gg sequence
	if key.Matches(msg, a.keys.Top) {
		if a.lastKeyWasG {
			a.cursor = 0
			a.lastKeyWasG = false
			return a, nil
		}
		a.lastKeyWasG = true
		return a, nil
	}

	// Reset g flag for any other key
	a.lastKeyWasG = false

	n := len(a.visible)
	cols := a.columns()

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Down):
		if a.cursor+cols < n {
			a.cursor += cols
		} else if n > 0 && a.cursor/cols < (n-1)/cols {
			// Partial last row: land on its last card
			a.cursor = n - 1
		}

	case key.Matches(msg, a.keys.Up):
		if a.cursor-cols >= 0 {
			a.cursor -= cols
		}

	case key.Matches(msg, a.keys.Left):
		if cols > 1 && a.cursor%cols > 0 {
			a.cursor--
		}

	case key.Matches(msg, a.keys.Right):
		if cols > 1 && a.cursor%cols < cols-1 && a.cursor < n-1 {
			a.cursor++
		}

	case key.Matches(msg, a.keys.Bottom):
		if n > 0 {
			a.cursor = n - 1
		}

	case key.Matches(msg, a.keys.Search):
		a.clearMessage()
		a.mode = ModeSearch
		a.search.Input.SetValue(a.predicates.SearchText)
		a.search.Input.CursorEnd()
		cmd := a.search.Input.Focus()
		return a, cmd

	case key.Matches(msg, a.keys.Category):
		a.clearMessage()
		a.openCategoryPicker()
		cmd := a.picker.Input.Focus()
		return a, cmd

	case key.Matches(msg, a.keys.Tags):
		a.clearMessage()
		a.openTagPicker()
		cmd := a.picker.Input.Focus()
		return a, cmd

	case key.Matches(msg, a.keys.Sort):
		a.setPredicates(a.predicates.ToggleSort())
		a.setMessage(MessageInfo, "Sort: "+sortLabel(a.predicates.Sort))

	case key.Matches(msg, a.keys.View):
		a.viewMode = a.viewMode.Toggle()
		a.setMessage(MessageInfo, "View: "+a.viewMode.String())

	case key.Matches(msg, a.keys.Clear):
		a.search.Reset()
		a.setPredicates(a.predicates.Cleared())
		a.cursor = 0
		a.setMessage(MessageInfo, "Filters cleared")

	case key.Matches(msg, a.keys.Open):
		a.openSelected()

	case key.Matches(msg, a.keys.YankURL):
		a.yankSelected()

	case key.Matches(msg, a.keys.Help):
		a.mode = ModeHelp

	case key.Matches(msg, a.keys.Cancel):
		a.clearMessage()
	}

	return a, nil
}

func (a App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Cancel):
		a.search.Reset()
		a.mode = ModeNormal
		a.setPredicates(a.predicates.WithSearchText(""))
		return a, nil

	case key.Matches(msg, a.keys.Confirm):
		a.search.Input.Blur()
		a.mode = ModeNormal
		return a, nil
	}

	var cmd tea.Cmd
	a.search.Input, cmd = a.search.Input.Update(msg)
	if text := a.search.Input.Value(); text != a.predicates.SearchText {
		a.setPredicates(a.predicates.WithSearchText(text))
		a.cursor = 0
	}
	return a, cmd
}

func (a App) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Cancel):
		a.picker.Reset()
		a.mode = ModeNormal
		return a, nil

	case key.Matches(msg, a.keys.PickerUp):
		if a.picker.Cursor > 0 {
			a.picker.Cursor--
		}
		return a, nil

	case key.Matches(msg, a.keys.PickerDown):
		if a.picker.Cursor < len(a.picker.Results)-1 {
			a.picker.Cursor++
		}
		return a, nil

	case key.Matches(msg, a.keys.Confirm):
		opt, ok := a.picker.Selected()
		if !ok {
			return a, nil
		}
		if a.mode == ModeCategory {
			a.picker.Reset()
			a.mode = ModeNormal
			a.setPredicates(a.predicates.WithCategory(opt.Value))
			a.cursor = 0
			return a, nil
		}
		a.setPredicates(a.predicates.ToggleTag(opt.Value))
		a.picker.SetActive(opt.Value, a.predicates.HasTag(opt.Value))
		a.cursor = 0
		return a, nil
	}

	var cmd tea.Cmd
	a.picker.Input, cmd = a.picker.Input.Update(msg)
	a.picker.Narrow()
	return a, cmd
}

// openCategoryPicker lists "All Categories" followed by every category in
// dataset order, each with the count it would show.
func (a *App) openCategoryPicker() {
	counts := filter.CategoryCounts(a.dataset.Bookmarks, a.predicates)
	categories := filter.DistinctCategories(a.dataset.Bookmarks)

	total := 0
	for _, c := range counts {
		total += c
	}

	options := make([]PickerOption, 0, len(categories)+1)
	options = append(options, PickerOption{
		Label:  AllCategoriesLabel,
		Value:  "",
		Count:  total,
		Active: a.predicates.Category == nil,
	})
	for _, c := range categories {
		options = append(options, PickerOption{
			Label:  c,
			Value:  c,
			Count:  counts[c],
			Active: a.predicates.CategoryLabel() == c,
		})
	}

	a.mode = ModeCategory
	a.picker.Open(options)
	for i, r := range a.picker.Results {
		if options[r.Index].Active {
			a.picker.Cursor = i
			break
		}
	}
}

// openTagPicker lists every tag alphabetically. Counts ignore the tag
// selection so they do not collapse as tags are toggled.
func (a *App) openTagPicker() {
	base := a.predicates
	base.Tags = nil

	counts := make(map[string]int)
	for _, b := range a.dataset.Bookmarks {
		if !filter.Matches(b, base) {
			continue
		}
		for _, t := range b.Tags {
			counts[t]++
		}
	}

	tags := a.engine.SortLabels(filter.DistinctTags(a.dataset.Bookmarks))
	options := make([]PickerOption, len(tags))
	for i, t := range tags {
		options[i] = PickerOption{
			Label:  t,
			Value:  t,
			Count:  counts[t],
			Active: a.predicates.HasTag(t),
		}
	}

	a.mode = ModeTags
	a.picker.Open(options)
}

func (a *App) openSelected() {
	b, ok := a.Selected()
	if !ok {
		return
	}
	if err := a.openURL(b.URL); err != nil {
		a.logger.Error("open url", "url", b.URL, "error", err)
		a.setMessage(MessageError, fmt.Sprintf("Failed to open URL: %v", err))
		return
	}
	a.logger.Info("opened bookmark", "id", b.ID, "url", b.URL)
	a.setMessage(MessageSuccess, "Opened "+b.Title)
}

func (a *App) yankSelected() {
	b, ok := a.Selected()
	if !ok {
		return
	}
	if err := a.copyURL(b.URL); err != nil {
		a.logger.Error("copy url", "url", b.URL, "error", err)
		a.setMessage(MessageError, fmt.Sprintf("Failed to copy URL: %v", err))
		return
	}
	a.setMessage(MessageSuccess, "Copied URL")
}

func sortLabel(s filter.SortOrder) string {
	if s == filter.SortDescending {
		return "Z-A"
	}
	return "A-Z"
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}
