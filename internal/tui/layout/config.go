package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	Grid  GridConfig
	List  ListConfig
	Modal ModalConfig
	Input InputConfig
	Text  TextConfig
}

// GridConfig holds card grid configuration.
type GridConfig struct {
	// CardWidth is the preferred outer width of a card, borders included.
	CardWidth int

	// CardHeight is the outer height of a card: border (2) + title + url + description + tags = 6
	CardHeight int

	// Gap is the horizontal space between two cards.
	Gap int

	// MinColumns and MaxColumns bound the column count.
	MinColumns int
	MaxColumns int
}

// ListConfig holds list-view configuration.
type ListConfig struct {
	// HeightReduction is subtracted from terminal height for the results area.
	// Accounts for: app padding (1) + header (1) + filter bar (1) + blank (1) + message (1) + hints (1) = 6
	HeightReduction int

	// MinHeight is the minimum results-area height.
	MinHeight int

	// CategoryWidth is the width of the category column in list rows.
	CategoryWidth int

	// ContentPadding is subtracted from terminal width for row rendering.
	ContentPadding int
}

// ModalConfig holds modal dialog configuration.
type ModalConfig struct {
	// DefaultWidthPercent is the standard modal width as percentage of terminal width.
	DefaultWidthPercent int

	// MinWidth is the minimum modal width in characters.
	MinWidth int

	// MaxWidth is the maximum modal width in characters.
	MaxWidth int

	// PickerMaxVisible: max options shown in the category and tag pickers.
	PickerMaxVisible int

	// HelpLeftColumnWidth: width for help overlay key column.
	HelpLeftColumnWidth int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	SearchCharLimit int
	FilterCharLimit int

	SearchWidth int
	FilterWidth int // picker narrowing input
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		Grid: GridConfig{
			CardWidth:  34,
			CardHeight: 6,
			Gap:        1,
			MinColumns: 1,
			MaxColumns: 5,
		},
		List: ListConfig{
			HeightReduction: 6,
			MinHeight:       3,
			CategoryWidth:   14,
			ContentPadding:  4,
		},
		Modal: ModalConfig{
			DefaultWidthPercent: 40,
			MinWidth:            40,
			MaxWidth:            70,
			PickerMaxVisible:    10,
			HelpLeftColumnWidth: 20,
		},
		Input: InputConfig{
			SearchCharLimit: 100,
			FilterCharLimit: 50,
			SearchWidth:     40,
			FilterWidth:     30,
		},
		Text: TextConfig{
			Ellipsis: "…",
		},
	}
}
