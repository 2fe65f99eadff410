package layout

// GridLayout holds calculated card grid dimensions.
type GridLayout struct {
	Columns     int
	CardWidth   int
	VisibleRows int
}

// CalculateGridColumns returns how many cards fit side by side.
// Clamped to [MinColumns, MaxColumns].
func CalculateGridColumns(terminalWidth int, cfg GridConfig) int {
	cols := (terminalWidth + cfg.Gap) / (cfg.CardWidth + cfg.Gap)
	if cols < cfg.MinColumns {
		cols = cfg.MinColumns
	}
	if cols > cfg.MaxColumns {
		cols = cfg.MaxColumns
	}
	return cols
}

// CalculateGrid computes the full grid layout. Cards stretch to share the
// available width evenly.
func CalculateGrid(terminalWidth, terminalHeight int, grid GridConfig, list ListConfig) GridLayout {
	cols := CalculateGridColumns(terminalWidth, grid)

	cardWidth := (terminalWidth - grid.Gap*(cols-1)) / cols
	if cardWidth < 8 {
		cardWidth = 8
	}

	rows := CalculateResultsHeight(terminalHeight, list) / grid.CardHeight
	if rows < 1 {
		rows = 1
	}

	return GridLayout{
		Columns:     cols,
		CardWidth:   cardWidth,
		VisibleRows: rows,
	}
}

// CalculateResultsHeight computes the height of the results area.
// Returns at least MinHeight.
func CalculateResultsHeight(terminalHeight int, cfg ListConfig) int {
	height := terminalHeight - cfg.HeightReduction
	if height < cfg.MinHeight {
		return cfg.MinHeight
	}
	return height
}

// CalculateViewportOffset calculates the scroll offset needed to keep the
// selected item visible within the viewport.
func CalculateViewportOffset(selected, total, viewportHeight int) int {
	if total <= viewportHeight {
		return 0
	}

	// Keep selection roughly centered, but clamp to valid range
	offset := selected - viewportHeight/2
	if offset < 0 {
		offset = 0
	}

	maxOffset := total - viewportHeight
	if offset > maxOffset {
		offset = maxOffset
	}

	return offset
}

// RowCount returns the number of grid rows needed for n items.
func RowCount(n, columns int) int {
	if columns < 1 {
		columns = 1
	}
	return (n + columns - 1) / columns
}
