package layout

import "testing"

func TestCalculateGridColumns(t *testing.T) {
	cfg := DefaultConfig().Grid

	tests := []struct {
		name  string
		width int
		want  int
	}{
		{"narrow terminal", 20, 1},
		{"one card", 34, 1},
		{"two cards need gap", 68, 1}, // 69/35 = 1
		{"two cards", 69, 2},
		{"standard terminal", 120, 3}, // 121/35 = 3
		{"wide terminal", 200, 5},
		{"ultra wide clamps", 400, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateGridColumns(tt.width, cfg)
			if got != tt.want {
				t.Errorf("CalculateGridColumns(%d) = %d, want %d", tt.width, got, tt.want)
			}
		})
	}
}

func TestCalculateGrid(t *testing.T) {
	cfg := DefaultConfig()

	got := CalculateGrid(120, 40, cfg.Grid, cfg.List)

	if got.Columns != 3 {
		t.Errorf("Columns = %d, want 3", got.Columns)
	}
	if got.CardWidth != 39 { // (120 - 2) / 3
		t.Errorf("CardWidth = %d, want 39", got.CardWidth)
	}
	if got.VisibleRows != 5 { // (40 - 6) / 6
		t.Errorf("VisibleRows = %d, want 5", got.VisibleRows)
	}
}

func TestCalculateGrid_ShortTerminal(t *testing.T) {
	cfg := DefaultConfig()

	got := CalculateGrid(40, 6, cfg.Grid, cfg.List)

	if got.VisibleRows != 1 {
		t.Errorf("VisibleRows = %d, want 1", got.VisibleRows)
	}
}

func TestCalculateResultsHeight(t *testing.T) {
	cfg := DefaultConfig().List

	tests := []struct {
		name           string
		terminalHeight int
		want           int
	}{
		{"normal terminal", 24, 18},
		{"tiny terminal clamps", 6, 3},
		{"zero height", 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateResultsHeight(tt.terminalHeight, cfg); got != tt.want {
				t.Errorf("CalculateResultsHeight(%d) = %d, want %d", tt.terminalHeight, got, tt.want)
			}
		})
	}
}

func TestCalculateViewportOffset(t *testing.T) {
	tests := []struct {
		name           string
		selected       int
		total          int
		viewportHeight int
		want           int
	}{
		{"all fit", 3, 5, 10, 0},
		{"top", 0, 50, 10, 0},
		{"centered", 20, 50, 10, 15},
		{"bottom clamps", 49, 50, 10, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateViewportOffset(tt.selected, tt.total, tt.viewportHeight); got != tt.want {
				t.Errorf("CalculateViewportOffset(%d, %d, %d) = %d, want %d",
					tt.selected, tt.total, tt.viewportHeight, got, tt.want)
			}
		})
	}
}

func TestRowCount(t *testing.T) {
	tests := []struct {
		n, columns, want int
	}{
		{0, 3, 0},
		{1, 3, 1},
		{3, 3, 1},
		{4, 3, 2},
		{5, 0, 5},
	}

	for _, tt := range tests {
		if got := RowCount(tt.n, tt.columns); got != tt.want {
			t.Errorf("RowCount(%d, %d) = %d, want %d", tt.n, tt.columns, got, tt.want)
		}
	}
}
