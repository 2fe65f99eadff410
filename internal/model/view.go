package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidViewMode = errors.New("invalid view mode")

// ViewMode selects how a list of bookmarks is presented.
type ViewMode int

const (
	ViewGrid ViewMode = iota
	ViewList
)

func (v ViewMode) String() string {
	if v == ViewList {
		return "list"
	}
	return "grid"
}

// Toggle returns the other view mode.
func (v ViewMode) Toggle() ViewMode {
	if v == ViewGrid {
		return ViewList
	}
	return ViewGrid
}

// ParseViewMode parses "grid" or "list". An empty string means grid.
func ParseViewMode(s string) (ViewMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "grid":
		return ViewGrid, nil
	case "list":
		return ViewList, nil
	default:
		return ViewGrid, fmt.Errorf("%w: %q", ErrInvalidViewMode, s)
	}
}
