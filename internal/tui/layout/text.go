package layout

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// VisibleLength returns the number of terminal cells s occupies.
// Escape codes take no space and wide runes take two.
func VisibleLength(s string) int {
	return ansi.StringWidth(s)
}

// TruncateText truncates text to maxWidth cells with ellipsis.
// Returns the truncated text and whether truncation occurred.
func TruncateText(text string, maxWidth int, cfg TextConfig) (string, bool) {
	if maxWidth <= 0 {
		return "", text != ""
	}
	if ansi.StringWidth(text) <= maxWidth {
		return text, false
	}
	if ansi.StringWidth(cfg.Ellipsis) >= maxWidth {
		return ansi.Truncate(cfg.Ellipsis, maxWidth, ""), true
	}
	return ansi.Truncate(text, maxWidth, cfg.Ellipsis), true
}

// TruncateWithPrefixSuffix truncates text while preserving prefix and suffix.
// Example: TruncateWithPrefixSuffix("Development", 10, "", " (12)", cfg) -> "Deve… (12)"
func TruncateWithPrefixSuffix(text string, maxWidth int, prefix, suffix string, cfg TextConfig) (string, bool) {
	if maxWidth <= 0 {
		return "", true
	}

	combined := prefix + text + suffix
	if ansi.StringWidth(combined) <= maxWidth {
		return combined, false
	}

	overhead := ansi.StringWidth(prefix) + ansi.StringWidth(suffix) + ansi.StringWidth(cfg.Ellipsis)
	if overhead >= maxWidth {
		// Not enough room for prefix + ellipsis + suffix
		return TruncateText(combined, maxWidth, cfg)
	}

	available := maxWidth - ansi.StringWidth(prefix) - ansi.StringWidth(suffix)
	return prefix + ansi.Truncate(text, available, cfg.Ellipsis) + suffix, true
}

// TruncateANSIAware truncates styled text, preserving ANSI codes.
// Picker rows carry highlighted fuzzy matches, so a reset is appended to
// prevent style bleed when truncation cuts through a styled run.
func TruncateANSIAware(styledText string, maxWidth int, cfg TextConfig) string {
	if maxWidth <= 0 {
		return ""
	}
	if ansi.StringWidth(styledText) <= maxWidth {
		return styledText
	}
	return ansi.Truncate(styledText, maxWidth, cfg.Ellipsis) + "\x1b[0m"
}

// PadRight pads s with spaces to width cells. Wider strings are returned as-is.
func PadRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
