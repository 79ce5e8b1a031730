// Package textutil provides display-width aware string helpers for console
// and report output. Widths are terminal cells, not runes, so CJK text
// aligns correctly.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// NormalizeWhitespace collapses runs of whitespace into single spaces and
// trims the ends.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TruncateDisplay shortens s to at most width terminal cells, appending an
// ellipsis when anything was cut.
func TruncateDisplay(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}

	return runewidth.Truncate(s, width, "…")
}

// PadDisplay right-pads s with spaces to exactly width terminal cells.
// Strings already wider than width are returned unchanged.
func PadDisplay(s string, width int) string {
	padding := width - runewidth.StringWidth(s)
	if padding <= 0 {
		return s
	}

	return s + strings.Repeat(" ", padding)
}
