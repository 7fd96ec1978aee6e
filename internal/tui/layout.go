package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

const ellipsis = "..."

// truncateText cuts s to at most width columns, marking the cut with "...".
// The ellipsis is extra: a cut line is width+3 columns wide.
func truncateText(s string, width int) string {
	if width <= 0 {
		return ellipsis
	}
	if xansi.StringWidth(s) <= width {
		return s
	}
	return xansi.Truncate(s, width, "") + ellipsis
}

// fitLine forces s to exactly width columns (ANSI-aware), padding with spaces
// or cutting as needed.
func fitLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := xansi.StringWidth(s)
	if w > width {
		cut := xansi.Cut(s, 0, width)
		if strings.Contains(s, "\x1b") {
			// Terminate styling so a cut sequence does not bleed.
			cut += "\x1b[0m"
		}
		return cut
	}
	return s + strings.Repeat(" ", width-w)
}
