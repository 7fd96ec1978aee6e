package tui

import (
	"strings"

	"github.com/atotto/clipboard"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

func copyToClipboard(s string) error {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return writeClipboard(s)
}
