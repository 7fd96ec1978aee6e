package tui

import (
	"strings"

	"treetool/internal/outline"
	"treetool/internal/store"
)

// Terminal apps can't change the user's font, so fold markers come in an
// ASCII set (the default, boxed like "[+]") and a Unicode set for fonts that
// render twisties cleanly.

type glyphSet int

const (
	glyphSetASCII glyphSet = iota
	glyphSetUnicode
)

func parseGlyphSet(s string) glyphSet {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case store.GlyphsUnicode, "utf8":
		return glyphSetUnicode
	default:
		return glyphSetASCII
	}
}

// foldMarker is the fixed-width prefix drawn before an entry's text.
func foldMarker(gs glyphSet, f outline.FoldState) string {
	if gs == glyphSetUnicode {
		switch f {
		case outline.Expanded:
			return "▾ "
		case outline.Collapsed:
			return "▸ "
		default:
			return "  "
		}
	}
	switch f {
	case outline.Expanded:
		return "[-] "
	case outline.Collapsed:
		return "[+] "
	default:
		return "[ ] "
	}
}
