package publish

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"treetool/internal/outline"
)

// Glamour standard style names.
const (
	StyleDark  = "dark"
	StyleLight = "light"
	StyleNoTTY = "notty"
)

var (
	termRendererMu sync.Mutex
	// Keyed by style + wrap width. Renderers are built with a fixed style so
	// no terminal background query is made.
	termRenderers = map[string]*glamour.TermRenderer{}
)

func termRenderer(style string, width int) (*glamour.TermRenderer, error) {
	key := style + ":" + strconv.Itoa(width)
	termRendererMu.Lock()
	defer termRendererMu.Unlock()
	if r := termRenderers[key]; r != nil {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
		glamour.WithEmoji(),
	)
	if err != nil {
		return nil, err
	}
	termRenderers[key] = r
	return r, nil
}

// RenderTerminal renders the outline for display on a terminal of the given
// width. An empty style means StyleDark.
func RenderTerminal(root *outline.Node, opt Options, style string, width int) (string, error) {
	return RenderDocument(RenderMarkdown(root, opt), style, width)
}

// RenderDocument renders markdown source for the terminal.
func RenderDocument(md, style string, width int) (string, error) {
	if style == "" {
		style = StyleDark
	}
	if width < 10 {
		width = 10
	}
	if strings.TrimSpace(md) == "" {
		return "", nil
	}
	r, err := termRenderer(style, width)
	if err != nil {
		return "", err
	}
	out, err := r.Render(md)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}
