package publish

import (
	"bytes"
	"strings"

	"treetool/internal/outline"
)

// RenderMarkdown renders the outline as a nested bullet list, two spaces of
// indentation per level. Entry text is passed through as inline markdown.
func RenderMarkdown(root *outline.Node, opt Options) string {
	var buf bytes.Buffer
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}

	if title := strings.TrimSpace(opt.Title); title != "" {
		writeLn("# " + title)
		writeLn("")
	}
	for _, r := range entries(root, opt) {
		writeLn(strings.Repeat("  ", r.Depth-1) + "- " + r.Node.Text())
	}
	return buf.String()
}
