// Package publish renders an outline into shareable formats.
package publish

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"treetool/internal/codec"
	"treetool/internal/outline"
)

type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatTabs     Format = "tabs"
	FormatSpaces   Format = "spaces"
)

var Formats = []Format{FormatMarkdown, FormatHTML, FormatTabs, FormatSpaces}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	case "tabs", "tab", "":
		return FormatTabs, nil
	case "spaces", "space":
		return FormatSpaces, nil
	}
	return "", fmt.Errorf("unknown export format %q (want markdown, html, tabs or spaces)", s)
}

type Options struct {
	// Title is rendered as a heading above the list (markdown, html).
	Title string
	// VisibleOnly skips the children of collapsed entries.
	VisibleOnly bool
	// Standalone wraps html output in a full document.
	Standalone bool
}

// Render encodes root in the requested format.
func Render(root *outline.Node, f Format, opt Options) ([]byte, error) {
	if root == nil {
		return nil, errors.New("missing outline")
	}
	switch f {
	case FormatMarkdown:
		return []byte(RenderMarkdown(root, opt)), nil
	case FormatHTML:
		return RenderHTML(root, opt)
	case FormatTabs:
		return codec.Encode(visibleCopy(root, opt), codec.Tab), nil
	case FormatSpaces:
		return codec.Encode(visibleCopy(root, opt), codec.Space), nil
	}
	return nil, fmt.Errorf("unknown export format %q", f)
}

// entries lists the descendants of root in pre-order with their depth below
// it (top level is 1).
func entries(root *outline.Node, opt Options) []outline.Row {
	if opt.VisibleOnly {
		return outline.Flatten(root)[1:]
	}
	var rows []outline.Row
	root.Walk(func(n *outline.Node, depth int) bool {
		if n != root {
			rows = append(rows, outline.Row{Node: n, Depth: depth, Fold: n.Fold()})
		}
		return true
	})
	return rows
}

// visibleCopy returns root itself, or a pruned copy when only visible entries
// are wanted.
func visibleCopy(root *outline.Node, opt Options) *outline.Node {
	if !opt.VisibleOnly {
		return root
	}
	out := outline.NewRoot()
	stack := []*outline.Node{out}
	for _, r := range entries(root, opt) {
		stack = stack[:r.Depth]
		n := outline.NewNode(r.Node.Text())
		_ = stack[len(stack)-1].Attach(n)
		stack = append(stack, n)
	}
	return out
}

// WriteFile writes b to path, refusing to replace an existing file unless
// overwrite is set.
func WriteFile(path string, b []byte, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return errors.New("file exists (use --overwrite): " + path)
		}
	}
	return os.WriteFile(path, b, 0o644)
}
