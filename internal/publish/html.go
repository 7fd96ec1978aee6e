package publish

import (
	"bytes"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"treetool/internal/outline"
)

var markdownRenderer = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		emoji.Emoji,
	),
	goldmark.WithRendererOptions(
		// Raw HTML in entries is dropped, not passed through.
		gmhtml.WithHardWraps(),
	),
)

// RenderHTML converts the markdown rendering of the outline to HTML.
func RenderHTML(root *outline.Node, opt Options) ([]byte, error) {
	var body bytes.Buffer
	if err := markdownRenderer.Convert([]byte(RenderMarkdown(root, opt)), &body); err != nil {
		return nil, err
	}
	if !opt.Standalone {
		return body.Bytes(), nil
	}

	title := strings.TrimSpace(opt.Title)
	if title == "" {
		title = outline.RootText
	}
	var doc bytes.Buffer
	doc.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	doc.WriteString("<title>" + html.EscapeString(title) + "</title>\n")
	doc.WriteString("</head>\n<body>\n")
	doc.Write(body.Bytes())
	doc.WriteString("</body>\n</html>\n")
	return doc.Bytes(), nil
}
