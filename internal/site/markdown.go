package site

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	markdownRenderer = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
	)
	htmlSanitizer = bluemonday.UGCPolicy()
)

// renderDescription turns a Markdown description into sanitized HTML.
// Plain text descriptions come out as a single paragraph. If rendering
// fails the text is escaped and shown as is.
func renderDescription(md string) template.HTML {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := markdownRenderer.Convert([]byte(md), &buf); err != nil {
		return template.HTML("<p>" + template.HTMLEscapeString(md) + "</p>")
	}
	return template.HTML(htmlSanitizer.SanitizeBytes(buf.Bytes()))
}
