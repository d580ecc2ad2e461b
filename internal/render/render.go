// Package render converts a portfolio record into a sanitized HTML fragment.
// Template selection is a closed dispatch table resolved at compile time;
// unknown or empty template names fall back to the modern layout.
package render

import (
	"html"
	"strings"

	"github.com/gomarkdown/markdown"

	"github.com/folioforge/folioforge/internal/domain/portfolio"
)

type renderFunc func(b *strings.Builder, r *portfolio.Record)

var templates = map[portfolio.Template]renderFunc{
	portfolio.TemplateModern:  renderModern,
	portfolio.TemplateClassic: renderClassic,
	portfolio.TemplateBold:    renderBold,
}

// Render produces the HTML fragment for the record's chosen template.
func Render(r *portfolio.Record) string {
	fn, ok := templates[r.Template]
	if !ok {
		fn = renderModern
	}
	var b strings.Builder
	fn(&b, r)
	return b.String()
}

// esc escapes user-supplied text destined for HTML output.
func esc(s string) string {
	return html.EscapeString(s)
}

// md converts a Markdown field to HTML. Raw HTML special characters are
// escaped first so injected markup cannot survive the Markdown pass.
func md(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	out := markdown.ToHTML([]byte(html.EscapeString(s)), nil, nil)
	return strings.TrimSpace(string(out))
}

// attr escapes a value used inside a quoted HTML attribute.
func attr(s string) string {
	return html.EscapeString(s)
}
