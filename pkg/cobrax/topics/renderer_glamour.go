package topics

import (
	"sync"

	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown topics with glamour. Other formats are
// returned unchanged.
type GlamourRenderer struct {
	Style string // "auto", a built-in style name or a style file path
	Width int    // word wrap width, 0 keeps glamour's default

	once sync.Once
	term *glamour.TermRenderer
}

// NewGlamourRenderer creates a renderer that picks its style from the terminal
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

// Render formats markdown content. Rendering failures fall back to the raw
// content.
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	r.once.Do(func() {
		var options []glamour.TermRendererOption
		if r.Style != "" && r.Style != "auto" {
			options = append(options, glamour.WithStylePath(r.Style))
		} else {
			options = append(options, glamour.WithAutoStyle())
		}
		if r.Width > 0 {
			options = append(options, glamour.WithWordWrap(r.Width))
		}
		r.term, _ = glamour.NewTermRenderer(options...)
	})
	if r.term == nil {
		return content
	}

	rendered, err := r.term.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
