package topics

import (
	"github.com/charmbracelet/glamour"
)

// Renderer formats raw topic content for terminal display.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer returns content unchanged.
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content string, format string) string {
	return content
}

// GlamourRenderer renders markdown topics with the glamour library.
// Non-markdown content passes through untouched.
type GlamourRenderer struct {
	Style string // "dark", "light", "notty", "auto", or a custom style path
	Width int    // terminal width, 0 for auto-detect
}

// NewGlamourRenderer creates a markdown renderer with terminal auto-detection.
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	var options []glamour.TermRendererOption
	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
