package components

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
)

// MarkdownProps configures RenderMarkdown
type MarkdownProps struct {
	Content string
	Width   int
	// Empty is shown styled as a placeholder when Content is blank
	Empty       string
	SubtleColor string
}

// Glamour renderers are cached by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderMarkdown renders markdown for the terminal, falling back to the
// raw text when rendering fails.
func RenderMarkdown(props MarkdownProps) string {
	if strings.TrimSpace(props.Content) == "" {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(props.SubtleColor)).
			Italic(true).
			Render(props.Empty)
	}

	renderer, err := getRenderer(props.Width)
	if err == nil {
		rendered, err := renderer.Render(props.Content)
		if err == nil {
			return strings.TrimSpace(rendered)
		}
	}
	return props.Content
}
