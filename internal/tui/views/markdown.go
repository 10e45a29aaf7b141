package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// renderMarkdown renders message bodies with Glamour so senders who
// write markdown get readable output. Falls back to the raw text when
// rendering fails.
func renderMarkdown(content string, width int) string {
	if content == "" {
		return ""
	}
	if width < 20 {
		width = 20
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n")
}
