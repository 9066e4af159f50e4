// ABOUTME: Shared markdown rendering using glamour
// ABOUTME: Provides terminal-friendly markdown output with auto-styling
package ui

import (
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/term"
)

// RenderMarkdown renders markdown content for terminal display at the
// current terminal width. When raw is true, returns content unchanged
// (for piping). Falls back to raw content on rendering errors.
func RenderMarkdown(content string, raw bool) string {
	if raw {
		return content
	}
	return RenderMarkdownWidth(content, terminalWidth())
}

// RenderMarkdownWidth renders markdown word-wrapped to an explicit width.
// The dashboard uses this with its detail pane width.
func RenderMarkdownWidth(content string, width int) string {
	if width <= 0 {
		width = 80
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

	return rendered
}

func terminalWidth() int {
	width, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
