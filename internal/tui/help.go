// ABOUTME: Full-screen help overlay listing dashboard key bindings
package tui

import (
	"strings"

	"github.com/lazyclaude/lazyclaude/internal/ui"
)

var helpBindings = [][2]string{
	{"q, ctrl+c", "quit"},
	{"?", "toggle this help"},
	{"r", "refresh (re-scan all configuration)"},
	{"e", "edit selected item in $VISUAL/$EDITOR"},
	{"tab, shift+tab", "cycle panel focus"},
	{"1-7", "jump to panel"},
	{"0, enter", "focus detail pane"},
	{"j/k, arrows", "move selection / scroll detail"},
	{"g, G", "first / last item"},
	{"a", "show all scopes"},
	{"u", "user scope only"},
	{"p", "project scope only"},
	{"P", "plugin scope only"},
	{"D", "toggle disabled-plugins-only"},
	{"/", "search (esc clears)"},
}

func (m Model) helpView() string {
	var b strings.Builder
	b.WriteString(ui.RenderHeader("lazyclaude") + "\n\n")
	b.WriteString(ui.RenderSection("Key Bindings", -1) + "\n\n")
	for _, binding := range helpBindings {
		key := binding[0]
		if len(key) < 16 {
			key += strings.Repeat(" ", 16-len(key))
		}
		b.WriteString("  " + ui.Info(key) + binding[1] + "\n")
	}
	b.WriteString("\n" + ui.Muted("press ? or esc to close") + "\n")
	return b.String()
}
