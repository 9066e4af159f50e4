// ABOUTME: External editor handoff via tea.ExecProcess
// ABOUTME: Suspends the dashboard, launches $VISUAL/$EDITOR, refreshes on return
package tui

import (
	"os"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"
)

// editorCommand picks the user's editor: $VISUAL, then $EDITOR, then vi.
func editorCommand() string {
	if v := os.Getenv("VISUAL"); v != "" {
		return v
	}
	if e := os.Getenv("EDITOR"); e != "" {
		return e
	}
	return "vi"
}

// editCmd suspends the program and opens path in the editor. The returned
// message triggers a refresh, since the file may have changed.
func (m Model) editCmd(path string) tea.Cmd {
	c := exec.Command(editorCommand(), path)
	return tea.ExecProcess(c, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}
