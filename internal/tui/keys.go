// ABOUTME: Key dispatch for the dashboard
// ABOUTME: Navigation, panel jumps, scope filters, search, refresh, editor
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lazyclaude/lazyclaude/internal/customization"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The search input swallows everything except its exit keys.
	if m.searching {
		switch msg.String() {
		case "esc":
			m.searching = false
			m.filter.Blur()
			m.filter.SetValue("")
			m.clampCursors()
			m.syncDetail()
			return m, nil
		case "enter":
			m.searching = false
			m.filter.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.clampCursors()
		m.syncDetail()
		return m, cmd
	}

	if m.showHelp {
		switch msg.String() {
		case "q", "esc", "?":
			m.showHelp = false
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "?":
		m.showHelp = true

	case "r":
		m.loading = true
		m.statusMsg = ""
		return m, m.refreshCmd()

	case "e":
		if sel := m.selected(); sel != nil && sel.SourcePath != "" {
			return m, m.editCmd(sel.SourcePath)
		}

	case "/":
		m.searching = true
		m.filter.Focus()
		return m, nil

	case "esc":
		if m.filter.Value() != "" {
			m.filter.SetValue("")
			m.clampCursors()
			m.syncDetail()
		}

	case "tab":
		m.focus++
		if m.focus > panelCount {
			m.focus = focusDetail
		}
		m.syncDetail()

	case "shift+tab":
		m.focus--
		if m.focus < focusDetail {
			m.focus = panelCount
		}
		m.syncDetail()

	case "0":
		m.focus = focusDetail

	case "1", "2", "3", "4", "5", "6", "7":
		m.focus = int(msg.String()[0] - '0')
		m.syncDetail()

	case "enter":
		m.focus = focusDetail

	case "j", "down":
		m.moveCursor(1)

	case "k", "up":
		m.moveCursor(-1)

	case "g":
		m.moveCursorTo(0)

	case "G":
		m.moveCursorTo(-1)

	case "a":
		m.setScope("")

	case "u":
		m.setScope(customization.ScopeUser)

	case "p":
		m.setScope(customization.ScopeProject)

	case "P":
		m.setScope(customization.ScopePlugin)

	case "D":
		m.disabledOnly = !m.disabledOnly
		m.clampCursors()
		m.syncDetail()
	}

	return m, nil
}

func (m *Model) setScope(scope customization.Scope) {
	m.scope = scope
	m.clampCursors()
	m.syncDetail()
}

func (m *Model) moveCursor(delta int) {
	if m.focus == focusDetail {
		if delta > 0 {
			m.detail.ScrollDown(1)
		} else {
			m.detail.ScrollUp(1)
		}
		return
	}
	kind := customization.Kinds[m.focus-1]
	n := len(m.visible(kind))
	if n == 0 {
		return
	}
	i := m.cursors[m.focus-1] + delta
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	m.cursors[m.focus-1] = i
	m.syncDetail()
}

// moveCursorTo jumps to an absolute position; -1 means the last item.
func (m *Model) moveCursorTo(pos int) {
	if m.focus == focusDetail {
		if pos == 0 {
			m.detail.GotoTop()
		} else {
			m.detail.GotoBottom()
		}
		return
	}
	kind := customization.Kinds[m.focus-1]
	n := len(m.visible(kind))
	if n == 0 {
		return
	}
	if pos < 0 || pos >= n {
		pos = n - 1
	}
	m.cursors[m.focus-1] = pos
	m.syncDetail()
}
