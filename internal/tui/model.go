// ABOUTME: Bubbletea model for the lazyclaude dashboard
// ABOUTME: Holds discovery state, filters, panel focus, and the update loop
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lazyclaude/lazyclaude/internal/customization"
	"github.com/lazyclaude/lazyclaude/internal/discovery"
)

// Focus identifies the active widget. Zero is the detail pane; 1..7 are the
// kind panels in customization.Kinds order.
const (
	focusDetail = 0
	panelCount  = 7
)

// itemsMsg carries a completed discovery pass into the update loop.
type itemsMsg []customization.Customization

// editorFinishedMsg arrives when the external editor process exits.
type editorFinishedMsg struct{ err error }

// Model is the dashboard state. Discovery runs inside tea.Cmds so the
// update loop never blocks on filesystem work.
type Model struct {
	svc       *discovery.Service
	claudeDir string

	items        []customization.Customization
	scope        customization.Scope // "" means all scopes
	disabledOnly bool
	loading      bool

	focus   int // focusDetail or 1..panelCount
	cursors [panelCount]int

	filter    textinput.Model
	searching bool

	detail viewport.Model

	showHelp bool
	width    int
	height   int
	ready    bool

	statusMsg string
}

// New builds the dashboard over a discovery service. claudeDir is shown in
// the status panel so users can see which tree is being scanned.
func New(svc *discovery.Service, claudeDir string) Model {
	filter := textinput.New()
	filter.Placeholder = "search"
	filter.Prompt = "/"
	filter.CharLimit = 80

	return Model{
		svc:       svc,
		claudeDir: claudeDir,
		focus:     1,
		filter:    filter,
		detail:    viewport.New(0, 0),
		loading:   true,
	}
}

// Init kicks off the first discovery pass.
func (m Model) Init() tea.Cmd {
	return m.discoverCmd()
}

func (m Model) discoverCmd() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		return itemsMsg(svc.DiscoverAll())
	}
}

func (m Model) refreshCmd() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		return itemsMsg(svc.Refresh())
	}
}

// Update handles messages: window sizing, discovery results, editor exit,
// and key dispatch.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.ready = true
		return m, nil

	case itemsMsg:
		m.items = msg
		m.loading = false
		m.clampCursors()
		m.syncDetail()
		return m, nil

	case editorFinishedMsg:
		m.loading = true
		if msg.err != nil {
			m.statusMsg = "editor: " + msg.err.Error()
		}
		return m, m.refreshCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// visible returns the items of one kind after the active scope, query, and
// disabled-only filters. Filtering reuses the core filter service verbatim.
func (m Model) visible(kind customization.Kind) []customization.Customization {
	filtered := customization.Filter(m.items, m.filter.Value(), m.scope)
	result := make([]customization.Customization, 0, len(filtered))
	for _, c := range filtered {
		if c.Kind != kind {
			continue
		}
		if m.disabledOnly && (c.Plugin == nil || c.Plugin.Enabled) {
			continue
		}
		result = append(result, c)
	}
	return result
}

// selected returns the customization under the cursor of the focused panel.
func (m Model) selected() *customization.Customization {
	panel := m.focus
	if panel == focusDetail {
		panel = m.lastPanel()
	}
	kind := customization.Kinds[panel-1]
	visible := m.visible(kind)
	if len(visible) == 0 {
		return nil
	}
	i := m.cursors[panel-1]
	if i >= len(visible) {
		i = len(visible) - 1
	}
	return &visible[i]
}

// lastPanel returns the panel whose selection the detail pane shows: the
// focused panel, or the first non-empty one when the detail pane has focus.
func (m Model) lastPanel() int {
	for i, kind := range customization.Kinds {
		if len(m.visible(kind)) > 0 {
			return i + 1
		}
	}
	return 1
}

func (m *Model) clampCursors() {
	for i, kind := range customization.Kinds {
		n := len(m.visible(kind))
		if n == 0 {
			m.cursors[i] = 0
		} else if m.cursors[i] >= n {
			m.cursors[i] = n - 1
		}
	}
}

func (m *Model) layout() {
	w := m.detailWidth() - 2
	h := m.contentHeight() - 2
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	m.detail.Width = w
	m.detail.Height = h
}

func (m *Model) syncDetail() {
	m.detail.SetContent(m.detailContent())
	m.detail.GotoTop()
}

// Run starts the dashboard on the alternate screen and blocks until quit.
func Run(svc *discovery.Service, claudeDir string) error {
	p := tea.NewProgram(New(svc, claudeDir), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
