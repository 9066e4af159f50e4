// ABOUTME: Rendering for the dashboard: status panel, kind panels, detail pane
// ABOUTME: Composes the layout with lipgloss joins; truncation happens here
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lazyclaude/lazyclaude/internal/customization"
	"github.com/lazyclaude/lazyclaude/internal/ui"
)

const (
	statusHeight = 3
	footerHeight = 1
	minListWidth = 30

	// contentPreviewLimit caps how much raw content is handed to the
	// markdown renderer for one detail view.
	contentPreviewLimit = 4000
)

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	if m.showHelp {
		return m.helpView()
	}

	left := m.panelsView()
	right := m.detailView()
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.statusView(),
		body,
		m.footerView(),
	)
}

func (m Model) listWidth() int {
	w := m.width * 2 / 5
	if w < minListWidth {
		w = minListWidth
	}
	return w
}

func (m Model) detailWidth() int {
	return m.width - m.listWidth()
}

func (m Model) contentHeight() int {
	h := m.height - statusHeight - footerHeight
	if h < 0 {
		h = 0
	}
	return h
}

// statusView is panel 0: scanned config path, active scope filter, query.
func (m Model) statusView() string {
	scope := "all"
	if m.scope != "" {
		scope = m.scope.Label()
	}
	parts := []string{
		ui.Muted("config:") + " " + m.claudeDir,
		ui.Muted("scope:") + " " + scope,
	}
	if m.searching {
		parts = append(parts, m.filter.View())
	} else if q := m.filter.Value(); q != "" {
		parts = append(parts, ui.Muted("search:")+" "+q)
	}
	if m.disabledOnly {
		parts = append(parts, ui.Warning("disabled plugins only"))
	}
	if m.loading {
		parts = append(parts, ui.Info("scanning..."))
	} else if m.statusMsg != "" {
		parts = append(parts, ui.Warning(m.statusMsg))
	}

	return ui.PanelBorderStyle.
		Width(m.width - 2).
		Render(strings.Join(parts, ui.Muted("  │  ")))
}

// panelsView stacks the seven kind panels in the left column.
func (m Model) panelsView() string {
	height := m.contentHeight() / panelCount
	if height < 3 {
		height = 3
	}
	panels := make([]string, 0, panelCount)
	for i, kind := range customization.Kinds {
		panels = append(panels, m.panelView(i+1, kind, height))
	}
	return lipgloss.JoinVertical(lipgloss.Left, panels...)
}

func (m Model) panelView(index int, kind customization.Kind, height int) string {
	visible := m.visible(kind)
	title := ui.PanelTitleStyle.Render(
		fmt.Sprintf("%d %s (%d)", index, kind.PluralLabel(), len(visible)))

	rows := height - 3 // border and title
	if rows < 1 {
		rows = 1
	}
	cursor := m.cursors[index-1]
	start := 0
	if cursor >= rows {
		start = cursor - rows + 1
	}

	width := m.listWidth() - 4
	lines := []string{title}
	for i := start; i < len(visible) && i < start+rows; i++ {
		lines = append(lines, m.rowView(visible[i], i == cursor && m.focus == index, width))
	}
	if len(visible) == 0 {
		lines = append(lines, ui.Muted("  (none)"))
	}

	style := ui.PanelBorderStyle
	if m.focus == index {
		style = ui.PanelFocusedBorderStyle
	}
	return style.
		Width(m.listWidth() - 2).
		Height(height - 2).
		Render(strings.Join(lines, "\n"))
}

func (m Model) rowView(c customization.Customization, selected bool, width int) string {
	name := c.DisplayName()
	if c.HasError() {
		name = ui.SymbolError + " " + name
	}
	name = truncate(name, width-2)

	switch {
	case selected:
		return ui.SelectedItemStyle.Render("> " + name)
	case c.Plugin != nil && !c.Plugin.Enabled:
		return "  " + ui.DisabledItemStyle.Render(name)
	case c.HasError():
		return "  " + ui.Error(name)
	default:
		return "  " + name
	}
}

func (m Model) detailView() string {
	style := ui.PanelBorderStyle
	if m.focus == focusDetail {
		style = ui.PanelFocusedBorderStyle
	}
	return style.
		Width(m.detailWidth() - 2).
		Height(m.contentHeight() - 2).
		Render(m.detail.View())
}

// detailContent builds the text shown for the current selection.
func (m Model) detailContent() string {
	sel := m.selected()
	if sel == nil {
		return ui.Muted("nothing selected")
	}

	var b strings.Builder
	b.WriteString(ui.Bold(sel.Name) + "\n")
	b.WriteString(ui.RenderDetail("Type", sel.Kind.Label()) + "\n")
	b.WriteString(ui.RenderDetail("Scope", sel.Scope.Label()) + "\n")
	b.WriteString(ui.RenderDetail("Path", sel.SourcePath) + "\n")
	if sel.Plugin != nil {
		state := "enabled"
		if !sel.Plugin.Enabled {
			state = "disabled"
		}
		b.WriteString(ui.RenderDetail("Plugin",
			fmt.Sprintf("%s %s (%s)", sel.Plugin.ID, sel.Plugin.Version, state)) + "\n")
	}
	if sel.Description != "" {
		b.WriteString(ui.RenderDetail("Description", sel.Description) + "\n")
	}
	writeMetadata(&b, sel.Metadata)

	if sel.HasError() {
		b.WriteString("\n" + ui.Error(ui.SymbolError+" "+sel.Err) + "\n")
		return b.String()
	}

	if sel.Content != "" {
		content := sel.Content
		if len(content) > contentPreviewLimit {
			content = content[:contentPreviewLimit] + "\n…"
		}
		b.WriteString("\n" + ui.RenderMarkdownWidth(content, m.detail.Width))
	}
	return b.String()
}

func writeMetadata(b *strings.Builder, meta customization.Metadata) {
	switch md := meta.(type) {
	case customization.SlashCommandMetadata:
		if len(md.AllowedTools) > 0 {
			b.WriteString(ui.RenderDetail("Allowed Tools", strings.Join(md.AllowedTools, ", ")) + "\n")
		}
		if md.ArgumentHint != "" {
			b.WriteString(ui.RenderDetail("Arguments", md.ArgumentHint) + "\n")
		}
		if md.Model != "" {
			b.WriteString(ui.RenderDetail("Model", md.Model) + "\n")
		}
	case customization.SubagentMetadata:
		if len(md.Tools) > 0 {
			b.WriteString(ui.RenderDetail("Tools", strings.Join(md.Tools, ", ")) + "\n")
		}
		if md.Model != "" {
			b.WriteString(ui.RenderDetail("Model", md.Model) + "\n")
		}
		if md.PermissionMode != "" {
			b.WriteString(ui.RenderDetail("Permissions", md.PermissionMode) + "\n")
		}
	case customization.SkillMetadata:
		if len(md.Tags) > 0 {
			b.WriteString(ui.RenderDetail("Tags", strings.Join(md.Tags, ", ")) + "\n")
		}
		var extras []string
		if md.HasReference {
			extras = append(extras, "reference")
		}
		if md.HasExamples {
			extras = append(extras, "examples")
		}
		if md.HasScripts {
			extras = append(extras, "scripts")
		}
		if md.HasTemplates {
			extras = append(extras, "templates")
		}
		if len(extras) > 0 {
			b.WriteString(ui.RenderDetail("Includes", strings.Join(extras, ", ")) + "\n")
		}
	case customization.MCPServerMetadata:
		b.WriteString(ui.RenderDetail("Transport", md.Transport) + "\n")
		if md.Command != "" {
			b.WriteString(ui.RenderDetail("Command", md.Command+" "+strings.Join(md.Args, " ")) + "\n")
		}
		if md.URL != "" {
			b.WriteString(ui.RenderDetail("URL", md.URL) + "\n")
		}
	case customization.HookMetadata:
		b.WriteString(ui.RenderDetail("Event", md.Event) + "\n")
		if md.Matcher != "" {
			b.WriteString(ui.RenderDetail("Matcher", md.Matcher) + "\n")
		}
		b.WriteString(ui.RenderDetail("Command", md.Command) + "\n")
	case customization.LSPServerMetadata:
		if md.Transport != "" {
			b.WriteString(ui.RenderDetail("Transport", md.Transport) + "\n")
		}
		if md.Command != "" {
			b.WriteString(ui.RenderDetail("Command", md.Command+" "+strings.Join(md.Args, " ")) + "\n")
		}
	}
}

func (m Model) footerView() string {
	keys := []string{
		"q quit", "? help", "r refresh", "e edit", "/ search",
		"a/u/p/P scope", "tab panels",
	}
	return ui.Muted(truncate(strings.Join(keys, "  ·  "), m.width))
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
