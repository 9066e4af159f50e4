// ABOUTME: Unit tests for the customization data model
// ABOUTME: Tests kind/scope parsing, labels, and display names

package customization

import "testing"

func TestParseKind(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{"command", KindSlashCommand},
		{"commands", KindSlashCommand},
		{"slash-command", KindSlashCommand},
		{"agent", KindSubagent},
		{"subagent", KindSubagent},
		{"skill", KindSkill},
		{"memory", KindMemoryFile},
		{"rules", KindMemoryFile},
		{"mcp", KindMCPServer},
		{"hook", KindHook},
		{"lsp", KindLSPServer},
		{"MCP", KindMCPServer},
		{" skill ", KindSkill},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if err != nil {
				t.Fatalf("ParseKind(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseKindUnknown(t *testing.T) {
	if _, err := ParseKind("widget"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestParseScope(t *testing.T) {
	tests := []struct {
		input string
		want  Scope
	}{
		{"user", ScopeUser},
		{"project", ScopeProject},
		{"local", ScopeProjectLocal},
		{"project-local", ScopeProjectLocal},
		{"plugin", ScopePlugin},
		{"Plugin", ScopePlugin},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseScope(tt.input)
			if err != nil {
				t.Fatalf("ParseScope(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseScope(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	if _, err := ParseScope("galaxy"); err == nil {
		t.Error("expected error for unknown scope")
	}
}

func TestKindOrderMatchesDeclaration(t *testing.T) {
	for i, k := range Kinds {
		if int(k) != i {
			t.Errorf("Kinds[%d] = %v, want enumeration value %d", i, k, i)
		}
	}
}

func TestKindLabels(t *testing.T) {
	tests := []struct {
		kind   Kind
		label  string
		plural string
	}{
		{KindSlashCommand, "Slash Command", "Slash Commands"},
		{KindSubagent, "Subagent", "Subagents"},
		{KindSkill, "Skill", "Skills"},
		{KindMemoryFile, "Memory File", "Memory Files"},
		{KindMCPServer, "MCP Server", "MCPs"},
		{KindHook, "Hook", "Hooks"},
		{KindLSPServer, "LSP Server", "LSPs"},
	}

	for _, tt := range tests {
		if got := tt.kind.Label(); got != tt.label {
			t.Errorf("Label() = %q, want %q", got, tt.label)
		}
		if got := tt.kind.PluralLabel(); got != tt.plural {
			t.Errorf("PluralLabel() = %q, want %q", got, tt.plural)
		}
	}
}

func TestDisplayName(t *testing.T) {
	c := Customization{Name: "deploy", Kind: KindSlashCommand, Scope: ScopeUser}
	if got := c.DisplayName(); got != "deploy [U]" {
		t.Errorf("DisplayName() = %q, want %q", got, "deploy [U]")
	}

	c.Scope = ScopeProject
	if got := c.DisplayName(); got != "deploy [P]" {
		t.Errorf("DisplayName() = %q, want %q", got, "deploy [P]")
	}

	c.Scope = ScopePlugin
	c.Plugin = &PluginInfo{ID: "tools@main", ShortName: "tools"}
	if got := c.DisplayName(); got != "tools:deploy" {
		t.Errorf("DisplayName() = %q, want %q", got, "tools:deploy")
	}
}

func TestHasError(t *testing.T) {
	c := Customization{Name: "broken", Kind: KindHook, Scope: ScopeUser, Err: "invalid JSON"}
	if !c.HasError() {
		t.Error("expected HasError() to be true")
	}

	c.Err = ""
	if c.HasError() {
		t.Error("expected HasError() to be false")
	}
}
