// ABOUTME: Core data model for discovered Claude Code customizations
// ABOUTME: Defines Kind, Scope, per-kind metadata variants, and display helpers

package customization

import (
	"fmt"
	"strings"
)

// Kind classifies a customization. The declared order is the display and
// sort order.
type Kind int

const (
	KindSlashCommand Kind = iota
	KindSubagent
	KindSkill
	KindMemoryFile
	KindMCPServer
	KindHook
	KindLSPServer
)

// Kinds is the ordered list of all customization kinds.
var Kinds = []Kind{
	KindSlashCommand,
	KindSubagent,
	KindSkill,
	KindMemoryFile,
	KindMCPServer,
	KindHook,
	KindLSPServer,
}

// Label returns the human-readable singular label for the kind.
func (k Kind) Label() string {
	switch k {
	case KindSlashCommand:
		return "Slash Command"
	case KindSubagent:
		return "Subagent"
	case KindSkill:
		return "Skill"
	case KindMemoryFile:
		return "Memory File"
	case KindMCPServer:
		return "MCP Server"
	case KindHook:
		return "Hook"
	case KindLSPServer:
		return "LSP Server"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// PluralLabel returns the panel heading form of the kind.
func (k Kind) PluralLabel() string {
	switch k {
	case KindSlashCommand:
		return "Slash Commands"
	case KindSubagent:
		return "Subagents"
	case KindSkill:
		return "Skills"
	case KindMemoryFile:
		return "Memory Files"
	case KindMCPServer:
		return "MCPs"
	case KindHook:
		return "Hooks"
	case KindLSPServer:
		return "LSPs"
	default:
		return k.Label() + "s"
	}
}

func (k Kind) String() string { return k.Label() }

// ParseKind maps a CLI argument to a Kind. Accepts short aliases.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "command", "commands", "slash-command":
		return KindSlashCommand, nil
	case "agent", "agents", "subagent":
		return KindSubagent, nil
	case "skill", "skills":
		return KindSkill, nil
	case "memory", "memory-file", "rules":
		return KindMemoryFile, nil
	case "mcp", "mcps", "mcp-server":
		return KindMCPServer, nil
	case "hook", "hooks":
		return KindHook, nil
	case "lsp", "lsps", "lsp-server":
		return KindLSPServer, nil
	}
	return 0, fmt.Errorf("unknown type %q: must be one of command, agent, skill, memory, mcp, hook, lsp", s)
}

// Scope is the configuration level a customization was discovered at.
type Scope string

const (
	ScopeUser         Scope = "user"
	ScopeProject      Scope = "project"
	ScopeProjectLocal Scope = "local"
	ScopePlugin       Scope = "plugin"
)

// ValidScopes is the ordered list of scopes (lowest to highest precedence).
var ValidScopes = []Scope{ScopeUser, ScopeProject, ScopeProjectLocal, ScopePlugin}

// ParseScope maps a CLI argument to a Scope.
func ParseScope(s string) (Scope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "user":
		return ScopeUser, nil
	case "project":
		return ScopeProject, nil
	case "local", "project-local":
		return ScopeProjectLocal, nil
	case "plugin", "plugins":
		return ScopePlugin, nil
	}
	return "", fmt.Errorf("invalid level %q: must be one of user, project, local, plugin", s)
}

// Label returns the human-readable scope label.
func (s Scope) Label() string {
	switch s {
	case ScopeUser:
		return "User"
	case ScopeProject:
		return "Project"
	case ScopeProjectLocal:
		return "Project-Local"
	case ScopePlugin:
		return "Plugin"
	default:
		return string(s)
	}
}

// Indicator returns the short bracketed marker shown after item names.
func (s Scope) Indicator() string {
	switch s {
	case ScopeUser:
		return "[U]"
	case ScopeProject:
		return "[P]"
	case ScopeProjectLocal:
		return "[L]"
	case ScopePlugin:
		return "[PL]"
	default:
		return ""
	}
}

// PluginInfo identifies the installed plugin a customization came from.
type PluginInfo struct {
	ID          string // "short@marketplace"
	ShortName   string
	Version     string
	InstallPath string
	IsLocal     bool
	Enabled     bool
}

// Metadata is the closed set of per-kind attribute variants.
type Metadata interface {
	isMetadata()
}

// SlashCommandMetadata holds slash command front matter fields.
type SlashCommandMetadata struct {
	AllowedTools           []string
	ArgumentHint           string
	Model                  string
	DisableModelInvocation bool
}

// SubagentMetadata holds subagent front matter fields.
type SubagentMetadata struct {
	Tools          []string
	Model          string
	PermissionMode string
	Skills         []string
}

// SkillMetadata holds skill front matter fields plus sibling-file flags.
type SkillMetadata struct {
	Tags         []string
	HasReference bool
	HasExamples  bool
	HasScripts   bool
	HasTemplates bool
}

// MCPServerMetadata holds one MCP server definition.
type MCPServerMetadata struct {
	Transport string // "stdio" | "http" | "sse"
	Command   string
	URL       string
	Args      []string
	Env       map[string]string
}

// HookMetadata holds one hook entry from a settings file.
type HookMetadata struct {
	Event   string
	Matcher string
	Command string
}

// LSPServerMetadata holds one language server definition.
type LSPServerMetadata struct {
	Command               string
	Args                  []string
	ExtensionToLanguage   map[string]string
	Transport             string
	Env                   map[string]string
	InitializationOptions map[string]any
	Settings              map[string]any
}

func (SlashCommandMetadata) isMetadata() {}
func (SubagentMetadata) isMetadata()     {}
func (SkillMetadata) isMetadata()        {}
func (MCPServerMetadata) isMetadata()    {}
func (HookMetadata) isMetadata()         {}
func (LSPServerMetadata) isMetadata()    {}

// Customization is one discovered configuration artifact. A record with Err
// set is still a valid, displayable item carrying Name, Kind, Scope, and
// SourcePath.
type Customization struct {
	Name       string
	Kind       Kind
	Scope      Scope
	SourcePath string

	Description string
	Content     string
	Metadata    Metadata

	Err string

	// Plugin is set only when Scope == ScopePlugin.
	Plugin *PluginInfo
}

// HasError reports whether this customization failed to load.
func (c Customization) HasError() bool { return c.Err != "" }

// DisplayName returns the list-row form of the name: plugin items are
// prefixed with their plugin's short name, everything else gets a scope
// indicator suffix.
func (c Customization) DisplayName() string {
	if c.Plugin != nil {
		return c.Plugin.ShortName + ":" + c.Name
	}
	return c.Name + " " + c.Scope.Indicator()
}
