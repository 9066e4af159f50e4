// ABOUTME: Discovery orchestrator composing scans, parsers, and the plugin registry
// ABOUTME: Caches one generation of results until explicitly refreshed

package discovery

import (
	"path/filepath"
	"sync"

	"github.com/lazyclaude/lazyclaude/internal/claude"
	"github.com/lazyclaude/lazyclaude/internal/customization"
)

// structuredRules are the scans run at user, project, and plugin roots.
var structuredRules = []ScanRule{
	{Subdir: "commands", Pattern: "*.md", Strategy: RecursiveGlob, Parse: ParseSlashCommand},
	{Subdir: "agents", Pattern: "*.md", Strategy: FlatGlob, Parse: ParseSubagent},
	{Subdir: "skills", Pattern: "SKILL.md", Strategy: PerSubdirectory, Parse: ParseSkill},
}

// Service discovers every customization visible to the current user and
// project context. Results are cached until Refresh; the cached slice is
// owned by the service and must not be mutated by callers. All methods are
// safe for concurrent use.
type Service struct {
	claudeDir        string // user config root, ~/.claude
	projectRoot      string
	projectConfigDir string // <project>/.claude
	claudeConfigFile string // combined config, ~/.claude.json
	plugins          *claude.Registry

	mu     sync.Mutex
	cache  []customization.Customization
	loaded bool
}

// NewService builds a discovery service over explicit filesystem roots so
// tests can inject fakes without touching process-wide state.
func NewService(claudeDir, projectRoot, claudeConfigFile string, plugins *claude.Registry) *Service {
	return &Service{
		claudeDir:        claudeDir,
		projectRoot:      projectRoot,
		projectConfigDir: filepath.Join(projectRoot, ".claude"),
		claudeConfigFile: claudeConfigFile,
		plugins:          plugins,
	}
}

// DiscoverAll returns the full, sorted list of customizations, serving the
// cached generation when one exists.
func (s *Service) DiscoverAll() []customization.Customization {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.discoverLocked()
}

// DiscoverByLevel filters DiscoverAll's result to one scope.
func (s *Service) DiscoverByLevel(scope customization.Scope) []customization.Customization {
	all := s.DiscoverAll()
	items := make([]customization.Customization, 0, len(all))
	for _, c := range all {
		if c.Scope == scope {
			items = append(items, c)
		}
	}
	return items
}

// DiscoverByType filters DiscoverAll's result to one kind.
func (s *Service) DiscoverByType(kind customization.Kind) []customization.Customization {
	all := s.DiscoverAll()
	items := make([]customization.Customization, 0, len(all))
	for _, c := range all {
		if c.Kind == kind {
			items = append(items, c)
		}
	}
	return items
}

// Refresh drops the cached results and the plugin registry's cache, then
// re-runs discovery.
func (s *Service) Refresh() []customization.Customization {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = nil
	s.loaded = false
	s.plugins.Refresh()
	return s.discoverLocked()
}

// DiscoverFromDirectory runs the structured scans rooted at an arbitrary
// directory, tagged with Plugin scope, without touching the main cache. When
// plugin is given the MCP, hook, and LSP single-file scans run too. Used to
// preview a plugin's contents before installation.
func (s *Service) DiscoverFromDirectory(dir string, plugin *customization.PluginInfo) []customization.Customization {
	var items []customization.Customization
	for _, rule := range structuredRules {
		items = append(items, Scan(dir, rule, customization.ScopePlugin, plugin)...)
	}
	if plugin != nil {
		items = append(items, pluginManifestScans(dir, plugin)...)
	}
	customization.Sort(items)
	return items
}

func (s *Service) discoverLocked() []customization.Customization {
	if s.loaded {
		return s.cache
	}

	var items []customization.Customization

	for _, rule := range structuredRules {
		items = append(items, Scan(s.claudeDir, rule, customization.ScopeUser, nil)...)
		items = append(items, Scan(s.projectConfigDir, rule, customization.ScopeProject, nil)...)
	}

	seen := newDedup()
	items = append(items, memoryFiles(s.claudeDir, s.projectConfigDir, s.projectRoot, seen)...)
	items = append(items, ruleFiles(filepath.Join(s.claudeDir, "rules"), customization.ScopeUser, seen)...)
	items = append(items, ruleFiles(filepath.Join(s.projectConfigDir, "rules"), customization.ScopeProject, seen)...)

	items = append(items, ParseCombinedMCPConfig(s.claudeConfigFile, s.projectRoot)...)
	items = append(items, ParseMCPConfig(filepath.Join(s.projectRoot, ".mcp.json"), customization.ScopeProject)...)

	items = append(items, ParseHooksConfig(filepath.Join(s.claudeDir, "settings.json"), customization.ScopeUser)...)
	items = append(items, ParseHooksConfig(filepath.Join(s.projectConfigDir, "settings.json"), customization.ScopeProject)...)
	items = append(items, ParseHooksConfig(filepath.Join(s.projectConfigDir, "settings.local.json"), customization.ScopeProjectLocal)...)

	for _, plugin := range s.plugins.AllPlugins() {
		p := plugin
		for _, rule := range structuredRules {
			items = append(items, Scan(p.InstallPath, rule, customization.ScopePlugin, &p)...)
		}
		items = append(items, pluginManifestScans(p.InstallPath, &p)...)
	}

	customization.Sort(items)
	s.cache = items
	s.loaded = true
	return items
}

// pluginManifestScans parses the single-file manifests a plugin may carry at
// its install root.
func pluginManifestScans(dir string, plugin *customization.PluginInfo) []customization.Customization {
	var items []customization.Customization
	items = append(items, tagPlugin(ParseMCPConfig(filepath.Join(dir, ".mcp.json"), customization.ScopePlugin), plugin)...)
	items = append(items, tagPlugin(ParseHooksConfig(filepath.Join(dir, "hooks", "hooks.json"), customization.ScopePlugin), plugin)...)
	items = append(items, tagPlugin(ParseLSPConfig(filepath.Join(dir, ".lsp.json"), customization.ScopePlugin), plugin)...)
	items = append(items, tagPlugin(ParseLSPFromPluginManifest(filepath.Join(dir, ".claude-plugin", "plugin.json"), customization.ScopePlugin), plugin)...)
	return items
}

func tagPlugin(items []customization.Customization, plugin *customization.PluginInfo) []customization.Customization {
	for i := range items {
		items[i].Plugin = plugin
	}
	return items
}
