// ABOUTME: Plugin registry loader for installed_plugins.json and enabled flags
// ABOUTME: Resolves plugin ids to filesystem-verified install directories

package claude

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/lazyclaude/lazyclaude/internal/customization"
)

// PluginManifestEntry is one entry under the "plugins" key of
// installed_plugins.json.
type PluginManifestEntry struct {
	Scope       string `json:"scope,omitempty"`
	Version     string `json:"version,omitempty"`
	InstallPath string `json:"installPath"`
	IsLocal     bool   `json:"isLocal,omitempty"`
}

// Registry is the process-scoped cache of the two plugin manifests:
// installed plugins and enabled flags. Loaded lazily on first use; Refresh
// drops the cache so the next call re-reads the files. Callers serialize
// access — the discovery service holds its own lock around every use.
type Registry struct {
	claudeDir string

	loaded    bool
	installed map[string]PluginManifestEntry
	enabled   map[string]bool
}

// NewRegistry creates a registry reading manifests under claudeDir.
func NewRegistry(claudeDir string) *Registry {
	return &Registry{claudeDir: claudeDir}
}

// Refresh drops the cached manifests.
func (r *Registry) Refresh() {
	r.loaded = false
	r.installed = nil
	r.enabled = nil
}

// AllPlugins returns every installed plugin, disabled ones included, sorted
// by id, with install directories resolved to a concrete version directory.
// Manifest entries without an install path are unusable and skipped.
func (r *Registry) AllPlugins() []customization.PluginInfo {
	r.ensureLoaded()

	ids := make([]string, 0, len(r.installed))
	for id := range r.installed {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	plugins := make([]customization.PluginInfo, 0, len(ids))
	for _, id := range ids {
		if r.installed[id].InstallPath == "" {
			continue
		}
		plugins = append(plugins, r.pluginInfo(id, r.installed[id]))
	}
	return plugins
}

// EnabledPlugins returns the plugins whose enabled flag (default true) is
// set and whose resolved install directory exists on disk.
func (r *Registry) EnabledPlugins() []customization.PluginInfo {
	all := r.AllPlugins()
	enabled := make([]customization.PluginInfo, 0, len(all))
	for _, p := range all {
		if p.Enabled && isDir(p.InstallPath) {
			enabled = append(enabled, p)
		}
	}
	return enabled
}

// Installed reports whether the given plugin id appears in the installed
// manifest, and its enabled flag (default true when unset).
func (r *Registry) Installed(id string) (installed, enabled bool) {
	r.ensureLoaded()
	if _, ok := r.installed[id]; !ok {
		return false, false
	}
	flag, ok := r.enabled[id]
	if !ok {
		return true, true
	}
	return true, flag
}

func (r *Registry) ensureLoaded() {
	if r.loaded {
		return
	}
	r.installed = loadInstalledPlugins(filepath.Join(r.claudeDir, "plugins", "installed_plugins.json"))
	r.enabled = loadEnabledFlags(r.claudeDir)
	r.loaded = true
}

func (r *Registry) pluginInfo(id string, entry PluginManifestEntry) customization.PluginInfo {
	short := id
	if i := strings.Index(id, "@"); i >= 0 {
		short = id[:i]
	}

	enabled := true
	if flag, ok := r.enabled[id]; ok {
		enabled = flag
	}

	installPath := entry.InstallPath
	version := entry.Version
	if installPath != "" && !isDir(installPath) {
		// The manifest may point at a version-less parent whose children
		// are the actual version directories.
		if parent := filepath.Dir(installPath); isDir(parent) {
			if resolved := latestVersionDir(parent); resolved != parent {
				installPath = resolved
				version = filepath.Base(resolved)
			}
		}
	}

	return customization.PluginInfo{
		ID:          id,
		ShortName:   short,
		Version:     version,
		InstallPath: installPath,
		IsLocal:     entry.IsLocal,
		Enabled:     enabled,
	}
}

// loadInstalledPlugins reads the manifest's "plugins" map. Entries are
// either single objects or arrays of per-scope objects; for arrays the
// user-scoped entry wins, else the first. A missing or malformed file is a
// normal state and yields an empty map.
func loadInstalledPlugins(path string) map[string]PluginManifestEntry {
	installed := make(map[string]PluginManifestEntry)

	data, err := os.ReadFile(path)
	if err != nil {
		return installed
	}

	var manifest struct {
		Plugins map[string]json.RawMessage `json:"plugins"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return installed
	}

	for id, raw := range manifest.Plugins {
		var instances []PluginManifestEntry
		if err := json.Unmarshal(raw, &instances); err == nil {
			if entry, ok := preferredInstance(instances); ok {
				installed[id] = entry
			}
			continue
		}

		var single PluginManifestEntry
		if err := json.Unmarshal(raw, &single); err == nil {
			installed[id] = single
		}
	}
	return installed
}

func preferredInstance(instances []PluginManifestEntry) (PluginManifestEntry, bool) {
	if len(instances) == 0 {
		return PluginManifestEntry{}, false
	}
	for _, inst := range instances {
		if inst.Scope == "user" {
			return inst, true
		}
	}
	return instances[0], true
}

func loadEnabledFlags(claudeDir string) map[string]bool {
	settings, err := LoadSettings(claudeDir)
	if err != nil || settings.EnabledPlugins == nil {
		return make(map[string]bool)
	}
	return settings.EnabledPlugins
}

// latestVersionDir picks the subdirectory of parent representing the newest
// version, or parent itself when there are no subdirectories. Directory
// names are compared as dotted numeric tuples when every component parses
// as an integer, with lexicographic comparison as the fallback. Plain
// string comparison would order "10.0.0" before "9.0.0".
func latestVersionDir(parent string) string {
	entries, err := os.ReadDir(parent)
	if err != nil {
		return parent
	}

	best := ""
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if best == "" || compareVersionNames(name, best) > 0 {
			best = name
		}
	}
	if best == "" {
		return parent
	}
	return filepath.Join(parent, best)
}

// compareVersionNames compares two version directory names, returning
// -1, 0, or 1. Both names must parse fully as dotted integers for the
// numeric comparison to apply.
func compareVersionNames(a, b string) int {
	av, aok := parseVersionTuple(a)
	bv, bok := parseVersionTuple(b)
	if !aok || !bok {
		return strings.Compare(a, b)
	}

	for i := 0; i < len(av) && i < len(bv); i++ {
		if av[i] != bv[i] {
			if av[i] < bv[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(av) < len(bv):
		return -1
	case len(av) > len(bv):
		return 1
	default:
		return 0
	}
}

func parseVersionTuple(name string) ([]int, bool) {
	parts := strings.Split(name, ".")
	nums := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, false
		}
		nums[i] = n
	}
	return nums, true
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
