// ABOUTME: Marketplace catalog loading and the plugin preview index
// ABOUTME: Joins catalog entries with installed state and cached fallbacks
package pluginsearch

import (
	"sort"

	"github.com/lazyclaude/lazyclaude/internal/claude"
)

// Entry is one previewable plugin known from a marketplace catalog.
type Entry struct {
	Name        string
	Marketplace string
	Description string
	Version     string
	SourceDir   string // directory holding the plugin's source; "" when unresolvable
	Installed   bool
	Enabled     bool
}

// ID returns the full plugin identifier, "name@marketplace".
func (e Entry) ID() string {
	return e.Name + "@" + e.Marketplace
}

// Catalog is one marketplace and the plugins its manifest lists. A missing
// or malformed manifest yields a catalog with Err set and zero plugins.
type Catalog struct {
	Name    string
	Root    string
	Err     string
	Plugins []Entry
}

// LoadCatalogs reads known_marketplaces.json and each marketplace's own
// manifest, annotating every plugin with installed/enabled state from the
// registry. An uninstalled catalog plugin reports Enabled true.
func LoadCatalogs(claudeDir string, registry *claude.Registry) []Catalog {
	marketplaces := claude.LoadMarketplaces(claudeDir)

	catalogs := make([]Catalog, 0, len(marketplaces))
	for _, name := range marketplaces.Names() {
		meta := marketplaces[name]
		catalog := Catalog{Name: name, Root: meta.InstallLocation}

		index, err := claude.LoadMarketplaceIndex(meta.InstallLocation)
		if err != nil {
			catalog.Err = err.Error()
			catalogs = append(catalogs, catalog)
			continue
		}

		for _, plugin := range index.Plugins {
			entry := Entry{
				Name:        plugin.Name,
				Marketplace: name,
				Description: plugin.Description,
				Version:     plugin.Version,
				Enabled:     true,
			}
			if dir, err := claude.ResolvePluginSource(marketplaces, name, plugin.Name); err == nil {
				entry.SourceDir = dir
			}
			if installed, enabled := registry.Installed(entry.ID()); installed {
				entry.Installed = true
				entry.Enabled = enabled
			}
			catalog.Plugins = append(catalog.Plugins, entry)
		}
		catalogs = append(catalogs, catalog)
	}
	return catalogs
}

// Index answers "where can I preview plugin X?" across all catalogs plus
// the local plugin cache.
type Index struct {
	entries []Entry
}

// NewIndex builds an index from catalogs, with cached plugin versions
// supplying a preview directory for entries whose marketplace source could
// not be resolved, and cache-only plugins appended.
func NewIndex(catalogs []Catalog, cache map[string]CachedPlugin) *Index {
	var entries []Entry
	seen := make(map[string]bool)

	for _, catalog := range catalogs {
		for _, entry := range catalog.Plugins {
			if entry.SourceDir == "" {
				if cached, ok := cache[entry.ID()]; ok {
					entry.SourceDir = cached.Path
				}
			}
			entries = append(entries, entry)
			seen[entry.ID()] = true
		}
	}

	// Cached plugins whose marketplace is gone are still previewable.
	for id, cached := range cache {
		if seen[id] {
			continue
		}
		entries = append(entries, Entry{
			Name:        cached.Name,
			Marketplace: cached.Marketplace,
			Version:     cached.Version,
			SourceDir:   cached.Path,
			Enabled:     true,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID() < entries[j].ID()
	})
	return &Index{entries: entries}
}

// BuildIndex loads catalogs and the cache under claudeDir in one step.
func BuildIndex(claudeDir string, registry *claude.Registry) *Index {
	return NewIndex(LoadCatalogs(claudeDir, registry), ScanCache(claudeDir))
}

// Entries returns all indexed plugins sorted by id.
func (idx *Index) Entries() []Entry {
	return idx.entries
}
