// ABOUTME: Data structures and functions for reading Claude Code marketplaces
// ABOUTME: Handles known_marketplaces.json and per-marketplace index files

package claude

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// MarketplaceRegistry represents the known_marketplaces.json file structure.
type MarketplaceRegistry map[string]MarketplaceMetadata

// MarketplaceMetadata represents metadata for a known marketplace.
type MarketplaceMetadata struct {
	Source          MarketplaceSource `json:"source"`
	InstallLocation string            `json:"installLocation"`
	LastUpdated     string            `json:"lastUpdated"`
}

// MarketplaceSource represents the source of a marketplace.
type MarketplaceSource struct {
	Source string `json:"source"`
	Repo   string `json:"repo,omitempty"`
	Path   string `json:"path,omitempty"`
	URL    string `json:"url,omitempty"`
}

// MarketplaceIndex represents the .claude-plugin/marketplace.json file.
type MarketplaceIndex struct {
	Name    string                  `json:"name"`
	Plugins []MarketplacePluginInfo `json:"plugins"`
}

// MarketplacePluginInfo represents a plugin entry in the marketplace index.
type MarketplacePluginInfo struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Version     string       `json:"version,omitempty"`
	Source      PluginSource `json:"source,omitempty"`
}

// PluginSource is the "source" field of an index entry: either a relative
// path string or an object carrying a url.
type PluginSource struct {
	Path string
	URL  string
}

// UnmarshalJSON accepts both source forms.
func (s *PluginSource) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		s.Path = str
		return nil
	}

	var obj struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	s.URL = obj.URL
	return nil
}

// LoadMarketplaces reads and parses the known_marketplaces.json file. A
// missing or malformed file is a normal state (fresh install) and yields an
// empty registry.
func LoadMarketplaces(claudeDir string) MarketplaceRegistry {
	marketplacesPath := filepath.Join(claudeDir, "plugins", "known_marketplaces.json")

	data, err := os.ReadFile(marketplacesPath)
	if err != nil {
		return make(MarketplaceRegistry)
	}

	var registry MarketplaceRegistry
	if err := json.Unmarshal(data, &registry); err != nil {
		return make(MarketplaceRegistry)
	}

	return registry
}

// Names returns the marketplace names in sorted order.
func (r MarketplaceRegistry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadMarketplaceIndex reads the .claude-plugin/marketplace.json from a
// marketplace install location.
func LoadMarketplaceIndex(installLocation string) (*MarketplaceIndex, error) {
	if !filepath.IsAbs(installLocation) {
		return nil, fmt.Errorf("install location must be absolute path")
	}
	indexPath := filepath.Join(filepath.Clean(installLocation), ".claude-plugin", "marketplace.json")

	data, err := os.ReadFile(indexPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read marketplace index: %w", err)
	}

	var index MarketplaceIndex
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("failed to parse marketplace index: %w", err)
	}

	if index.Name == "" {
		return nil, fmt.Errorf("marketplace index missing required 'name' field")
	}

	return &index, nil
}

// ResolvePluginSource maps a plugin name within a marketplace to the
// directory holding its source, for previewing before installation. When
// the marketplace index or the plugin's entry is missing, the marketplace
// root itself is returned.
func ResolvePluginSource(registry MarketplaceRegistry, marketplaceName, pluginName string) (string, error) {
	meta, ok := registry[marketplaceName]
	if !ok {
		return "", &MarketplaceNotFoundError{Name: marketplaceName, Known: registry.Names()}
	}

	root := meta.InstallLocation
	index, err := LoadMarketplaceIndex(root)
	if err != nil {
		return root, nil
	}

	for _, plugin := range index.Plugins {
		if plugin.Name == pluginName && plugin.Source.Path != "" {
			return filepath.Join(root, filepath.Clean(plugin.Source.Path)), nil
		}
	}
	return root, nil
}
