// ABOUTME: Scans the local plugin cache for previewable plugin versions
// ABOUTME: Keeps the newest version per plugin, semver when both sides parse
package pluginsearch

import (
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
)

// CachedPlugin is one locally cached plugin version under
// plugins/cache/<marketplace>/<plugin>/<version>/.
type CachedPlugin struct {
	Marketplace string
	Name        string
	Version     string
	Path        string
}

// ScanCache walks the plugin cache and returns the newest cached version
// per plugin, keyed by "name@marketplace". A missing cache directory yields
// an empty map.
func ScanCache(claudeDir string) map[string]CachedPlugin {
	cacheDir := filepath.Join(claudeDir, "plugins", "cache")
	result := make(map[string]CachedPlugin)

	marketplaces, err := os.ReadDir(cacheDir)
	if err != nil {
		return result
	}

	for _, marketplace := range marketplaces {
		if !marketplace.IsDir() {
			continue
		}
		marketplaceDir := filepath.Join(cacheDir, marketplace.Name())

		plugins, err := os.ReadDir(marketplaceDir)
		if err != nil {
			continue
		}
		for _, plugin := range plugins {
			if !plugin.IsDir() {
				continue
			}
			pluginDir := filepath.Join(marketplaceDir, plugin.Name())

			versions, err := os.ReadDir(pluginDir)
			if err != nil {
				continue
			}
			newest := ""
			for _, version := range versions {
				if !version.IsDir() {
					continue
				}
				if newest == "" || newerVersion(version.Name(), newest) {
					newest = version.Name()
				}
			}
			if newest == "" {
				continue
			}

			key := plugin.Name() + "@" + marketplace.Name()
			result[key] = CachedPlugin{
				Marketplace: marketplace.Name(),
				Name:        plugin.Name(),
				Version:     newest,
				Path:        filepath.Join(pluginDir, newest),
			}
		}
	}
	return result
}

// newerVersion reports whether a is newer than b: semver comparison when
// both parse, lexicographic string comparison otherwise.
func newerVersion(a, b string) bool {
	va, errA := semver.NewVersion(a)
	vb, errB := semver.NewVersion(b)
	if errA == nil && errB == nil {
		return va.GreaterThan(vb)
	}
	return a > b
}
