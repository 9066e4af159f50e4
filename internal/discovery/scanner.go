// ABOUTME: Stateless filesystem scanner driven by declarative scan rules
// ABOUTME: Supports recursive-glob, flat-glob, and per-subdirectory traversal

package discovery

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/lazyclaude/lazyclaude/internal/customization"
)

// Strategy selects how a scan rule walks its subdirectory.
type Strategy int

const (
	// RecursiveGlob descends arbitrarily deep, matching the pattern
	// against file names.
	RecursiveGlob Strategy = iota
	// FlatGlob matches only direct children of the scan root.
	FlatGlob
	// PerSubdirectory looks for one fixed-named file in each immediate
	// subdirectory of the scan root.
	PerSubdirectory
)

// ParseFunc turns one candidate file into a customization. The root is the
// rule's scan root, used to derive relative display names.
type ParseFunc func(root, path string, scope customization.Scope) customization.Customization

// ScanRule declares one structured scan: which subdirectory to walk, which
// files to pick up, how to traverse, and which parser to apply.
type ScanRule struct {
	Subdir   string
	Pattern  string
	Strategy Strategy
	Parse    ParseFunc
}

// Scan enumerates the rule's candidate files under root and parses each one.
// A missing or non-directory scan root yields an empty result; that is the
// normal state for most roots. When plugin is non-nil every record is tagged
// with it.
func Scan(root string, rule ScanRule, scope customization.Scope, plugin *customization.PluginInfo) []customization.Customization {
	dir := filepath.Join(root, rule.Subdir)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil
	}

	var items []customization.Customization
	parse := func(path string) {
		c := rule.Parse(dir, path, scope)
		c.Plugin = plugin
		items = append(items, c)
	}

	switch rule.Strategy {
	case RecursiveGlob:
		filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				return nil
			}
			if ok, _ := filepath.Match(rule.Pattern, d.Name()); ok {
				parse(path)
			}
			return nil
		})

	case FlatGlob:
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if ok, _ := filepath.Match(rule.Pattern, entry.Name()); ok {
				parse(filepath.Join(dir, entry.Name()))
			}
		}

	case PerSubdirectory:
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			candidate := filepath.Join(dir, entry.Name(), rule.Pattern)
			if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
				parse(candidate)
			}
		}
	}

	return items
}
