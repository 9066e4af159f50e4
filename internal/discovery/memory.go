// ABOUTME: Memory file and rule file discovery with candidate dedup
// ABOUTME: Walks fixed candidates, recursive CLAUDE.md, and rules/ trees

package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/lazyclaude/lazyclaude/internal/customization"
)

// dedup tracks what the memory and rule passes have already emitted. A
// candidate is dropped when its resolved path was seen before (same file
// reached through two candidate positions) or when an earlier candidate
// already claimed its display name at the same scope (config-dir CLAUDE.md
// wins over the project-root copy). First candidate in precedence order
// wins.
type dedup struct {
	paths map[string]bool
	names map[string]bool
}

func newDedup() *dedup {
	return &dedup{paths: make(map[string]bool), names: make(map[string]bool)}
}

func (d *dedup) claim(path string, scope customization.Scope, name string) bool {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		resolved = filepath.Clean(path)
	}
	nameKey := string(scope) + "|" + name
	if d.paths[resolved] || d.names[nameKey] {
		return false
	}
	d.paths[resolved] = true
	d.names[nameKey] = true
	return true
}

// ParseMemoryFile reads one memory or rule file wholesale. Memory files
// carry no metadata schema; the whole text is the content.
func ParseMemoryFile(path, name string, scope customization.Scope) customization.Customization {
	data, err := os.ReadFile(path)
	if err != nil {
		return customization.Customization{
			Name:       name,
			Kind:       customization.KindMemoryFile,
			Scope:      scope,
			SourcePath: path,
			Err:        fmt.Sprintf("failed to read file: %v", err),
		}
	}

	return customization.Customization{
		Name:       name,
		Kind:       customization.KindMemoryFile,
		Scope:      scope,
		SourcePath: path,
		Content:    string(data),
	}
}

// memoryFiles walks the fixed candidate list in precedence order, then every
// CLAUDE.md under the project root.
func memoryFiles(userDir, projectConfigDir, projectRoot string, seen *dedup) []customization.Customization {
	var items []customization.Customization

	userCandidates := []string{
		filepath.Join(userDir, "CLAUDE.md"),
		filepath.Join(userDir, "AGENTS.md"),
		filepath.Join(userDir, "CLAUDE.local.md"),
	}
	for _, path := range userCandidates {
		name := filepath.Base(path)
		if isRegularFile(path) && seen.claim(path, customization.ScopeUser, name) {
			items = append(items, ParseMemoryFile(path, name, customization.ScopeUser))
		}
	}

	projectCandidates := []string{
		filepath.Join(projectConfigDir, "CLAUDE.md"),
		filepath.Join(projectConfigDir, "AGENTS.md"),
		filepath.Join(projectRoot, "CLAUDE.md"),
		filepath.Join(projectRoot, "AGENTS.md"),
		filepath.Join(projectRoot, "CLAUDE.local.md"),
	}
	for _, path := range projectCandidates {
		name := filepath.Base(path)
		if isRegularFile(path) && seen.claim(path, customization.ScopeProject, name) {
			items = append(items, ParseMemoryFile(path, name, customization.ScopeProject))
		}
	}

	// Nested memory files anywhere under the project root, named by their
	// root-relative path.
	filepath.WalkDir(projectRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || d.Name() != "CLAUDE.md" {
			return nil
		}
		name := path
		if rel, err := filepath.Rel(projectRoot, path); err == nil {
			name = filepath.ToSlash(rel)
		}
		if !seen.claim(path, customization.ScopeProject, name) {
			return nil
		}
		items = append(items, ParseMemoryFile(path, name, customization.ScopeProject))
		return nil
	})

	return items
}

// ruleFiles collects every *.md under a rules/ root, named by its path
// relative to that root.
func ruleFiles(rulesRoot string, scope customization.Scope, seen *dedup) []customization.Customization {
	if !dirExists(rulesRoot) {
		return nil
	}

	var items []customization.Customization
	filepath.WalkDir(rulesRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		name := d.Name()
		if rel, err := filepath.Rel(rulesRoot, path); err == nil {
			name = filepath.ToSlash(rel)
		}
		if !seen.claim(path, scope, name) {
			return nil
		}
		items = append(items, ParseMemoryFile(path, name, scope))
		return nil
	})
	return items
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
