// ABOUTME: Centralized path resolution for scanned Claude directories
// ABOUTME: Respects the CLAUDE_CONFIG_DIR environment variable for isolation

package config

import (
	"os"
	"path/filepath"
)

// MustClaudeDir returns the Claude configuration directory.
// Checks CLAUDE_CONFIG_DIR env var first, falls back to ~/.claude.
// Panics if home directory cannot be determined.
func MustClaudeDir() string {
	if dir := os.Getenv("CLAUDE_CONFIG_DIR"); dir != "" {
		return dir
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic("cannot determine home directory: " + err.Error())
	}
	return filepath.Join(homeDir, ".claude")
}

// MustClaudeConfigFile returns the combined user config file (.claude.json).
// When CLAUDE_CONFIG_DIR is set the file lives inside that directory,
// otherwise it sits in the home directory next to ~/.claude.
func MustClaudeConfigFile() string {
	if dir := os.Getenv("CLAUDE_CONFIG_DIR"); dir != "" {
		return filepath.Join(dir, ".claude.json")
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic("cannot determine home directory: " + err.Error())
	}
	return filepath.Join(homeDir, ".claude.json")
}

// MustProjectDir returns the project root scanned for project-scope
// customizations: the current working directory.
func MustProjectDir() string {
	dir, err := os.Getwd()
	if err != nil {
		panic("cannot determine working directory: " + err.Error())
	}
	return dir
}
