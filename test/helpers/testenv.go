// ABOUTME: TestEnv provides isolated test environments for acceptance tests
// ABOUTME: Creates fake config trees and runs the CLI binary with env overrides
package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// TestEnv represents an isolated test environment: a fake Claude config
// directory (CLAUDE_CONFIG_DIR points at it, so the combined .claude.json
// lives inside it) and a fake project root the CLI runs in.
type TestEnv struct {
	TempDir    string // Root temp directory
	ClaudeDir  string // Fake ~/.claude
	ProjectDir string // Fake project root (working directory for Run)
	Binary     string // Path to lazyclaude binary
}

// Result holds the outcome of one CLI invocation.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// NewTestEnv creates a new isolated test environment
func NewTestEnv(binary string) *TestEnv {
	tempDir := GinkgoT().TempDir()

	env := &TestEnv{
		TempDir:    tempDir,
		ClaudeDir:  filepath.Join(tempDir, ".claude"),
		ProjectDir: filepath.Join(tempDir, "project"),
		Binary:     binary,
	}

	Expect(os.MkdirAll(env.ClaudeDir, 0o755)).To(Succeed())
	Expect(os.MkdirAll(env.ProjectDir, 0o755)).To(Succeed())

	return env
}

// Run executes the CLI from the project directory with the fake config tree.
func (e *TestEnv) Run(args ...string) *Result {
	return e.RunWithEnv(nil, args...)
}

// RunWithEnv executes the CLI with additional environment variables
func (e *TestEnv) RunWithEnv(extraEnv map[string]string, args ...string) *Result {
	cmd := exec.Command(e.Binary, args...)
	cmd.Dir = e.ProjectDir
	cmd.Env = append(os.Environ(),
		"CLAUDE_CONFIG_DIR="+e.ClaudeDir,
		"NO_COLOR=1",
	)
	for k, v := range extraEnv {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = 1
		}
	}

	return &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// WriteFile writes a file under the temp root, creating parent directories.
func (e *TestEnv) WriteFile(path, content string) {
	Expect(os.MkdirAll(filepath.Dir(path), 0o755)).To(Succeed())
	Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())
}

func (e *TestEnv) writeJSON(path string, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	Expect(err).NotTo(HaveOccurred())
	e.WriteFile(path, string(data))
}

// CreateUserCommand creates a slash command markdown file at user scope.
// Nested names ("ops/deploy") are supported.
func (e *TestEnv) CreateUserCommand(name, content string) {
	e.WriteFile(filepath.Join(e.ClaudeDir, "commands", name+".md"), content)
}

// CreateProjectCommand creates a slash command at project scope.
func (e *TestEnv) CreateProjectCommand(name, content string) {
	e.WriteFile(filepath.Join(e.ProjectDir, ".claude", "commands", name+".md"), content)
}

// CreateUserAgent creates a subagent definition at user scope.
func (e *TestEnv) CreateUserAgent(name, content string) {
	e.WriteFile(filepath.Join(e.ClaudeDir, "agents", name+".md"), content)
}

// CreateUserSkill creates skills/<name>/SKILL.md at user scope.
func (e *TestEnv) CreateUserSkill(name, content string) {
	e.WriteFile(filepath.Join(e.ClaudeDir, "skills", name, "SKILL.md"), content)
}

// CreateProjectMemory creates CLAUDE.md at the project root.
func (e *TestEnv) CreateProjectMemory(content string) {
	e.WriteFile(filepath.Join(e.ProjectDir, "CLAUDE.md"), content)
}

// CreateUserMCPConfig writes the combined .claude.json with top-level
// mcpServers.
func (e *TestEnv) CreateUserMCPConfig(servers map[string]any) {
	e.writeJSON(filepath.Join(e.ClaudeDir, ".claude.json"), map[string]any{
		"mcpServers": servers,
	})
}

// CreateProjectMCPConfig writes .mcp.json at the project root.
func (e *TestEnv) CreateProjectMCPConfig(servers map[string]any) {
	e.writeJSON(filepath.Join(e.ProjectDir, ".mcp.json"), map[string]any{
		"mcpServers": servers,
	})
}

// CreateUserSettings writes the user settings.json verbatim (hooks,
// enabledPlugins, and anything else).
func (e *TestEnv) CreateUserSettings(settings map[string]any) {
	e.writeJSON(filepath.Join(e.ClaudeDir, "settings.json"), settings)
}

// CreateSettings writes settings.json with an enabledPlugins map, matching
// how Claude Code stores plugin enablement.
func (e *TestEnv) CreateSettings(enabledPlugins map[string]bool) {
	e.writeJSON(filepath.Join(e.ClaudeDir, "settings.json"), map[string]any{
		"enabledPlugins": enabledPlugins,
	})
}

// CreateInstalledPlugins creates installed_plugins.json from a
// pluginID -> manifest entry map.
func (e *TestEnv) CreateInstalledPlugins(plugins map[string]any) {
	e.writeJSON(filepath.Join(e.ClaudeDir, "plugins", "installed_plugins.json"), map[string]any{
		"version": 2,
		"plugins": plugins,
	})
}

// CreateKnownMarketplaces creates known_marketplaces.json.
func (e *TestEnv) CreateKnownMarketplaces(marketplaces map[string]any) {
	e.writeJSON(filepath.Join(e.ClaudeDir, "plugins", "known_marketplaces.json"), marketplaces)
}

// CreateMarketplace registers a marketplace rooted inside the temp dir and
// writes its .claude-plugin/marketplace.json index. Returns the root.
func (e *TestEnv) CreateMarketplace(name string, plugins []map[string]any) string {
	root := filepath.Join(e.TempDir, "marketplaces", name)
	e.CreateKnownMarketplaces(map[string]any{
		name: map[string]any{
			"source":          map[string]any{"source": "directory", "path": root},
			"installLocation": root,
		},
	})
	e.writeJSON(filepath.Join(root, ".claude-plugin", "marketplace.json"), map[string]any{
		"name":    name,
		"plugins": plugins,
	})
	return root
}

// CreateCachedPlugin creates plugins/cache/<marketplace>/<name>/<version>/
// and returns the version directory.
func (e *TestEnv) CreateCachedPlugin(marketplace, name, version string) string {
	dir := filepath.Join(e.ClaudeDir, "plugins", "cache", marketplace, name, version)
	Expect(os.MkdirAll(dir, 0o755)).To(Succeed())
	return dir
}

// BuildBinary compiles the lazyclaude binary into a temp dir and returns
// its path.
func BuildBinary() string {
	binPath := filepath.Join(GinkgoT().TempDir(), "lazyclaude")

	projectRoot, err := findProjectRoot()
	Expect(err).NotTo(HaveOccurred())

	cmd := exec.Command("go", "build", "-o", binPath, filepath.Join(projectRoot, "cmd", "lazyclaude"))
	output, err := cmd.CombinedOutput()
	Expect(err).NotTo(HaveOccurred(), "go build failed:\n%s", string(output))
	return binPath
}

// findProjectRoot walks up the directory tree to find go.mod
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find go.mod in any parent directory")
		}
		dir = parent
	}
}
