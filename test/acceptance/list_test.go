// ABOUTME: Acceptance tests for the list command
// ABOUTME: Covers scope retention, filters, error records, and MCP discovery
package acceptance

import (
	"path/filepath"

	"github.com/lazyclaude/lazyclaude/test/helpers"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("list", func() {
	var env *helpers.TestEnv

	BeforeEach(func() {
		env = helpers.NewTestEnv(binaryPath)
	})

	Describe("with no configuration", func() {
		It("exits cleanly with no sections", func() {
			result := env.Run("list")

			Expect(result.ExitCode).To(Equal(0))
			Expect(result.Stdout).NotTo(ContainSubstring("Slash Commands"))
		})
	})

	Describe("cross-scope commands", func() {
		BeforeEach(func() {
			env.CreateUserCommand("deploy", "---\ndescription: Deploy the app\n---\nbody\n")
			env.CreateProjectCommand("deploy", "no front matter\n")
		})

		It("retains both scopes of a same-named command", func() {
			result := env.Run("list", "--type", "command")

			Expect(result.ExitCode).To(Equal(0))
			Expect(result.Stdout).To(ContainSubstring("Slash Commands (2)"))
			Expect(result.Stdout).To(ContainSubstring("deploy [U]"))
			Expect(result.Stdout).To(ContainSubstring("deploy [P]"))
			Expect(result.Stdout).To(ContainSubstring("Deploy the app"))
		})

		It("restricts to one level", func() {
			result := env.Run("list", "--type", "command", "--level", "project")

			Expect(result.Stdout).To(ContainSubstring("Slash Commands (1)"))
			Expect(result.Stdout).NotTo(ContainSubstring("[U]"))
		})

		It("filters by query case-insensitively", func() {
			result := env.Run("list", "--query", "DEPLOY")

			Expect(result.Stdout).To(ContainSubstring("deploy [U]"))
		})

		It("rejects an unknown level", func() {
			result := env.Run("list", "--level", "galaxy")

			Expect(result.ExitCode).To(Equal(1))
			Expect(result.Stderr).To(ContainSubstring("invalid level"))
		})
	})

	Describe("MCP servers", func() {
		It("discovers servers from the combined user config", func() {
			env.CreateUserMCPConfig(map[string]any{
				"s1": map[string]any{"command": "npx"},
			})

			result := env.Run("list", "--type", "mcp")

			Expect(result.ExitCode).To(Equal(0))
			Expect(result.Stdout).To(ContainSubstring("MCPs (1)"))
			Expect(result.Stdout).To(ContainSubstring("s1 [U]"))
		})

		It("discovers project-level servers from .mcp.json", func() {
			env.CreateProjectMCPConfig(map[string]any{
				"db": map[string]any{"command": "docker", "args": []string{"run"}},
			})

			result := env.Run("list", "--type", "mcp")

			Expect(result.Stdout).To(ContainSubstring("db [P]"))
		})
	})

	Describe("malformed configuration", func() {
		It("yields zero hooks from invalid settings JSON", func() {
			env.WriteFile(filepath.Join(env.ClaudeDir, "settings.json"), "{not json")

			result := env.Run("list", "--type", "hook")

			Expect(result.ExitCode).To(Equal(0))
			Expect(result.Stdout).To(ContainSubstring("Hooks (0)"))
		})

		It("yields zero MCP servers from a malformed manifest", func() {
			env.WriteFile(filepath.Join(env.ProjectDir, ".mcp.json"), "{broken")

			result := env.Run("list", "--type", "mcp")

			Expect(result.ExitCode).To(Equal(0))
			Expect(result.Stdout).To(ContainSubstring("MCPs (0)"))
		})
	})

	Describe("memory files", func() {
		It("keeps one record when config-dir and root CLAUDE.md both exist", func() {
			env.WriteFile(filepath.Join(env.ProjectDir, ".claude", "CLAUDE.md"), "config dir memory\n")
			env.CreateProjectMemory("root memory\n")

			result := env.Run("list", "--type", "memory")

			Expect(result.Stdout).To(ContainSubstring("Memory Files (1)"))
		})

		It("names a nested CLAUDE.md by its project-relative path", func() {
			env.WriteFile(filepath.Join(env.ProjectDir, "services", "api", "CLAUDE.md"), "api notes\n")

			result := env.Run("list", "--type", "memory")

			Expect(result.Stdout).To(ContainSubstring("services/api/CLAUDE.md"))
		})
	})

	Describe("plugin-sourced items", func() {
		BeforeEach(func() {
			pluginDir := filepath.Join(env.TempDir, "plugins", "toolkit")
			env.WriteFile(filepath.Join(pluginDir, "commands", "ship.md"), "---\ndescription: Ship it\n---\n")
			env.CreateInstalledPlugins(map[string]any{
				"toolkit@acme": map[string]any{"installPath": pluginDir, "version": "1.0.0"},
			})
			env.CreateSettings(map[string]bool{"toolkit@acme": false})
		})

		It("lists disabled plugin items flagged, not hidden", func() {
			result := env.Run("list", "--type", "command")

			Expect(result.ExitCode).To(Equal(0))
			Expect(result.Stdout).To(ContainSubstring("toolkit:ship"))
			Expect(result.Stdout).To(ContainSubstring("(disabled)"))
		})

		It("matches the plugin short-name prefix in queries", func() {
			result := env.Run("list", "--query", "toolkit")

			Expect(result.Stdout).To(ContainSubstring("toolkit:ship"))
		})
	})
})
