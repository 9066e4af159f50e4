// ABOUTME: Acceptance tests for the preview command
// ABOUTME: Covers marketplace resolution, cache fallback, and error guidance
package acceptance

import (
	"path/filepath"

	"github.com/lazyclaude/lazyclaude/test/helpers"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("preview", func() {
	var env *helpers.TestEnv

	BeforeEach(func() {
		env = helpers.NewTestEnv(binaryPath)
	})

	Describe("a marketplace plugin", func() {
		BeforeEach(func() {
			root := env.CreateMarketplace("acme", []map[string]any{
				{"name": "toolkit", "description": "Handy tools", "source": "./plugins/toolkit"},
			})
			pluginDir := filepath.Join(root, "plugins", "toolkit")
			env.WriteFile(filepath.Join(pluginDir, "commands", "ship.md"),
				"---\ndescription: Ship the release\n---\nbody\n")
			env.WriteFile(filepath.Join(pluginDir, "agents", "helper.md"),
				"---\ndescription: Helps out\n---\nbody\n")
		})

		It("lists the plugin's customizations without installing", func() {
			result := env.Run("preview", "toolkit")

			Expect(result.ExitCode).To(Equal(0))
			Expect(result.Stdout).To(ContainSubstring("toolkit@acme"))
			Expect(result.Stdout).To(ContainSubstring("Slash Commands (1)"))
			Expect(result.Stdout).To(ContainSubstring("toolkit:ship"))
			Expect(result.Stdout).To(ContainSubstring("Subagents (1)"))
		})

		It("accepts the full id form", func() {
			result := env.Run("preview", "toolkit@acme")

			Expect(result.ExitCode).To(Equal(0))
			Expect(result.Stdout).To(ContainSubstring("toolkit@acme"))
		})
	})

	Describe("a cached plugin without a marketplace", func() {
		It("previews from the plugin cache", func() {
			dir := env.CreateCachedPlugin("gone", "orphan", "2.0.0")
			env.WriteFile(filepath.Join(dir, "commands", "stash.md"), "cached command\n")

			result := env.Run("preview", "orphan")

			Expect(result.ExitCode).To(Equal(0))
			Expect(result.Stdout).To(ContainSubstring("orphan@gone"))
			Expect(result.Stdout).To(ContainSubstring("orphan:stash"))
		})
	})

	Describe("resolution errors", func() {
		It("fails with suggestions for unknown plugins", func() {
			env.CreateMarketplace("acme", []map[string]any{
				{"name": "deploy-kit", "source": "./plugins/deploy-kit"},
			})

			result := env.Run("preview", "deploy")

			Expect(result.ExitCode).To(Equal(1))
			Expect(result.Stderr).To(ContainSubstring("not found"))
			Expect(result.Stderr).To(ContainSubstring("deploy-kit@acme"))
		})

		It("fails on an ambiguous short name", func() {
			env.CreateCachedPlugin("acme", "toolkit", "1.0.0")
			env.CreateCachedPlugin("other", "toolkit", "1.0.0")

			result := env.Run("preview", "toolkit")

			Expect(result.ExitCode).To(Equal(1))
			Expect(result.Stderr).To(ContainSubstring("multiple marketplaces"))
		})
	})
})
