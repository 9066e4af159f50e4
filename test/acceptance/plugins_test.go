// ABOUTME: Acceptance tests for the plugins command
// ABOUTME: Covers installed listing, disabled state, version resolution, marketplaces
package acceptance

import (
	"os"
	"path/filepath"

	"github.com/lazyclaude/lazyclaude/test/helpers"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("plugins", func() {
	var env *helpers.TestEnv

	BeforeEach(func() {
		env = helpers.NewTestEnv(binaryPath)
	})

	Describe("with no plugins", func() {
		It("shows an empty plugin list", func() {
			result := env.Run("plugins")

			Expect(result.ExitCode).To(Equal(0))
			Expect(result.Stdout).To(ContainSubstring("Installed Plugins (0)"))
		})
	})

	Describe("with installed plugins", func() {
		var pluginPath string

		BeforeEach(func() {
			pluginPath = filepath.Join(env.ClaudeDir, "plugins", "cache", "acme", "toolkit", "1.2.3")
			Expect(os.MkdirAll(pluginPath, 0o755)).To(Succeed())

			env.CreateInstalledPlugins(map[string]any{
				"toolkit@acme": map[string]any{
					"installPath": pluginPath,
					"version":     "1.2.3",
				},
				"sidecar@acme": map[string]any{
					"installPath": filepath.Join(env.TempDir, "local", "sidecar"),
					"isLocal":     true,
				},
			})
			env.CreateSettings(map[string]bool{"sidecar@acme": false})
		})

		It("lists plugins with version and path", func() {
			result := env.Run("plugins")

			Expect(result.ExitCode).To(Equal(0))
			Expect(result.Stdout).To(ContainSubstring("Installed Plugins (2)"))
			Expect(result.Stdout).To(ContainSubstring("toolkit@acme"))
			Expect(result.Stdout).To(ContainSubstring("1.2.3"))
			Expect(result.Stdout).To(ContainSubstring(pluginPath))
		})

		It("flags disabled plugins without hiding them", func() {
			result := env.Run("plugins")

			Expect(result.Stdout).To(ContainSubstring("sidecar@acme"))
			Expect(result.Stdout).To(ContainSubstring("disabled"))
			Expect(result.Stdout).To(ContainSubstring("1 enabled, 1 disabled"))
		})
	})

	Describe("version directory resolution", func() {
		It("selects the newest version by numeric tuple, not string order", func() {
			parent := filepath.Join(env.TempDir, "versions", "toolkit")
			Expect(os.MkdirAll(filepath.Join(parent, "1.0.0"), 0o755)).To(Succeed())
			Expect(os.MkdirAll(filepath.Join(parent, "10.0.0"), 0o755)).To(Succeed())

			// installPath points at a version directory that is gone.
			env.CreateInstalledPlugins(map[string]any{
				"toolkit@acme": map[string]any{
					"installPath": filepath.Join(parent, "0.9.0"),
				},
			})

			result := env.Run("plugins")

			Expect(result.Stdout).To(ContainSubstring("10.0.0"))
		})
	})

	Describe("--marketplaces", func() {
		It("lists catalogs with installed annotations", func() {
			env.CreateMarketplace("acme", []map[string]any{
				{"name": "toolkit", "description": "Handy tools", "source": "./plugins/toolkit"},
			})

			result := env.Run("plugins", "--marketplaces")

			Expect(result.ExitCode).To(Equal(0))
			Expect(result.Stdout).To(ContainSubstring("Marketplaces (1)"))
			Expect(result.Stdout).To(ContainSubstring("acme"))
			Expect(result.Stdout).To(ContainSubstring("toolkit"))
			Expect(result.Stdout).To(ContainSubstring("Handy tools"))
		})

		It("reports a marketplace whose manifest is missing", func() {
			root := filepath.Join(env.TempDir, "marketplaces", "broken")
			env.CreateKnownMarketplaces(map[string]any{
				"broken": map[string]any{
					"source":          map[string]any{"source": "directory", "path": root},
					"installLocation": root,
				},
			})

			result := env.Run("plugins", "--marketplaces")

			Expect(result.ExitCode).To(Equal(0))
			Expect(result.Stdout).To(ContainSubstring("broken"))
		})
	})
})
