// ABOUTME: Integration tests for the discovery service over fake config trees
// ABOUTME: Exercises caching, refresh, ordering, and plugin-sourced discovery
package discovery_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lazyclaude/lazyclaude/internal/claude"
	"github.com/lazyclaude/lazyclaude/internal/customization"
	"github.com/lazyclaude/lazyclaude/internal/discovery"
)

type fakeTree struct {
	root       string
	claudeDir  string
	projectDir string
	configFile string
}

func newFakeTree() *fakeTree {
	root := GinkgoT().TempDir()
	t := &fakeTree{
		root:       root,
		claudeDir:  filepath.Join(root, ".claude"),
		projectDir: filepath.Join(root, "project"),
		configFile: filepath.Join(root, ".claude.json"),
	}
	Expect(os.MkdirAll(t.claudeDir, 0o755)).To(Succeed())
	Expect(os.MkdirAll(t.projectDir, 0o755)).To(Succeed())
	return t
}

func (t *fakeTree) write(path, content string) {
	Expect(os.MkdirAll(filepath.Dir(path), 0o755)).To(Succeed())
	Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())
}

func (t *fakeTree) writeJSON(path string, v any) {
	data, err := json.Marshal(v)
	Expect(err).NotTo(HaveOccurred())
	t.write(path, string(data))
}

func (t *fakeTree) service() *discovery.Service {
	return discovery.NewService(t.claudeDir, t.projectDir, t.configFile, claude.NewRegistry(t.claudeDir))
}

var _ = Describe("discovery service", func() {
	var tree *fakeTree

	BeforeEach(func() {
		tree = newFakeTree()
	})

	Describe("caching", func() {
		It("returns the identical slice until refreshed", func() {
			tree.write(filepath.Join(tree.claudeDir, "commands", "one.md"), "first\n")
			svc := tree.service()

			first := svc.DiscoverAll()
			second := svc.DiscoverAll()
			Expect(len(first)).To(Equal(1))
			Expect(&second[0]).To(BeIdenticalTo(&first[0]), "expected the cached backing array")
		})

		It("picks up a new file after Refresh", func() {
			svc := tree.service()
			Expect(svc.DiscoverAll()).To(BeEmpty())

			tree.write(filepath.Join(tree.claudeDir, "commands", "late.md"), "added later\n")
			Expect(svc.DiscoverAll()).To(BeEmpty(), "cache must not see the new file")

			refreshed := svc.Refresh()
			Expect(len(refreshed)).To(Equal(1))
			Expect(refreshed[0].Name).To(Equal("late"))
		})
	})

	Describe("ordering", func() {
		It("sorts by kind order before name", func() {
			tree.write(filepath.Join(tree.claudeDir, "skills", "Zeta", "SKILL.md"), "---\nname: Zeta\n---\n")
			tree.write(filepath.Join(tree.claudeDir, "commands", "alpha.md"), "cmd\n")

			items := tree.service().DiscoverAll()

			Expect(len(items)).To(Equal(2))
			Expect(items[0].Kind).To(Equal(customization.KindSlashCommand))
			Expect(items[1].Kind).To(Equal(customization.KindSkill))
		})

		It("orders names case-insensitively within a kind", func() {
			tree.write(filepath.Join(tree.claudeDir, "commands", "Bravo.md"), "b\n")
			tree.write(filepath.Join(tree.claudeDir, "commands", "alpha.md"), "a\n")
			tree.write(filepath.Join(tree.claudeDir, "commands", "Charlie.md"), "c\n")

			items := tree.service().DiscoverAll()

			names := []string{items[0].Name, items[1].Name, items[2].Name}
			Expect(names).To(Equal([]string{"alpha", "Bravo", "Charlie"}))
		})
	})

	Describe("local MCP servers", func() {
		It("tolerates the project key stored with the other separator", func() {
			storedKey := strings.ReplaceAll(tree.projectDir, "/", `\`)

			tree.writeJSON(tree.configFile, map[string]any{
				"projects": map[string]any{
					storedKey: map[string]any{
						"mcpServers": map[string]any{"local-db": map[string]any{"command": "docker"}},
					},
				},
			})

			items := tree.service().DiscoverByType(customization.KindMCPServer)
			Expect(len(items)).To(Equal(1))
			Expect(items[0].Scope).To(Equal(customization.ScopeProjectLocal))
			Expect(items[0].Name).To(Equal("local-db"))
		})

		It("returns zero local MCPs when the project key is absent", func() {
			tree.writeJSON(tree.configFile, map[string]any{
				"projects": map[string]any{
					"/somewhere/else": map[string]any{
						"mcpServers": map[string]any{"other": map[string]any{"command": "x"}},
					},
				},
			})

			items := tree.service().DiscoverByType(customization.KindMCPServer)
			Expect(items).To(BeEmpty())
		})
	})

	Describe("plugin-sourced customizations", func() {
		BeforeEach(func() {
			pluginDir := filepath.Join(tree.root, "plugins", "toolkit")
			tree.write(filepath.Join(pluginDir, "commands", "ship.md"), "ship\n")
			tree.writeJSON(filepath.Join(pluginDir, ".mcp.json"), map[string]any{
				"mcpServers": map[string]any{"plugin-db": map[string]any{"command": "pg"}},
			})
			tree.writeJSON(filepath.Join(tree.claudeDir, "plugins", "installed_plugins.json"), map[string]any{
				"plugins": map[string]any{
					"toolkit@acme": map[string]any{"installPath": pluginDir, "version": "1.0.0"},
				},
			})
			tree.writeJSON(filepath.Join(tree.claudeDir, "settings.json"), map[string]any{
				"enabledPlugins": map[string]any{"toolkit@acme": false},
			})
		})

		It("discovers disabled plugins flagged with provenance", func() {
			items := tree.service().DiscoverByLevel(customization.ScopePlugin)

			Expect(len(items)).To(Equal(2))
			for _, item := range items {
				Expect(item.Plugin).NotTo(BeNil())
				Expect(item.Plugin.ID).To(Equal("toolkit@acme"))
				Expect(item.Plugin.Enabled).To(BeFalse())
			}
		})
	})

	Describe("preview from a directory", func() {
		It("does not touch the main cache", func() {
			svc := tree.service()
			Expect(svc.DiscoverAll()).To(BeEmpty())

			previewDir := filepath.Join(tree.root, "preview-plugin")
			tree.write(filepath.Join(previewDir, "agents", "helper.md"), "helper\n")

			info := &customization.PluginInfo{ID: "helper@x", ShortName: "helper", Enabled: true}
			items := svc.DiscoverFromDirectory(previewDir, info)
			Expect(len(items)).To(Equal(1))
			Expect(items[0].Scope).To(Equal(customization.ScopePlugin))

			Expect(svc.DiscoverAll()).To(BeEmpty(), "preview leaked into the cache")
		})
	})
})
