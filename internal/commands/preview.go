// ABOUTME: Preview command showing a plugin's contents before installation
// ABOUTME: Resolves the plugin source via marketplace catalogs and the cache
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lazyclaude/lazyclaude/internal/claude"
	"github.com/lazyclaude/lazyclaude/internal/customization"
	"github.com/lazyclaude/lazyclaude/internal/pluginsearch"
	"github.com/lazyclaude/lazyclaude/internal/ui"
)

var previewCmd = &cobra.Command{
	Use:   "preview <plugin>[@marketplace]",
	Short: "Preview a plugin's customizations without installing it",
	Long: `Resolve a plugin through the known marketplaces (or the local plugin
cache) and list the customizations its source directory provides.

Installed state is not touched; the plugin does not need to be installed.`,
	Example: `  lazyclaude preview deploy-kit
  lazyclaude preview deploy-kit@acme`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	registry := claude.NewRegistry(claudeDir)
	index := pluginsearch.BuildIndex(claudeDir, registry)

	entry, err := index.Resolve(args[0])
	if err != nil {
		return err
	}
	if entry.SourceDir == "" {
		return fmt.Errorf("plugin %q has no resolvable source directory", entry.ID())
	}
	logger.Debug("previewing plugin", "id", entry.ID(), "dir", entry.SourceDir)

	info := &customization.PluginInfo{
		ID:          entry.ID(),
		ShortName:   entry.Name,
		Version:     entry.Version,
		InstallPath: entry.SourceDir,
		Enabled:     entry.Enabled,
	}
	items := newService().DiscoverFromDirectory(entry.SourceDir, info)

	fmt.Println(ui.RenderHeader(entry.ID()))
	fmt.Println()
	if entry.Description != "" {
		fmt.Println(ui.RenderDetail("Description", entry.Description))
	}
	fmt.Println(ui.RenderDetail("Source", ui.Muted(entry.SourceDir)))
	if entry.Installed {
		fmt.Println(ui.RenderDetail("Installed", "yes"))
	}
	fmt.Println()

	if len(items) == 0 {
		ui.PrintMuted("no customizations found")
		return nil
	}
	printGrouped(items, customization.Kinds)
	return nil
}
