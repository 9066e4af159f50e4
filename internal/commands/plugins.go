// ABOUTME: Plugins command listing installed plugins and marketplace catalogs
// ABOUTME: Shows enabled state, resolved version, and install path per plugin
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lazyclaude/lazyclaude/internal/claude"
	"github.com/lazyclaude/lazyclaude/internal/pluginsearch"
	"github.com/lazyclaude/lazyclaude/internal/ui"
)

var pluginsMarketplaces bool

var pluginsCmd = &cobra.Command{
	Use:   "plugins",
	Short: "List installed plugins",
	Long: `Display installed plugins with their enabled state, resolved version,
and install path. Disabled plugins are listed too.`,
	Args: cobra.NoArgs,
	RunE: runPlugins,
}

func init() {
	rootCmd.AddCommand(pluginsCmd)
	pluginsCmd.Flags().BoolVar(&pluginsMarketplaces, "marketplaces", false, "list marketplace catalogs instead of installed plugins")
}

func runPlugins(cmd *cobra.Command, args []string) error {
	registry := claude.NewRegistry(claudeDir)

	if pluginsMarketplaces {
		printMarketplaces(pluginsearch.LoadCatalogs(claudeDir, registry))
		return nil
	}

	plugins := registry.AllPlugins()
	fmt.Println(ui.RenderSection("Installed Plugins", len(plugins)))
	fmt.Println()

	enabledCount := 0
	for _, plugin := range plugins {
		var statusSymbol, statusText string
		if plugin.Enabled {
			statusSymbol = ui.Success(ui.SymbolSuccess)
			statusText = "enabled"
			enabledCount++
		} else {
			statusSymbol = ui.Muted(ui.SymbolBullet)
			statusText = ui.Muted("disabled")
		}

		fmt.Printf("%s %s\n", statusSymbol, ui.Bold(plugin.ID))
		fmt.Println(ui.Indent(ui.RenderDetail("Version", orDash(plugin.Version)), 1))
		fmt.Println(ui.Indent(ui.RenderDetail("Status", statusText), 1))
		fmt.Println(ui.Indent(ui.RenderDetail("Path", ui.Muted(plugin.InstallPath)), 1))
		if plugin.IsLocal {
			fmt.Println(ui.Indent(ui.RenderDetail("Type", "local"), 1))
		}
		fmt.Println()
	}

	fmt.Println(ui.RenderSection("Summary", -1))
	fmt.Printf("Total: %d plugins (%d enabled, %d disabled)\n",
		len(plugins), enabledCount, len(plugins)-enabledCount)
	return nil
}

func printMarketplaces(catalogs []pluginsearch.Catalog) {
	fmt.Println(ui.RenderSection("Marketplaces", len(catalogs)))
	fmt.Println()

	for _, catalog := range catalogs {
		if catalog.Err != "" {
			fmt.Printf("%s %s %s\n", ui.Error(ui.SymbolError), ui.Bold(catalog.Name), ui.Muted(catalog.Err))
			continue
		}

		fmt.Printf("%s %s %s\n", ui.Success(ui.SymbolSuccess), ui.Bold(catalog.Name),
			ui.Muted(fmt.Sprintf("(%d plugins)", len(catalog.Plugins))))
		fmt.Println(ui.Indent(ui.RenderDetail("Location", ui.Muted(catalog.Root)), 1))
		for _, plugin := range catalog.Plugins {
			state := ""
			if plugin.Installed {
				state = ui.Success(" [installed]")
				if !plugin.Enabled {
					state = ui.Muted(" [disabled]")
				}
			}
			line := ui.SymbolBullet + " " + plugin.Name + state
			if plugin.Description != "" {
				line += " " + ui.Muted(plugin.Description)
			}
			fmt.Println(ui.Indent(line, 1))
		}
		fmt.Println()
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
