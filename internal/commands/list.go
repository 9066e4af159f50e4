// ABOUTME: List command printing discovered customizations grouped by kind
// ABOUTME: Supports type, level, query, and errors-only filtering
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lazyclaude/lazyclaude/internal/customization"
	"github.com/lazyclaude/lazyclaude/internal/ui"
)

var (
	listType       string
	listLevel      string
	listQuery      string
	listErrorsOnly bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List discovered customizations",
	Long: `Display all discovered customizations grouped by type.

Scans user configuration, the project tree, and every installed plugin,
including disabled ones.`,
	Example: `  # Everything visible in the current project
  lazyclaude list

  # User-scope slash commands matching "deploy"
  lazyclaude list --type command --level user --query deploy

  # Only items that failed to parse
  lazyclaude list --errors-only`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listType, "type", "", "restrict to one type (command, agent, skill, memory, mcp, hook, lsp)")
	listCmd.Flags().StringVar(&listLevel, "level", "", "restrict to one level (user, project, local, plugin)")
	listCmd.Flags().StringVar(&listQuery, "query", "", "case-insensitive name filter")
	listCmd.Flags().BoolVar(&listErrorsOnly, "errors-only", false, "show only items that failed to parse")
}

func runList(cmd *cobra.Command, args []string) error {
	var scope customization.Scope
	if listLevel != "" {
		parsed, err := customization.ParseScope(listLevel)
		if err != nil {
			return err
		}
		scope = parsed
	}

	kinds := customization.Kinds
	if listType != "" {
		kind, err := customization.ParseKind(listType)
		if err != nil {
			return err
		}
		kinds = []customization.Kind{kind}
	}

	items := newService().DiscoverAll()
	logger.Debug("discovery complete", "items", len(items))

	items = customization.Filter(items, listQuery, scope)
	if listErrorsOnly {
		failed := items[:0:0]
		for _, c := range items {
			if c.HasError() {
				failed = append(failed, c)
			}
		}
		items = failed
	}

	printGrouped(items, kinds)
	return nil
}

// printGrouped prints one section per kind, skipping kinds with no items
// unless the kind was explicitly requested.
func printGrouped(items []customization.Customization, kinds []customization.Kind) {
	explicit := len(kinds) == 1
	for _, kind := range kinds {
		var group []customization.Customization
		for _, c := range items {
			if c.Kind == kind {
				group = append(group, c)
			}
		}
		if len(group) == 0 && !explicit {
			continue
		}

		fmt.Println(ui.RenderSection(kind.PluralLabel(), len(group)))
		for _, c := range group {
			printItem(c)
		}
		fmt.Println()
	}
}

func printItem(c customization.Customization) {
	name := c.DisplayName()
	switch {
	case c.HasError():
		fmt.Printf("  %s %s %s\n", ui.Error(ui.SymbolError), name, ui.Muted(c.Err))
	case c.Plugin != nil && !c.Plugin.Enabled:
		fmt.Printf("  %s %s %s\n", ui.Muted(ui.SymbolBullet), ui.Muted(name), ui.Muted("(disabled)"))
	default:
		fmt.Printf("  %s %s", ui.Success(ui.SymbolBullet), name)
		if c.Description != "" {
			fmt.Printf(" %s %s", ui.Muted(ui.SymbolArrow), ui.Muted(c.Description))
		}
		fmt.Println()
	}
}
