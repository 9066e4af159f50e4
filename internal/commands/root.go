// ABOUTME: Root command and CLI initialization for lazyclaude
// ABOUTME: Sets up cobra command structure, global flags, and the dashboard
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lazyclaude/lazyclaude/internal/claude"
	"github.com/lazyclaude/lazyclaude/internal/config"
	"github.com/lazyclaude/lazyclaude/internal/discovery"
	"github.com/lazyclaude/lazyclaude/internal/tui"
	"github.com/lazyclaude/lazyclaude/internal/ui"
)

var (
	claudeDir  string
	projectDir string
	noColor    bool
	debug      bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "lazyclaude"})

var rootCmd = &cobra.Command{
	Use:   "lazyclaude",
	Short: "Terminal dashboard for Claude Code customizations",
	Long: `lazyclaude discovers and displays Claude Code customizations:
slash commands, subagents, skills, memory files, MCP servers, hooks,
and LSP servers, across user, project, and plugin configuration.

Run without arguments to open the interactive dashboard.`,
	RunE: runDashboard,
}

func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version for the root command
func SetVersion(version string) {
	rootCmd.Version = version
}

func init() {
	ui.SetupHelpTemplate(rootCmd)

	// Global flags - respect CLAUDE_CONFIG_DIR if set
	rootCmd.PersistentFlags().StringVar(&claudeDir, "claude-dir", config.MustClaudeDir(), "Claude configuration directory")
	rootCmd.PersistentFlags().StringVar(&projectDir, "project-dir", config.MustProjectDir(), "project root scanned for project-scope items")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if noColor {
			ui.DisableColor()
		}
		if debug {
			logger.SetLevel(log.DebugLevel)
		}
	}
}

// claudeConfigFile returns the combined user config file (.claude.json)
// matching the active claude directory.
func claudeConfigFile() string {
	if claudeDir != config.MustClaudeDir() {
		// Explicit --claude-dir: the combined config lives inside it.
		return filepath.Join(claudeDir, ".claude.json")
	}
	return config.MustClaudeConfigFile()
}

// newService builds the discovery service over the flag-resolved roots.
func newService() *discovery.Service {
	logger.Debug("scan roots", "claudeDir", claudeDir, "projectDir", projectDir)
	return discovery.NewService(claudeDir, projectDir, claudeConfigFile(), claude.NewRegistry(claudeDir))
}

func runDashboard(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the dashboard requires a terminal; use 'lazyclaude list' for piped output")
	}
	return tui.Run(newService(), claudeDir)
}
