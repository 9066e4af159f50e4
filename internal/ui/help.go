// ABOUTME: Custom help template for Cobra commands with lipgloss styling
// ABOUTME: Provides consistent, colorful help output across all commands
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	helpHeadingStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorInfo)

	helpCommandStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// SetupHelpTemplate configures custom help templates for the root command
// and all its subcommands
func SetupHelpTemplate(cmd *cobra.Command) {
	cmd.SetUsageTemplate(usageTemplate)
	cmd.SetHelpTemplate(helpTemplate)

	cobra.AddTemplateFunc("styleHeading", styleHeading)
	cobra.AddTemplateFunc("styleCommand", styleCommand)
	cobra.AddTemplateFunc("styleDesc", styleDesc)
	cobra.AddTemplateFunc("styleExample", styleExample)
}

func styleHeading(s string) string {
	return helpHeadingStyle.Render(s)
}

func styleCommand(s string) string {
	return helpCommandStyle.Render(s)
}

func styleDesc(s string) string {
	return helpDescStyle.Render(s)
}

func styleExample(s string) string {
	// Indent and style example lines
	lines := strings.Split(s, "\n")
	var styled []string
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			styled = append(styled, helpDescStyle.Render(line))
		} else if strings.TrimSpace(line) != "" {
			styled = append(styled, helpCommandStyle.Render(line))
		} else {
			styled = append(styled, line)
		}
	}
	return strings.Join(styled, "\n")
}

const helpTemplate = `{{if .Long}}{{.Long}}{{else}}{{.Short}}{{end}}

{{styleHeading "Usage:"}}
  {{styleCommand .UseLine}}{{if .HasAvailableSubCommands}}
  {{styleCommand .CommandPath}} {{styleDesc "[command]"}}{{end}}{{if gt (len .Aliases) 0}}

{{styleHeading "Aliases:"}}
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{styleHeading "Examples:"}}
{{styleExample .Example}}{{end}}{{if .HasAvailableSubCommands}}

{{styleHeading "Available Commands:"}}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{styleCommand (rpad .Name .NamePadding)}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{styleHeading "Flags:"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{styleHeading "Global Flags:"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{styleCommand (print .CommandPath " [command] --help")}}" for more information about a command.{{end}}
`

const usageTemplate = helpTemplate
