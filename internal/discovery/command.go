// ABOUTME: Parser for slash command markdown files
// ABOUTME: Derives names from scan-root-relative paths, nested dirs preserved

package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lazyclaude/lazyclaude/internal/customization"
	"github.com/lazyclaude/lazyclaude/internal/frontmatter"
)

// ParseSlashCommand parses one commands/**/*.md file. The name is the file
// path relative to the commands root with the .md suffix stripped, so nested
// commands keep their namespace ("git/commit").
func ParseSlashCommand(root, path string, scope customization.Scope) customization.Customization {
	name := commandName(root, path)

	data, err := os.ReadFile(path)
	if err != nil {
		return customization.Customization{
			Name:       name,
			Kind:       customization.KindSlashCommand,
			Scope:      scope,
			SourcePath: path,
			Err:        fmt.Sprintf("failed to read file: %v", err),
		}
	}

	text := string(data)
	meta, _ := frontmatter.Parse(text)

	return customization.Customization{
		Name:        name,
		Kind:        customization.KindSlashCommand,
		Scope:       scope,
		SourcePath:  path,
		Description: frontmatter.String(meta, "description"),
		Content:     text,
		Metadata: customization.SlashCommandMetadata{
			AllowedTools:           frontmatter.StringList(meta, "allowed-tools"),
			ArgumentHint:           frontmatter.String(meta, "argument-hint"),
			Model:                  frontmatter.String(meta, "model"),
			DisableModelInvocation: frontmatter.Bool(meta, "disable-model-invocation"),
		},
	}
}

func commandName(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	return strings.TrimSuffix(filepath.ToSlash(rel), ".md")
}
