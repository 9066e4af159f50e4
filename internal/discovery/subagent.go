// ABOUTME: Parser for subagent markdown files
// ABOUTME: Flat agents/*.md files named by their file stem

package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lazyclaude/lazyclaude/internal/customization"
	"github.com/lazyclaude/lazyclaude/internal/frontmatter"
)

// ParseSubagent parses one agents/*.md file.
func ParseSubagent(root, path string, scope customization.Scope) customization.Customization {
	name := strings.TrimSuffix(filepath.Base(path), ".md")

	data, err := os.ReadFile(path)
	if err != nil {
		return customization.Customization{
			Name:       name,
			Kind:       customization.KindSubagent,
			Scope:      scope,
			SourcePath: path,
			Err:        fmt.Sprintf("failed to read file: %v", err),
		}
	}

	text := string(data)
	meta, _ := frontmatter.Parse(text)

	return customization.Customization{
		Name:        name,
		Kind:        customization.KindSubagent,
		Scope:       scope,
		SourcePath:  path,
		Description: frontmatter.String(meta, "description"),
		Content:     text,
		Metadata: customization.SubagentMetadata{
			Tools:          frontmatter.StringList(meta, "tools"),
			Model:          frontmatter.String(meta, "model"),
			PermissionMode: frontmatter.String(meta, "permission-mode"),
			Skills:         frontmatter.StringList(meta, "skills"),
		},
	}
}
