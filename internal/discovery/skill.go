// ABOUTME: Parser for skill directories holding a SKILL.md
// ABOUTME: Detects sibling reference/examples/scripts/templates content

package discovery

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lazyclaude/lazyclaude/internal/customization"
	"github.com/lazyclaude/lazyclaude/internal/frontmatter"
)

// ParseSkill parses a skills/<name>/SKILL.md file. The skill's name comes
// from front matter, falling back to the directory name. Sibling files are
// probed for existence only, never parsed.
func ParseSkill(root, path string, scope customization.Scope) customization.Customization {
	skillDir := filepath.Dir(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return customization.Customization{
			Name:       filepath.Base(skillDir),
			Kind:       customization.KindSkill,
			Scope:      scope,
			SourcePath: path,
			Err:        fmt.Sprintf("failed to read file: %v", err),
		}
	}

	text := string(data)
	meta, _ := frontmatter.Parse(text)

	name := frontmatter.String(meta, "name")
	if name == "" {
		name = filepath.Base(skillDir)
	}

	return customization.Customization{
		Name:        name,
		Kind:        customization.KindSkill,
		Scope:       scope,
		SourcePath:  path,
		Description: frontmatter.String(meta, "description"),
		Content:     text,
		Metadata: customization.SkillMetadata{
			Tags:         frontmatter.StringList(meta, "tags"),
			HasReference: fileExists(filepath.Join(skillDir, "reference.md")),
			HasExamples:  fileExists(filepath.Join(skillDir, "examples.md")),
			HasScripts:   dirExists(filepath.Join(skillDir, "scripts")),
			HasTemplates: dirExists(filepath.Join(skillDir, "templates")),
		},
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
