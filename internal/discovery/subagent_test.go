// ABOUTME: Unit tests for the subagent parser
// ABOUTME: Tests stem naming and tool/model front matter fields

package discovery

import (
	"path/filepath"
	"testing"

	"github.com/lazyclaude/lazyclaude/internal/customization"
)

func TestParseSubagent(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "code-reviewer.md")
	writeTestFile(t, path, `---
description: Reviews diffs before merge
tools: Read, Grep, Bash
model: opus
permission-mode: default
skills:
  - style-guide
  - security-checklist
---
You are a meticulous code reviewer.
`)

	c := ParseSubagent(root, path, customization.ScopeUser)

	if c.Name != "code-reviewer" {
		t.Errorf("Name = %q, want code-reviewer", c.Name)
	}
	if c.Description != "Reviews diffs before merge" {
		t.Errorf("Description = %q", c.Description)
	}
	meta, ok := c.Metadata.(customization.SubagentMetadata)
	if !ok {
		t.Fatalf("Metadata = %T, want SubagentMetadata", c.Metadata)
	}
	if len(meta.Tools) != 3 || meta.Tools[2] != "Bash" {
		t.Errorf("Tools = %v", meta.Tools)
	}
	if meta.Model != "opus" {
		t.Errorf("Model = %q", meta.Model)
	}
	if meta.PermissionMode != "default" {
		t.Errorf("PermissionMode = %q", meta.PermissionMode)
	}
	if len(meta.Skills) != 2 || meta.Skills[0] != "style-guide" {
		t.Errorf("Skills = %v", meta.Skills)
	}
}

func TestParseSubagentWithoutFrontMatter(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "helper.md")
	writeTestFile(t, path, "A plain agent definition.\n")

	c := ParseSubagent(root, path, customization.ScopeProject)

	if c.Name != "helper" {
		t.Errorf("Name = %q, want helper", c.Name)
	}
	meta, ok := c.Metadata.(customization.SubagentMetadata)
	if !ok {
		t.Fatalf("Metadata = %T", c.Metadata)
	}
	if len(meta.Tools) != 0 {
		t.Errorf("Tools = %v, want empty", meta.Tools)
	}
}
