// ABOUTME: Tests for structured rendering helpers
// ABOUTME: Verifies section headers, detail pairs, and indentation
package ui

import (
	"strings"
	"testing"
)

func TestRenderSection(t *testing.T) {
	t.Run("includes count when non-negative", func(t *testing.T) {
		got := RenderSection("Skills", 3)
		if !strings.Contains(got, "Skills (3)") {
			t.Errorf("RenderSection = %q, want title with count", got)
		}
	})

	t.Run("omits count when negative", func(t *testing.T) {
		got := RenderSection("Summary", -1)
		if strings.Contains(got, "(") {
			t.Errorf("RenderSection = %q, want no count", got)
		}
	})
}

func TestRenderDetail(t *testing.T) {
	got := RenderDetail("Path", "/tmp/x")
	if !strings.Contains(got, "Path:") || !strings.Contains(got, "/tmp/x") {
		t.Errorf("RenderDetail = %q, want label and value", got)
	}
}

func TestRenderHeader(t *testing.T) {
	got := RenderHeader("lazyclaude")
	if !strings.Contains(got, "lazyclaude") {
		t.Errorf("RenderHeader = %q, want title", got)
	}
}

func TestIndent(t *testing.T) {
	if got := Indent("x", 2); got != "    x" {
		t.Errorf("Indent(x, 2) = %q, want four spaces", got)
	}
	if got := Indent("x", 0); got != "x" {
		t.Errorf("Indent(x, 0) = %q, want unchanged", got)
	}
}
