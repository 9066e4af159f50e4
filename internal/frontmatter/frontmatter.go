// ABOUTME: Front-matter parser for Markdown customization files
// ABOUTME: Splits a document into a YAML metadata map and the remaining body

package frontmatter

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse extracts the optional front-matter block from text. The block must
// start at offset 0 with a line containing exactly "---" and end at the next
// such line; everything between is decoded as YAML. Any deviation (no
// opening marker, unterminated block, malformed YAML) degrades to an empty
// map with the original text returned unchanged. Parse is pure and never
// touches the filesystem.
func Parse(text string) (map[string]any, string) {
	empty := map[string]any{}

	firstLine, rest, found := strings.Cut(text, "\n")
	if !found || strings.TrimRight(firstLine, "\r") != "---" {
		return empty, text
	}

	lines := strings.Split(rest, "\n")
	for i, line := range lines {
		if strings.TrimRight(line, "\r") != "---" {
			continue
		}

		block := strings.Join(lines[:i], "\n")
		body := strings.Join(lines[i+1:], "\n")

		var meta map[string]any
		if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
			return empty, text
		}
		if meta == nil {
			meta = map[string]any{}
		}
		return meta, body
	}

	// Opening marker without a closing one: not front matter.
	return empty, text
}

// String returns the string value for key, or "" when absent or not scalar.
func String(meta map[string]any, key string) string {
	if v, ok := meta[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Bool returns the boolean value for key, or false when absent or not a
// boolean.
func Bool(meta map[string]any, key string) bool {
	if v, ok := meta[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

// StringList returns the value for key as a string slice. YAML lists are
// converted element-wise; scalar strings are split on commas. Empty entries
// are dropped.
func StringList(meta map[string]any, key string) []string {
	v, ok := meta[key]
	if !ok || v == nil {
		return nil
	}

	switch val := v.(type) {
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s := strings.TrimSpace(toString(item)); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		parts := strings.Split(val, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if s := strings.TrimSpace(p); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		if s := strings.TrimSpace(toString(v)); s != "" {
			return []string{s}
		}
		return nil
	}
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, err := yaml.Marshal(v)
	if err != nil {
		return ""
	}
	return strings.TrimSuffix(string(b), "\n")
}
