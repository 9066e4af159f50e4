// ABOUTME: Parser for hook entries in settings JSON files
// ABOUTME: Emits one record per (event, matcher, hook index)

package discovery

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lazyclaude/lazyclaude/internal/customization"
)

type hookGroup struct {
	Matcher string      `json:"matcher"`
	Hooks   []hookEntry `json:"hooks"`
}

type hookEntry struct {
	Type    string `json:"type"`
	Command string `json:"command"`
}

// ParseHooksConfig reads the hooks section of a settings file. A missing or
// malformed file contributes zero records. Each hook within each matcher
// group becomes one record named "event[index]" with the matcher appended
// when present.
func ParseHooksConfig(path string, scope customization.Scope) []customization.Customization {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var config struct {
		Hooks map[string][]hookGroup `json:"hooks"`
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return nil
	}

	var items []customization.Customization
	for _, event := range sortedKeys(config.Hooks) {
		for _, group := range config.Hooks[event] {
			for i, hook := range group.Hooks {
				items = append(items, hookRecord(event, group.Matcher, i, hook, path, scope))
			}
		}
	}
	return items
}

func hookRecord(event, matcher string, index int, hook hookEntry, sourcePath string, scope customization.Scope) customization.Customization {
	name := fmt.Sprintf("%s[%d]", event, index)
	if matcher != "" {
		name = fmt.Sprintf("%s: %s", name, matcher)
	}

	content := hook.Command
	if raw, err := json.MarshalIndent(hook, "", "  "); err == nil {
		content = string(raw)
	}

	return customization.Customization{
		Name:        name,
		Kind:        customization.KindHook,
		Scope:       scope,
		SourcePath:  sourcePath,
		Description: hook.Command,
		Content:     content,
		Metadata: customization.HookMetadata{
			Event:   event,
			Matcher: matcher,
			Command: hook.Command,
		},
	}
}
