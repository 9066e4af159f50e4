// ABOUTME: Parser for MCP server entries in JSON config files
// ABOUTME: Handles standalone manifests and the combined user config

package discovery

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/lazyclaude/lazyclaude/internal/customization"
)

// ParseMCPConfig reads a standalone mcpServers manifest (.mcp.json). A
// missing or malformed file contributes zero records.
func ParseMCPConfig(path string, scope customization.Scope) []customization.Customization {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var config struct {
		MCPServers map[string]json.RawMessage `json:"mcpServers"`
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return nil
	}

	return mcpServerRecords(config.MCPServers, path, scope)
}

// ParseCombinedMCPConfig reads the user's combined config file, yielding the
// top-level mcpServers at User scope plus the current project's nested entry
// at Project-Local scope. The projects map may key the project by either
// path-separator convention.
func ParseCombinedMCPConfig(path, projectRoot string) []customization.Customization {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var config struct {
		MCPServers map[string]json.RawMessage `json:"mcpServers"`
		Projects   map[string]struct {
			MCPServers map[string]json.RawMessage `json:"mcpServers"`
		} `json:"projects"`
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return nil
	}

	items := mcpServerRecords(config.MCPServers, path, customization.ScopeUser)

	for _, key := range []string{projectRoot, strings.ReplaceAll(projectRoot, "/", `\`), strings.ReplaceAll(projectRoot, `\`, "/")} {
		if project, ok := config.Projects[key]; ok {
			items = append(items, mcpServerRecords(project.MCPServers, path, customization.ScopeProjectLocal)...)
			break
		}
	}

	return items
}

func mcpServerRecords(servers map[string]json.RawMessage, sourcePath string, scope customization.Scope) []customization.Customization {
	items := make([]customization.Customization, 0, len(servers))
	for _, name := range sortedKeys(servers) {
		var config map[string]any
		if err := json.Unmarshal(servers[name], &config); err != nil || config == nil {
			continue
		}
		items = append(items, mcpServerRecord(name, config, servers[name], sourcePath, scope))
	}
	return items
}

func mcpServerRecord(name string, config map[string]any, raw json.RawMessage, sourcePath string, scope customization.Scope) customization.Customization {
	transport := stringField(config, "type")
	if transport == "" {
		transport = "stdio"
	}
	command := stringField(config, "command")
	url := stringField(config, "url")

	var description string
	switch {
	case command != "":
		description = fmt.Sprintf("%s command: %s", strings.ToUpper(transport), command)
	case url != "":
		description = fmt.Sprintf("%s url: %s", strings.ToUpper(transport), url)
	default:
		description = fmt.Sprintf("%s server", strings.ToUpper(transport))
	}

	return customization.Customization{
		Name:        name,
		Kind:        customization.KindMCPServer,
		Scope:       scope,
		SourcePath:  sourcePath,
		Description: description,
		Content:     indentJSON(raw),
		Metadata: customization.MCPServerMetadata{
			Transport: transport,
			Command:   command,
			URL:       url,
			Args:      stringSliceField(config, "args"),
			Env:       stringMapField(config, "env"),
		},
	}
}

func indentJSON(raw json.RawMessage) string {
	out, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return string(raw)
	}
	return string(out)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
