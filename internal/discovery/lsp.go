// ABOUTME: Parser for LSP server configurations
// ABOUTME: Reads .lsp.json files and the lspServers field of plugin manifests

package discovery

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lazyclaude/lazyclaude/internal/customization"
)

// ParseLSPConfig reads a .lsp.json file mapping language names to server
// configurations. A missing file contributes zero records; an unreadable or
// malformed one yields a single error record.
func ParseLSPConfig(path string, scope customization.Scope) []customization.Customization {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return []customization.Customization{lspErrorRecord(path, scope, err)}
	}

	var servers map[string]json.RawMessage
	if err := json.Unmarshal(data, &servers); err != nil {
		return []customization.Customization{lspErrorRecord(path, scope, err)}
	}

	return lspServerRecords(servers, path, scope)
}

// ParseLSPFromPluginManifest reads the lspServers field of a plugin's
// .claude-plugin/plugin.json. Manifests without the field contribute zero
// records.
func ParseLSPFromPluginManifest(path string, scope customization.Scope) []customization.Customization {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return []customization.Customization{lspErrorRecord(path, scope, err)}
	}

	var manifest struct {
		LSPServers map[string]json.RawMessage `json:"lspServers"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return []customization.Customization{lspErrorRecord(path, scope, err)}
	}

	return lspServerRecords(manifest.LSPServers, path, scope)
}

func lspErrorRecord(path string, scope customization.Scope, err error) customization.Customization {
	return customization.Customization{
		Name:       filepath.Base(path),
		Kind:       customization.KindLSPServer,
		Scope:      scope,
		SourcePath: path,
		Err:        fmt.Sprintf("failed to parse LSP config: %v", err),
	}
}

func lspServerRecords(servers map[string]json.RawMessage, sourcePath string, scope customization.Scope) []customization.Customization {
	items := make([]customization.Customization, 0, len(servers))
	for _, language := range sortedKeys(servers) {
		var config map[string]any
		if err := json.Unmarshal(servers[language], &config); err != nil || config == nil {
			continue
		}
		items = append(items, lspServerRecord(language, config, servers[language], sourcePath, scope))
	}
	return items
}

func lspServerRecord(language string, config map[string]any, raw json.RawMessage, sourcePath string, scope customization.Scope) customization.Customization {
	command := stringField(config, "command")
	transport := stringField(config, "transport")
	if transport == "" {
		transport = "stdio"
	}

	var description string
	if command != "" {
		description = fmt.Sprintf("%s command: %s", strings.ToUpper(transport), command)
	} else {
		description = fmt.Sprintf("%s server", strings.ToUpper(transport))
	}

	return customization.Customization{
		Name:        language,
		Kind:        customization.KindLSPServer,
		Scope:       scope,
		SourcePath:  sourcePath,
		Description: description,
		Content:     indentJSON(raw),
		Metadata: customization.LSPServerMetadata{
			Command:               command,
			Args:                  stringSliceField(config, "args"),
			ExtensionToLanguage:   stringMapField(config, "extensionToLanguage"),
			Transport:             transport,
			Env:                   stringMapField(config, "env"),
			InitializationOptions: mapField(config, "initializationOptions"),
			Settings:              mapField(config, "settings"),
		},
	}
}
