// ABOUTME: Structured error types for plugin and marketplace resolution
// ABOUTME: Provides errors with actionable guidance for CLI output

package claude

import (
	"fmt"
	"strings"
)

// MarketplaceNotFoundError indicates a named marketplace is not in
// known_marketplaces.json.
type MarketplaceNotFoundError struct {
	Name  string
	Known []string
}

func (e *MarketplaceNotFoundError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("marketplace %q not found (no marketplaces are configured)", e.Name)
	}
	return fmt.Sprintf("marketplace %q not found; known marketplaces: %s",
		e.Name, strings.Join(e.Known, ", "))
}

// PluginNotFoundError indicates a plugin could not be located in any
// marketplace catalog or the local cache.
type PluginNotFoundError struct {
	Plugin      string
	Suggestions []string
}

func (e *PluginNotFoundError) Error() string {
	msg := fmt.Sprintf("plugin %q not found in any marketplace", e.Plugin)
	if len(e.Suggestions) > 0 {
		msg += "; did you mean: " + strings.Join(e.Suggestions, ", ")
	}
	return msg
}

// AmbiguousPluginError indicates a short plugin name matched entries in
// more than one marketplace.
type AmbiguousPluginError struct {
	Plugin     string
	Candidates []string
}

func (e *AmbiguousPluginError) Error() string {
	return fmt.Sprintf("plugin %q exists in multiple marketplaces: %s (use name@marketplace)",
		e.Plugin, strings.Join(e.Candidates, ", "))
}
