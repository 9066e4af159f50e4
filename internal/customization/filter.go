// ABOUTME: Pure filter over discovered customization lists
// ABOUTME: Restricts by scope, then by case-insensitive name/plugin-prefix query

package customization

import "strings"

// Filter returns the items matching the given query and scope, preserving
// order. An empty scope means all scopes. An empty query is a no-op: the
// input slice is returned unchanged after the scope stage. The query matches
// case-insensitively against the item name, and for plugin-sourced items
// also against the plugin short name (as a prefix) and the "short:name"
// concatenation.
func Filter(items []Customization, query string, scope Scope) []Customization {
	result := items

	if scope != "" {
		filtered := make([]Customization, 0, len(result))
		for _, c := range result {
			if c.Scope == scope {
				filtered = append(filtered, c)
			}
		}
		result = filtered
	}

	if query == "" {
		return result
	}

	q := strings.ToLower(query)
	filtered := make([]Customization, 0, len(result))
	for _, c := range result {
		if matchesQuery(c, q) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func matchesQuery(c Customization, q string) bool {
	if strings.Contains(strings.ToLower(c.Name), q) {
		return true
	}
	if c.Plugin == nil {
		return false
	}
	short := strings.ToLower(c.Plugin.ShortName)
	if strings.HasPrefix(short, q) {
		return true
	}
	return strings.Contains(short+":"+strings.ToLower(c.Name), q)
}
