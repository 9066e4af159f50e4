// ABOUTME: Resolves plugin queries against the preview index
// ABOUTME: Exact id, then unique short name, then substring suggestions
package pluginsearch

import (
	"sort"
	"strings"

	"github.com/lazyclaude/lazyclaude/internal/claude"
)

// Resolve maps a query to a single index entry. Accepted forms:
//   - "name@marketplace": exact id match
//   - "name": matched across marketplaces; ambiguity is an error listing
//     the candidates
//
// When nothing matches exactly, the error carries case-insensitive
// substring suggestions.
func (idx *Index) Resolve(query string) (Entry, error) {
	if strings.Contains(query, "@") {
		for _, entry := range idx.entries {
			if entry.ID() == query {
				return entry, nil
			}
		}
		return Entry{}, &claude.PluginNotFoundError{Plugin: query, Suggestions: idx.suggest(query)}
	}

	var matches []Entry
	for _, entry := range idx.entries {
		if entry.Name == query {
			matches = append(matches, entry)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return Entry{}, &claude.PluginNotFoundError{Plugin: query, Suggestions: idx.suggest(query)}
	default:
		candidates := make([]string, len(matches))
		for i, entry := range matches {
			candidates[i] = entry.ID()
		}
		return Entry{}, &claude.AmbiguousPluginError{Plugin: query, Candidates: candidates}
	}
}

// suggest returns ids whose name contains the query, case-insensitively.
func (idx *Index) suggest(query string) []string {
	q := strings.ToLower(query)
	if i := strings.Index(q, "@"); i >= 0 {
		q = q[:i]
	}
	if q == "" {
		return nil
	}

	var suggestions []string
	for _, entry := range idx.entries {
		if strings.Contains(strings.ToLower(entry.Name), q) {
			suggestions = append(suggestions, entry.ID())
		}
	}
	sort.Strings(suggestions)
	return suggestions
}
