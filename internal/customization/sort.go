// ABOUTME: Canonical ordering for customization lists
// ABOUTME: Sorts by kind declaration order, then case-insensitive name

package customization

import (
	"sort"
	"strings"
)

// Sort orders items in place by (kind enumeration order, case-insensitive
// name). The sort is stable so equal keys keep their discovery order.
func Sort(items []Customization) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Kind != items[j].Kind {
			return items[i].Kind < items[j].Kind
		}
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
}
