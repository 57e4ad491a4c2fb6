// Package resolver implements the column-prioritized fuzzy matching engine
// that turns a free-text audience description into ranked targeting pathways.
package resolver

import (
	"strings"

	"github.com/ernestocullari/audience-pathways/internal/model"
)

// ResolveColumns maps each required role to a column index by case-insensitive
// substring match against the header names. The first matching header wins;
// this is deterministic but ambiguous when several headers contain the role
// name (e.g. "Sub-Category" before "Category"), a known limitation of the
// sheet format. The returned slice lists any roles that did not resolve.
func ResolveColumns(headers []string) (map[model.ColumnRole]int, []model.ColumnRole) {
	columns := make(map[model.ColumnRole]int, len(model.RequiredRoles))

	for _, role := range model.RequiredRoles {
		for i, header := range headers {
			if strings.Contains(strings.ToLower(header), string(role)) {
				columns[role] = i
				break
			}
		}
	}

	var missing []model.ColumnRole
	for _, role := range model.RequiredRoles {
		if _, ok := columns[role]; !ok {
			missing = append(missing, role)
		}
	}

	return columns, missing
}
