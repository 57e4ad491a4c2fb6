package resolver

import (
	"fmt"
	"strings"

	"github.com/ernestocullari/audience-pathways/internal/model"
)

// maxSuggestedCategories caps how many taxonomy categories a no-match result
// offers back to the user.
const maxSuggestedCategories = 5

// Suggestions builds the advice attached to a no-match result: general
// rephrasing tips plus a sample of the categories the taxonomy actually
// contains.
func Suggestions(dataset *model.Dataset, columns map[model.ColumnRole]int) []string {
	suggestions := []string{
		"Try fewer or more general words (e.g. \"pet owners\" instead of \"people who buy premium cat food\")",
		"Describe the audience's interests, demographics, or behaviors",
	}

	categories := distinctValues(dataset, columns[model.RoleCategory], maxSuggestedCategories)
	if len(categories) > 0 {
		suggestions = append(suggestions,
			fmt.Sprintf("Browse available categories: %s", strings.Join(categories, ", ")))
	}

	return suggestions
}

// distinctValues collects up to limit distinct non-empty values from one
// column, in row order.
func distinctValues(dataset *model.Dataset, col, limit int) []string {
	seen := make(map[string]bool)
	var values []string

	for i := range dataset.Rows {
		value := strings.TrimSpace(dataset.Cell(i, col))
		if value == "" || seen[strings.ToLower(value)] {
			continue
		}
		seen[strings.ToLower(value)] = true
		values = append(values, value)
		if len(values) == limit {
			break
		}
	}

	return values
}
