package resolver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ernestocullari/audience-pathways/internal/model"
)

func TestSuggestions_IncludeSampleCategories(t *testing.T) {
	dataset := taxonomyDataset(
		[]string{"Auto", "G", "D", "desc"},
		[]string{"auto", "G", "D", "desc"}, // duplicate, case-insensitive
		[]string{"Retail", "G", "D", "desc"},
		[]string{"", "G", "D", "desc"},
		[]string{"Travel", "G", "D", "desc"},
	)
	columns, missing := ResolveColumns(dataset.Headers)
	require.Empty(t, missing)

	suggestions := Suggestions(dataset, columns)

	require.NotEmpty(t, suggestions)
	var categoriesLine string
	for _, s := range suggestions {
		if strings.Contains(s, "categories") {
			categoriesLine = s
		}
	}
	require.NotEmpty(t, categoriesLine)
	assert.Contains(t, categoriesLine, "Auto")
	assert.Contains(t, categoriesLine, "Retail")
	assert.Contains(t, categoriesLine, "Travel")
	assert.Equal(t, 1, strings.Count(strings.ToLower(categoriesLine), "auto"))
}

func TestSuggestions_CapSampleSize(t *testing.T) {
	rows := make([][]string, 0, 10)
	for _, c := range []string{"A1", "B2", "C3", "D4", "E5", "F6", "G7"} {
		rows = append(rows, []string{c, "G", "D", "desc"})
	}
	dataset := taxonomyDataset(rows...)
	columns, _ := ResolveColumns(dataset.Headers)

	values := distinctValues(dataset, columns[model.RoleCategory], maxSuggestedCategories)
	assert.Len(t, values, maxSuggestedCategories)
	assert.Equal(t, []string{"A1", "B2", "C3", "D4", "E5"}, values)
}
