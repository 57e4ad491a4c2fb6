package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ernestocullari/audience-pathways/internal/model"
)

func taxonomyDataset(rows ...[]string) *model.Dataset {
	return &model.Dataset{
		Headers: []string{"Category", "Grouping", "Demographic", "Description"},
		Rows:    rows,
	}
}

func TestEngine_Resolve_ExactPhraseMatch(t *testing.T) {
	engine := New(DefaultConfig(), nil, nil)
	dataset := taxonomyDataset(
		[]string{"Auto", "Vehicle Owners", "Age 25-34", "Car enthusiasts interested in performance vehicles"},
	)

	result := engine.Resolve("car enthusiasts", dataset)

	require.True(t, result.Success)
	assert.Equal(t, model.OutcomeMatch, result.Outcome)
	assert.Equal(t, model.RoleDescription, result.MatchedColumn)
	assert.Equal(t, model.ConfidenceHigh, result.Confidence)
	require.Len(t, result.Matches, 1)
	assert.InDelta(t, 100, result.Matches[0].Score, 0.001)
	assert.Equal(t, []string{"Auto → Vehicle Owners → Age 25-34"}, result.Pathways)
}

func TestEngine_Resolve_NoMatch(t *testing.T) {
	engine := New(DefaultConfig(), nil, nil)
	dataset := taxonomyDataset(
		[]string{"Auto", "Vehicle Owners", "Age 25-34", "Car enthusiasts interested in performance vehicles"},
		[]string{"Retail", "Shoppers", "Age 35-44", "Frequent buyers of household goods"},
	)

	result := engine.Resolve("xyz nonsense", dataset)

	assert.False(t, result.Success)
	assert.Equal(t, model.OutcomeNoMatch, result.Outcome)
	assert.Equal(t, model.RoleNone, result.MatchedColumn)
	assert.Empty(t, result.Matches)
	assert.NotEmpty(t, result.Suggestions)
}

func TestEngine_Resolve_MissingColumns(t *testing.T) {
	engine := New(DefaultConfig(), nil, nil)
	dataset := &model.Dataset{
		Headers: []string{"Category", "Grouping", "Description"},
		Rows:    [][]string{{"Auto", "Vehicle Owners", "Car enthusiasts"}},
	}

	result := engine.Resolve("car enthusiasts", dataset)

	assert.False(t, result.Success)
	assert.Equal(t, model.OutcomeMissingColumns, result.Outcome)
	assert.Equal(t, []model.ColumnRole{model.RoleDemographic}, result.MissingColumns)
	assert.Empty(t, result.Matches)
}

func TestEngine_Resolve_EmptyDataset(t *testing.T) {
	engine := New(DefaultConfig(), nil, nil)
	dataset := taxonomyDataset()

	result := engine.Resolve("car enthusiasts", dataset)

	assert.False(t, result.Success)
	assert.Equal(t, model.OutcomeNoData, result.Outcome)
	assert.NotEqual(t, model.OutcomeNoMatch, result.Outcome, "empty dataset must be distinct from no match")
}

func TestEngine_Resolve_ColumnPriorityShortCircuits(t *testing.T) {
	engine := New(DefaultConfig(), nil, nil)
	// "runners" appears in both a Description cell and a Category cell of a
	// different row; only the Description hit may surface.
	dataset := taxonomyDataset(
		[]string{"Sports", "Athletes", "Age 18-24", "Marathon runners and triathletes"},
		[]string{"Runners", "Casual", "Age 25-34", "People who jog occasionally"},
	)

	result := engine.Resolve("runners", dataset)

	require.True(t, result.Success)
	assert.Equal(t, model.RoleDescription, result.MatchedColumn)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, "Sports", result.Matches[0].Category)
	for _, match := range result.Matches {
		assert.Equal(t, model.RoleDescription, match.MatchedColumn)
	}
}

func TestEngine_Resolve_FallsThroughToLaterColumns(t *testing.T) {
	engine := New(DefaultConfig(), nil, nil)
	dataset := taxonomyDataset(
		[]string{"Finance", "Investors", "High Income", "People actively trading stocks"},
	)

	result := engine.Resolve("finance", dataset)

	require.True(t, result.Success)
	assert.Equal(t, model.RoleCategory, result.MatchedColumn)
	assert.Equal(t, "Finance", result.Matches[0].MatchedText)
}

func TestEngine_Resolve_PathwayFieldsComeFromOwnColumns(t *testing.T) {
	engine := New(DefaultConfig(), nil, nil)
	dataset := taxonomyDataset(
		[]string{"Travel", "Frequent Flyers", "Age 35-54", "Business travelers who fly weekly"},
	)

	result := engine.Resolve("business travelers", dataset)

	require.True(t, result.Success)
	match := result.Matches[0]
	assert.Equal(t, "Travel", match.Category)
	assert.Equal(t, "Frequent Flyers", match.Grouping)
	assert.Equal(t, "Age 35-54", match.Demographic)
	assert.Equal(t, model.RoleDescription, match.MatchedColumn)
}

func TestEngine_Resolve_TopThreeStableOnTies(t *testing.T) {
	engine := New(DefaultConfig(), nil, nil)
	// All five rows contain the exact phrase, so all tie at 100; the top 3
	// must keep row order.
	dataset := taxonomyDataset(
		[]string{"A", "G1", "D1", "coffee drinkers at home"},
		[]string{"B", "G2", "D2", "coffee drinkers on the go"},
		[]string{"C", "G3", "D3", "coffee drinkers in offices"},
		[]string{"D", "G4", "D4", "coffee drinkers abroad"},
		[]string{"E", "G5", "D5", "coffee drinkers everywhere"},
	)

	result := engine.Resolve("coffee drinkers", dataset)

	require.True(t, result.Success)
	require.Len(t, result.Matches, 3)
	assert.Equal(t, "A", result.Matches[0].Category)
	assert.Equal(t, "B", result.Matches[1].Category)
	assert.Equal(t, "C", result.Matches[2].Category)
}

func TestEngine_Resolve_ThresholdExcludesWeakMatches(t *testing.T) {
	engine := New(DefaultConfig(), nil, nil)
	// One of four qualifying words matches: 1/4 × 80 = 20, below threshold.
	dataset := taxonomyDataset(
		[]string{"Auto", "Vehicle Owners", "Age 25-34", "luxury sedans"},
	)

	result := engine.Resolve("luxury watches jewelry handbags", dataset)

	assert.Equal(t, model.OutcomeNoMatch, result.Outcome)
}

func TestEngine_Resolve_SkipsEmptyCells(t *testing.T) {
	engine := New(DefaultConfig(), nil, nil)
	dataset := taxonomyDataset(
		[]string{"Auto", "Vehicle Owners", "Age 25-34", "   "},
		[]string{"Auto", "Vehicle Owners", "Age 25-34"},
		[]string{"Auto", "Luxury Buyers", "Age 35-44", "luxury sedans and coupes"},
	)

	result := engine.Resolve("luxury sedans", dataset)

	require.True(t, result.Success)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, "Luxury Buyers", result.Matches[0].Grouping)
}

func TestEngine_Resolve_MediumConfidence(t *testing.T) {
	engine := New(DefaultConfig(), nil, nil)
	// Three of four qualifying words: 3/4 × 80 = 60 → Medium.
	dataset := taxonomyDataset(
		[]string{"Fitness", "Gym Goers", "Age 18-34", "weightlifting cardio yoga classes"},
	)

	result := engine.Resolve("weightlifting cardio yoga retreats", dataset)

	require.True(t, result.Success)
	assert.InDelta(t, 60, result.Matches[0].Score, 0.001)
	assert.Equal(t, model.ConfidenceMedium, result.Confidence)
}

func TestEngine_Resolve_EmptyQuery(t *testing.T) {
	engine := New(DefaultConfig(), nil, nil)
	dataset := taxonomyDataset(
		[]string{"Auto", "Vehicle Owners", "Age 25-34", "Car enthusiasts"},
	)

	result := engine.Resolve("   ", dataset)

	assert.False(t, result.Success)
	assert.Equal(t, model.OutcomeNoMatch, result.Outcome)
}

func TestEngine_Resolve_GlobalMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = ModeGlobal
	engine := New(cfg, nil, nil)

	// In global mode both rows surface in one result even though they match
	// different columns.
	dataset := taxonomyDataset(
		[]string{"Sports", "Athletes", "Age 18-24", "Marathon runners and triathletes"},
		[]string{"Runners", "Casual", "Age 25-34", "People who jog occasionally"},
	)

	result := engine.Resolve("runners", dataset)

	require.True(t, result.Success)
	require.Len(t, result.Matches, 2)

	columns := []model.ColumnRole{result.Matches[0].MatchedColumn, result.Matches[1].MatchedColumn}
	assert.Contains(t, columns, model.RoleDescription)
	assert.Contains(t, columns, model.RoleCategory)
}

func TestEngine_Resolve_GlobalModeBoostsDescriptionHits(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = ModeGlobal
	engine := New(cfg, nil, nil)

	// The exact-phrase Description hit outranks the partial Category hit in
	// the other row.
	dataset := taxonomyDataset(
		[]string{"Gaming Gear", "Console Players", "Age 13-24", "People buying gaming consoles"},
		[]string{"Gaming", "PC Players", "Age 18-34", "High-end desktop builders"},
	)

	result := engine.Resolve("gaming consoles", dataset)

	require.True(t, result.Success)
	require.NotEmpty(t, result.Matches)
	assert.Equal(t, model.RoleDescription, result.Matches[0].MatchedColumn)
	assert.Equal(t, "Console Players", result.Matches[0].Grouping)
}

func TestEngine_Resolve_IsPure(t *testing.T) {
	engine := New(DefaultConfig(), nil, nil)
	dataset := taxonomyDataset(
		[]string{"Auto", "Vehicle Owners", "Age 25-34", "Car enthusiasts interested in performance vehicles"},
	)

	first := engine.Resolve("car enthusiasts", dataset)
	second := engine.Resolve("car enthusiasts", dataset)

	assert.Equal(t, first, second)
	assert.Equal(t, [][]string{{"Auto", "Vehicle Owners", "Age 25-34", "Car enthusiasts interested in performance vehicles"}}, dataset.Rows)
}
