package history

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ernestocullari/audience-pathways/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestSQLiteStore_RecordAndList(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	entries := []model.HistoryEntry{
		{
			Query:         "car enthusiasts",
			Outcome:       model.OutcomeMatch,
			MatchedColumn: model.RoleDescription,
			Confidence:    model.ConfidenceHigh,
			TopPathway:    "Auto → Vehicle Owners → Age 25-34",
			TopScore:      100,
		},
		{
			Query:         "xyz nonsense",
			Outcome:       model.OutcomeNoMatch,
			MatchedColumn: model.RoleNone,
		},
	}
	for _, entry := range entries {
		require.NoError(t, store.RecordResolution(ctx, entry))
	}

	got, err := store.ListResolutions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Newest first
	assert.Equal(t, "xyz nonsense", got[0].Query)
	assert.Equal(t, model.OutcomeNoMatch, got[0].Outcome)
	assert.Equal(t, "car enthusiasts", got[1].Query)
	assert.Equal(t, model.ConfidenceHigh, got[1].Confidence)
	assert.Equal(t, "Auto → Vehicle Owners → Age 25-34", got[1].TopPathway)
	assert.InDelta(t, 100, got[1].TopScore, 0.001)
	assert.False(t, got[0].CreatedAt.IsZero())
}

func TestSQLiteStore_ListLimit(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, store.RecordResolution(ctx, model.HistoryEntry{
			Query:         "q",
			Outcome:       model.OutcomeNoMatch,
			MatchedColumn: model.RoleNone,
		}))
	}

	got, err := store.ListResolutions(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestSQLiteStore_RecordRequiresQuery(t *testing.T) {
	store := newTestStore(t)
	err := store.RecordResolution(context.Background(), model.HistoryEntry{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query is required")
}

func TestNewSQLiteStore_RequiresPath(t *testing.T) {
	_, err := NewSQLiteStore("")
	require.Error(t, err)
}

func TestSQLiteStore_MigrateIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.Migrate(context.Background()))
}
