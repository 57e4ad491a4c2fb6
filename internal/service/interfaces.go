// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/ernestocullari/audience-pathways/internal/model"
)

// DatasetFetcher supplies the taxonomy dataset for a named sheet tab.
// Implementations own transport and auth; callers apply their own retry and
// timeout policy around Fetch.
type DatasetFetcher interface {
	Fetch(ctx context.Context, sheetName string) (*model.Dataset, error)
}

// Resolver resolves a free-text audience description against a dataset.
// Implementations must be pure functions of their inputs.
type Resolver interface {
	Resolve(query string, dataset *model.Dataset) model.ResolutionResult
}

// AgentClient forwards a user message to the hosted agent framework and
// returns its reply verbatim.
type AgentClient interface {
	Send(ctx context.Context, message string) (string, error)
}

// HistoryStore records resolution outcomes for later inspection. All
// implementations must tolerate concurrent callers.
type HistoryStore interface {
	RecordResolution(ctx context.Context, entry model.HistoryEntry) error
	ListResolutions(ctx context.Context, limit int) ([]model.HistoryEntry, error)
	Migrate(ctx context.Context) error
	Close() error
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
