package resolver

import (
	"log/slog"
	"strings"

	"github.com/ernestocullari/audience-pathways/internal/model"
)

// Mode selects which search strategy the engine uses.
type Mode string

// Search modes. Column-priority is the default; global is an alternate
// profile that scores every column and boosts audience-describing hits.
const (
	ModeColumnPriority Mode = "column-priority"
	ModeGlobal         Mode = "global"
)

// Config controls engine behavior.
type Config struct {
	Mode       Mode
	Threshold  float64
	MaxResults int
}

// DefaultConfig returns the standard engine configuration.
func DefaultConfig() Config {
	return Config{
		Mode:       ModeColumnPriority,
		Threshold:  DefaultThreshold,
		MaxResults: 3,
	}
}

// Engine resolves queries against a taxonomy dataset. It holds no state
// between calls; every resolution is a pure function of its inputs.
type Engine struct {
	scorer Scorer
	logger *slog.Logger
	cfg    Config
}

// New creates a resolution engine. A nil scorer gets the heuristic scorer; a
// nil logger gets the default.
func New(cfg Config, scorer Scorer, logger *slog.Logger) *Engine {
	if scorer == nil {
		scorer = HeuristicScorer{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Threshold <= 0 {
		cfg.Threshold = DefaultThreshold
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 3
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeColumnPriority
	}

	return &Engine{cfg: cfg, scorer: scorer, logger: logger}
}

// Resolve searches the dataset for pathways matching the query. Structural
// dataset problems (missing columns, no rows) come back as distinguishable
// outcomes rather than errors.
func (e *Engine) Resolve(query string, dataset *model.Dataset) model.ResolutionResult {
	query = strings.TrimSpace(query)

	columns, missing := ResolveColumns(dataset.Headers)
	if len(missing) > 0 {
		e.logger.Warn("taxonomy sheet misconfigured", "missing_columns", missing)
		return model.ResolutionResult{
			Outcome:        model.OutcomeMissingColumns,
			MatchedColumn:  model.RoleNone,
			MissingColumns: missing,
		}
	}

	if dataset.Empty() {
		return model.ResolutionResult{
			Outcome:       model.OutcomeNoData,
			MatchedColumn: model.RoleNone,
		}
	}

	if query == "" {
		return e.noMatch(dataset, columns)
	}

	if e.cfg.Mode == ModeGlobal {
		return e.resolveGlobal(query, dataset, columns)
	}

	for _, role := range model.SearchOrder {
		candidates := e.searchColumn(query, dataset, columns, role)
		if len(candidates) > 0 {
			e.logger.Debug("column search matched",
				"column", role,
				"candidates", len(candidates))
			return e.buildResult(role, candidates)
		}
	}

	return e.noMatch(dataset, columns)
}

// searchColumn scans every data row's cell in one column and keeps the rows
// scoring at or above the relevance threshold.
func (e *Engine) searchColumn(query string, dataset *model.Dataset, columns map[model.ColumnRole]int, role model.ColumnRole) model.Candidates {
	col := columns[role]

	var candidates model.Candidates
	for i := range dataset.Rows {
		cell := dataset.Cell(i, col)
		if strings.TrimSpace(cell) == "" {
			continue
		}

		score := e.scorer.Score(cell, query)
		if score < e.cfg.Threshold {
			continue
		}

		candidates = append(candidates, e.candidate(dataset, columns, i, role, cell, score))
	}

	return candidates
}

// candidate builds a match candidate from one row. Pathway fields always come
// from their own columns, regardless of which column was searched.
func (e *Engine) candidate(dataset *model.Dataset, columns map[model.ColumnRole]int, row int, role model.ColumnRole, matched string, score float64) model.Candidate {
	return model.Candidate{
		Pathway: model.Pathway{
			Category:    dataset.Cell(row, columns[model.RoleCategory]),
			Grouping:    dataset.Cell(row, columns[model.RoleGrouping]),
			Demographic: dataset.Cell(row, columns[model.RoleDemographic]),
		},
		Description:   dataset.Cell(row, columns[model.RoleDescription]),
		MatchedText:   matched,
		MatchedColumn: role,
		Score:         score,
		Row:           row,
	}
}

// buildResult ranks candidates and assembles the success result.
func (e *Engine) buildResult(role model.ColumnRole, candidates model.Candidates) model.ResolutionResult {
	top := candidates.TopN(e.cfg.MaxResults)

	return model.ResolutionResult{
		Success:       true,
		Outcome:       model.OutcomeMatch,
		MatchedColumn: role,
		Confidence:    model.ConfidenceForScore(top[0].Score),
		Pathways:      top.Pathways(),
		Matches:       top,
	}
}

// noMatch assembles the result for a query that exhausted every search column.
func (e *Engine) noMatch(dataset *model.Dataset, columns map[model.ColumnRole]int) model.ResolutionResult {
	return model.ResolutionResult{
		Outcome:       model.OutcomeNoMatch,
		MatchedColumn: model.RoleNone,
		Suggestions:   Suggestions(dataset, columns),
	}
}
