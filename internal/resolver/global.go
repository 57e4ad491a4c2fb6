package resolver

import (
	"strings"

	"github.com/ernestocullari/audience-pathways/internal/model"
)

// Keyword boosts applied by the global profile to hits in the columns that
// describe audiences directly rather than label them.
const (
	descriptionBoost = 10.0
	demographicBoost = 5.0
)

// resolveGlobal implements the alternate search profile: every row is scored
// across all four columns, the best-scoring column wins the row, and hits in
// the Description and Demographic columns receive a boost. Scores are capped
// at the exact-phrase ceiling.
func (e *Engine) resolveGlobal(query string, dataset *model.Dataset, columns map[model.ColumnRole]int) model.ResolutionResult {
	var candidates model.Candidates

	for i := range dataset.Rows {
		var best *model.Candidate

		for _, role := range model.SearchOrder {
			cell := dataset.Cell(i, columns[role])
			if strings.TrimSpace(cell) == "" {
				continue
			}

			score := e.scorer.Score(cell, query)
			if score <= 0 {
				continue
			}

			switch role {
			case model.RoleDescription:
				score += descriptionBoost
			case model.RoleDemographic:
				score += demographicBoost
			}
			if score > ExactPhraseScore {
				score = ExactPhraseScore
			}

			if best == nil || score > best.Score {
				c := e.candidate(dataset, columns, i, role, cell, score)
				best = &c
			}
		}

		if best != nil && best.Score >= e.cfg.Threshold {
			candidates = append(candidates, *best)
		}
	}

	if len(candidates) == 0 {
		return e.noMatch(dataset, columns)
	}

	result := e.buildResult(candidates[0].MatchedColumn, candidates)
	// The winning rows may come from different columns; report the top
	// candidate's column after ranking.
	result.MatchedColumn = result.Matches[0].MatchedColumn
	return result
}
