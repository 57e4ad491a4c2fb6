package resolver

import "strings"

// Scoring constants. Kept for compatibility with the established taxonomy
// search behavior.
const (
	// ExactPhraseScore is awarded when a cell contains the full query.
	ExactPhraseScore = 100.0
	// wordOverlapCeiling scales the proportional word-overlap score.
	wordOverlapCeiling = 80.0
	// minWordLength excludes short stop-word-like tokens from scoring.
	minWordLength = 2
	// DefaultThreshold is the minimum score for a row to become a candidate.
	DefaultThreshold = 30.0
)

// Scorer rates how well a cell's text matches a query, on a 0-100 scale.
// Isolating it behind an interface lets the heuristic be swapped for a
// principled similarity metric without touching the search logic.
type Scorer interface {
	Score(cellText, query string) float64
}

// HeuristicScorer implements the phrase/word-overlap scoring heuristic:
// exact-phrase containment scores 100, otherwise the fraction of qualifying
// query words (length > 2) found in the cell scales up to 80.
type HeuristicScorer struct{}

// Score implements Scorer.
func (HeuristicScorer) Score(cellText, query string) float64 {
	cell := strings.ToLower(strings.TrimSpace(cellText))
	q := strings.ToLower(strings.TrimSpace(query))

	if cell == "" || q == "" {
		return 0
	}

	if strings.Contains(cell, q) {
		return ExactPhraseScore
	}

	words := qualifyingWords(q)
	if len(words) == 0 {
		return 0
	}

	matched := 0
	for _, word := range words {
		if strings.Contains(cell, word) {
			matched++
		}
	}

	if matched == 0 {
		return 0
	}

	return float64(matched) / float64(len(words)) * wordOverlapCeiling
}

// qualifyingWords splits a lowercased query into the words that participate
// in overlap scoring.
func qualifyingWords(query string) []string {
	var words []string
	for _, word := range strings.Fields(query) {
		if len(word) > minWordLength {
			words = append(words, word)
		}
	}
	return words
}
