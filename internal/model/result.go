package model

import (
	"fmt"
	"strings"
	"time"
)

// Outcome classifies what a resolution call produced.
type Outcome string

// Resolution outcomes. Only OutcomeMatch sets Success; the others are
// distinguishable non-error results the caller relays to the end user.
const (
	OutcomeMatch          Outcome = "match"
	OutcomeNoMatch        Outcome = "no_match"
	OutcomeMissingColumns Outcome = "missing_columns"
	OutcomeNoData         Outcome = "no_data"
)

// ResolutionResult is what a resolution call returns to its caller.
type ResolutionResult struct {
	Success        bool         `json:"success"`
	Outcome        Outcome      `json:"outcome"`
	MatchedColumn  ColumnRole   `json:"matched_column"`
	Confidence     Confidence   `json:"confidence,omitempty"`
	Pathways       []string     `json:"pathways,omitempty"`
	Matches        []Candidate  `json:"matches,omitempty"`
	Suggestions    []string     `json:"suggestions,omitempty"`
	MissingColumns []ColumnRole `json:"missing_columns,omitempty"`
}

// Top returns the highest-ranked candidate, or nil when there are none.
func (r *ResolutionResult) Top() *Candidate {
	if len(r.Matches) == 0 {
		return nil
	}
	return &r.Matches[0]
}

// Summary renders the result as plain text suitable for relaying through the
// agent tool boundary.
func (r *ResolutionResult) Summary() string {
	var b strings.Builder

	switch r.Outcome {
	case OutcomeMatch:
		fmt.Fprintf(&b, "Found %d targeting pathway(s) via the %s column (confidence: %s):\n",
			len(r.Matches), r.MatchedColumn, r.Confidence)
		for i, m := range r.Matches {
			fmt.Fprintf(&b, "%d. %s (score %.0f)\n", i+1, m.Pathway.String(), m.Score)
		}
	case OutcomeNoMatch:
		b.WriteString("No targeting pathways matched the query.\n")
		if len(r.Suggestions) > 0 {
			b.WriteString("Suggestions:\n")
			for _, s := range r.Suggestions {
				fmt.Fprintf(&b, "- %s\n", s)
			}
		}
	case OutcomeMissingColumns:
		cols := make([]string, 0, len(r.MissingColumns))
		for _, c := range r.MissingColumns {
			cols = append(cols, string(c))
		}
		fmt.Fprintf(&b, "The taxonomy sheet is missing required column(s): %s\n", strings.Join(cols, ", "))
	case OutcomeNoData:
		b.WriteString("The taxonomy sheet has no data rows.\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// HistoryEntry is one recorded resolution, persisted by the optional
// history store.
type HistoryEntry struct {
	CreatedAt     time.Time
	Query         string
	Outcome       Outcome
	MatchedColumn ColumnRole
	Confidence    Confidence
	TopPathway    string
	TopScore      float64
	ID            int64
}
