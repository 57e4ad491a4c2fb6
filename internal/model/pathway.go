// Package model defines the core domain types for audience pathway resolution.
package model

import "fmt"

// ColumnRole identifies the semantic purpose of a taxonomy column. Roles are
// resolved by header name matching rather than fixed position.
type ColumnRole string

// The four required column roles, plus RoleNone for results without a match.
const (
	RoleCategory    ColumnRole = "category"
	RoleGrouping    ColumnRole = "grouping"
	RoleDemographic ColumnRole = "demographic"
	RoleDescription ColumnRole = "description"
	RoleNone        ColumnRole = "none"
)

// RequiredRoles lists every role that must resolve to a column before a
// dataset can be searched.
var RequiredRoles = []ColumnRole{RoleCategory, RoleGrouping, RoleDemographic, RoleDescription}

// SearchOrder is the column priority used by the resolver. The search stops
// at the first role that yields at least one candidate.
var SearchOrder = []ColumnRole{RoleDescription, RoleDemographic, RoleGrouping, RoleCategory}

// Dataset holds one taxonomy tab: a header row plus ordered data rows. It is
// loaded fresh for every query and never mutated.
type Dataset struct {
	Headers []string
	Rows    [][]string
}

// Empty reports whether the dataset has no data rows.
func (d *Dataset) Empty() bool {
	return len(d.Rows) == 0
}

// Cell returns the cell at the given row and column, or "" when the row is
// ragged and the column falls past its end.
func (d *Dataset) Cell(row, col int) string {
	if row < 0 || row >= len(d.Rows) {
		return ""
	}
	if col < 0 || col >= len(d.Rows[row]) {
		return ""
	}
	return d.Rows[row][col]
}

// Pathway is the resolved targeting triple presented to the end user.
type Pathway struct {
	Category    string `json:"category"`
	Grouping    string `json:"grouping"`
	Demographic string `json:"demographic"`
}

// String renders the pathway in its canonical display form.
func (p Pathway) String() string {
	return fmt.Sprintf("%s → %s → %s", p.Category, p.Grouping, p.Demographic)
}

// Candidate is one taxonomy row considered a possible match for a query
// within a single searched column.
type Candidate struct {
	Pathway
	Description   string     `json:"description,omitempty"`
	MatchedText   string     `json:"matched_text"`
	MatchedColumn ColumnRole `json:"matched_column"`
	Score         float64    `json:"score"`
	Row           int        `json:"-"`
}

// Confidence labels how trustworthy the top match is.
type Confidence string

// Confidence levels derived from the top candidate's score.
const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
	ConfidenceNone   Confidence = ""
)

// ConfidenceForScore maps a score to its confidence label.
func ConfidenceForScore(score float64) Confidence {
	switch {
	case score >= 80:
		return ConfidenceHigh
	case score >= 60:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
