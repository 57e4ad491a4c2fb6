package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ernestocullari/audience-pathways/internal/model"
)

// FormatResolution renders a resolution result for the terminal.
func FormatResolution(result *model.ResolutionResult) string {
	var b strings.Builder

	switch result.Outcome {
	case model.OutcomeMatch:
		b.WriteString(FormatTitle("Targeting Pathways"))
		b.WriteString("\n")
		for i, match := range result.Matches {
			fmt.Fprintf(&b, "%d. %s\n", i+1, PathwayStyle.Render(match.Pathway.String()))
			fmt.Fprintf(&b, "   %s\n", SubtleStyle.Render(
				fmt.Sprintf("score %.0f · matched %q in %s", match.Score, match.MatchedText, match.MatchedColumn)))
		}
		fmt.Fprintf(&b, "\nConfidence: %s\n", confidenceStyle(result.Confidence).Render(string(result.Confidence)))

	case model.OutcomeNoMatch:
		b.WriteString(WarningStyle.Render("No targeting pathways matched."))
		b.WriteString("\n")
		for _, s := range result.Suggestions {
			fmt.Fprintf(&b, "  • %s\n", s)
		}

	case model.OutcomeMissingColumns:
		cols := make([]string, 0, len(result.MissingColumns))
		for _, c := range result.MissingColumns {
			cols = append(cols, string(c))
		}
		b.WriteString(FormatError("Taxonomy sheet is missing required columns: " + strings.Join(cols, ", ")))
		b.WriteString("\n")

	case model.OutcomeNoData:
		b.WriteString(FormatError("Taxonomy sheet has no data rows."))
		b.WriteString("\n")
	}

	return b.String()
}

func confidenceStyle(confidence model.Confidence) lipgloss.Style {
	switch confidence {
	case model.ConfidenceHigh:
		return SuccessStyle
	case model.ConfidenceMedium:
		return WarningStyle
	default:
		return ErrorStyle
	}
}
