package formatter

import (
	"fmt"
	"strings"

	"github.com/marion-inge/bdnavigator/internal/assessment"
)

// RatingPill returns a colored rating indicator.
func RatingPill(r assessment.Rating) string {
	switch r {
	case assessment.RatingVeryPromising:
		return StyleGreen.Render("★ VERY PROMISING")
	case assessment.RatingPromising:
		return StyleGreen.Render("● PROMISING")
	case assessment.RatingModerate:
		return StyleYellow.Render("● MODERATE")
	case assessment.RatingChallenging:
		return StyleYellow.Render("○ CHALLENGING")
	case assessment.RatingCritical:
		return StyleRed.Render("▲ CRITICAL")
	default:
		return StyleDim.Render(string(r))
	}
}

// FormatAssessment renders an assessment result as a boxed report.
func FormatAssessment(result *assessment.Result) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n\n", RatingPill(result.OverallRating),
		ScoreColor(result.Score).Render(fmt.Sprintf("%.1f / 5", result.Score))))
	b.WriteString(StyleFg.Render(result.Summary) + "\n")

	writeSection := func(title string, items []string, style func(...string) string) {
		if len(items) == 0 {
			return
		}
		b.WriteString("\n" + Header(title) + "\n")
		for _, it := range items {
			b.WriteString("  " + style("· "+it) + "\n")
		}
	}
	writeSection("Strengths", result.Strengths, StyleGreen.Render)
	writeSection("Weaknesses", result.Weaknesses, StyleRed.Render)
	writeSection("Next Steps", result.NextSteps, StyleFg.Render)
	writeSection("Pitfalls", result.Pitfalls, StyleYellow.Render)

	return RenderBox("Assessment", b.String())
}
