package formatter

import (
	"fmt"
	"strings"

	"github.com/marion-inge/bdnavigator/internal/domain"
)

// FormatOpportunityList renders a styled opportunity table inside a box.
func FormatOpportunityList(opps []*domain.Opportunity) string {
	headers := []string{"ID", "TITLE", "INDUSTRY", "STAGE", "SCORE", "UPDATED"}
	rows := make([][]string, 0, len(opps))

	for _, o := range opps {
		scoreCell := Dim("--")
		if total, err := domain.TotalScore(o.Scoring); err == nil {
			scoreCell = ScoreColor(total).Render(fmt.Sprintf("%.1f", total))
		}
		rows = append(rows, []string{
			TruncID(o.ID),
			Bold(o.Title),
			IndustryBadge(o.Industry),
			StagePill(o.Stage),
			scoreCell,
			Dim(HumanTimestamp(o.UpdatedAt)),
		})
	}

	table := RenderTable(headers, rows)
	return RenderBox("Opportunities", table)
}

// FormatOpportunityInspect renders a detail card for one opportunity.
func FormatOpportunityInspect(o *domain.Opportunity) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(o.Title) + "\n")
	b.WriteString(IndustryBadge(o.Industry) + "\n\n")

	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("STAGE  "), StagePill(o.Stage)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("ID     "), TruncID(o.ID)))
	if o.Owner != "" {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("OWNER  "), StyleFg.Render(o.Owner)))
	}
	if o.Geography != "" {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("GEO    "), StyleFg.Render(o.Geography)))
	}
	if o.Technology != "" {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("TECH   "), StyleFg.Render(o.Technology)))
	}
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("CREATED"), HumanDate(o.CreatedAt)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("UPDATED"), HumanTimestamp(o.UpdatedAt)))

	if o.Description != "" {
		b.WriteString("\n" + StyleFg.Render(o.Description) + "\n")
	}

	b.WriteString("\n" + FormatScoring(o.Scoring))

	if o.Detailed != nil {
		b.WriteString("\n" + FormatDetailedScoring(o.Detailed))
	}
	if o.BusinessCase != nil {
		b.WriteString("\n" + FormatBusinessCase(o.BusinessCase))
	}
	if len(o.Gates) > 0 {
		b.WriteString("\n" + FormatGateHistory(o.Gates))
	}
	if !o.Analysis.Empty() {
		b.WriteString("\n" + FormatAnalysis(o.Analysis))
	}

	return RenderBox("", b.String())
}

// FormatAnalysis renders the strategic analysis block.
func FormatAnalysis(a domain.Analysis) string {
	var b strings.Builder
	b.WriteString(Header("Analysis") + "\n")

	writeList := func(label string, items []string) {
		if len(items) == 0 {
			return
		}
		b.WriteString(StyleBold.Render(label) + "\n")
		for _, it := range items {
			b.WriteString("  " + StyleFg.Render("· "+it) + "\n")
		}
	}
	writeList("Strengths", a.SWOT.Strengths)
	writeList("Weaknesses", a.SWOT.Weaknesses)
	writeList("Opportunities", a.SWOT.Opportunities)
	writeList("Threats", a.SWOT.Threats)

	if a.BCG != "" {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("BCG   "), StylePurple.Render(string(a.BCG))))
	}
	if a.Ansoff != "" {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("ANSOFF"), StylePurple.Render(string(a.Ansoff))))
	}

	return b.String()
}
