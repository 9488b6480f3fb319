package formatter

import (
	"fmt"
	"strings"

	"github.com/marion-inge/bdnavigator/internal/domain"
)

// criterionLabel maps criterion keys to fixed-width display names.
func CriterionLabel(k domain.CriterionKey) string {
	switch k {
	case domain.MarketAttractiveness:
		return "Market Attractiveness"
	case domain.StrategicFit:
		return "Strategic Fit"
	case domain.Feasibility:
		return "Feasibility"
	case domain.CommercialViability:
		return "Commercial Viability"
	case domain.Risk:
		return "Risk"
	default:
		return string(k)
	}
}

// FormatScoring renders the rough scoring block with per-criterion bars and
// the weighted total.
func FormatScoring(s domain.Scoring) string {
	var b strings.Builder
	b.WriteString(Header("Rough Scoring") + "\n")

	for _, k := range domain.CriterionKeys {
		c := s.ByKey(k)
		line := fmt.Sprintf("%-22s %s %d", CriterionLabel(k), ScoreBar(float64(c.Score), 10), c.Score)
		b.WriteString("  " + line)
		if c.Comment != "" {
			b.WriteString("  " + Dim(c.Comment))
		}
		b.WriteString("\n")
	}

	if total, err := domain.TotalScore(s); err == nil {
		b.WriteString(fmt.Sprintf("  %-22s %s\n", Bold("Weighted Total"),
			ScoreColor(total).Render(fmt.Sprintf("%.1f / 5", total))))
	}

	return b.String()
}

// FormatDetailedScoring renders the detailed scoring block with both the
// straight average and the weighted figure.
func FormatDetailedScoring(d *domain.DetailedScoring) string {
	var b strings.Builder
	b.WriteString(Header("Detailed Scoring") + "\n")

	for _, k := range domain.CriterionKeys {
		c := d.ByKey(k)
		line := fmt.Sprintf("%-22s %s %d", CriterionLabel(k), ScoreBar(float64(c.Score), 10), c.Score)
		b.WriteString("  " + line + "\n")
		if c.Justification != "" {
			b.WriteString("    " + Dim(c.Justification) + "\n")
		}
		if len(c.DataSources) > 0 {
			b.WriteString("    " + Dim("sources: "+strings.Join(c.DataSources, ", ")) + "\n")
		}
	}

	if avg, err := d.Average(); err == nil {
		b.WriteString(fmt.Sprintf("  %-22s %s\n", Bold("Average"),
			ScoreColor(avg).Render(fmt.Sprintf("%.1f / 5", avg))))
	}
	if weighted, err := d.WeightedScore(); err == nil {
		b.WriteString(fmt.Sprintf("  %-22s %s\n", Bold("Weighted"),
			ScoreColor(weighted).Render(fmt.Sprintf("%.1f / 5", weighted))))
	}

	return b.String()
}

// FormatBusinessCase renders investment, the yearly plan, cumulative profit
// and payback year.
func FormatBusinessCase(bc *domain.BusinessCase) string {
	var b strings.Builder
	b.WriteString(Header("Business Case") + "\n")

	b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("INVESTMENT"), StyleFg.Render(FormatMoney(bc.Investment))))

	headers := []string{"YEAR", "REVENUE", "COST", "PROFIT"}
	rows := make([][]string, 0, len(bc.Years))
	for _, y := range bc.Years {
		rows = append(rows, []string{
			fmt.Sprintf("%d", y.Year),
			FormatMoney(y.Revenue),
			FormatMoney(y.Cost),
			FormatMoney(y.Revenue - y.Cost),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("CUM. PROFIT"), StyleFg.Render(FormatMoney(bc.CumulativeProfit()))))
	if payback := bc.PaybackYear(); payback > 0 {
		b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("PAYBACK    "), StyleGreen.Render(fmt.Sprintf("year %d", payback))))
	} else {
		b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("PAYBACK    "), StyleRed.Render("not within plan horizon")))
	}

	if bc.Assumptions != "" {
		b.WriteString("  " + Dim(bc.Assumptions) + "\n")
	}

	return b.String()
}
