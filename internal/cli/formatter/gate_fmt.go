package formatter

import (
	"strings"

	"github.com/marion-inge/bdnavigator/internal/domain"
)

// FormatGateHistory renders the gate decision log, newest entries last.
func FormatGateHistory(gates []domain.GateRecord) string {
	var b strings.Builder
	b.WriteString(Header("Gate Decisions") + "\n")

	headers := []string{"ID", "GATE", "DECISION", "DECIDER", "DATE", "COMMENT"}
	rows := make([][]string, 0, len(gates))
	for _, g := range gates {
		comment := g.Comment
		if comment == "" {
			comment = "--"
		}
		rows = append(rows, []string{
			TruncID(g.ID),
			StyleFg.Render(strings.ToUpper(string(g.Gate))),
			DecisionPill(g.Decision),
			StyleFg.Render(g.Decider),
			Dim(HumanDate(g.DecidedAt)),
			Dim(comment),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	return b.String()
}

// FormatGateRecord renders a one-line confirmation for a fresh decision.
func FormatGateRecord(g *domain.GateRecord, stage domain.Stage) string {
	return DecisionPill(g.Decision) + " at " + Bold(strings.ToUpper(string(g.Gate))) +
		" by " + StyleFg.Render(g.Decider) + Dim(" → ") + StagePill(stage)
}
