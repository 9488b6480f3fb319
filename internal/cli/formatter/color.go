package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marion-inge/bdnavigator/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ScoreColor returns the style matching a weighted score on the 1..5 scale.
func ScoreColor(score float64) lipgloss.Style {
	switch {
	case score >= 3.5:
		return StyleGreen
	case score >= 2.5:
		return StyleYellow
	default:
		return StyleRed
	}
}

// StagePill returns a colored stage indicator such as "● Gate 1".
func StagePill(stage domain.Stage) string {
	label := StageLabel(stage)
	switch {
	case stage == domain.StageClosed:
		return StyleDim.Render("✖ " + label)
	case stage == domain.StageGoToMarket:
		return StyleGreen.Render("✔ " + label)
	case stage.IsGate():
		return StyleYellow.Render("◆ " + label)
	default:
		return StyleBlue.Render("● " + label)
	}
}

// StageLabel returns a human-readable stage name.
func StageLabel(stage domain.Stage) string {
	switch stage {
	case domain.StageIdea:
		return "Idea"
	case domain.StageRoughScoring:
		return "Rough Scoring"
	case domain.StageGate1:
		return "Gate 1"
	case domain.StageDetailedScoring:
		return "Detailed Scoring"
	case domain.StageGate2:
		return "Gate 2"
	case domain.StageBusinessCase:
		return "Business Case"
	case domain.StageGate3:
		return "Gate 3"
	case domain.StageGoToMarket:
		return "Go-to-Market"
	case domain.StageClosed:
		return "Closed"
	default:
		return string(stage)
	}
}

// DecisionPill returns a colored gate decision indicator.
func DecisionPill(d domain.Decision) string {
	switch d {
	case domain.DecisionGo:
		return StyleGreen.Render("● GO")
	case domain.DecisionHold:
		return StyleYellow.Render("○ HOLD")
	case domain.DecisionNoGo:
		return StyleRed.Render("✖ NO-GO")
	default:
		return StyleDim.Render(string(d))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
