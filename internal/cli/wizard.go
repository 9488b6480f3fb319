package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/marion-inge/bdnavigator/internal/cli/formatter"
	"github.com/marion-inge/bdnavigator/internal/domain"
)

// bdnavHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func bdnavHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// scoreOptions are the selectable answers for one wizard question. Zero means
// "skip", which leaves the criterion's base value in place when every question
// for it is skipped.
func scoreOptions() []huh.Option[int] {
	return []huh.Option[int]{
		huh.NewOption("Skip", 0),
		huh.NewOption("1 · Very weak", 1),
		huh.NewOption("2 · Weak", 2),
		huh.NewOption("3 · Neutral", 3),
		huh.NewOption("4 · Strong", 4),
		huh.NewOption("5 · Very strong", 5),
	}
}

// runScoringWizard walks through the question catalog grouped by criterion and
// returns the collected answers keyed by question ID.
func runScoringWizard() (map[string]int, error) {
	answers := make(map[string]int, len(domain.QuestionCatalog))
	values := make(map[string]*int, len(domain.QuestionCatalog))

	byCriterion := make(map[domain.CriterionKey][]domain.Question)
	for _, q := range domain.QuestionCatalog {
		byCriterion[q.Criterion] = append(byCriterion[q.Criterion], q)
	}

	groups := make([]*huh.Group, 0, len(domain.CriterionKeys))
	for _, k := range domain.CriterionKeys {
		fields := make([]huh.Field, 0, len(byCriterion[k])+1)
		fields = append(fields, huh.NewNote().Title(formatter.CriterionLabel(k)))
		for _, q := range byCriterion[k] {
			v := new(int)
			values[q.ID] = v
			fields = append(fields, huh.NewSelect[int]().
				Title(q.Text).
				Options(scoreOptions()...).
				Value(v))
		}
		groups = append(groups, huh.NewGroup(fields...))
	}

	form := huh.NewForm(groups...).WithTheme(bdnavHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("scoring wizard: %w", err)
	}

	for id, v := range values {
		if *v > 0 {
			answers[id] = *v
		}
	}
	return answers, nil
}

// gateDecisionForm collects a gate decision interactively.
func gateDecisionForm(decision *string, decider *string, comment *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Decision").
				Options(
					huh.NewOption("Go", string(domain.DecisionGo)),
					huh.NewOption("Hold", string(domain.DecisionHold)),
					huh.NewOption("No-Go", string(domain.DecisionNoGo)),
				).
				Value(decision),
			huh.NewInput().
				Title("Decider").
				Placeholder("name or initials").
				Value(decider).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("decider is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Comment (optional)").
				Value(comment),
		),
	).WithTheme(bdnavHuhTheme()).WithShowHelp(false)
}

// validateScoreFlag accepts an integer in [1,5].
func validateScoreFlag(name string, v int) error {
	if v < 1 || v > 5 {
		return fmt.Errorf("--%s must be between 1 and 5, got %d", name, v)
	}
	return nil
}
