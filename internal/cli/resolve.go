package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveOpportunityID turns user input into a full opportunity ID. Accepts
// the full UUID, a unique UUID prefix, or an exact title match.
func resolveOpportunityID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("opportunity ID is required")
	}

	opps, err := app.Opportunities.List(ctx)
	if err != nil {
		return "", err
	}

	// 1. Exact UUID match
	for _, o := range opps {
		if o.ID == input {
			return o.ID, nil
		}
	}

	// 2. UUID prefix match
	var matches []string
	for _, o := range opps {
		if strings.HasPrefix(o.ID, input) {
			matches = append(matches, o.ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	default:
		if len(matches) > 1 {
			return "", fmt.Errorf("opportunity ID prefix %q is ambiguous (%d matches)", input, len(matches))
		}
	}

	// 3. Exact title match (case-insensitive)
	for _, o := range opps {
		if strings.EqualFold(o.Title, input) {
			matches = append(matches, o.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("opportunity not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("title %q is ambiguous (%d matches)", input, len(matches))
	}
}
