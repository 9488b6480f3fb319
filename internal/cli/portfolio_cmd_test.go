package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marion-inge/bdnavigator/internal/domain"
	"github.com/marion-inge/bdnavigator/internal/importer"
)

func TestOpportunityImport_LoadsFile(t *testing.T) {
	app := testApp(t)

	path := filepath.Join(t.TempDir(), "portfolio.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"opportunities": [
			{"title": "Shore power retrofit", "stage": "rough_scoring"},
			{"title": "Port drone inspection"}
		]
	}`), 0o644))

	_, err := executeCmd(t, app, "opportunity", "import", path)
	require.NoError(t, err)

	opps, err := app.Opportunities.List(context.Background())
	require.NoError(t, err)
	require.Len(t, opps, 2)

	titles := []string{opps[0].Title, opps[1].Title}
	assert.Contains(t, titles, "Shore power retrofit")
	assert.Contains(t, titles, "Port drone inspection")
}

func TestOpportunityImport_RejectsInvalidFile(t *testing.T) {
	app := testApp(t)

	path := filepath.Join(t.TempDir(), "portfolio.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"opportunities": [{"title": "", "stage": "warp_speed"}]
	}`), 0o644))

	_, err := executeCmd(t, app, "opportunity", "import", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "portfolio file invalid: 2 error(s)")

	opps, err := app.Opportunities.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, opps, "nothing is saved when validation fails")
}

func TestOpportunityExport_RoundTrips(t *testing.T) {
	app := testApp(t)
	seedOpportunity(t, app, "Hydrogen pilot plant")

	path := filepath.Join(t.TempDir(), "export.json")
	_, err := executeCmd(t, app, "opportunity", "export", path)
	require.NoError(t, err)

	schema, err := importer.LoadPortfolio(path)
	require.NoError(t, err)
	require.Len(t, schema.Opportunities, 1)
	assert.Equal(t, "Hydrogen pilot plant", schema.Opportunities[0].Title)
	assert.Equal(t, string(domain.StageIdea), schema.Opportunities[0].Stage)

	// A fresh database can take the exported file back in.
	other := testApp(t)
	_, err = executeCmd(t, other, "opportunity", "import", path)
	require.NoError(t, err)

	opps, err := other.Opportunities.List(context.Background())
	require.NoError(t, err)
	require.Len(t, opps, 1)
	assert.Equal(t, "Hydrogen pilot plant", opps[0].Title)
}
