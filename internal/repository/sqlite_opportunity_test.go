package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marion-inge/bdnavigator/internal/domain"
	"github.com/marion-inge/bdnavigator/internal/testutil"
)

func setupRepo(t *testing.T) *SQLiteOpportunityRepo {
	t.Helper()
	return NewSQLiteOpportunityRepo(testutil.NewTestDB(t))
}

func TestSave_RoundTrip(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	o := testutil.NewTestOpportunity("Recycled battery nickel")
	o.Description = "Recover nickel from end-of-life EV batteries"
	o.Scoring.Risk = domain.Criterion{Score: 4, Comment: "regulatory exposure"}
	require.NoError(t, repo.Save(ctx, o))

	got, err := repo.GetByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.Title, got.Title)
	assert.Equal(t, o.Description, got.Description)
	assert.Equal(t, domain.StageIdea, got.Stage)
	assert.Equal(t, 4, got.Scoring.Risk.Score)
	assert.Equal(t, "regulatory exposure", got.Scoring.Risk.Comment)
	assert.Nil(t, got.Detailed)
	assert.Nil(t, got.BusinessCase)
	assert.Empty(t, got.Gates)
	assert.Equal(t, o.CreatedAt, got.CreatedAt)
}

func TestSave_UpsertReplacesDocument(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	o := testutil.NewTestOpportunity("Modular cleanrooms")
	require.NoError(t, repo.Save(ctx, o))

	o.Stage = domain.StageDetailedScoring
	o.Detailed = domain.DefaultDetailedScoring()
	o.Detailed.Feasibility.Score = 5
	o.Detailed.Feasibility.DataSources = []string{"pilot plant report"}
	o.Gates = []domain.GateRecord{{
		ID: "g1", Gate: domain.Gate1, Decision: domain.DecisionGo,
		Decider: "M. Berger", DecidedAt: o.CreatedAt,
	}}
	o.UpdatedAt = o.UpdatedAt.Add(time.Minute)
	require.NoError(t, repo.Save(ctx, o))

	got, err := repo.GetByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StageDetailedScoring, got.Stage)
	require.NotNil(t, got.Detailed)
	assert.Equal(t, 5, got.Detailed.Feasibility.Score)
	assert.Equal(t, []string{"pilot plant report"}, got.Detailed.Feasibility.DataSources)
	require.Len(t, got.Gates, 1)
	assert.Equal(t, domain.DecisionGo, got.Gates[0].Decision)
}

func TestSave_BusinessCaseAndAnalysis(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	o := testutil.NewTestOpportunity("Spare-parts marketplace", testutil.WithStage(domain.StageBusinessCase))
	o.BusinessCase = domain.DefaultBusinessCase()
	o.BusinessCase.Investment = 250000
	o.BusinessCase.Years[0].Revenue = 80000
	o.Analysis = domain.Analysis{
		SWOT:   domain.SWOT{Strengths: []string{"installed base"}, Threats: []string{"OEM lock-in"}},
		BCG:    domain.BCGQuestionMark,
		Ansoff: domain.AnsoffMarketDevelopment,
	}
	require.NoError(t, repo.Save(ctx, o))

	got, err := repo.GetByID(ctx, o.ID)
	require.NoError(t, err)
	require.NotNil(t, got.BusinessCase)
	assert.Equal(t, 250000.0, got.BusinessCase.Investment)
	assert.Equal(t, 80000.0, got.BusinessCase.Years[0].Revenue)
	assert.Equal(t, domain.BCGQuestionMark, got.Analysis.BCG)
	assert.Equal(t, []string{"installed base"}, got.Analysis.SWOT.Strengths)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := setupRepo(t)
	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestList_NewestFirst(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	base := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)

	older := testutil.NewTestOpportunity("Older", testutil.WithCreatedAt(base))
	newer := testutil.NewTestOpportunity("Newer", testutil.WithCreatedAt(base.Add(time.Hour)))
	require.NoError(t, repo.Save(ctx, older))
	require.NoError(t, repo.Save(ctx, newer))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Newer", list[0].Title)
	assert.Equal(t, "Older", list[1].Title)
}

func TestDelete(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	o := testutil.NewTestOpportunity("Short-lived")
	require.NoError(t, repo.Save(ctx, o))
	require.NoError(t, repo.Delete(ctx, o.ID))

	_, err := repo.GetByID(ctx, o.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, o.ID), ErrNotFound)
}
