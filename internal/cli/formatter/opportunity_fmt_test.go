package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/marion-inge/bdnavigator/internal/domain"
)

func sampleOpportunity() *domain.Opportunity {
	now := time.Now()
	return &domain.Opportunity{
		ID:        "11112222-3333-4444-5555-666677778888",
		Title:     "Coating line retrofit",
		Industry:  "manufacturing",
		Geography: "DACH",
		Owner:     "s.weber",
		Stage:     domain.StageRoughScoring,
		Scoring:   domain.DefaultScoring(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestFormatOpportunityList(t *testing.T) {
	out := FormatOpportunityList([]*domain.Opportunity{sampleOpportunity()})

	assert.Contains(t, out, "OPPORTUNITIES")
	assert.Contains(t, out, "Coating line retrofit")
	assert.Contains(t, out, "11112222")
	assert.Contains(t, out, "Manufacturing")
	assert.Contains(t, out, "Rough Scoring")
	assert.Contains(t, out, "3.0")
}

func TestFormatOpportunityInspect_MinimalRecord(t *testing.T) {
	o := sampleOpportunity()
	out := FormatOpportunityInspect(o)

	assert.Contains(t, out, "Coating line retrofit")
	assert.Contains(t, out, "ROUGH SCORING")
	assert.Contains(t, out, "Weighted Total")
	// Sections without data stay hidden.
	assert.NotContains(t, out, "DETAILED SCORING")
	assert.NotContains(t, out, "BUSINESS CASE")
	assert.NotContains(t, out, "GATE DECISIONS")
	assert.NotContains(t, out, "ANALYSIS")
}

func TestFormatOpportunityInspect_FullRecord(t *testing.T) {
	o := sampleOpportunity()
	detailed := domain.DefaultDetailedScoring()
	o.Detailed = detailed
	bc := domain.DefaultBusinessCase()
	o.BusinessCase = bc
	o.Gates = []domain.GateRecord{{
		ID:        "aaaa1111-0000-0000-0000-000000000000",
		Gate:      domain.Gate1,
		Decision:  domain.DecisionGo,
		Decider:   "m.keller",
		DecidedAt: time.Now(),
	}}
	o.Analysis = domain.Analysis{
		SWOT: domain.SWOT{Strengths: []string{"installed base"}},
		BCG:  domain.BCGStar,
	}

	out := FormatOpportunityInspect(o)
	assert.Contains(t, out, "DETAILED SCORING")
	assert.Contains(t, out, "BUSINESS CASE")
	assert.Contains(t, out, "GATE DECISIONS")
	assert.Contains(t, out, "GO")
	assert.Contains(t, out, "installed base")
	assert.Contains(t, out, "star")
}

func TestFormatGateHistory(t *testing.T) {
	gates := []domain.GateRecord{
		{ID: "aaaa0000-x", Gate: domain.Gate1, Decision: domain.DecisionHold, Decider: "m.keller", DecidedAt: time.Now()},
		{ID: "bbbb0000-x", Gate: domain.Gate1, Decision: domain.DecisionGo, Decider: "a.busch", Comment: "revised", DecidedAt: time.Now()},
	}
	out := FormatGateHistory(gates)

	assert.Contains(t, out, "HOLD")
	assert.Contains(t, out, "GO")
	assert.Contains(t, out, "m.keller")
	assert.Contains(t, out, "revised")
}
