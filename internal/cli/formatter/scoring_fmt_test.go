package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marion-inge/bdnavigator/internal/assessment"
	"github.com/marion-inge/bdnavigator/internal/domain"
)

func TestFormatScoring(t *testing.T) {
	s := domain.DefaultScoring()
	s.MarketAttractiveness = domain.Criterion{Score: 5, Comment: "large market"}

	out := FormatScoring(s)
	assert.Contains(t, out, "ROUGH SCORING")
	assert.Contains(t, out, "Market Attractiveness")
	assert.Contains(t, out, "large market")
	assert.Contains(t, out, "Weighted Total")
	// 5,3,3,3,3 weighted: (15+9+6+6+3)/11 = 3.5
	assert.Contains(t, out, "3.5 / 5")
}

func TestFormatScoring_InvalidSkipsTotal(t *testing.T) {
	s := domain.DefaultScoring()
	s.Risk.Score = 0

	out := FormatScoring(s)
	assert.NotContains(t, out, "Weighted Total")
}

func TestFormatDetailedScoring(t *testing.T) {
	d := domain.DefaultDetailedScoring()
	d.Feasibility = domain.DetailedCriterion{
		Score:         4,
		Justification: "pilot line exists",
		DataSources:   []string{"plant audit", "vendor quote"},
	}

	out := FormatDetailedScoring(d)
	assert.Contains(t, out, "DETAILED SCORING")
	assert.Contains(t, out, "pilot line exists")
	assert.Contains(t, out, "plant audit, vendor quote")
	assert.Contains(t, out, "Average")
	assert.Contains(t, out, "Weighted")
}

func TestFormatBusinessCase(t *testing.T) {
	bc := domain.BusinessCase{
		Investment: 100000,
		Years: []domain.PlanYear{
			{Year: 1, Revenue: 50000, Cost: 20000},
			{Year: 2, Revenue: 80000, Cost: 30000},
			{Year: 3, Revenue: 90000, Cost: 30000},
		},
		Assumptions: "ramp-up in year one",
	}

	out := FormatBusinessCase(&bc)
	assert.Contains(t, out, "BUSINESS CASE")
	assert.Contains(t, out, "100k")
	assert.Contains(t, out, "ramp-up in year one")
	// Cumulative profit passes the 100k investment in year 3 (30k+50k+60k).
	assert.Contains(t, out, "year 3")
}

func TestFormatBusinessCase_NoPayback(t *testing.T) {
	bc := domain.BusinessCase{
		Investment: 500000,
		Years: []domain.PlanYear{
			{Year: 1, Revenue: 10, Cost: 5},
			{Year: 2, Revenue: 10, Cost: 5},
			{Year: 3, Revenue: 10, Cost: 5},
		},
	}

	out := FormatBusinessCase(&bc)
	assert.Contains(t, out, "not within plan horizon")
}

func TestFormatAssessment(t *testing.T) {
	result := &assessment.Result{
		Summary:       "A strong retrofit play.",
		Strengths:     []string{"Large installed base"},
		Weaknesses:    []string{"Thin service margins"},
		NextSteps:     []string{"Prepare detailed scoring"},
		Pitfalls:      []string{"Single supplier dependency"},
		OverallRating: assessment.RatingPromising,
		Score:         3.9,
	}

	out := FormatAssessment(result)
	assert.Contains(t, out, "PROMISING")
	assert.Contains(t, out, "3.9 / 5")
	assert.Contains(t, out, "A strong retrofit play.")
	assert.Contains(t, out, "Large installed base")
	assert.Contains(t, out, "NEXT STEPS")
	assert.Contains(t, out, "Single supplier dependency")
}
