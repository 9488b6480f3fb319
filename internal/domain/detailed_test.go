package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func detailedWith(ma, sf, fe, cv, ri int) *DetailedScoring {
	return &DetailedScoring{
		MarketAttractiveness: DetailedCriterion{Score: ma},
		StrategicFit:         DetailedCriterion{Score: sf},
		Feasibility:          DetailedCriterion{Score: fe},
		CommercialViability:  DetailedCriterion{Score: cv},
		Risk:                 DetailedCriterion{Score: ri},
	}
}

func TestDefaultDetailedScoring_AllNeutral(t *testing.T) {
	d := DefaultDetailedScoring()
	for _, k := range CriterionKeys {
		c := d.ByKey(k)
		assert.Equal(t, 3, c.Score, "criterion %s", k)
		assert.Empty(t, c.DataSources)
	}
}

func TestDetailedScoring_Average(t *testing.T) {
	avg, err := detailedWith(5, 4, 3, 2, 1).Average()
	require.NoError(t, err)
	assert.Equal(t, 3.0, avg)

	// 4+4+3+3+2 = 16/5 = 3.2; risk is not inverted in the straight average.
	avg, err = detailedWith(4, 4, 3, 3, 2).Average()
	require.NoError(t, err)
	assert.Equal(t, 3.2, avg)
}

func TestDetailedScoring_WeightedScoreMatchesRoughFormula(t *testing.T) {
	d := detailedWith(5, 5, 4, 4, 1)
	weighted, err := d.WeightedScore()
	require.NoError(t, err)

	rough, err := TotalScore(scoringWith(5, 5, 4, 4, 1))
	require.NoError(t, err)

	assert.Equal(t, rough, weighted, "detailed weighted figure must reuse the shared formula")
}

func TestDetailedScoring_ValidateRejectsOutOfRange(t *testing.T) {
	_, err := detailedWith(3, 3, 0, 3, 3).Average()
	assert.ErrorIs(t, err, ErrInvalidScore)

	_, err = detailedWith(3, 3, 3, 3, 6).WeightedScore()
	assert.ErrorIs(t, err, ErrInvalidScore)
}
