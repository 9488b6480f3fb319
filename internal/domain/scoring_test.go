package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoringWith(ma, sf, fe, cv, ri int) Scoring {
	return Scoring{
		MarketAttractiveness: Criterion{Score: ma},
		StrategicFit:         Criterion{Score: sf},
		Feasibility:          Criterion{Score: fe},
		CommercialViability:  Criterion{Score: cv},
		Risk:                 Criterion{Score: ri},
	}
}

func TestTotalScore_AllNeutral(t *testing.T) {
	got, err := TotalScore(DefaultScoring())
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)
}

func TestTotalScore_WorkedExample(t *testing.T) {
	// (5*3 + 5*3 + 4*2 + 4*2 + (6-1)*1) / 11 = 51/11 = 4.636... -> 4.6
	got, err := TotalScore(scoringWith(5, 5, 4, 4, 1))
	require.NoError(t, err)
	assert.Equal(t, 4.6, got)
}

func TestTotalScore_Bounds(t *testing.T) {
	// Best possible: everything 5 except risk at 1.
	best, err := TotalScore(scoringWith(5, 5, 5, 5, 1))
	require.NoError(t, err)
	assert.Equal(t, 5.0, best)

	// Worst possible: everything 1 except risk at 5.
	worst, err := TotalScore(scoringWith(1, 1, 1, 1, 5))
	require.NoError(t, err)
	assert.Equal(t, 1.0, worst)
}

func TestTotalScore_AlwaysInRangeOneDecimal(t *testing.T) {
	for ma := 1; ma <= 5; ma++ {
		for ri := 1; ri <= 5; ri++ {
			got, err := TotalScore(scoringWith(ma, 3, 3, 3, ri))
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got, 1.0)
			assert.LessOrEqual(t, got, 5.0)
			// At most one decimal digit.
			assert.InDelta(t, got, math.Round(got*10)/10, 1e-9)
		}
	}
}

func TestTotalScore_RiskInversion(t *testing.T) {
	lowRisk, err := TotalScore(scoringWith(3, 3, 3, 3, 1))
	require.NoError(t, err)
	highRisk, err := TotalScore(scoringWith(3, 3, 3, 3, 5))
	require.NoError(t, err)
	assert.Greater(t, lowRisk, highRisk, "low danger must score higher than high danger, all else equal")
}

func TestTotalScore_RoundsHalfAwayFromZero(t *testing.T) {
	// 3*3+3*3+3*2+3*2+(6-4)*1 = 32; 32/11 = 2.9090... -> 2.9
	got, err := TotalScore(scoringWith(3, 3, 3, 3, 4))
	require.NoError(t, err)
	assert.Equal(t, 2.9, got)
}

func TestTotalScore_RejectsOutOfRange(t *testing.T) {
	cases := []struct {
		name    string
		scoring Scoring
	}{
		{"zero", scoringWith(0, 3, 3, 3, 3)},
		{"negative", scoringWith(3, -1, 3, 3, 3)},
		{"too high", scoringWith(3, 3, 6, 3, 3)},
		{"risk zero", scoringWith(3, 3, 3, 3, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := TotalScore(tc.scoring)
			assert.ErrorIs(t, err, ErrInvalidScore)
		})
	}
}

func TestWeights_SumToEleven(t *testing.T) {
	sum := 0
	for _, k := range CriterionKeys {
		sum += Weights[k]
	}
	assert.Equal(t, WeightTotal, sum)
}

func TestScoring_ByKeyUnknown(t *testing.T) {
	s := DefaultScoring()
	assert.Nil(t, s.ByKey("velocity"))
}
