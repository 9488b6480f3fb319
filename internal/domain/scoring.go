package domain

import "math"

// Weights is the fixed criterion weighting used for the total score.
// Market attractiveness and strategic fit count triple, feasibility and
// commercial viability double, risk single. The sum of weights is 11.
var Weights = map[CriterionKey]int{
	MarketAttractiveness: 3,
	StrategicFit:         3,
	Feasibility:          2,
	CommercialViability:  2,
	Risk:                 1,
}

// WeightTotal is the sum of all criterion weights.
const WeightTotal = 11

// TotalScore reduces a scoring to one normalized scalar in [1.0, 5.0].
//
// The risk criterion contributes inverted (6 - score), so that a risk of 5
// (highest danger) pulls the total down the same way a 1 does on the other
// four criteria. The weighted sum is divided by the weight total and rounded
// half away from zero at the tenths digit.
func TotalScore(s Scoring) (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return weightedAverage(func(k CriterionKey) int {
		return s.ByKey(k).Score
	}), nil
}

// weightedAverage is the single shared implementation of the weighted scoring
// formula. Every display path (rough score, detailed weighted figure) goes
// through here.
func weightedAverage(scoreOf func(CriterionKey) int) float64 {
	sum := 0
	for _, k := range CriterionKeys {
		score := scoreOf(k)
		if k == Risk {
			score = 6 - score
		}
		sum += score * Weights[k]
	}
	return round1(float64(sum) / WeightTotal)
}

// round1 rounds to one decimal digit, half away from zero.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
