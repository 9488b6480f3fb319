package domain

import "fmt"

// DetailedCriterion is the business-plan-stage version of a rated dimension.
// It carries the same 1..5 score plus the justification and data sources
// gathered during detailed analysis.
type DetailedCriterion struct {
	Score         int      `json:"score"`
	Justification string   `json:"justification,omitempty"`
	DataSources   []string `json:"dataSources,omitempty"`
}

// DetailedScoring mirrors Scoring with richer per-criterion sub-data. It is
// created lazily when an opportunity enters the detailed_scoring stage.
type DetailedScoring struct {
	MarketAttractiveness DetailedCriterion `json:"marketAttractiveness"`
	StrategicFit         DetailedCriterion `json:"strategicFit"`
	Feasibility          DetailedCriterion `json:"feasibility"`
	CommercialViability  DetailedCriterion `json:"commercialViability"`
	Risk                 DetailedCriterion `json:"risk"`
}

// DefaultDetailedScoring returns a neutral detailed scoring, every criterion
// at 3 with empty sub-collections.
func DefaultDetailedScoring() *DetailedScoring {
	return &DetailedScoring{
		MarketAttractiveness: DetailedCriterion{Score: 3},
		StrategicFit:         DetailedCriterion{Score: 3},
		Feasibility:          DetailedCriterion{Score: 3},
		CommercialViability:  DetailedCriterion{Score: 3},
		Risk:                 DetailedCriterion{Score: 3},
	}
}

// ByKey returns a pointer to the detailed criterion for the given key, or nil
// for an unknown key.
func (d *DetailedScoring) ByKey(k CriterionKey) *DetailedCriterion {
	switch k {
	case MarketAttractiveness:
		return &d.MarketAttractiveness
	case StrategicFit:
		return &d.StrategicFit
	case Feasibility:
		return &d.Feasibility
	case CommercialViability:
		return &d.CommercialViability
	case Risk:
		return &d.Risk
	default:
		return nil
	}
}

// Validate checks that every detailed criterion score lies in [1,5].
func (d *DetailedScoring) Validate() error {
	for _, k := range CriterionKeys {
		c := d.ByKey(k)
		if c.Score < 1 || c.Score > 5 {
			return fmt.Errorf("%w: %s score %d outside [1,5]", ErrInvalidScore, k, c.Score)
		}
	}
	return nil
}

// Average is the straight (unweighted) mean of the five dimension scores,
// rounded to one decimal. Risk is NOT inverted here; the weighted figure is
// the place where the inversion applies.
func (d *DetailedScoring) Average() (float64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	sum := 0
	for _, k := range CriterionKeys {
		sum += d.ByKey(k).Score
	}
	return round1(float64(sum) / float64(len(CriterionKeys))), nil
}

// WeightedScore applies the same weighted formula as the rough score to the
// detailed dimension scores.
func (d *DetailedScoring) WeightedScore() (float64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	return weightedAverage(func(k CriterionKey) int {
		return d.ByKey(k).Score
	}), nil
}
