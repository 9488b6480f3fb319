package domain

import "fmt"

// CriterionKey identifies one of the five fixed rating dimensions.
type CriterionKey string

const (
	MarketAttractiveness CriterionKey = "marketAttractiveness"
	StrategicFit         CriterionKey = "strategicFit"
	Feasibility          CriterionKey = "feasibility"
	CommercialViability  CriterionKey = "commercialViability"
	Risk                 CriterionKey = "risk"
)

// CriterionKeys lists all five criteria in display order.
var CriterionKeys = []CriterionKey{
	MarketAttractiveness,
	StrategicFit,
	Feasibility,
	CommercialViability,
	Risk,
}

// Criterion is one rated dimension: an integer score 1..5 plus a free-text
// comment. For Risk the scale is inverted in meaning (5 = highest danger).
type Criterion struct {
	Score   int    `json:"score"`
	Comment string `json:"comment,omitempty"`
}

// Scoring is the five-criterion rating of an opportunity. All five criteria
// are always present; a zero-valued Scoring is invalid, use DefaultScoring.
type Scoring struct {
	MarketAttractiveness Criterion `json:"marketAttractiveness"`
	StrategicFit         Criterion `json:"strategicFit"`
	Feasibility          Criterion `json:"feasibility"`
	CommercialViability  Criterion `json:"commercialViability"`
	Risk                 Criterion `json:"risk"`
}

// DefaultScoring returns a neutral scoring with every criterion set to 3.
func DefaultScoring() Scoring {
	return Scoring{
		MarketAttractiveness: Criterion{Score: 3},
		StrategicFit:         Criterion{Score: 3},
		Feasibility:          Criterion{Score: 3},
		CommercialViability:  Criterion{Score: 3},
		Risk:                 Criterion{Score: 3},
	}
}

// ByKey returns a pointer to the criterion for the given key, or nil for an
// unknown key.
func (s *Scoring) ByKey(k CriterionKey) *Criterion {
	switch k {
	case MarketAttractiveness:
		return &s.MarketAttractiveness
	case StrategicFit:
		return &s.StrategicFit
	case Feasibility:
		return &s.Feasibility
	case CommercialViability:
		return &s.CommercialViability
	case Risk:
		return &s.Risk
	default:
		return nil
	}
}

// Validate checks that every criterion score lies in [1,5].
func (s Scoring) Validate() error {
	for _, k := range CriterionKeys {
		c := s.ByKey(k)
		if c.Score < 1 || c.Score > 5 {
			return fmt.Errorf("%w: %s score %d outside [1,5]", ErrInvalidScore, k, c.Score)
		}
	}
	return nil
}
