package domain

// PlanYear holds the projected revenue and cost for one planning year.
type PlanYear struct {
	Year    int     `json:"year"`
	Revenue float64 `json:"revenue"`
	Cost    float64 `json:"cost"`
}

// BusinessCase holds the financial figures of an opportunity over a fixed
// three-year planning horizon. It is created lazily with all-zero financials
// when the opportunity enters the business_case stage.
type BusinessCase struct {
	Investment  float64    `json:"investment"`
	Years       []PlanYear `json:"years"`
	Assumptions string     `json:"assumptions,omitempty"`
}

// PlanHorizonYears is the fixed length of the business-case projection.
const PlanHorizonYears = 3

// DefaultBusinessCase returns a business case with all-zero financials for
// the full planning horizon.
func DefaultBusinessCase() *BusinessCase {
	bc := &BusinessCase{}
	for y := 1; y <= PlanHorizonYears; y++ {
		bc.Years = append(bc.Years, PlanYear{Year: y})
	}
	return bc
}

// CumulativeProfit is the sum of yearly profits minus the upfront investment.
func (b *BusinessCase) CumulativeProfit() float64 {
	total := -b.Investment
	for _, y := range b.Years {
		total += y.Revenue - y.Cost
	}
	return total
}

// PaybackYear returns the first planning year in which cumulative profit
// turns non-negative, or 0 if the investment is not recovered within the
// horizon.
func (b *BusinessCase) PaybackYear() int {
	running := -b.Investment
	for _, y := range b.Years {
		running += y.Revenue - y.Cost
		if running >= 0 {
			return y.Year
		}
	}
	return 0
}
