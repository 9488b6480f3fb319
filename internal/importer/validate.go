package importer

import (
	"fmt"
	"time"

	"github.com/marion-inge/bdnavigator/internal/domain"
)

var (
	validBCG    = map[string]bool{"star": true, "cash_cow": true, "question_mark": true, "dog": true}
	validAnsoff = map[string]bool{"market_penetration": true, "market_development": true, "product_development": true, "diversification": true}
)

// ValidatePortfolio checks the portfolio schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidatePortfolio(schema *PortfolioSchema) []error {
	var errs []error

	if len(schema.Opportunities) == 0 {
		return []error{fmt.Errorf("opportunities is empty")}
	}

	for i := range schema.Opportunities {
		errs = append(errs, validateOpportunity(fmt.Sprintf("opportunities[%d]", i), &schema.Opportunities[i])...)
	}

	return errs
}

func validateOpportunity(prefix string, o *OpportunityImport) []error {
	var errs []error

	if o.Title == "" {
		errs = append(errs, fmt.Errorf("%s.title is required", prefix))
	}
	if o.Stage != "" && !domain.Stage(o.Stage).Valid() {
		errs = append(errs, fmt.Errorf("%s.stage: invalid value %q", prefix, o.Stage))
	}

	if o.Scoring != nil {
		errs = append(errs, validateScoring(prefix+".scoring", o.Scoring)...)
	}
	if o.Detailed != nil {
		errs = append(errs, validateDetailed(prefix+".detailedScoring", o.Detailed)...)
	}
	if o.BusinessCase != nil {
		errs = append(errs, validateBusinessCase(prefix+".businessCase", o.BusinessCase)...)
	}
	if o.Analysis != nil {
		errs = append(errs, validateAnalysis(prefix+".analysis", o.Analysis)...)
	}
	for i := range o.Gates {
		errs = append(errs, validateGate(fmt.Sprintf("%s.gates[%d]", prefix, i), &o.Gates[i])...)
	}

	return errs
}

func validateScoring(prefix string, s *ScoringImport) []error {
	var errs []error
	for _, c := range []struct {
		name  string
		score int
	}{
		{"marketAttractiveness", s.MarketAttractiveness.Score},
		{"strategicFit", s.StrategicFit.Score},
		{"feasibility", s.Feasibility.Score},
		{"commercialViability", s.CommercialViability.Score},
		{"risk", s.Risk.Score},
	} {
		if c.score < 1 || c.score > 5 {
			errs = append(errs, fmt.Errorf("%s.%s.score: %d outside [1,5]", prefix, c.name, c.score))
		}
	}
	return errs
}

func validateDetailed(prefix string, d *DetailedImport) []error {
	var errs []error
	for _, c := range []struct {
		name  string
		score int
	}{
		{"marketAttractiveness", d.MarketAttractiveness.Score},
		{"strategicFit", d.StrategicFit.Score},
		{"feasibility", d.Feasibility.Score},
		{"commercialViability", d.CommercialViability.Score},
		{"risk", d.Risk.Score},
	} {
		if c.score < 1 || c.score > 5 {
			errs = append(errs, fmt.Errorf("%s.%s.score: %d outside [1,5]", prefix, c.name, c.score))
		}
	}
	return errs
}

func validateBusinessCase(prefix string, bc *BusinessCaseImport) []error {
	var errs []error

	if bc.Investment < 0 {
		errs = append(errs, fmt.Errorf("%s.investment must not be negative", prefix))
	}
	if len(bc.Years) != domain.PlanHorizonYears {
		errs = append(errs, fmt.Errorf("%s.years: expected %d entries, got %d", prefix, domain.PlanHorizonYears, len(bc.Years)))
		return errs
	}
	for i, y := range bc.Years {
		if y.Year != i+1 {
			errs = append(errs, fmt.Errorf("%s.years[%d].year: expected %d, got %d", prefix, i, i+1, y.Year))
		}
	}

	return errs
}

func validateAnalysis(prefix string, a *AnalysisImport) []error {
	var errs []error

	if a.BCG != "" && !validBCG[a.BCG] {
		errs = append(errs, fmt.Errorf("%s.bcg: invalid value %q", prefix, a.BCG))
	}
	if a.Ansoff != "" && !validAnsoff[a.Ansoff] {
		errs = append(errs, fmt.Errorf("%s.ansoff: invalid value %q", prefix, a.Ansoff))
	}

	return errs
}

func validateGate(prefix string, g *GateImport) []error {
	var errs []error

	if !domain.GateID(g.Gate).Valid() {
		errs = append(errs, fmt.Errorf("%s.gate: invalid value %q", prefix, g.Gate))
	}
	if !domain.Decision(g.Decision).Valid() {
		errs = append(errs, fmt.Errorf("%s.decision: invalid value %q", prefix, g.Decision))
	}
	if g.Decider == "" {
		errs = append(errs, fmt.Errorf("%s.decider is required", prefix))
	}
	if g.DecidedAt == "" {
		errs = append(errs, fmt.Errorf("%s.decidedAt is required", prefix))
	} else if _, err := time.Parse("2006-01-02", g.DecidedAt); err != nil {
		errs = append(errs, fmt.Errorf("%s.decidedAt: invalid date format %q (expected YYYY-MM-DD)", prefix, g.DecidedAt))
	}

	return errs
}
