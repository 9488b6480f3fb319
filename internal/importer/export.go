package importer

import (
	"github.com/marion-inge/bdnavigator/internal/domain"
)

// Export builds a portfolio schema from persisted opportunities. The result
// passes ValidatePortfolio and converts back to equivalent records, so export
// followed by import round-trips a portfolio between databases.
func Export(opportunities []*domain.Opportunity) *PortfolioSchema {
	schema := &PortfolioSchema{}
	for _, o := range opportunities {
		schema.Opportunities = append(schema.Opportunities, exportOpportunity(o))
	}
	return schema
}

func exportOpportunity(o *domain.Opportunity) OpportunityImport {
	out := OpportunityImport{
		Title:       o.Title,
		Description: o.Description,
		Industry:    o.Industry,
		Geography:   o.Geography,
		Technology:  o.Technology,
		Owner:       o.Owner,
		Stage:       string(o.Stage),
	}

	scoring := ScoringImport{
		MarketAttractiveness: CriterionImport(o.Scoring.MarketAttractiveness),
		StrategicFit:         CriterionImport(o.Scoring.StrategicFit),
		Feasibility:          CriterionImport(o.Scoring.Feasibility),
		CommercialViability:  CriterionImport(o.Scoring.CommercialViability),
		Risk:                 CriterionImport(o.Scoring.Risk),
	}
	out.Scoring = &scoring

	if o.Detailed != nil {
		out.Detailed = &DetailedImport{
			MarketAttractiveness: DetailedCriterionImport(o.Detailed.MarketAttractiveness),
			StrategicFit:         DetailedCriterionImport(o.Detailed.StrategicFit),
			Feasibility:          DetailedCriterionImport(o.Detailed.Feasibility),
			CommercialViability:  DetailedCriterionImport(o.Detailed.CommercialViability),
			Risk:                 DetailedCriterionImport(o.Detailed.Risk),
		}
	}

	if o.BusinessCase != nil {
		bc := &BusinessCaseImport{
			Investment:  o.BusinessCase.Investment,
			Assumptions: o.BusinessCase.Assumptions,
		}
		for _, y := range o.BusinessCase.Years {
			bc.Years = append(bc.Years, PlanYearImport(y))
		}
		out.BusinessCase = bc
	}

	if !o.Analysis.Empty() {
		out.Analysis = &AnalysisImport{
			Strengths:     o.Analysis.SWOT.Strengths,
			Weaknesses:    o.Analysis.SWOT.Weaknesses,
			Opportunities: o.Analysis.SWOT.Opportunities,
			Threats:       o.Analysis.SWOT.Threats,
			BCG:           string(o.Analysis.BCG),
			Ansoff:        string(o.Analysis.Ansoff),
		}
	}

	for _, g := range o.Gates {
		out.Gates = append(out.Gates, GateImport{
			Gate:      string(g.Gate),
			Decision:  string(g.Decision),
			Decider:   g.Decider,
			Comment:   g.Comment,
			DecidedAt: g.DecidedAt.UTC().Format("2006-01-02"),
		})
	}

	return out
}
