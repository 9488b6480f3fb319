package importer

import (
	"time"

	"github.com/google/uuid"

	"github.com/marion-inge/bdnavigator/internal/domain"
)

// Convert transforms a validated portfolio schema into domain opportunities
// ready for persistence. Call ValidatePortfolio first; Convert assumes the
// schema is valid.
func Convert(schema *PortfolioSchema) []*domain.Opportunity {
	now := time.Now().UTC()

	out := make([]*domain.Opportunity, 0, len(schema.Opportunities))
	for i := range schema.Opportunities {
		out = append(out, convertOpportunity(&schema.Opportunities[i], now))
	}
	return out
}

func convertOpportunity(in *OpportunityImport, now time.Time) *domain.Opportunity {
	o := &domain.Opportunity{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Industry:    in.Industry,
		Geography:   in.Geography,
		Technology:  in.Technology,
		Owner:       in.Owner,
		Stage:       domain.Stage(in.Stage),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if o.Stage == "" {
		o.Stage = domain.StageIdea
	}

	if in.Scoring != nil {
		o.Scoring = domain.Scoring{
			MarketAttractiveness: domain.Criterion(in.Scoring.MarketAttractiveness),
			StrategicFit:         domain.Criterion(in.Scoring.StrategicFit),
			Feasibility:          domain.Criterion(in.Scoring.Feasibility),
			CommercialViability:  domain.Criterion(in.Scoring.CommercialViability),
			Risk:                 domain.Criterion(in.Scoring.Risk),
		}
	} else {
		o.Scoring = domain.DefaultScoring()
	}

	if in.Detailed != nil {
		o.Detailed = &domain.DetailedScoring{
			MarketAttractiveness: domain.DetailedCriterion(in.Detailed.MarketAttractiveness),
			StrategicFit:         domain.DetailedCriterion(in.Detailed.StrategicFit),
			Feasibility:          domain.DetailedCriterion(in.Detailed.Feasibility),
			CommercialViability:  domain.DetailedCriterion(in.Detailed.CommercialViability),
			Risk:                 domain.DetailedCriterion(in.Detailed.Risk),
		}
	}

	if in.BusinessCase != nil {
		bc := &domain.BusinessCase{
			Investment:  in.BusinessCase.Investment,
			Assumptions: in.BusinessCase.Assumptions,
		}
		for _, y := range in.BusinessCase.Years {
			bc.Years = append(bc.Years, domain.PlanYear(y))
		}
		o.BusinessCase = bc
	}

	if in.Analysis != nil {
		o.Analysis = domain.Analysis{
			SWOT: domain.SWOT{
				Strengths:     in.Analysis.Strengths,
				Weaknesses:    in.Analysis.Weaknesses,
				Opportunities: in.Analysis.Opportunities,
				Threats:       in.Analysis.Threats,
			},
			BCG:    domain.BCGQuadrant(in.Analysis.BCG),
			Ansoff: domain.AnsoffQuadrant(in.Analysis.Ansoff),
		}
	}

	for _, g := range in.Gates {
		decidedAt, _ := time.Parse("2006-01-02", g.DecidedAt)
		o.Gates = append(o.Gates, domain.GateRecord{
			ID:        uuid.New().String(),
			Gate:      domain.GateID(g.Gate),
			Decision:  domain.Decision(g.Decision),
			Comment:   g.Comment,
			Decider:   g.Decider,
			DecidedAt: decidedAt.UTC(),
		})
	}

	return o
}
