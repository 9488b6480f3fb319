package service

import (
	"context"

	"github.com/marion-inge/bdnavigator/internal/domain"
	"github.com/marion-inge/bdnavigator/internal/stagegate"
)

// DetailsUpdate carries the optional descriptive-field changes of a section
// save. Nil fields are left untouched.
type DetailsUpdate struct {
	Title       *string
	Description *string
	Industry    *string
	Geography   *string
	Technology  *string
	Owner       *string
}

// OpportunityService covers record lifecycle and section saves. Every save is
// a whole-document upsert after the in-memory mutation succeeds.
type OpportunityService interface {
	Create(ctx context.Context, o *domain.Opportunity) error
	GetByID(ctx context.Context, id string) (*domain.Opportunity, error)
	List(ctx context.Context) ([]*domain.Opportunity, error)
	Delete(ctx context.Context, id string) error

	UpdateDetails(ctx context.Context, id string, upd DetailsUpdate) (*domain.Opportunity, error)
	SaveScoring(ctx context.Context, id string, s domain.Scoring) (*domain.Opportunity, error)
	SaveScoringFromAnswers(ctx context.Context, id string, answers map[string]int) (*domain.Opportunity, error)
	SaveDetailedScoring(ctx context.Context, id string, d *domain.DetailedScoring) (*domain.Opportunity, error)
	SaveBusinessCase(ctx context.Context, id string, bc *domain.BusinessCase) (*domain.Opportunity, error)
	SaveAnalysis(ctx context.Context, id string, a domain.Analysis) (*domain.Opportunity, error)
}

// PipelineService runs stage-gate transitions against persisted records: load
// the document, apply the pure transition, persist the whole document.
type PipelineService interface {
	Advance(ctx context.Context, id string) (*domain.Opportunity, error)
	Decide(ctx context.Context, id string, in stagegate.DecisionInput) (*domain.Opportunity, *domain.GateRecord, error)
	Revert(ctx context.Context, id string) (*domain.Opportunity, error)
	EditGate(ctx context.Context, id, gateID string, decision domain.Decision, decider, comment string) (*domain.Opportunity, error)
	DeleteGate(ctx context.Context, id, gateID string) (*domain.Opportunity, error)
}
