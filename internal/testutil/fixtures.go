package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/marion-inge/bdnavigator/internal/domain"
)

// OpportunityOption mutates a test opportunity before it is returned.
type OpportunityOption func(*domain.Opportunity)

func WithStage(s domain.Stage) OpportunityOption {
	return func(o *domain.Opportunity) {
		o.Stage = s
	}
}

func WithScoring(s domain.Scoring) OpportunityOption {
	return func(o *domain.Opportunity) {
		o.Scoring = s
	}
}

func WithOwner(owner string) OpportunityOption {
	return func(o *domain.Opportunity) {
		o.Owner = owner
	}
}

func WithCreatedAt(t time.Time) OpportunityOption {
	return func(o *domain.Opportunity) {
		o.CreatedAt = t
		o.UpdatedAt = t
	}
}

func WithGateRecord(gate domain.GateID, decision domain.Decision) OpportunityOption {
	return func(o *domain.Opportunity) {
		o.Gates = append(o.Gates, domain.GateRecord{
			ID:        uuid.New().String(),
			Gate:      gate,
			Decision:  decision,
			Decider:   "T. Fixture",
			DecidedAt: o.CreatedAt,
		})
	}
}

// NewTestOpportunity returns a freshly-created opportunity in the idea stage
// with a neutral default scoring.
func NewTestOpportunity(title string, opts ...OpportunityOption) *domain.Opportunity {
	now := time.Now().UTC().Truncate(time.Second)
	o := &domain.Opportunity{
		ID:        uuid.New().String(),
		Title:     title,
		Industry:  "manufacturing",
		Geography: "DACH",
		Stage:     domain.StageIdea,
		Scoring:   domain.DefaultScoring(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
