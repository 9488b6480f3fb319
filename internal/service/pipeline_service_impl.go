package service

import (
	"context"
	"time"

	"github.com/marion-inge/bdnavigator/internal/domain"
	"github.com/marion-inge/bdnavigator/internal/repository"
	"github.com/marion-inge/bdnavigator/internal/stagegate"
)

type pipelineService struct {
	opportunities repository.OpportunityRepo
}

func NewPipelineService(opportunities repository.OpportunityRepo) PipelineService {
	return &pipelineService{opportunities: opportunities}
}

func (s *pipelineService) Advance(ctx context.Context, id string) (*domain.Opportunity, error) {
	return s.transition(ctx, id, func(o *domain.Opportunity, now time.Time) error {
		return stagegate.Advance(o, now)
	})
}

func (s *pipelineService) Decide(ctx context.Context, id string, in stagegate.DecisionInput) (*domain.Opportunity, *domain.GateRecord, error) {
	o, err := s.opportunities.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	rec, err := stagegate.Decide(o, in, time.Now().UTC())
	if err != nil {
		return nil, nil, err
	}
	if err := s.opportunities.Save(ctx, o); err != nil {
		return nil, nil, err
	}
	return o, rec, nil
}

func (s *pipelineService) Revert(ctx context.Context, id string) (*domain.Opportunity, error) {
	return s.transition(ctx, id, stagegate.Revert)
}

func (s *pipelineService) EditGate(ctx context.Context, id, gateID string, decision domain.Decision, decider, comment string) (*domain.Opportunity, error) {
	return s.transition(ctx, id, func(o *domain.Opportunity, now time.Time) error {
		return stagegate.EditGate(o, gateID, decision, decider, comment, now)
	})
}

func (s *pipelineService) DeleteGate(ctx context.Context, id, gateID string) (*domain.Opportunity, error) {
	return s.transition(ctx, id, func(o *domain.Opportunity, now time.Time) error {
		return stagegate.DeleteGate(o, gateID, now)
	})
}

// transition loads the record, applies the pure stage-gate function and
// persists the whole document. A failed transition writes nothing.
func (s *pipelineService) transition(ctx context.Context, id string, fn func(*domain.Opportunity, time.Time) error) (*domain.Opportunity, error) {
	o, err := s.opportunities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(o, time.Now().UTC()); err != nil {
		return nil, err
	}
	if err := s.opportunities.Save(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}
