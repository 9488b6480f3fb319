package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/marion-inge/bdnavigator/internal/domain"
	"github.com/marion-inge/bdnavigator/internal/repository"
)

type opportunityService struct {
	opportunities repository.OpportunityRepo
}

func NewOpportunityService(opportunities repository.OpportunityRepo) OpportunityService {
	return &opportunityService{opportunities: opportunities}
}

func (s *opportunityService) Create(ctx context.Context, o *domain.Opportunity) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	o.CreatedAt = now
	o.UpdatedAt = now
	if o.Stage == "" {
		o.Stage = domain.StageIdea
	}
	if (o.Scoring == domain.Scoring{}) {
		o.Scoring = domain.DefaultScoring()
	}
	if err := o.Scoring.Validate(); err != nil {
		return err
	}
	return s.opportunities.Save(ctx, o)
}

func (s *opportunityService) GetByID(ctx context.Context, id string) (*domain.Opportunity, error) {
	return s.opportunities.GetByID(ctx, id)
}

func (s *opportunityService) List(ctx context.Context) ([]*domain.Opportunity, error) {
	return s.opportunities.List(ctx)
}

func (s *opportunityService) Delete(ctx context.Context, id string) error {
	return s.opportunities.Delete(ctx, id)
}

func (s *opportunityService) UpdateDetails(ctx context.Context, id string, upd DetailsUpdate) (*domain.Opportunity, error) {
	return s.mutate(ctx, id, func(o *domain.Opportunity) error {
		applyStr := func(dst *string, src *string) {
			if src != nil {
				*dst = *src
			}
		}
		applyStr(&o.Title, upd.Title)
		applyStr(&o.Description, upd.Description)
		applyStr(&o.Industry, upd.Industry)
		applyStr(&o.Geography, upd.Geography)
		applyStr(&o.Technology, upd.Technology)
		applyStr(&o.Owner, upd.Owner)
		return nil
	})
}

func (s *opportunityService) SaveScoring(ctx context.Context, id string, scoring domain.Scoring) (*domain.Opportunity, error) {
	if err := scoring.Validate(); err != nil {
		return nil, err
	}
	return s.mutate(ctx, id, func(o *domain.Opportunity) error {
		o.Scoring = scoring
		return nil
	})
}

func (s *opportunityService) SaveScoringFromAnswers(ctx context.Context, id string, answers map[string]int) (*domain.Opportunity, error) {
	return s.mutate(ctx, id, func(o *domain.Opportunity) error {
		o.Scoring = domain.AnswersToScoring(answers, domain.QuestionCatalog, o.Scoring)
		return o.Scoring.Validate()
	})
}

func (s *opportunityService) SaveDetailedScoring(ctx context.Context, id string, d *domain.DetailedScoring) (*domain.Opportunity, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return s.mutate(ctx, id, func(o *domain.Opportunity) error {
		o.Detailed = d
		return nil
	})
}

func (s *opportunityService) SaveBusinessCase(ctx context.Context, id string, bc *domain.BusinessCase) (*domain.Opportunity, error) {
	return s.mutate(ctx, id, func(o *domain.Opportunity) error {
		o.BusinessCase = bc
		return nil
	})
}

func (s *opportunityService) SaveAnalysis(ctx context.Context, id string, a domain.Analysis) (*domain.Opportunity, error) {
	return s.mutate(ctx, id, func(o *domain.Opportunity) error {
		o.Analysis = a
		return nil
	})
}

// mutate loads the record, applies fn to the in-memory copy and persists the
// whole document. Nothing is written when fn fails.
func (s *opportunityService) mutate(ctx context.Context, id string, fn func(*domain.Opportunity) error) (*domain.Opportunity, error) {
	o, err := s.opportunities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(o); err != nil {
		return nil, err
	}
	o.UpdatedAt = time.Now().UTC()
	if err := s.opportunities.Save(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}
