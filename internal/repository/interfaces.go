package repository

import (
	"context"

	"github.com/marion-inge/bdnavigator/internal/domain"
)

// OpportunityRepo persists opportunities as whole documents. Save has upsert
// semantics: the service layer always supplies the full record, never a
// partial update.
type OpportunityRepo interface {
	Save(ctx context.Context, o *domain.Opportunity) error
	GetByID(ctx context.Context, id string) (*domain.Opportunity, error)
	List(ctx context.Context) ([]*domain.Opportunity, error)
	Delete(ctx context.Context, id string) error
}
