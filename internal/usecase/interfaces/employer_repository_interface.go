package interfaces

import (
	"context"
	"kyndly_ichra/internal/domain/entities"
)

// IEmployerRepository abstracts DynamoDB persistence for Employer.

type IEmployerRepository interface {
	Create(ctx context.Context, e entities.Employer) (entities.Employer, error)
	GetByID(ctx context.Context, id string) (entities.Employer, error)
	List(ctx context.Context) ([]entities.Employer, error)
	ListByTPAID(ctx context.Context, tpaID string) ([]entities.Employer, error)
	Update(ctx context.Context, e entities.Employer) (entities.Employer, error)
	Delete(ctx context.Context, id string) error
}
