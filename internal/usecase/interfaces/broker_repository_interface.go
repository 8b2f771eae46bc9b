package interfaces

import (
	"context"
	"kyndly_ichra/internal/domain/entities"
)

// IBrokerRepository abstracts DynamoDB persistence for Broker.

type IBrokerRepository interface {
	Create(ctx context.Context, b entities.Broker) (entities.Broker, error)
	GetByID(ctx context.Context, id string) (entities.Broker, error)
	List(ctx context.Context) ([]entities.Broker, error)
	ListByTPAID(ctx context.Context, tpaID string) ([]entities.Broker, error)
	Update(ctx context.Context, b entities.Broker) (entities.Broker, error)
	Delete(ctx context.Context, id string) error
}
