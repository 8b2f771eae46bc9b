package interfaces

import (
	"context"
	"kyndly_ichra/internal/domain/entities"
)

// IDocumentRepository abstracts DynamoDB persistence for Document.

type IDocumentRepository interface {
	Create(ctx context.Context, d entities.Document) (entities.Document, error)
	GetByID(ctx context.Context, id string) (entities.Document, error)
	ListByEmployerID(ctx context.Context, employerID string) ([]entities.Document, error)
	Delete(ctx context.Context, id string) error
}
