package interfaces

import (
	"context"

	"fotoeventos/internal/domain/entities"
)

// IServiceCatalogRepository abstracts the read-only service catalog. Quote
// operations validate line item references and base prices against it.

type IServiceCatalogRepository interface {
	List(ctx context.Context) ([]entities.CatalogService, error)
	GetByID(ctx context.Context, id string) (entities.CatalogService, error)
}
