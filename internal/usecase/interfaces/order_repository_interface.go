package interfaces

import (
	"context"

	"fotoeventos/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// GetByQuoteID backs the one-order-per-quote rule enforced by the use case.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByQuoteID(ctx context.Context, quoteID string) (entities.Order, error)
	Update(ctx context.Context, o entities.Order) (entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
}
