package interfaces

import (
	"context"

	"fotoeventos/internal/domain/entities"
)

// IBookingPaymentRepository abstracts DynamoDB persistence for BookingPayment.

type IBookingPaymentRepository interface {
	Create(ctx context.Context, p entities.BookingPayment) (entities.BookingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BookingPayment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.BookingPayment, error)
}
