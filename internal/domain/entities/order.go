package entities

import "time"

// OrderStatus represents the lifecycle of a confirmed order.

type OrderStatus string

const (
	OrderStatusAtivo     OrderStatus = "ativo"
	OrderStatusConcluido OrderStatus = "concluido"
	OrderStatusCancelado OrderStatus = "cancelado"
)

// Order is a confirmed booking created from an approved quote.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_id-index): quote_id
//
// An order carries its own copy of the booking records: once a contract is
// issued the order must not drift silently when the quote is edited, which is
// why order updates go through the strong-change confirmation gate.
type Order struct {
	ID          string            `json:"id"`
	QuoteID     string            `json:"quote_id"`
	ClientName  string            `json:"client_name"`
	EventName   string            `json:"event_name"`
	EventType   string            `json:"event_type"`
	Notes       string            `json:"notes"`
	DayCount    int               `json:"day_count"`
	WorkDates   []WorkDate        `json:"work_dates"`
	Locations   []Location        `json:"locations"`
	Items       []ServiceLineItem `json:"items"`
	Assignments []Assignment      `json:"assignments"`
	Total       float64           `json:"total"`
	Deposit     float64           `json:"deposit"`
	Status      OrderStatus       `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
