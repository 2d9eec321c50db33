package entities

import "time"

// QuoteStatus represents the lifecycle of a quote (orçamento).
//
// Domain notes:
//   - This service is the source of truth for quote/order state.
//   - An approved quote is the only valid source for an order.

type QuoteStatus string

const (
	QuoteStatusPendente  QuoteStatus = "pendente"
	QuoteStatusAprovado  QuoteStatus = "aprovado"
	QuoteStatusRejeitado QuoteStatus = "rejeitado"
	QuoteStatusCancelado QuoteStatus = "cancelado"
)

// Quote is a multi-day event coverage quote persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - Total is the sum of unit_price * quantity over all line items.
type Quote struct {
	ID          string            `json:"id"`
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
	Status      QuoteStatus       `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
