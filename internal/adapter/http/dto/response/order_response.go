package response

import (
	"time"

	"fotoeventos/internal/domain/entities"
)

type OrderResponse struct {
	ID          string                    `json:"id"`
	QuoteID     string                    `json:"quote_id"`
	ClientName  string                    `json:"client_name"`
	EventName   string                    `json:"event_name"`
	EventType   string                    `json:"event_type"`
	Notes       string                    `json:"notes"`
	DayCount    int                       `json:"day_count"`
	WorkDates   []WorkDateResponse        `json:"work_dates"`
	Locations   []LocationResponse        `json:"locations"`
	Items       []ServiceLineItemResponse `json:"items"`
	Assignments []AssignmentResponse      `json:"assignments"`
	Total       float64                   `json:"total"`
	Deposit     float64                   `json:"deposit"`
	Status      string                    `json:"status"`
	CreatedAt   time.Time                 `json:"created_at"`
	UpdatedAt   time.Time                 `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:          o.ID,
		QuoteID:     o.QuoteID,
		ClientName:  o.ClientName,
		EventName:   o.EventName,
		EventType:   o.EventType,
		Notes:       o.Notes,
		DayCount:    o.DayCount,
		WorkDates:   fromWorkDates(o.WorkDates),
		Locations:   fromLocations(o.Locations),
		Items:       fromItems(o.Items),
		Assignments: fromAssignments(o.Assignments),
		Total:       o.Total,
		Deposit:     o.Deposit,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
