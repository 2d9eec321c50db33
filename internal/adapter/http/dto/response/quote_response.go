package response

import (
	"time"

	"fotoeventos/internal/domain/entities"
)

type WorkDateResponse struct {
	Date     string `json:"date"`
	Position int    `json:"position"`
}

type LocationResponse struct {
	ID        string `json:"id"`
	WorkDate  string `json:"work_date"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	TimeOfDay string `json:"time_of_day"`
	Notes     string `json:"notes"`
	Principal bool   `json:"principal"`
}

type ServiceLineItemResponse struct {
	ID          string  `json:"id"`
	CatalogID   string  `json:"catalog_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
	BasePrice   float64 `json:"base_price"`
	Quantity    int     `json:"quantity"`
	Currency    string  `json:"currency"`
	Hours       float64 `json:"hours"`
	StaffCount  int     `json:"staff_count"`
}

type AssignmentResponse struct {
	ItemID   string `json:"item_id"`
	WorkDate string `json:"work_date"`
}

type QuoteResponse struct {
	ID          string                    `json:"id"`
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
	Status      string                    `json:"status"`
	CreatedAt   time.Time                 `json:"created_at"`
	UpdatedAt   time.Time                 `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:          q.ID,
		ClientName:  q.ClientName,
		EventName:   q.EventName,
		EventType:   q.EventType,
		Notes:       q.Notes,
		DayCount:    q.DayCount,
		WorkDates:   fromWorkDates(q.WorkDates),
		Locations:   fromLocations(q.Locations),
		Items:       fromItems(q.Items),
		Assignments: fromAssignments(q.Assignments),
		Total:       q.Total,
		Status:      string(q.Status),
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

func fromWorkDates(dates []entities.WorkDate) []WorkDateResponse {
	out := make([]WorkDateResponse, 0, len(dates))
	for _, d := range dates {
		out = append(out, WorkDateResponse{Date: d.Date, Position: d.Position})
	}
	return out
}

func fromLocations(locations []entities.Location) []LocationResponse {
	out := make([]LocationResponse, 0, len(locations))
	for _, l := range locations {
		out = append(out, LocationResponse{
			ID:        l.ID,
			WorkDate:  l.WorkDate,
			Name:      l.Name,
			Address:   l.Address,
			TimeOfDay: l.TimeOfDay,
			Notes:     l.Notes,
			Principal: l.Principal,
		})
	}
	return out
}

func fromItems(items []entities.ServiceLineItem) []ServiceLineItemResponse {
	out := make([]ServiceLineItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ServiceLineItemResponse{
			ID:          it.ID,
			CatalogID:   it.CatalogID,
			Title:       it.Title,
			Description: it.Description,
			UnitPrice:   it.UnitPrice,
			BasePrice:   it.BasePrice,
			Quantity:    it.Quantity,
			Currency:    it.Currency,
			Hours:       it.Hours,
			StaffCount:  it.StaffCount,
		})
	}
	return out
}

func fromAssignments(assignments []entities.Assignment) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, AssignmentResponse{ItemID: a.ItemID, WorkDate: a.WorkDate})
	}
	return out
}
