package request

import (
	"fotoeventos/internal/domain/entities"
)

type WorkDateRequest struct {
	Date string `json:"date"`
}

type LocationRequest struct {
	ID        string `json:"id"`
	WorkDate  string `json:"work_date" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Address   string `json:"address"`
	TimeOfDay string `json:"time_of_day"`
	Notes     string `json:"notes"`
}

type ServiceLineItemRequest struct {
	ID          string  `json:"id"`
	CatalogID   string  `json:"catalog_id" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity" binding:"required"`
	Currency    string  `json:"currency"`
	Hours       float64 `json:"hours"`
	StaffCount  int     `json:"staff_count"`
}

type AssignmentRequest struct {
	ItemID   string `json:"item_id" binding:"required"`
	WorkDate string `json:"work_date" binding:"required"`
}

// BookingRequest is the full booking payload for quote and order writes.
// IDs round-trip: clients echo back the ids they received so edits keep
// referring to the same locations and line items.
type BookingRequest struct {
	ClientName  string                   `json:"client_name" binding:"required"`
	EventName   string                   `json:"event_name" binding:"required"`
	EventType   string                   `json:"event_type"`
	Notes       string                   `json:"notes"`
	WorkDates   []WorkDateRequest        `json:"work_dates" binding:"required"`
	Locations   []LocationRequest        `json:"locations"`
	Items       []ServiceLineItemRequest `json:"items" binding:"required"`
	Assignments []AssignmentRequest      `json:"assignments"`
}

func (r BookingRequest) EntityWorkDates() []entities.WorkDate {
	out := make([]entities.WorkDate, 0, len(r.WorkDates))
	for i, d := range r.WorkDates {
		out = append(out, entities.WorkDate{Date: d.Date, Position: i})
	}
	return out
}

func (r BookingRequest) EntityLocations() []entities.Location {
	out := make([]entities.Location, 0, len(r.Locations))
	for _, l := range r.Locations {
		out = append(out, entities.Location{
			ID:        l.ID,
			WorkDate:  l.WorkDate,
			Name:      l.Name,
			Address:   l.Address,
			TimeOfDay: l.TimeOfDay,
			Notes:     l.Notes,
		})
	}
	return out
}

func (r BookingRequest) EntityItems() []entities.ServiceLineItem {
	out := make([]entities.ServiceLineItem, 0, len(r.Items))
	for _, it := range r.Items {
		out = append(out, entities.ServiceLineItem{
			ID:          it.ID,
			CatalogID:   it.CatalogID,
			Title:       it.Title,
			Description: it.Description,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
			Currency:    it.Currency,
			Hours:       it.Hours,
			StaffCount:  it.StaffCount,
		})
	}
	return out
}

func (r BookingRequest) EntityAssignments() []entities.Assignment {
	out := make([]entities.Assignment, 0, len(r.Assignments))
	for _, a := range r.Assignments {
		out = append(out, entities.Assignment{ItemID: a.ItemID, WorkDate: a.WorkDate})
	}
	return out
}
