package repository

import (
	"fotoeventos/internal/domain/entities"
)

// Booking records are embedded in the quote/order items as nested lists so a
// single GetItem returns the whole booking. They never grow past a handful
// of entries (at most 7 dates and 6 locations per date).

type workDateItem struct {
	Date     string `dynamodbav:"date"`
	Position int    `dynamodbav:"position"`
}

type locationItem struct {
	ID        string `dynamodbav:"id"`
	WorkDate  string `dynamodbav:"work_date"`
	Name      string `dynamodbav:"name"`
	Address   string `dynamodbav:"address,omitempty"`
	TimeOfDay string `dynamodbav:"time_of_day,omitempty"`
	Notes     string `dynamodbav:"notes,omitempty"`
	Principal bool   `dynamodbav:"principal"`
}

type lineItemItem struct {
	ID          string  `dynamodbav:"id"`
	CatalogID   string  `dynamodbav:"catalog_id"`
	Title       string  `dynamodbav:"title"`
	Description string  `dynamodbav:"description,omitempty"`
	UnitPrice   float64 `dynamodbav:"unit_price"`
	BasePrice   float64 `dynamodbav:"base_price"`
	Quantity    int     `dynamodbav:"quantity"`
	Currency    string  `dynamodbav:"currency,omitempty"`
	Hours       float64 `dynamodbav:"hours,omitempty"`
	StaffCount  int     `dynamodbav:"staff_count,omitempty"`
}

type assignmentItem struct {
	ItemID   string `dynamodbav:"item_id"`
	WorkDate string `dynamodbav:"work_date"`
}

func toWorkDateItems(dates []entities.WorkDate) []workDateItem {
	out := make([]workDateItem, 0, len(dates))
	for _, d := range dates {
		out = append(out, workDateItem{Date: d.Date, Position: d.Position})
	}
	return out
}

func fromWorkDateItems(items []workDateItem) []entities.WorkDate {
	out := make([]entities.WorkDate, 0, len(items))
	for _, it := range items {
		out = append(out, entities.WorkDate{Date: it.Date, Position: it.Position})
	}
	return out
}

func toLocationItems(locations []entities.Location) []locationItem {
	out := make([]locationItem, 0, len(locations))
	for _, l := range locations {
		out = append(out, locationItem{
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

func fromLocationItems(items []locationItem) []entities.Location {
	out := make([]entities.Location, 0, len(items))
	for _, it := range items {
		out = append(out, entities.Location{
			ID:        it.ID,
			WorkDate:  it.WorkDate,
			Name:      it.Name,
			Address:   it.Address,
			TimeOfDay: it.TimeOfDay,
			Notes:     it.Notes,
			Principal: it.Principal,
		})
	}
	return out
}

func toLineItemItems(items []entities.ServiceLineItem) []lineItemItem {
	out := make([]lineItemItem, 0, len(items))
	for _, it := range items {
		out = append(out, lineItemItem{
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

func fromLineItemItems(items []lineItemItem) []entities.ServiceLineItem {
	out := make([]entities.ServiceLineItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.ServiceLineItem{
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

func toAssignmentItems(assignments []entities.Assignment) []assignmentItem {
	out := make([]assignmentItem, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, assignmentItem{ItemID: a.ItemID, WorkDate: a.WorkDate})
	}
	return out
}

func fromAssignmentItems(items []assignmentItem) []entities.Assignment {
	out := make([]entities.Assignment, 0, len(items))
	for _, it := range items {
		out = append(out, entities.Assignment{ItemID: it.ItemID, WorkDate: it.WorkDate})
	}
	return out
}
