package scheduling

import (
	"fotoeventos/internal/domain/entities"

	"github.com/google/uuid"
)

// ServiceInput carries the fields of a newly selected catalog service.
type ServiceInput struct {
	CatalogID   string
	Title       string
	Description string
	BasePrice   float64
	Quantity    int
	Currency    string
	Hours       float64
	StaffCount  int
}

// AddItem selects a service. The line item ID is generated here, once, and
// stays stable for the life of the selection. The unit price starts at the
// catalog base price; the quantity is capped by the current day count.
func (s *Session) AddItem(in ServiceInput) (entities.ServiceLineItem, error) {
	if in.Quantity < 1 {
		return entities.ServiceLineItem{}, ErrInvalidQuantity
	}
	item := entities.ServiceLineItem{
		ID:          uuid.NewString(),
		CatalogID:   in.CatalogID,
		Title:       in.Title,
		Description: in.Description,
		UnitPrice:   in.BasePrice,
		BasePrice:   in.BasePrice,
		Quantity:    capQuantity(in.Quantity, s.dayCount),
		Currency:    in.Currency,
		Hours:       in.Hours,
		StaffCount:  in.StaffCount,
	}
	s.items = append(s.items, item)
	s.revision++
	return item, nil
}

// RemoveItem deselects a service and drops all of its assignments.
func (s *Session) RemoveItem(id string) error {
	for i, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.truncateAssignments(id, 0)
			s.revision++
			return nil
		}
	}
	return ErrUnknownItem
}

// SetUnitPrice edits an item's unit price. A price below 95% of the catalog
// base is clamped to the floor and the clamp is reported as a
// PriceBelowFloorError; the session stays valid either way. The applied
// price is returned.
func (s *Session) SetUnitPrice(id string, price float64) (float64, error) {
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		floor := priceFloor(s.items[i].BasePrice)
		if price < floor {
			s.items[i].UnitPrice = floor
			s.revision++
			return floor, &PriceBelowFloorError{ItemID: id, Requested: price, Floor: floor}
		}
		s.items[i].UnitPrice = price
		s.revision++
		return price, nil
	}
	return 0, ErrUnknownItem
}

// ChangeQuantity edits an item's quantity and returns the applied value
// after capping (1 when the event is single-day, day count otherwise).
// Lowering the quantity sheds the most recently added assignments first;
// raising it leaves the item under-assigned for the operator to complete.
func (s *Session) ChangeQuantity(id string, quantity int) (int, error) {
	if quantity < 1 {
		return 0, ErrInvalidQuantity
	}
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		applied := capQuantity(quantity, s.dayCount)
		s.items[i].Quantity = applied
		s.truncateAssignments(id, applied)
		s.revision++
		return applied, nil
	}
	return 0, ErrUnknownItem
}

func (s *Session) findItem(id string) (entities.ServiceLineItem, bool) {
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return entities.ServiceLineItem{}, false
}
