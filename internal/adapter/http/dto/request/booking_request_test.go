package request

import (
	"testing"
)

func TestBookingRequest_EntityMapping(t *testing.T) {
	r := BookingRequest{
		ClientName: "Ana Souza",
		EventName:  "Casamento Ana e Pedro",
		WorkDates:  []WorkDateRequest{{Date: "2026-09-11"}, {Date: "2026-09-10"}},
		Locations: []LocationRequest{
			{ID: "loc-1", WorkDate: "2026-09-10", Name: "Igreja", TimeOfDay: "09:00"},
		},
		Items: []ServiceLineItemRequest{
			{ID: "item-1", CatalogID: "svc-1", Title: "Cobertura fotográfica", UnitPrice: 100, Quantity: 2, Currency: "BRL"},
		},
		Assignments: []AssignmentRequest{
			{ItemID: "item-1", WorkDate: "2026-09-10"},
		},
	}

	dates := r.EntityWorkDates()
	if len(dates) != 2 {
		t.Fatalf("expected 2 work dates, got %d", len(dates))
	}
	// Positions follow payload order; the engine re-sorts at the boundary.
	if dates[0].Date != "2026-09-11" || dates[0].Position != 0 || dates[1].Position != 1 {
		t.Fatalf("unexpected work dates: %+v", dates)
	}

	locs := r.EntityLocations()
	if len(locs) != 1 || locs[0].ID != "loc-1" || locs[0].WorkDate != "2026-09-10" || locs[0].TimeOfDay != "09:00" {
		t.Fatalf("unexpected locations: %+v", locs)
	}
	if locs[0].Principal {
		t.Fatalf("principal must never come from the payload")
	}

	items := r.EntityItems()
	if len(items) != 1 || items[0].ID != "item-1" || items[0].CatalogID != "svc-1" || items[0].Quantity != 2 {
		t.Fatalf("unexpected items: %+v", items)
	}
	if items[0].BasePrice != 0 {
		t.Fatalf("base price must never come from the payload, got %+v", items[0])
	}

	asgs := r.EntityAssignments()
	if len(asgs) != 1 || asgs[0].ItemID != "item-1" || asgs[0].WorkDate != "2026-09-10" {
		t.Fatalf("unexpected assignments: %+v", asgs)
	}
}
