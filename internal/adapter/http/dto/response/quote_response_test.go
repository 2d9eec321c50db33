package response

import (
	"testing"
	"time"

	"fotoeventos/internal/domain/entities"
)

func TestFromQuote(t *testing.T) {
	now := time.Now().UTC()
	q := entities.Quote{
		ID:         "q-1",
		ClientName: "Ana Souza",
		EventName:  "Casamento Ana e Pedro",
		DayCount:   2,
		WorkDates: []entities.WorkDate{
			{Date: "2026-09-10", Position: 0},
			{Date: "2026-09-11", Position: 1},
		},
		Locations: []entities.Location{
			{ID: "loc-1", WorkDate: "2026-09-10", Name: "Igreja", TimeOfDay: "09:00", Principal: true},
		},
		Items: []entities.ServiceLineItem{
			{ID: "item-1", CatalogID: "svc-1", Title: "Cobertura fotográfica", UnitPrice: 95, BasePrice: 100, Quantity: 2, Currency: "BRL"},
		},
		Assignments: []entities.Assignment{
			{ItemID: "item-1", WorkDate: "2026-09-10"},
			{ItemID: "item-1", WorkDate: "2026-09-11"},
		},
		Total:     190,
		Status:    entities.QuoteStatusPendente,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res := FromQuote(q)
	if res.ID != "q-1" || res.Status != "pendente" || res.Total != 190 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if len(res.WorkDates) != 2 || res.WorkDates[1].Date != "2026-09-11" {
		t.Fatalf("unexpected work dates: %+v", res.WorkDates)
	}
	if len(res.Locations) != 1 || !res.Locations[0].Principal {
		t.Fatalf("unexpected locations: %+v", res.Locations)
	}
	if len(res.Items) != 1 || res.Items[0].UnitPrice != 95 || res.Items[0].BasePrice != 100 {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
	if len(res.Assignments) != 2 {
		t.Fatalf("unexpected assignments: %+v", res.Assignments)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}
