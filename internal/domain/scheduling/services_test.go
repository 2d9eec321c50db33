package scheduling

import (
	"errors"
	"testing"
)

func TestAddItem(t *testing.T) {
	t.Run("generates a stable id and starts at base price", func(t *testing.T) {
		s := mustSession(t, dated("2026-09-01", "2026-09-02"), nil, nil, nil)
		item, err := s.AddItem(ServiceInput{CatalogID: "cat-1", Title: "Cobertura Fotográfica", BasePrice: 1200, Quantity: 2, Currency: "BRL"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID == "" || item.UnitPrice != 1200 || item.BasePrice != 1200 {
			t.Fatalf("unexpected item: %+v", item)
		}
		if item.Quantity != 2 {
			t.Fatalf("expected quantity 2, got %d", item.Quantity)
		}
	})

	t.Run("caps quantity at day count", func(t *testing.T) {
		s := mustSession(t, dated("2026-09-01", "2026-09-02"), nil, nil, nil)
		item, _ := s.AddItem(ServiceInput{Title: "Filmagem", BasePrice: 100, Quantity: 6})
		if item.Quantity != 2 {
			t.Fatalf("expected quantity capped to 2, got %d", item.Quantity)
		}
	})

	t.Run("rejects quantity below 1", func(t *testing.T) {
		s := mustSession(t, dated("2026-09-01"), nil, nil, nil)
		if _, err := s.AddItem(ServiceInput{Title: "x", BasePrice: 10, Quantity: 0}); !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})
}

func TestRemoveItem(t *testing.T) {
	s := mustSession(t, dated("2026-09-01", "2026-09-02"), nil, nil, nil)
	item, _ := s.AddItem(ServiceInput{Title: "Filmagem", BasePrice: 100, Quantity: 2})
	if err := s.Assign(item.ID, "2026-09-01"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.RemoveItem(item.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Items()) != 0 || len(s.Assignments()) != 0 {
		t.Fatalf("item removal must drop its assignments")
	}
	if err := s.RemoveItem(item.ID); !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("expected ErrUnknownItem, got %v", err)
	}
}

func TestSetUnitPrice(t *testing.T) {
	s := mustSession(t, dated("2026-09-01"), nil, nil, nil)
	item, _ := s.AddItem(ServiceInput{Title: "Cobertura", BasePrice: 100, Quantity: 1})

	t.Run("accepts a price at or above the floor", func(t *testing.T) {
		applied, err := s.SetUnitPrice(item.ID, 96)
		if err != nil || applied != 96 {
			t.Fatalf("expected 96 accepted, got %v %v", applied, err)
		}
	})

	t.Run("clamps below the floor and reports it", func(t *testing.T) {
		applied, err := s.SetUnitPrice(item.ID, 80)
		var floorErr *PriceBelowFloorError
		if !errors.As(err, &floorErr) {
			t.Fatalf("expected PriceBelowFloorError, got %v", err)
		}
		if applied != 95 || floorErr.Requested != 80 || floorErr.Floor != 95 {
			t.Fatalf("unexpected clamp: applied=%v err=%+v", applied, floorErr)
		}
		// The clamp is applied, not rejected: the session stays valid.
		if got := s.Items()[0].UnitPrice; got != 95 {
			t.Fatalf("expected stored price 95, got %v", got)
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		if _, err := s.SetUnitPrice("ghost", 100); !errors.Is(err, ErrUnknownItem) {
			t.Fatalf("expected ErrUnknownItem, got %v", err)
		}
	})
}

func TestChangeQuantity(t *testing.T) {
	t.Run("lowering sheds newest assignments first", func(t *testing.T) {
		s := mustSession(t, dated("2026-09-01", "2026-09-02", "2026-09-03"), nil, nil, nil)
		item, _ := s.AddItem(ServiceInput{Title: "Filmagem", BasePrice: 100, Quantity: 3})
		for _, d := range []string{"2026-09-01", "2026-09-02", "2026-09-03"} {
			if err := s.Assign(item.ID, d); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		applied, err := s.ChangeQuantity(item.ID, 1)
		if err != nil || applied != 1 {
			t.Fatalf("unexpected result: %v %v", applied, err)
		}
		got := s.Assignments()
		if len(got) != 1 || got[0].WorkDate != "2026-09-01" {
			t.Fatalf("expected only the oldest assignment to survive: %+v", got)
		}
	})

	t.Run("raising leaves the item under-assigned", func(t *testing.T) {
		s := mustSession(t, dated("2026-09-01", "2026-09-02", "2026-09-03"), nil, nil, nil)
		item, _ := s.AddItem(ServiceInput{Title: "Filmagem", BasePrice: 100, Quantity: 1})
		if err := s.Assign(item.ID, "2026-09-01"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := s.ChangeQuantity(item.ID, 3); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// No auto-fill: the operator completes the new assignments.
		if got := len(s.Assignments()); got != 1 {
			t.Fatalf("expected 1 assignment, got %d", got)
		}
	})

	t.Run("caps at day count", func(t *testing.T) {
		s := mustSession(t, dated("2026-09-01", "2026-09-02"), nil, nil, nil)
		item, _ := s.AddItem(ServiceInput{Title: "Filmagem", BasePrice: 100, Quantity: 1})
		applied, err := s.ChangeQuantity(item.ID, 9)
		if err != nil || applied != 2 {
			t.Fatalf("expected cap to 2, got %v %v", applied, err)
		}
	})

	t.Run("rejects quantity below 1", func(t *testing.T) {
		s := mustSession(t, dated("2026-09-01"), nil, nil, nil)
		item, _ := s.AddItem(ServiceInput{Title: "Filmagem", BasePrice: 100, Quantity: 1})
		if _, err := s.ChangeQuantity(item.ID, 0); !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})
}
