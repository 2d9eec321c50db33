package usecase

import (
	"context"
	"errors"
	"testing"

	"fotoeventos/internal/domain/entities"
	"fotoeventos/internal/domain/scheduling"
	mock_interfaces "fotoeventos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func sampleDraft() BookingDraft {
	return BookingDraft{
		ClientName: "Ana Souza",
		EventName:  "Casamento Ana e Pedro",
		EventType:  "casamento",
		Notes:      "levar tripé",
		WorkDates:  []entities.WorkDate{{Date: "2026-09-10"}},
		Items: []entities.ServiceLineItem{{
			ID:        "item-1",
			CatalogID: "svc-1",
			Title:     "Cobertura fotográfica",
			UnitPrice: 100,
			BasePrice: 100,
			Quantity:  1,
			Currency:  "BRL",
		}},
	}
}

func activeService() entities.CatalogService {
	return entities.CatalogService{ID: "svc-1", Name: "Cobertura fotográfica", BasePrice: 100, Currency: "BRL", Active: true}
}

func storedQuote() entities.Quote {
	d := sampleDraft()
	return entities.Quote{
		ID:          "q-1",
		ClientName:  d.ClientName,
		EventName:   d.EventName,
		EventType:   d.EventType,
		Notes:       d.Notes,
		DayCount:    1,
		WorkDates:   d.WorkDates,
		Items:       d.Items,
		Assignments: []entities.Assignment{{ItemID: "item-1", WorkDate: "2026-09-10"}},
		Total:       100,
		Status:      entities.QuoteStatusPendente,
	}
}

func TestQuoteUseCase_CreateQuote(t *testing.T) {
	t.Run("catalog service not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		catalog := mock_interfaces.NewMockIServiceCatalogRepository(ctrl)
		uc := NewQuoteUseCase(repo, catalog)

		catalog.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.CatalogService{}, nil)

		_, err := uc.CreateQuote(context.Background(), sampleDraft())
		if !errors.Is(err, ErrCatalogServiceNotFound) {
			t.Fatalf("expected ErrCatalogServiceNotFound, got %v", err)
		}
	})

	t.Run("catalog service inactive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		catalog := mock_interfaces.NewMockIServiceCatalogRepository(ctrl)
		uc := NewQuoteUseCase(repo, catalog)

		svc := activeService()
		svc.Active = false
		catalog.EXPECT().GetByID(gomock.Any(), "svc-1").Return(svc, nil)

		_, err := uc.CreateQuote(context.Background(), sampleDraft())
		if !errors.Is(err, ErrCatalogServiceInactive) {
			t.Fatalf("expected ErrCatalogServiceInactive, got %v", err)
		}
	})

	t.Run("invalid work date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		catalog := mock_interfaces.NewMockIServiceCatalogRepository(ctrl)
		uc := NewQuoteUseCase(repo, catalog)

		catalog.EXPECT().GetByID(gomock.Any(), "svc-1").Return(activeService(), nil)

		draft := sampleDraft()
		draft.WorkDates = []entities.WorkDate{{Date: "10/09/2026"}}
		_, err := uc.CreateQuote(context.Background(), draft)
		if !errors.Is(err, scheduling.ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})

	t.Run("success with auto-fill", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		catalog := mock_interfaces.NewMockIServiceCatalogRepository(ctrl)
		uc := NewQuoteUseCase(repo, catalog)

		catalog.EXPECT().GetByID(gomock.Any(), "svc-1").Return(activeService(), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID == "" || q.Status != entities.QuoteStatusPendente {
					t.Fatalf("unexpected quote: %+v", q)
				}
				if q.Total != 100 || q.DayCount != 1 {
					t.Fatalf("unexpected totals: %+v", q)
				}
				if len(q.Assignments) != 1 || q.Assignments[0].WorkDate != "2026-09-10" {
					t.Fatalf("expected auto-filled assignment, got %+v", q.Assignments)
				}
				if q.CreatedAt.IsZero() || q.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return q, nil
			},
		)

		res, err := uc.CreateQuote(context.Background(), sampleDraft())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("base price pinned to catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		catalog := mock_interfaces.NewMockIServiceCatalogRepository(ctrl)
		uc := NewQuoteUseCase(repo, catalog)

		catalog.EXPECT().GetByID(gomock.Any(), "svc-1").Return(activeService(), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				// Caller claimed base 10 to dodge the floor; catalog wins and
				// the unit price is clamped to 95.
				if q.Items[0].BasePrice != 100 || q.Items[0].UnitPrice != 95 {
					t.Fatalf("unexpected item pricing: %+v", q.Items[0])
				}
				return q, nil
			},
		)

		draft := sampleDraft()
		draft.Items[0].BasePrice = 10
		draft.Items[0].UnitPrice = 10
		if _, err := uc.CreateQuote(context.Background(), draft); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.GetByID(context.Background(), "q-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1"}, nil)

		res, err := uc.GetByID(context.Background(), " q-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "q-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestQuoteUseCase_UpdateQuote(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil)
		_, _, err := uc.UpdateQuote(context.Background(), " ", sampleDraft(), false)
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, _, err := uc.UpdateQuote(context.Background(), "q-1", sampleDraft(), false)
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("weak change applies without confirmation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		catalog := mock_interfaces.NewMockIServiceCatalogRepository(ctrl)
		uc := NewQuoteUseCase(repo, catalog)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)
		catalog.EXPECT().GetByID(gomock.Any(), "svc-1").Return(activeService(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.Notes != "levar lente extra" {
					t.Fatalf("expected updated notes, got %q", q.Notes)
				}
				return q, nil
			},
		)

		draft := sampleDraft()
		draft.Notes = "levar lente extra"
		res, report, err := uc.UpdateQuote(context.Background(), "q-1", draft, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.HasStrongChange {
			t.Fatalf("expected weak change only, got %+v", report.Entries)
		}
		if res.Notes != "levar lente extra" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("strong change without confirmation is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		catalog := mock_interfaces.NewMockIServiceCatalogRepository(ctrl)
		uc := NewQuoteUseCase(repo, catalog)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)
		catalog.EXPECT().GetByID(gomock.Any(), "svc-1").Return(activeService(), nil)

		draft := sampleDraft()
		draft.WorkDates = []entities.WorkDate{{Date: "2026-09-11"}}
		draft.Assignments = nil

		_, report, err := uc.UpdateQuote(context.Background(), "q-1", draft, false)
		if !errors.Is(err, ErrConfirmationRequired) {
			t.Fatalf("expected ErrConfirmationRequired, got %v", err)
		}
		if report == nil || !report.HasStrongChange {
			t.Fatalf("expected strong diff report, got %+v", report)
		}
	})

	t.Run("strong change applies when confirmed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		catalog := mock_interfaces.NewMockIServiceCatalogRepository(ctrl)
		uc := NewQuoteUseCase(repo, catalog)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)
		catalog.EXPECT().GetByID(gomock.Any(), "svc-1").Return(activeService(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if len(q.WorkDates) != 1 || q.WorkDates[0].Date != "2026-09-11" {
					t.Fatalf("expected moved work date, got %+v", q.WorkDates)
				}
				return q, nil
			},
		)

		draft := sampleDraft()
		draft.WorkDates = []entities.WorkDate{{Date: "2026-09-11"}}
		draft.Assignments = nil

		_, report, err := uc.UpdateQuote(context.Background(), "q-1", draft, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !report.HasStrongChange {
			t.Fatalf("expected strong diff report, got %+v", report)
		}
	})
}

func TestQuoteUseCase_StatusFlows(t *testing.T) {
	cases := []struct {
		name   string
		call   func(uc *QuoteUseCase, ctx context.Context, id string) (entities.Quote, error)
		status entities.QuoteStatus
	}{
		{name: "approve", call: (*QuoteUseCase).ApproveByID, status: entities.QuoteStatusAprovado},
		{name: "reject", call: (*QuoteUseCase).RejectByID, status: entities.QuoteStatusRejeitado},
		{name: "cancel", call: (*QuoteUseCase).CancelByID, status: entities.QuoteStatusCancelado},
	}

	for _, tc := range cases {
		t.Run(tc.name+" invalid id", func(t *testing.T) {
			uc := NewQuoteUseCase(nil, nil)
			_, err := tc.call(uc, context.Background(), "")
			if !errors.Is(err, ErrInvalidQuoteID) {
				t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
			}
		})

		t.Run(tc.name+" repo error", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
			uc := NewQuoteUseCase(repo, nil)
			repo.EXPECT().UpdateStatus(gomock.Any(), "q-1", tc.status).Return(entities.Quote{}, errors.New("db"))

			_, err := tc.call(uc, context.Background(), "q-1")
			if err == nil || err.Error() != "db" {
				t.Fatalf("expected db error, got %v", err)
			}
		})

		t.Run(tc.name+" not found", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
			uc := NewQuoteUseCase(repo, nil)
			repo.EXPECT().UpdateStatus(gomock.Any(), "q-1", tc.status).Return(entities.Quote{}, nil)

			_, err := tc.call(uc, context.Background(), "q-1")
			if !errors.Is(err, ErrQuoteNotFound) {
				t.Fatalf("expected ErrQuoteNotFound, got %v", err)
			}
		})

		t.Run(tc.name+" success", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
			uc := NewQuoteUseCase(repo, nil)
			expected := entities.Quote{ID: "q-1", Status: tc.status}
			repo.EXPECT().UpdateStatus(gomock.Any(), "q-1", tc.status).Return(expected, nil)

			res, err := tc.call(uc, context.Background(), " q-1 ")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.status {
				t.Fatalf("expected %s got %s", tc.status, res.Status)
			}
		})
	}
}
