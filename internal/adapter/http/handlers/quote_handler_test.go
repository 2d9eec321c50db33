package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fotoeventos/internal/adapter/http/handlers/mocks"
	"fotoeventos/internal/domain/entities"
	"fotoeventos/internal/domain/scheduling"
	"fotoeventos/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const bookingBody = `{
	"client_name": "Ana Souza",
	"event_name": "Casamento Ana e Pedro",
	"event_type": "casamento",
	"work_dates": [{"date": "2026-09-10"}],
	"items": [{"catalog_id": "svc-1", "title": "Cobertura fotográfica", "unit_price": 100, "quantity": 1}]
}`

func sampleQuote() entities.Quote {
	now := time.Now().UTC()
	return entities.Quote{
		ID:         "q-1",
		ClientName: "Ana Souza",
		EventName:  "Casamento Ana e Pedro",
		DayCount:   1,
		WorkDates:  []entities.WorkDate{{Date: "2026-09-10"}},
		Items: []entities.ServiceLineItem{
			{ID: "item-1", CatalogID: "svc-1", Title: "Cobertura fotográfica", UnitPrice: 100, BasePrice: 100, Quantity: 1},
		},
		Assignments: []entities.Assignment{{ItemID: "item-1", WorkDate: "2026-09-10"}},
		Total:       100,
		Status:      entities.QuoteStatusPendente,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("engine validation error maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		uc.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).Return(entities.Quote{}, fmt.Errorf("%w: %q", scheduling.ErrInvalidDate, "10/09/2026"))

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(bookingBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("catalog reference error maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		uc.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).Return(entities.Quote{}, usecase.ErrCatalogServiceNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(bookingBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		uc.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, draft usecase.BookingDraft) (entities.Quote, error) {
				if draft.ClientName != "Ana Souza" || len(draft.WorkDates) != 1 || len(draft.Items) != 1 {
					t.Fatalf("unexpected draft: %+v", draft)
				}
				return sampleQuote(), nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(bookingBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["id"] != "q-1" || body["status"] != "pendente" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestQuoteHandler_GetQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:quote_id", h.GetQuote)

		uc.EXPECT().GetByID(gomock.Any(), "q-404").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:quote_id", h.GetQuote)

		uc.EXPECT().GetByID(gomock.Any(), "q-1").Return(sampleQuote(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_UpdateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("strong change answers 409 with change list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PUT("/v1/quotes/:quote_id", h.UpdateQuote)

		report := &scheduling.DiffReport{
			HasStrongChange: true,
			Entries: []scheduling.DiffEntry{
				{Label: "work date added", After: "2026-09-12", Severity: scheduling.SeverityStrong},
			},
		}
		uc.EXPECT().UpdateQuote(gomock.Any(), "q-1", gomock.Any(), false).Return(entities.Quote{}, report, usecase.ErrConfirmationRequired)

		req := httptest.NewRequest(http.MethodPut, "/v1/quotes/q-1", bytes.NewBufferString(bookingBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["code"] != "CONFIRMATION_REQUIRED" || body["has_strong_change"] != true {
			t.Fatalf("unexpected body: %v", body)
		}
		changes, ok := body["changes"].([]any)
		if !ok || len(changes) != 1 {
			t.Fatalf("expected one change entry, got %v", body["changes"])
		}
	})

	t.Run("confirmed flag is forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PUT("/v1/quotes/:quote_id", h.UpdateQuote)

		report := &scheduling.DiffReport{HasStrongChange: true}
		uc.EXPECT().UpdateQuote(gomock.Any(), "q-1", gomock.Any(), true).Return(sampleQuote(), report, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/quotes/q-1?confirmed=true", bytes.NewBufferString(bookingBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_StatusFlows(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approve success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:quote_id/approve", h.ApproveQuote)

		q := sampleQuote()
		q.Status = entities.QuoteStatusAprovado
		uc.EXPECT().ApproveByID(gomock.Any(), "q-1").Return(q, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("cancel not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:quote_id/cancel", h.CancelQuote)

		uc.EXPECT().CancelByID(gomock.Any(), "q-404").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-404/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
