package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	request "fotoeventos/internal/adapter/http/dto/request"
	response "fotoeventos/internal/adapter/http/dto/response"
	"fotoeventos/internal/domain/entities"
	"fotoeventos/internal/domain/scheduling"
	"fotoeventos/internal/usecase"
	"fotoeventos/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBookingPayload = pkg.NewDomainErrorSimple("INVALID_BOOKING_INPUT", "Invalid booking payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for quotes.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.BookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.CreateQuote(c.Request.Context(), draftFromBooking(payload))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// UpdateQuote replaces the full booking payload of a quote. Strong changes
// against the stored state require confirmed=true; without it the handler
// answers 409 with the classified change list so the operator can review.
func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	var payload request.BookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	quoteID := c.Param("quote_id")
	confirmed := isConfirmed(c)

	quote, report, err := h.usecase.UpdateQuote(c.Request.Context(), quoteID, draftFromBooking(payload), confirmed)
	if err != nil {
		if errors.Is(err, usecase.ErrConfirmationRequired) {
			c.JSON(http.StatusConflict, response.FromDiffReport(
				"CONFIRMATION_REQUIRED",
				"Update carries strong changes and requires confirmed=true",
				report,
			))
			return
		}
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) ApproveQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.ApproveByID)
}

func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.RejectByID)
}

func (h *QuoteHandler) CancelQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.CancelByID)
}

func (h *QuoteHandler) patchQuoteStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Quote, error),
) {
	quote, err := updater(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func draftFromBooking(payload request.BookingRequest) usecase.BookingDraft {
	return usecase.BookingDraft{
		ClientName:  payload.ClientName,
		EventName:   payload.EventName,
		EventType:   payload.EventType,
		Notes:       payload.Notes,
		WorkDates:   payload.EntityWorkDates(),
		Locations:   payload.EntityLocations(),
		Items:       payload.EntityItems(),
		Assignments: payload.EntityAssignments(),
	}
}

func isConfirmed(c *gin.Context) bool {
	return strings.EqualFold(strings.TrimSpace(c.Query("confirmed")), "true")
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCatalogServiceNotFound):
		return pkg.NewDomainErrorSimple("CATALOG_SERVICE_NOT_FOUND", "Referenced catalog service does not exist", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCatalogServiceInactive):
		return pkg.NewDomainErrorSimple("CATALOG_SERVICE_INACTIVE", "Referenced catalog service is retired", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case isBookingValidationError(err):
		return pkg.NewDomainErrorSimple("INVALID_BOOKING", err.Error(), http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// isBookingValidationError spots the scheduling engine's boundary errors so
// they surface as 422 with the engine's own message instead of a generic 500.
func isBookingValidationError(err error) bool {
	sentinels := []error{
		scheduling.ErrInvalidDayCount,
		scheduling.ErrInvalidDate,
		scheduling.ErrInvalidTimeOfDay,
		scheduling.ErrInvalidQuantity,
		scheduling.ErrUnknownWorkDate,
		scheduling.ErrUnknownItem,
		scheduling.ErrUnknownLocation,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return true
		}
	}

	var dupErr *scheduling.DuplicateDateError
	var capErr *scheduling.CapacityExceededError
	var covErr *scheduling.IncompleteCoverageError
	var qtyErr *scheduling.InsufficientQuantityError
	return errors.As(err, &dupErr) || errors.As(err, &capErr) || errors.As(err, &covErr) || errors.As(err, &qtyErr)
}
