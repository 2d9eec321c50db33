package handlers

import (
	"context"
	"errors"
	"net/http"

	request "fotoeventos/internal/adapter/http/dto/request"
	response "fotoeventos/internal/adapter/http/dto/response"
	"fotoeventos/internal/domain/entities"
	"fotoeventos/internal/usecase"
	"fotoeventos/pkg"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles HTTP requests for orders.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder confirms an approved quote into an order.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload struct {
		QuoteID string `json:"quote_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.usecase.CreateFromQuote(c.Request.Context(), payload.QuoteID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// UpdateOrder replaces the full booking payload of an active order, behind
// the same confirmation gate as quote updates.
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	var payload request.BookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	orderID := c.Param("order_id")
	confirmed := isConfirmed(c)

	order, report, err := h.usecase.UpdateOrder(c.Request.Context(), orderID, draftFromBooking(payload), confirmed)
	if err != nil {
		if errors.Is(err, usecase.ErrConfirmationRequired) {
			c.JSON(http.StatusConflict, response.FromDiffReport(
				"CONFIRMATION_REQUIRED",
				"Update carries strong changes and requires confirmed=true",
				report,
			))
			return
		}
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) CompleteOrder(c *gin.Context) {
	h.patchOrderStatus(c, h.usecase.CompleteByID)
}

func (h *OrderHandler) CancelOrder(c *gin.Context) {
	h.patchOrderStatus(c, h.usecase.CancelByID)
}

func (h *OrderHandler) patchOrderStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Order, error),
) {
	order, err := updater(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotApproved):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_APPROVED", "Quote not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderAlreadyExists):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_EXISTS", "An order already exists for this quote", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotEditable):
		return pkg.NewDomainErrorSimple("ORDER_NOT_EDITABLE", "Order is not active", http.StatusConflict)
	case errors.Is(err, usecase.ErrCatalogServiceNotFound):
		return pkg.NewDomainErrorSimple("CATALOG_SERVICE_NOT_FOUND", "Referenced catalog service does not exist", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCatalogServiceInactive):
		return pkg.NewDomainErrorSimple("CATALOG_SERVICE_INACTIVE", "Referenced catalog service is retired", http.StatusUnprocessableEntity)
	case isBookingValidationError(err):
		return pkg.NewDomainErrorSimple("INVALID_BOOKING", err.Error(), http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
