package routes

import (
	"fotoeventos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes   = "/quotes"
	PathOrders   = "/orders"
	PathPayments = "/payments"
	PathCatalog  = "/catalog"
)

func addBookingRoutes(
	rg *gin.RouterGroup,
	quoteHandler *handlers.QuoteHandler,
	orderHandler *handlers.OrderHandler,
	paymentHandler *handlers.BookingPaymentHandler,
	catalogHandler *handlers.CatalogHandler,
) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("/:quote_id", quoteHandler.GetQuote)
		quotes.PUT("/:quote_id", quoteHandler.UpdateQuote)
		quotes.PATCH("/:quote_id/approve", quoteHandler.ApproveQuote)
		quotes.PATCH("/:quote_id/reject", quoteHandler.RejectQuote)
		quotes.PATCH("/:quote_id/cancel", quoteHandler.CancelQuote)
	}

	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:order_id", orderHandler.GetOrder)
		orders.PUT("/:order_id", orderHandler.UpdateOrder)
		orders.PATCH("/:order_id/complete", orderHandler.CompleteOrder)
		orders.PATCH("/:order_id/cancel", orderHandler.CancelOrder)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:order_id", paymentHandler.CreatePaymentByOrderID)
		payments.GET("/:order_id", paymentHandler.GetPaymentByOrderID)
	}

	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/services", catalogHandler.ListServices)
		catalog.GET("/services/:service_id", catalogHandler.GetService)
	}
}
