package routes

import (
	"log"
	"os"
	"strconv"

	_ "fotoeventos/docs" // This will be auto-generated
	"fotoeventos/internal/adapter/http/handlers"
	repository2 "fotoeventos/internal/adapter/persistence/repository"
	"fotoeventos/internal/infrastructure/database"
	"fotoeventos/internal/infrastructure/payments"
	"fotoeventos/internal/usecase"
	"fotoeventos/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	paymentRepo := repository2.NewBookingPaymentDynamoRepository(ddb)
	catalogRepo := repository2.NewServiceCatalogDynamoRepository(ddb)

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, catalogRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, quoteRepo, catalogRepo)
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	paymentUseCase := usecase.NewBookingPaymentUseCase(paymentRepo, orderRepo, paymentGateway)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	bookingPaymentHandler := handlers.NewBookingPaymentHandler(paymentUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBookingRoutes(v1, quoteHandler, orderHandler, bookingPaymentHandler, catalogHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
