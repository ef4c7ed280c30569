package routes

import (
	"log"
	_ "inspect_billing/docs" // This will be auto-generated
	"inspect_billing/internal/adapter/http/handlers"
	repository2 "inspect_billing/internal/adapter/persistence/repository"
	"inspect_billing/internal/infrastructure/database"
	"inspect_billing/internal/infrastructure/payments"
	"inspect_billing/internal/usecase"
	"inspect_billing/internal/usecase/interfaces"
	"os"
	"strconv"

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

	jobRepo := repository2.NewJobDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentRecordDynamoRepository(ddb)
	discountRepo := repository2.NewDiscountCodeDynamoRepository(ddb)
	addonRepo := repository2.NewAddonRequestDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	jobUseCase := usecase.NewJobUseCase(jobRepo, paymentRepo, discountRepo)
	paymentUseCase := usecase.NewPaymentUseCase(jobRepo, paymentRepo, discountRepo, paymentGateway)
	addonUseCase := usecase.NewAddonRequestUseCase(addonRepo, jobRepo, discountRepo)
	discountUseCase := usecase.NewDiscountCodeUseCase(discountRepo)

	jobHandler := handlers.NewJobHandler(jobUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	addonHandler := handlers.NewAddonRequestHandler(addonUseCase)
	discountHandler := handlers.NewDiscountCodeHandler(discountUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBillingRoutes(v1, jobHandler, paymentHandler, addonHandler, discountHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
