package routes

import (
	"log"
	"strconv"

	_ "paintworks/docs" // This will be auto-generated
	"paintworks/internal/adapter/http/handlers"
	"paintworks/internal/adapter/persistence/repository"
	"paintworks/internal/infrastructure/database"
	"paintworks/internal/usecase"

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

	stateRepo := repository.NewStateDynamoRepository(ddb)

	allocator := usecase.NewNumberAllocator(stateRepo)
	estimateUseCase := usecase.NewEstimateUseCase(stateRepo, stateRepo, allocator)
	jobUseCase := usecase.NewJobUseCase(stateRepo, stateRepo)
	invoiceUseCase := usecase.NewInvoiceUseCase(stateRepo, stateRepo)
	priceListUseCase := usecase.NewPriceListUseCase(stateRepo)
	expenseUseCase := usecase.NewExpenseUseCase(stateRepo)
	payoutUseCase := usecase.NewPayoutUseCase(stateRepo)

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	jobHandler := handlers.NewJobHandler(jobUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)
	priceListHandler := handlers.NewPriceListHandler(priceListUseCase)
	expenseHandler := handlers.NewExpenseHandler(expenseUseCase)
	payoutHandler := handlers.NewPayoutHandler(payoutUseCase)
	numberHandler := handlers.NewNumberHandler(allocator)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addJobCostingRoutes(v1, estimateHandler, jobHandler, invoiceHandler, numberHandler)
	addLedgerRoutes(v1, priceListHandler, expenseHandler, payoutHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
