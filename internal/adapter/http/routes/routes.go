package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	_ "mudafacil/docs" // generated by swag
	"mudafacil/internal/adapter/http/handlers"
	"mudafacil/internal/adapter/persistence/repository"
	"mudafacil/internal/domain/catalog"
	"mudafacil/internal/domain/pricing"
	"mudafacil/internal/domain/validation"
	"mudafacil/internal/infrastructure/database"
	"mudafacil/internal/infrastructure/payments"
	"mudafacil/internal/usecase"
	"mudafacil/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run starts the server.
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	if err := router.Run(":" + strconv.Itoa(PORT)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	customerRepo := repository.NewCustomerDynamoRepository(ddb)
	estimateRepo := repository.NewEstimateDynamoRepository(ddb)
	paymentRepo := repository.NewDepositPaymentDynamoRepository(ddb)

	cat := loadCatalog(repository.NewStaticCatalogSource())
	validator := validation.New(cat)
	pricer := pricing.NewEngine(cat)

	submitUseCase := usecase.NewSubmitEstimateUseCase(validator, pricer, customerRepo, estimateRepo)
	statusUseCase := usecase.NewEstimateStatusUseCase(estimateRepo)
	pricingUseCase := usecase.NewPricingUseCase(pricer, cat)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}
	depositUseCase := usecase.NewDepositPaymentUseCase(paymentRepo, estimateRepo, paymentGateway)

	estimateHandler := handlers.NewEstimateHandler(submitUseCase, statusUseCase)
	pricingHandler := handlers.NewPricingHandler(pricingUseCase)
	depositHandler := handlers.NewDepositPaymentHandler(depositUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMovingRoutes(v1, estimateHandler, pricingHandler, depositHandler)
}

// loadCatalog reads the furniture pricing table once; the catalog built from it
// is immutable for the rest of the process lifetime.
func loadCatalog(source interfaces.ICatalogSource) *catalog.Catalog {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	entries, err := source.GetAllFurniturePricing(ctx)
	if err != nil {
		log.Fatalf("failed to load furniture catalog: %v", err)
	}
	cat, err := catalog.New(entries)
	if err != nil {
		log.Fatalf("invalid furniture catalog: %v", err)
	}
	log.Printf("[catalog] loaded %d entries", len(entries))
	return cat
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(corsConfig()))
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PATCH", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}

	origins := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS"))
	if origins == "" {
		cfg.AllowAllOrigins = true
		return cfg
	}
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowOrigins = append(cfg.AllowOrigins, origin)
		}
	}
	return cfg
}
