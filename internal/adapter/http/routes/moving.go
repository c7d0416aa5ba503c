package routes

import (
	"mudafacil/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathPricing   = "/pricing"
	PathPayments  = "/payments"
)

func addMovingRoutes(
	rg *gin.RouterGroup,
	estimateHandler *handlers.EstimateHandler,
	pricingHandler *handlers.PricingHandler,
	depositHandler *handlers.DepositPaymentHandler,
) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.SubmitEstimate)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.PATCH("/:id/approve", estimateHandler.ApproveEstimate)
		estimates.PATCH("/:id/reject", estimateHandler.RejectEstimate)
		estimates.PATCH("/:id/complete", estimateHandler.CompleteEstimate)
	}

	pricing := rg.Group(PathPricing)
	{
		pricing.GET("/items/:type", pricingHandler.GetItemPrice)
		pricing.GET("/range", pricingHandler.GetPriceRange)
		pricing.GET("/catalog", pricingHandler.GetCatalog)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:estimate_id", depositHandler.CreateDeposit)
		payments.GET("/:estimate_id", depositHandler.ListDeposits)
	}
}
