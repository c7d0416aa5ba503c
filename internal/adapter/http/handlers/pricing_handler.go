package handlers

import (
	"errors"
	"net/http"
	"strconv"

	response "mudafacil/internal/adapter/http/dto/response"
	"mudafacil/internal/usecase"
	"mudafacil/pkg"

	"github.com/gin-gonic/gin"
)

// PricingHandler exposes the read-only pricing queries. Nothing here writes to
// any store.

type PricingHandler struct {
	usecase usecase.IPricingUseCase
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

// GetItemPrice godoc
// @Summary      Price a single furniture type
// @Tags         pricing
// @Produce      json
// @Param        type      path   string  true   "item type"
// @Param        quantity  query  int     false  "quantity (default 1)"
// @Success      200  {object}  response.ItemPriceResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /pricing/items/{type} [get]
func (h *PricingHandler) GetItemPrice(c *gin.Context) {
	quantity := 1
	if raw := c.Query("quantity"); raw != "" {
		q, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_QUANTITY", "Quantity must be an integer", http.StatusBadRequest).ToHTTPError())
			return
		}
		quantity = q
	}

	quote, err := h.usecase.GetItemPrice(c.Param("type"), quantity)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromItemQuote(quote))
}

// GetPriceRange godoc
// @Summary      Displayed min/max estimate bracket
// @Tags         pricing
// @Produce      json
// @Success      200  {object}  response.PriceRangeResponse
// @Router       /pricing/range [get]
func (h *PricingHandler) GetPriceRange(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromPriceRange(h.usecase.GetPriceRange()))
}

// GetCatalog godoc
// @Summary      Full furniture pricing catalog
// @Tags         pricing
// @Produce      json
// @Success      200  {array}  response.CatalogEntryResponse
// @Router       /pricing/catalog [get]
func (h *PricingHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCatalogEntries(h.usecase.GetCatalog()))
}

func mapPricingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidItemType), errors.Is(err, usecase.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
