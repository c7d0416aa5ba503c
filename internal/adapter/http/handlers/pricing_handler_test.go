package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"mudafacil/internal/adapter/http/handlers/mocks"
	"mudafacil/internal/domain/catalog"
	"mudafacil/internal/domain/pricing"
	"mudafacil/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPricingHandler_GetItemPrice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *PricingHandler) *gin.Engine {
		r := gin.New()
		r.GET("/v1/pricing/items/:type", h.GetItemPrice)
		return r
	}

	t.Run("non-numeric quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)
		r := newRouter(h)

		req := httptest.NewRequest(http.MethodGet, "/v1/pricing/items/sofa?quantity=abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("quantity out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)
		r := newRouter(h)

		uc.EXPECT().GetItemPrice("sofa", 99).Return(pricing.ItemQuote{}, usecase.ErrInvalidQuantity)

		req := httptest.NewRequest(http.MethodGet, "/v1/pricing/items/sofa?quantity=99", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("defaults quantity to one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)
		r := newRouter(h)

		uc.EXPECT().GetItemPrice("sofa", 1).Return(pricing.ItemQuote{ItemType: "sofa", Quantity: 1, BasePrice: 300, TotalPrice: 400, NeedsDisassemble: true}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/pricing/items/sofa", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["type"] != "sofa" || body["total_price"] != float64(400) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("explicit quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)
		r := newRouter(h)

		uc.EXPECT().GetItemPrice("box", 10).Return(pricing.ItemQuote{ItemType: "box", Quantity: 10, BasePrice: 15, TotalPrice: 150}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/pricing/items/box?quantity=10", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPricingHandler_GetPriceRange(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPricingUseCase(ctrl)
	h := NewPricingHandler(uc)
	r := gin.New()
	r.GET("/v1/pricing/range", h.GetPriceRange)

	uc.EXPECT().GetPriceRange().Return(pricing.Range{Min: 700, Max: 6400})

	req := httptest.NewRequest(http.MethodGet, "/v1/pricing/range", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["min"] != float64(700) || body["max"] != float64(6400) {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestPricingHandler_GetCatalog(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPricingUseCase(ctrl)
	h := NewPricingHandler(uc)
	r := gin.New()
	r.GET("/v1/pricing/catalog", h.GetCatalog)

	uc.EXPECT().GetCatalog().Return([]catalog.Entry{
		{Type: "box", BasePrice: 15, Description: "Caixa de mudança", MaxQuantity: 50},
		{Type: "sofa", BasePrice: 300, Description: "Sofá", NeedsDisassemble: true, MaxQuantity: 10},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/pricing/catalog", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 2 || body[0]["type"] != "box" {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestMapPricingError(t *testing.T) {
	if got := mapPricingError(usecase.ErrInvalidItemType); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapPricingError(usecase.ErrInvalidQuantity); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapPricingError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
