package handlers

import (
	"errors"
	"net/http"

	response "mudafacil/internal/adapter/http/dto/response"
	"mudafacil/internal/usecase"
	"mudafacil/internal/usecase/interfaces"
	"mudafacil/pkg"

	"github.com/gin-gonic/gin"
)

// DepositPaymentHandler handles HTTP requests for reservation deposits charged
// on approved estimates.

type DepositPaymentHandler struct {
	usecase usecase.IDepositPaymentUseCase
}

func NewDepositPaymentHandler(uc usecase.IDepositPaymentUseCase) *DepositPaymentHandler {
	return &DepositPaymentHandler{usecase: uc}
}

// CreateDeposit godoc
// @Summary      Charge the reservation deposit for an approved estimate
// @Description  The request body is the payer payload forwarded to the payment provider; the amount comes from the stored estimate.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        estimate_id  path  string  true  "estimate id"
// @Success      201  {object}  response.DepositPaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /payments/{estimate_id} [post]
func (h *DepositPaymentHandler) CreateDeposit(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid payment payload", http.StatusBadRequest).ToHTTPError())
		return
	}

	p, err := h.usecase.CreateForEstimate(c.Request.Context(), c.Param("estimate_id"), raw)
	if err != nil {
		appErr := mapDepositError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromDepositPayment(p))
}

// ListDeposits godoc
// @Summary      List deposits recorded for an estimate
// @Tags         payments
// @Produce      json
// @Param        estimate_id  path  string  true  "estimate id"
// @Success      200  {array}  response.DepositPaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /payments/{estimate_id} [get]
func (h *DepositPaymentHandler) ListDeposits(c *gin.Context) {
	payments, err := h.usecase.ListByEstimateID(c.Request.Context(), c.Param("estimate_id"))
	if err != nil {
		appErr := mapDepositError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDepositPayments(payments))
}

func mapDepositError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDepositEstimate), errors.Is(err, usecase.ErrInvalidDepositPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotApproved):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_APPROVED", "Estimate must be approved before charging a deposit", http.StatusConflict)
	case errors.Is(err, interfaces.ErrDepositExists):
		return pkg.NewDomainErrorSimple("DEPOSIT_ALREADY_RECORDED", "A deposit with this payment id was already recorded", http.StatusConflict)
	case errors.Is(err, interfaces.ErrStorageUnavailable):
		return pkg.NewDomainErrorSimple("STORAGE_UNAVAILABLE", "Storage temporarily unavailable, retry later", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
