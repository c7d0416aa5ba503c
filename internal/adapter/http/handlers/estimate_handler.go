package handlers

import (
	"context"
	"errors"
	"net/http"

	request "mudafacil/internal/adapter/http/dto/request"
	response "mudafacil/internal/adapter/http/dto/response"
	"mudafacil/internal/domain/entities"
	"mudafacil/internal/domain/validation"
	"mudafacil/internal/usecase"
	"mudafacil/internal/usecase/interfaces"
	"mudafacil/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)

// EstimateHandler handles HTTP requests for moving estimates: submission,
// retrieval and the status lifecycle.

type EstimateHandler struct {
	submit usecase.ISubmitEstimateUseCase
	status usecase.IEstimateStatusUseCase
}

func NewEstimateHandler(submit usecase.ISubmitEstimateUseCase, status usecase.IEstimateStatusUseCase) *EstimateHandler {
	return &EstimateHandler{submit: submit, status: status}
}

// SubmitEstimate godoc
// @Summary      Submit a moving estimate
// @Description  Validates the submission, resolves the customer, prices the move and stores the estimate.
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        payload  body  request.SubmitEstimateRequest  true  "submission"
// @Success      201  {object}  response.SubmitEstimateResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /estimates [post]
func (h *EstimateHandler) SubmitEstimate(c *gin.Context) {
	var payload request.SubmitEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	cust, move, items := payload.ToInputs()
	res, err := h.submit.Submit(c.Request.Context(), cust, move, items)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.SubmitEstimateResponse{
		EstimateID: res.EstimateID,
		CustomerID: res.CustomerID,
		TotalPrice: res.TotalPrice,
	})
}

// GetEstimate godoc
// @Summary      Fetch an estimate by id
// @Tags         estimates
// @Produce      json
// @Param        id  path  string  true  "estimate id"
// @Success      200  {object}  response.EstimateResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /estimates/{id} [get]
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	e, err := h.submit.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(e))
}

// ApproveEstimate godoc
// @Summary      Approve a pending estimate
// @Tags         estimates
// @Produce      json
// @Param        id  path  string  true  "estimate id"
// @Success      200  {object}  response.EstimateResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /estimates/{id}/approve [patch]
func (h *EstimateHandler) ApproveEstimate(c *gin.Context) {
	h.patchStatus(c, h.status.Approve)
}

// RejectEstimate godoc
// @Summary      Reject a pending estimate
// @Tags         estimates
// @Produce      json
// @Param        id  path  string  true  "estimate id"
// @Success      200  {object}  response.EstimateResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /estimates/{id}/reject [patch]
func (h *EstimateHandler) RejectEstimate(c *gin.Context) {
	h.patchStatus(c, h.status.Reject)
}

// CompleteEstimate godoc
// @Summary      Mark an approved estimate as completed
// @Tags         estimates
// @Produce      json
// @Param        id  path  string  true  "estimate id"
// @Success      200  {object}  response.EstimateResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /estimates/{id}/complete [patch]
func (h *EstimateHandler) CompleteEstimate(c *gin.Context) {
	h.patchStatus(c, h.status.Complete)
}

func (h *EstimateHandler) patchStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Estimate, error),
) {
	e, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(e))
}

func mapEstimateError(err error) *pkg.AppError {
	var verr *validation.ValidationError
	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", "One or more fields are invalid", http.StatusBadRequest).
			WithDetails(verr.Fields)
	case errors.Is(err, usecase.ErrInvalidEstimateID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Estimate status does not allow this transition", http.StatusConflict)
	case errors.Is(err, interfaces.ErrStorageUnavailable):
		return pkg.NewDomainErrorSimple("STORAGE_UNAVAILABLE", "Storage temporarily unavailable, retry later", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
