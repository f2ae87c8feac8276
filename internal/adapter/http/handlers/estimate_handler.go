package handlers

import (
	"errors"
	"net/http"

	request "paintworks/internal/adapter/http/dto/request"
	response "paintworks/internal/adapter/http/dto/response"
	"paintworks/internal/usecase"
	"paintworks/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)

// EstimateHandler handles HTTP requests for the estimate stage of the
// job lifecycle.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	estimates, err := h.usecase.ListEstimates(c.Request.Context())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJobRecords(estimates))
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetByJobNumber(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJobRecord(estimate))
}

// SaveEstimate upserts the submitted estimate by job number. A blank
// job number comes back filled with the next allocated one.
func (h *EstimateHandler) SaveEstimate(c *gin.Context) {
	var payload request.JobRecordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.SaveEstimate(c.Request.Context(), payload.ToRecord())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromJobRecord(estimate))
}

func (h *EstimateHandler) DeleteEstimate(c *gin.Context) {
	idx, ok := paramIndex(c, "id")
	if !ok {
		return
	}
	if err := h.usecase.DeleteEstimate(c.Request.Context(), idx); err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// PromoteEstimate copies the estimate at the given index into the open
// jobs.
func (h *EstimateHandler) PromoteEstimate(c *gin.Context) {
	idx, ok := paramIndex(c, "id")
	if !ok {
		return
	}
	job, err := h.usecase.PromoteToOpenJob(c.Request.Context(), idx)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromJobRecord(job))
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrIndexOutOfRange):
		return pkg.NewDomainErrorSimple("INDEX_OUT_OF_RANGE", "No record at that position", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
