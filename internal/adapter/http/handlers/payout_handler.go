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

var errInvalidPayoutPayload = pkg.NewDomainErrorSimple("INVALID_PAYOUT_INPUT", "Invalid payout payload", http.StatusBadRequest)

// PayoutHandler handles HTTP requests for the staff payout ledger.

type PayoutHandler struct {
	usecase usecase.IPayoutUseCase
}

func NewPayoutHandler(uc usecase.IPayoutUseCase) *PayoutHandler {
	return &PayoutHandler{usecase: uc}
}

// ListPayouts returns the ledger, narrowed by the optional name query
// parameter (case-insensitive substring match).
func (h *PayoutHandler) ListPayouts(c *gin.Context) {
	payouts, err := h.usecase.ListPayouts(c.Request.Context(), c.Query("name"))
	if err != nil {
		appErr := mapPayoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStaffPayments(payouts))
}

func (h *PayoutHandler) AddPayout(c *gin.Context) {
	var payload request.PayoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayoutPayload.HTTPStatus, errInvalidPayoutPayload.ToHTTPError())
		return
	}

	payout, err := h.usecase.AddPayout(c.Request.Context(), payload.ToStaffPayment())
	if err != nil {
		appErr := mapPayoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromStaffPayment(payout))
}

func (h *PayoutHandler) DeletePayout(c *gin.Context) {
	if err := h.usecase.DeletePayout(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapPayoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapPayoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingPayoutFields):
		return pkg.NewDomainErrorSimple("INVALID_PAYOUT_INPUT", "Payout requires a name and a non-zero amount", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPayoutNotFound):
		return pkg.NewDomainErrorSimple("PAYOUT_NOT_FOUND", "Payout not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
