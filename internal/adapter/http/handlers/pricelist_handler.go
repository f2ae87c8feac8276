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

var errInvalidPriceListPayload = pkg.NewDomainErrorSimple("INVALID_PRICELIST_INPUT", "Invalid price list payload", http.StatusBadRequest)

// PriceListHandler handles HTTP requests for the per-context price
// lists. The context path parameter is one of estimate, job, invoice.

type PriceListHandler struct {
	usecase usecase.IPriceListUseCase
}

func NewPriceListHandler(uc usecase.IPriceListUseCase) *PriceListHandler {
	return &PriceListHandler{usecase: uc}
}

// GetPriceList returns the effective list of the context: built-in
// defaults with the saved overrides folded in.
func (h *PriceListHandler) GetPriceList(c *gin.Context) {
	pc := usecase.PricingContext(c.Param("context"))
	options, err := h.usecase.EffectiveList(c.Request.Context(), pc)
	if err != nil {
		appErr := mapPriceListError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPriceList(string(pc), options))
}

// SavePriceList replaces the context's override list with the submitted
// options.
func (h *PriceListHandler) SavePriceList(c *gin.Context) {
	pc := usecase.PricingContext(c.Param("context"))
	var payload request.PriceListRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPriceListPayload.HTTPStatus, errInvalidPriceListPayload.ToHTTPError())
		return
	}

	if err := h.usecase.SaveList(c.Request.Context(), pc, payload.ToOptions()); err != nil {
		appErr := mapPriceListError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	options, err := h.usecase.EffectiveList(c.Request.Context(), pc)
	if err != nil {
		appErr := mapPriceListError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPriceList(string(pc), options))
}

func mapPriceListError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnknownPricingContext):
		return pkg.NewDomainErrorSimple("UNKNOWN_PRICING_CONTEXT", "Pricing context must be estimate, job or invoice", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
