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

var errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)

// InvoiceHandler handles HTTP requests for the invoice collection.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.usecase.ListInvoices(c.Request.Context())
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJobRecords(invoices))
}

func (h *InvoiceHandler) SaveInvoice(c *gin.Context) {
	var payload request.JobRecordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	invoice, err := h.usecase.SaveInvoice(c.Request.Context(), payload.ToRecord())
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromJobRecord(invoice))
}

func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	idx, ok := paramIndex(c, "index")
	if !ok {
		return
	}
	if err := h.usecase.DeleteInvoice(c.Request.Context(), idx); err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// InvoiceClosedJob turns the closed job at the given index into an
// invoice.
func (h *InvoiceHandler) InvoiceClosedJob(c *gin.Context) {
	idx, ok := paramIndex(c, "index")
	if !ok {
		return
	}
	invoice, err := h.usecase.CreateFromClosedJob(c.Request.Context(), idx)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromJobRecord(invoice))
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrIndexOutOfRange):
		return pkg.NewDomainErrorSimple("INDEX_OUT_OF_RANGE", "No record at that position", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
