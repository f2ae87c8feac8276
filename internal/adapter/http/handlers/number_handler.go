package handlers

import (
	"net/http"

	response "paintworks/internal/adapter/http/dto/response"
	"paintworks/internal/usecase"
	"paintworks/pkg"

	"github.com/gin-gonic/gin"
)

// NumberHandler serves the next suggested job number.

type NumberHandler struct {
	allocator usecase.INumberAllocator
}

func NewNumberHandler(allocator usecase.INumberAllocator) *NumberHandler {
	return &NumberHandler{allocator: allocator}
}

func (h *NumberHandler) NextJobNumber(c *gin.Context) {
	number, err := h.allocator.NextNumber(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.JobNumberResponse{JobNumber: number})
}
