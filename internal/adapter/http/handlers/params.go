package handlers

import (
	"net/http"
	"strconv"

	"paintworks/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidIndex = pkg.NewDomainErrorSimple("INVALID_INDEX", "Index must be a non-negative integer", http.StatusBadRequest)

// paramIndex reads a positional index path parameter. On bad input it
// writes the 400 response itself and reports false.
func paramIndex(c *gin.Context, name string) (int, bool) {
	idx, err := strconv.Atoi(c.Param(name))
	if err != nil || idx < 0 {
		c.JSON(errInvalidIndex.HTTPStatus, errInvalidIndex.ToHTTPError())
		return 0, false
	}
	return idx, true
}
