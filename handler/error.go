package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduquery/eduquery-be/types"
)

// sendError maps the error taxonomy onto HTTP statuses. Denied access
// must stay distinguishable from a missing document, and a dependency
// outage from a hard failure so callers know a retry can help.
func sendError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, types.ErrAccessDenied):
		c.JSON(http.StatusForbidden, types.DataResponse{
			Status:  false,
			Message: "You do not have access to this document",
		})
	case errors.Is(err, types.ErrNotFound):
		c.JSON(http.StatusNotFound, types.DataResponse{
			Status:  false,
			Message: "Document not found",
		})
	case errors.Is(err, types.ErrDependencyUnavailable):
		c.JSON(http.StatusServiceUnavailable, types.DataResponse{
			Status:  false,
			Message: "A backing service is unavailable, please retry",
		})
	default:
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
	}
}
