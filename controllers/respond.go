package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"blogapi/metrics"
	"blogapi/models"

	"github.com/gin-gonic/gin"
)

// respondError writes err as {"message": ...}. AppErrors keep their status;
// anything else is logged and hidden behind a 500.
func respondError(c *gin.Context, err error) {
	if appErr, ok := models.AsAppError(err); ok {
		metrics.ObserveError(string(appErr.Kind))
		c.JSON(appErr.Status(), models.MessageResponse{Message: appErr.Message})
		return
	}

	metrics.ObserveError("internal")
	slog.ErrorContext(c.Request.Context(), "request failed",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"error", err,
	)
	c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Internal server error"})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, models.MessageResponse{Message: message})
}

// bindJSON decodes the request body, reporting malformed input as a
// validation error.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, models.NewValidationError("Invalid request body"))
		return false
	}
	return true
}

// pathID parses the :id segment. Anything that is not a positive integer
// cannot name a resource, so it is reported as not found.
func pathID(c *gin.Context, resource string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		respondError(c, models.NewNotFoundError(resource+" not found"))
		return 0, false
	}
	return uint(id), true
}
