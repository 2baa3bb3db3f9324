package api

import (
	"errors"
	"net/http"

	"github.com/abr-content-api/internal/service"
	"github.com/gin-gonic/gin"
)

// respondError maps a service failure to an HTTP response. Only the fixed
// user-facing message leaves the process; the cause was already logged at
// the service boundary.
func respondError(c *gin.Context, err error) {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		status := http.StatusInternalServerError
		if svcErr.Kind == service.KindNotFound {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
