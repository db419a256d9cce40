package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uniwell/mindcare/internal/services"
)

// respondErr maps service error codes onto HTTP statuses. Anything that
// is not a ServiceError is a 500.
func respondErr(c *gin.Context, err error) {
	if se, ok := services.AsServiceError(err); ok {
		c.JSON(statusFor(se.Code), gin.H{"error": se.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

func statusFor(code services.ErrorCode) int {
	switch code {
	case services.ErrorInvalid:
		return http.StatusBadRequest
	case services.ErrorUnauthorized:
		return http.StatusUnauthorized
	case services.ErrorForbidden:
		return http.StatusForbidden
	case services.ErrorNotFound:
		return http.StatusNotFound
	case services.ErrorConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
