package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/streamcast/user-service/internal/common"
)

// writeError translates service errors into HTTP responses. Anything
// unrecognized becomes a generic 500 so internal details never leak to
// clients.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, common.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
	case errors.Is(err, common.ErrInactiveUser):
		c.JSON(http.StatusBadRequest, gin.H{"error": "inactive user"})
	case errors.Is(err, common.ErrUserNotFound), errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, common.ErrUserAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "user already exists"})
	case errors.Is(err, common.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
