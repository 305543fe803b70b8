package api

import (
	"errors"
	"net/http"

	"github.com/Antonov7512/drinkkiosk/internal/service/catalogsvc"
	"github.com/Antonov7512/drinkkiosk/internal/service/guest"
	"github.com/Antonov7512/drinkkiosk/internal/wizard"
	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto status codes. Persistence failures
// stay generic: the mutation was adopted locally and may be retried.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalogsvc.ErrSaveFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to save changes"})
	case errors.Is(err, guest.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, wizard.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
