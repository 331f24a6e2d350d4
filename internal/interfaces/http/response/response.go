package response

import (
	"github.com/gin-gonic/gin"
	domainerrors "artisan-connect.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response mapped from the domain taxonomy
func Error(c *gin.Context, err error) {
	status := domainerrors.StatusFor(err)

	message := err.Error()
	if appErr, ok := err.(*domainerrors.AppError); ok {
		message = appErr.Message
	}

	c.JSON(status, gin.H{
		"code":    status,
		"message": message,
		"error":   message, // backward compatibility
	})
}
