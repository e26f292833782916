// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Responses follow the flat wire format of the API: success bodies are plain
// JSON objects ({"message": ..., "<entity>": ...}, lists wrapped under a named
// key), error bodies are {"error": "<message>"}.

func SuccessResponse(c *gin.Context, data gin.H) {
	c.JSON(http.StatusOK, data)
}

func CreatedResponse(c *gin.Context, data gin.H) {
	c.JSON(http.StatusCreated, data)
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

func BadRequestResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	ErrorResponse(c, http.StatusBadRequest, message)
}

func UnauthorizedResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	ErrorResponse(c, http.StatusUnauthorized, message)
}

func ForbiddenResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Insufficient permissions"
	}
	ErrorResponse(c, http.StatusForbidden, message)
}

func NotFoundResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Not found"
	}
	ErrorResponse(c, http.StatusNotFound, message)
}

func ConflictResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusConflict, message)
}

func InternalErrorResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	ErrorResponse(c, http.StatusInternalServerError, message)
}

func ValidationErrorResponse(c *gin.Context, errors []ValidationError) {
	// The wire format is a single flat error string; the first violation names
	// the problem well enough.
	message := "Missing required fields"
	if len(errors) > 0 && errors[0].Tag != "required" {
		message = errors[0].Message
	}
	ErrorResponse(c, http.StatusBadRequest, message)
}

func GetUserRoleFromContext(c *gin.Context) (string, bool) {
	if role, exists := c.Get("role"); exists {
		if roleStr, ok := role.(string); ok {
			return roleStr, true
		}
	}
	return "", false
}
