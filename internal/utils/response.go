package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every API response carries the same envelope: {"ok":true,...} on success,
// {"ok":false,"error":...} on failure.

func SuccessResponse(c *gin.Context, data gin.H) {
	body := gin.H{"ok": true}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"ok": false, "error": message})
}

func BadRequestResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, message)
}

func ForbiddenResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusForbidden, "Forbidden")
}

func NotFoundResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusNotFound, "Not found")
}

func UnprocessableResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusUnprocessableEntity, message)
}

func InternalServerErrorResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusInternalServerError, "Server error")
}
