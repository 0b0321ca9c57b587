package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes
const (
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// APIError is the JSON body of every error response
type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// RespondWithError aborts the request with an error response
func RespondWithError(c *gin.Context, statusCode int, err APIError) {
	c.AbortWithStatusJSON(statusCode, err)
}

// NotFound aborts with 404. An empty message means "Not found."
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Not found."
	}
	RespondWithError(c, http.StatusNotFound, APIError{Code: ErrCodeNotFound, Message: message})
}

// BadRequest aborts with 400
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	RespondWithError(c, http.StatusBadRequest, APIError{Code: ErrCodeInvalidInput, Message: message})
}

// BadRequestWithDetails aborts with 400 and field-level details
func BadRequestWithDetails(c *gin.Context, message string, details interface{}) {
	RespondWithError(c, http.StatusBadRequest, APIError{
		Code:    ErrCodeInvalidInput,
		Message: message,
		Details: details,
	})
}

// InternalError aborts with 500. The message never carries the cause.
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	RespondWithError(c, http.StatusInternalServerError, APIError{Code: ErrCodeInternalError, Message: message})
}
