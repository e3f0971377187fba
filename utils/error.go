package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Stable machine-readable error kinds surfaced to API callers. Internal store
// detail never leaves the process; clients branch on these kinds.
const (
	KindValidation   = "validation_error"
	KindConflict     = "conflict_error"
	KindNotFound     = "not_found"
	KindPolicy       = "policy_error"
	KindUnauthorized = "unauthorized"
	KindInternal     = "internal_error"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Kind:    KindInternal,
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, kind string, message string, details string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.String("kind", kind), zap.String("details", details))
	c.JSON(status, ErrorResponse{Kind: kind, Message: message, Details: details})
}
