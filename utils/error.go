package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
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
func JSONError(c *gin.Context, status int, message string, details string) {
	GetLogger().Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// NotFoundError - the entity is absent or not owned by the caller.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// UnauthorizedError - the bearer token is missing or invalid.
type UnauthorizedError struct {
	Reason string
}

func (e *UnauthorizedError) Error() string {
	return "unauthorized: " + e.Reason
}

// ForbiddenError - the token is valid but the principal lacks the
// required role or ownership.
type ForbiddenError struct {
	Reason string
}

func (e *ForbiddenError) Error() string {
	return "forbidden: " + e.Reason
}

// InvalidStateError - the operation is not valid for the entity's
// current status.
type InvalidStateError struct {
	Reason string
}

func (e *InvalidStateError) Error() string {
	return "invalid state: " + e.Reason
}

// DependencyError - the store or another required dependency failed.
// Notifier failures are never wrapped in this; they are logged and
// discarded at the call site.
type DependencyError struct {
	Op  string
	Err error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s: dependency failure: %v", e.Op, e.Err)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}

// StatusForError maps a service error to an HTTP status code.
func StatusForError(err error) int {
	var (
		notFound     *NotFoundError
		unauthorized *UnauthorizedError
		forbidden    *ForbiddenError
		invalidState *InvalidStateError
		dependency   *DependencyError
	)
	switch {
	case errors.As(err, &unauthorized):
		return http.StatusUnauthorized
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &invalidState):
		return http.StatusConflict
	case errors.As(err, &dependency):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// RespondError maps a service error to its HTTP status and writes the
// standardized JSON error body.
func RespondError(c *gin.Context, err error) {
	status := StatusForError(err)
	JSONError(c, status, http.StatusText(status), err.Error())
}
