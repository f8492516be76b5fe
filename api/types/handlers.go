package types

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/killallgit/podcast-browser/pkg/errors"
)

// Handler utility functions to reduce duplication across handlers

// SendAppError maps err to its HTTP status and writes a standard error body
func SendAppError(c *gin.Context, err error) {
	appErr := apperrors.From(err)
	c.JSON(appErr.GetHTTPCode(), ErrorResponse{
		Status:  StatusError,
		Message: appErr.Message,
		Error:   string(appErr.Code),
		Details: appErr.Details,
	})
}

// SendBadRequest sends a standardized bad request response
func SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Status: StatusError, Message: message})
}

// SendNotFound sends a standardized not found response
func SendNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Status: StatusError, Message: message})
}

// SendServiceUnavailable is used when handlers run without a list state
func SendServiceUnavailable(c *gin.Context) {
	c.JSON(http.StatusServiceUnavailable, ErrorResponse{
		Status:  StatusError,
		Message: "Podcast list is not configured",
	})
}
