package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/microblogd/microblog/internal/apperror"
	"github.com/microblogd/microblog/pkg/logging"
)

// errorResponse is the envelope for every failed request
type errorResponse struct {
	Result       bool   `json:"result"`
	ErrorType    string `json:"error_type"`
	ErrorMessage string `json:"error_message"`
}

// writeError maps a domain error to the HTTP error envelope. Domain
// kinds map to 404, input validation to 422; anything else is a
// storage-layer failure and maps to 500.
func writeError(c *gin.Context, err error) {
	var status int
	var errorType string

	switch {
	case errors.Is(err, apperror.ErrUnauthenticated):
		status, errorType = http.StatusNotFound, "Unauthenticated"
	case errors.Is(err, apperror.ErrNotFound):
		status, errorType = http.StatusNotFound, "NotFound"
	case errors.Is(err, apperror.ErrAlreadyExists):
		status, errorType = http.StatusNotFound, "AlreadyExists"
	case errors.Is(err, apperror.ErrSelfFollow):
		status, errorType = http.StatusNotFound, "SelfFollowNotAllowed"
	case errors.Is(err, apperror.ErrInvalidInput):
		status, errorType = http.StatusUnprocessableEntity, "InvalidInput"
	default:
		logging.WithComponent("api").Error("Request failed", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{
			Result:       false,
			ErrorType:    "Internal",
			ErrorMessage: "internal server error",
		})
		return
	}

	c.AbortWithStatusJSON(status, errorResponse{
		Result:       false,
		ErrorType:    errorType,
		ErrorMessage: err.Error(),
	})
}

// invalidInput is a shortcut for malformed bodies and path params
func invalidInput(c *gin.Context, message string) {
	writeError(c, apperror.InvalidInput(message))
}
