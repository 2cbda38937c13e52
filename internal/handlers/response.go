package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VidsSkids/epitrello-backend/internal/domain/aggregates"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// statusOf maps a domain error code to an HTTP status. Anything unrecognized
// is a 500 so infrastructure failures never masquerade as client errors.
func statusOf(code aggregates.ErrorCode) int {
	switch code {
	case aggregates.CodeValidation:
		return http.StatusBadRequest
	case aggregates.CodeNotFound:
		return http.StatusNotFound
	case aggregates.CodeForbidden:
		return http.StatusForbidden
	case aggregates.CodeConflict:
		return http.StatusConflict
	case aggregates.CodeRetryable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func RespondError(c *gin.Context, err error) {
	code := aggregates.CodeOf(err)
	status := statusOf(code)
	msg := "internal error"
	var aggErr *aggregates.Error
	if status != http.StatusInternalServerError && errors.As(err, &aggErr) && aggErr.Message != "" {
		msg = aggErr.Message
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    string(code),
		},
	})
}

func RespondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorEnvelope{
		Error: APIError{
			Message: message,
			Code:    string(aggregates.CodeValidation),
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}
