package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/neighborly/neighborly-api/apperr"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",
		1004: "your account is blocked",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1101: "account not found",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)
	errorAccountBlocked             = errorJSON(1004)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountNotFound = errorJSON(1101)
)

type ErrorResponse struct {
	Code    int64             `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func statusOf(kind apperr.Kind) int {
	switch kind {
	case apperr.Unauthenticated:
		return http.StatusUnauthorized
	case apperr.Unauthorized:
		return http.StatusForbidden
	case apperr.Validation, apperr.StateConflict:
		return http.StatusBadRequest
	case apperr.NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// abortWithError renders a domain error with the status of its kind. Errors without
// a kind are internal and reported as such.
func abortWithError(c *gin.Context, err error) {
	var v *apperr.ValidationError
	if errors.As(err, &v) {
		resp := errorInvalidParameters
		resp.Fields = v.Fields
		abortWithEncoding(c, http.StatusBadRequest, resp, err)
		return
	}

	var e *apperr.Error
	if errors.As(err, &e) {
		abortWithEncoding(c, statusOf(e.Kind()), ErrorResponse{
			Code:    e.Code(),
			Message: e.Error(),
		}, err)
		return
	}

	log.WithError(err).WithField("path", c.FullPath()).Error("unexpected error")
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
}
