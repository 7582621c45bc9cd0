package rest

import (
	"errors"
	"net/http"

	"oneMinuteShop/domain"
	"oneMinuteShop/pkg/logger"

	"github.com/labstack/echo/v4"
)

var errInvalidBody = errors.New("invalid request body")

// ResponseError is the body of every non-2xx response. Detail repeats
// the message for clients written against the older API.
type ResponseError struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

func NewResponseError(message string) ResponseError {
	return ResponseError{Message: message, Detail: message}
}

// StatusFor maps a service error to its HTTP status. A taken subdomain
// is reported as 400, not 409.
func StatusFor(err error) int {
	switch domain.KindOf(err) {
	case domain.KindBadRequest, domain.KindConflict:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c echo.Context, err error) error {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed", "method", c.Request().Method, "path", c.Path(), "error", err)
		return c.JSON(status, NewResponseError("internal server error"))
	}

	return c.JSON(status, NewResponseError(err.Error()))
}
