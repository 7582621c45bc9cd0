package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"oneMinuteShop/internal/rest"
	"oneMinuteShop/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ErrorHandler renders errors that escape the handlers (unknown routes,
// wrong methods, panics recovered upstream) in the same body shape the
// handlers use.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "internal server error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		message = fmt.Sprint(he.Message)
	} else if code := rest.StatusFor(err); code != http.StatusInternalServerError {
		status = code
		message = err.Error()
	}

	if status >= http.StatusInternalServerError {
		logger.Error("unhandled error", "method", c.Request().Method, "uri", c.Request().RequestURI, "error", err)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, rest.NewResponseError(message))
	}
	if writeErr != nil {
		logger.Error("failed to write error response", "error", writeErr)
	}
}
