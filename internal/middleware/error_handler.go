package middleware

import (
	"insureAdvisor/pkg/logger"
	"net/http"

	jsonres "insureAdvisor/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the echo HTTPErrorHandler. Unhandled errors become a
// generic 500 envelope; echo's own HTTPErrors keep their status. Internal
// detail stays in the logs, never in the response body.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	if httpErr, ok := err.(*echo.HTTPError); ok {
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	} else {
		logger.Error("Unhandled request error", err,
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
		)
	}

	if err := c.JSON(code, jsonres.Error(http.StatusText(code), message, nil)); err != nil {
		logger.Error("Failed to write error response", err)
	}
}
