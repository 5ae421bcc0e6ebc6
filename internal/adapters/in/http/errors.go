package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"ordermanagement/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// errorHandler renders errors that escape the handlers, such as unknown
// routes, bad path parameters and request validation failures, as the
// JSON error body of the API.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			message = fmt.Sprint(he.Message)
		} else {
			logger.ErrorContext(c.Request().Context(), "Unhandled request error",
				"error", err,
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, servers.Error{
				Code:    int32(code),
				Message: message,
			})
		}
		if err != nil {
			logger.ErrorContext(c.Request().Context(), "Failed to write error response", "error", err)
		}
	}
}
