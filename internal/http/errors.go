package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	"task-tracker.com/task-tracker/internal/logger"
)

// ErrorHandler maps application errors to responses: 400s get the failure
// envelope, 404s an empty body. Everything else goes through echo's default
// handler, which hides the message of non-HTTP errors.
func ErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var exc *apperrors.Exception
		if errors.As(err, &exc) {
			var writeErr error
			switch status := apperrors.StatusCode(err); status {
			case http.StatusBadRequest:
				writeErr = c.JSON(status, dto.NewFailureResponse(exc.Message))
			case http.StatusNotFound:
				writeErr = c.NoContent(status)
			default:
				writeErr = c.JSON(status, echo.Map{"message": exc.Message})
			}
			if writeErr != nil {
				logger.Warn("failed to write error response", "error", writeErr)
			}
			return
		}

		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) {
			logger.Error("request failed",
				"method", c.Request().Method,
				"route", c.Path(),
				"error", err,
			)
		}

		e.DefaultHTTPErrorHandler(err, c)
	}
}
