package middleware

import (
	"log/slog"
	"net/http"

	"github.com/nadoran78/mytable/internal/delivery/api/response"
	"github.com/nadoran78/mytable/internal/delivery/api/validator"
	deliverycontext "github.com/nadoran78/mytable/internal/delivery/context"
	domainerrors "github.com/nadoran78/mytable/internal/domain/errors"
	"github.com/nadoran78/mytable/internal/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is echo's HTTPErrorHandler. It maps field validation failures,
// application errors and echo errors to the error envelope; anything else is logged
// and hidden behind a generic internal error.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if fieldErrs, ok := errors.Find[playground.ValidationErrors](err); ok {
		_ = response.AppError(c, domainerrors.ErrValidationFailed, validator.FieldErrors(fieldErrs))

		return
	}

	if paramErr, ok := errors.Find[*validator.ParamError](err); ok {
		_ = response.AppError(c, domainerrors.ErrValidationFailed, map[string]string{paramErr.Field: paramErr.Message})

		return
	}

	if appErr, ok := errors.Find[domainerrors.AppError](err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.log(c).Error("Application error", slog.Any("error", err))
		}
		_ = response.AppError(c, appErr, nil)

		return
	}

	if httpErr, ok := errors.Find[*echo.HTTPError](err); ok {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	m.log(c).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("stack", errors.Stack(err)),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c)
}

func (m *ErrorMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}
