// Package response renders the API envelope: {"data", "meta"} on success and
// {"errorCode", "errorMessage", "error", "meta"} on failure.
package response

import (
	"net/http"

	deliverycontext "github.com/nadoran78/mytable/internal/delivery/context"
	domainerrors "github.com/nadoran78/mytable/internal/domain/errors"
	"github.com/nadoran78/mytable/internal/domain/entity"
	"github.com/nadoran78/mytable/internal/errors"

	"github.com/labstack/echo/v4"
)

// PageResponse is the paged list shape shared by every list endpoint.
type PageResponse[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// NewPageResponse converts a domain page, mapping each element with fn.
func NewPageResponse[T, R any](p entity.Page[T], fn func(T) R) PageResponse[R] {
	mapped := entity.MapPage(p, fn)

	return PageResponse[R]{
		Content:       mapped.Content,
		Page:          mapped.Page,
		Size:          mapped.Size,
		TotalElements: mapped.TotalElements,
		TotalPages:    mapped.TotalPages(),
	}
}

func meta(c echo.Context) *domainerrors.MetaInfo {
	return &domainerrors.MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, domainerrors.SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// OK is Success with 200.
func OK(c echo.Context, data any) error {
	return Success(c, http.StatusOK, data)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details are only shown for client errors other than authentication failures.
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, domainerrors.ErrorResponse{
		ErrorCode:    errorCode,
		ErrorMessage: message,
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

// AppError renders an application error with its own status and code.
func AppError(c echo.Context, appErr domainerrors.AppError, details any) error {
	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context) error {
	return AppError(c, domainerrors.ErrInternalServerError, nil)
}

// HandleAppError renders err when it is an application error; anything else is returned
// with a stack for the central error handler.
func HandleAppError(c echo.Context, err error) error {
	if appErr, ok := errors.Find[domainerrors.AppError](err); ok {
		return AppError(c, appErr, nil)
	}

	return errors.WithStack(err)
}
