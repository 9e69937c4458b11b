package errors

import (
	"net/http"
	"testing"

	"github.com/nadoran78/mytable/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesAcrossWrapsAndDetails(t *testing.T) {
	err := ErrReservationNotFound.WrapMessage("load reservation")

	assert.True(t, errors.Is(err, ErrReservationNotFound))
	assert.False(t, errors.Is(err, ErrConfirmedReservationNotFound))

	detailed := ErrValidationFailed.WithDetails("storename is required")
	assert.True(t, errors.Is(detailed, ErrValidationFailed))
	assert.Equal(t, "storename is required", detailed.Details())
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestBaseError_FindAppError(t *testing.T) {
	err := errors.Wrap(ErrTimeOver, "arrival check")

	appErr, ok := errors.Find[AppError](err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "TIME_OVER", appErr.ErrorCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "update reservation")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "INTERNAL_SERVER_ERROR", err.ErrorCode())
	assert.True(t, errors.Is(err, cause))
}
