package errors

import (
	"net/http"

	"github.com/nadoran78/mytable/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Stable external error code
	Message() string   // User-facing error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying detailed error information.
// The copy still matches the original with errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError with the same error code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Common errors
var (
	ErrInvalidRequest = NewBaseError(
		http.StatusBadRequest,
		"INVALID_REQUEST",
		"잘못된 요청입니다.",
		"",
	)

	ErrInternalServerError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_SERVER_ERROR",
		"내부 서버 오류가 발생했습니다.",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"입력값이 올바르지 않습니다.",
		"",
	)

	ErrTooManyRequests = NewBaseError(
		http.StatusTooManyRequests,
		"TOO_MANY_REQUESTS",
		"요청이 너무 많습니다. 잠시 후 다시 시도해주세요.",
		"",
	)
)

// Token errors
var (
	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"유효하지 않은 토큰입니다.",
		"",
	)

	ErrAccessDenied = NewBaseError(
		http.StatusForbidden,
		"ACCESS_DENIED",
		"접근 권한이 없습니다.",
		"",
	)
)

// Account errors
var (
	ErrAlreadyEmailExist = NewBaseError(
		http.StatusConflict,
		"ALREADY_EMAIL_EXIST",
		"이미 존재하는 이메일입니다.",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND_USER",
		"존재하지 않는 회원입니다.",
		"",
	)

	ErrIncorrectPassword = NewBaseError(
		http.StatusBadRequest,
		"INCORRECT_PASSWORD",
		"패스워드가 일치하지 않습니다.",
		"",
	)
)

// Store errors
var (
	ErrAlreadyRegisteredStorename = NewBaseError(
		http.StatusConflict,
		"ALREADY_REGISTERED_STORENAME",
		"이미 존재하는 점포명입니다.",
		"",
	)

	ErrStoreNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND_STORE",
		"존재하지 않는 점포입니다.",
		"",
	)
)

// Reservation errors
var (
	ErrReservationDateOutOfWindow = NewBaseError(
		http.StatusBadRequest,
		"RESERVATION_DATE_MUST_BE_IN_A_MONTH",
		"예약은 한달 이내만 가능합니다.",
		"",
	)

	ErrTooManyNumberOfPeople = NewBaseError(
		http.StatusBadRequest,
		"TOO_MANY_NUMBER_OF_PEOPLE",
		"예약인원을 수용할 테이블이 없습니다. 점포로 문의해주세요.",
		"",
	)

	ErrReservationNotFound = NewBaseError(
		http.StatusNotFound,
		"RESERVATION_NOT_FOUND",
		"해당 예약을 찾을 수 없습니다.",
		"",
	)

	ErrCannotUpdateStore = NewBaseError(
		http.StatusBadRequest,
		"CANNOT_UPDATE_STORE",
		"점포를 수정할 수 없습니다. 해당 점포로 새로운 예약을 진행해 주세요.",
		"",
	)

	ErrAccessOnlyRequestedCustomer = NewBaseError(
		http.StatusBadRequest,
		"ACCESS_ONLY_REQUESTED_CUSTOMER",
		"예약정보 조회는 예약을 요청한 고객만 가능합니다.",
		"",
	)

	ErrAccessOnlyStoreOwner = NewBaseError(
		http.StatusBadRequest,
		"ACCESS_ONLY_STORE_OWNER",
		"해당 점포 점주만 가능한 기능입니다.",
		"",
	)

	// ErrConfirmedReservationNotFound is the kiosk miss: no confirmed booking matches the visitor.
	ErrConfirmedReservationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND_RESERVATION",
		"예약 정보가 없습니다. 예약자명과 전화번호를 확인해주세요.",
		"",
	)

	ErrNotReservationStore = NewBaseError(
		http.StatusBadRequest,
		"NOT_RESERVATION_STORE",
		"예약한 매장이 아닙니다.",
		"",
	)

	ErrEntranceNotOnTime = NewBaseError(
		http.StatusBadRequest,
		"ENTRANCE_NOT_ON_TIME",
		"도착 확인은 예약 시간 10분 전부터 가능합니다.",
		"",
	)

	ErrTimeOver = NewBaseError(
		http.StatusBadRequest,
		"TIME_OVER",
		"입장 가능 시간이 지났습니다.",
		"",
	)

	ErrInvalidStatusTransition = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATUS_TRANSITION",
		"현재 예약 상태에서는 처리할 수 없는 요청입니다.",
		"",
	)

	ErrReservationConflict = NewBaseError(
		http.StatusConflict,
		"RESERVATION_CONFLICT",
		"다른 요청이 먼저 예약을 변경했습니다. 다시 시도해주세요.",
		"",
	)

	ErrInvalidQRCode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QR_CODE",
		"인식할 수 없는 QR 코드입니다.",
		"",
	)
)

// Review errors
var (
	ErrDidNotUseThisStore = NewBaseError(
		http.StatusBadRequest,
		"DID_NOT_USE_THIS_STORE",
		"리뷰는 해당 점포를 사용한 후에 작성하여 주세요.",
		"",
	)

	ErrReviewNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND_REVIEW",
		"존재하지 않는 리뷰입니다.",
		"",
	)

	ErrOnlyWorksWithWriter = NewBaseError(
		http.StatusBadRequest,
		"ONLY_WORKS_WITH_WRITER",
		"리뷰 작성자만 수정, 삭제 가능합니다.",
		"",
	)

	ErrCannotUpdateStorename = NewBaseError(
		http.StatusBadRequest,
		"CANNOT_UPDATE_STORENAME",
		"점포를 수정할 수는 없습니다.",
		"",
	)
)

// Device errors
var (
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"등록되지 않은 기기입니다.",
		"",
	)

	ErrDeviceForbidden = NewBaseError(
		http.StatusForbidden,
		"DEVICE_FORBIDDEN",
		"본인의 기기만 변경할 수 있습니다.",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return ErrInternalServerError.ErrorCode()
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return ErrInternalServerError.Message()
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
