package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Stable error code, e.g. "RESERVATION_NOT_FOUND"
	Message string `json:"message"`           // User-facing error message
	Details any    `json:"details,omitempty"` // Field errors for validation failures
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses.
// ErrorCode and ErrorMessage repeat Error.Code and Error.Message for clients that read the flat shape.
type ErrorResponse struct {
	ErrorCode    string     `json:"errorCode"`
	ErrorMessage string     `json:"errorMessage"`
	Error        *ErrorInfo `json:"error"`
	Meta         *MetaInfo  `json:"meta"`
}
