package apperror

import "fmt"

// FieldError is a single field-level validation violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type AppError struct {
	Code       string       // Error code (e.g., INVALID_INPUT)
	Message    string       // User-friendly message
	HTTPStatus int          // HTTP status code
	Fields     []FieldError // Field violations, set on validation errors
	Err        error        // Wrapped original error (optional)
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements errors.Unwrap interface for errors.Is/As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError without wrapping
func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        nil,
	}
}

// Wrap creates an AppError that wraps an existing error
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// NewValidation collects every violated field into a single error so the
// caller can show all problems at once instead of fixing them one by one.
func NewValidation(fields ...FieldError) *AppError {
	return &AppError{
		Code:       CodeInvalidInput,
		Message:    "Validation failed",
		HTTPStatus: 400,
		Fields:     fields,
	}
}
