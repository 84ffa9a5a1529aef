package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)

	ErrStorage = New(
		CodeStorageError,
		"Storage operation failed, please retry",
		http.StatusServiceUnavailable,
	)
)

// RequiredField builds a validation error for a missing field
func RequiredField(name string) *AppError {
	return New(
		CodeInvalidInput,
		fmt.Sprintf("%s is required", name),
		http.StatusBadRequest,
	)
}

// InvalidField builds a validation error for a malformed field
func InvalidField(name string) *AppError {
	return New(
		CodeInvalidInput,
		fmt.Sprintf("%s is invalid", name),
		http.StatusBadRequest,
	)
}
