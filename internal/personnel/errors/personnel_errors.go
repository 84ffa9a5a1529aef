package personnelerrors

import (
	"net/http"

	"github.com/RahimovIlhom/personnel-management/internal/shared/apperror"
)

var (
	ErrPersonnelNotFound = apperror.New(
		apperror.CodeNotFound,
		"Personnel not found",
		http.StatusNotFound,
	)
	ErrPinflAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Personnel with the same PINFL already exists",
		http.StatusConflict,
	)
	ErrPassportAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Personnel with the same passport already exists",
		http.StatusConflict,
	)
	ErrInvalidPersonnelID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid personnel ID",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid acting-user ID",
		http.StatusBadRequest,
	)
	ErrInvalidKind = apperror.New(
		apperror.CodeInvalidInput,
		"Kind must be CANDIDATE or EMPLOYEE",
		http.StatusBadRequest,
	)
	ErrStatusNotAllowedForKind = apperror.New(
		apperror.CodeInvalidInput,
		"Status is not allowed for this kind",
		http.StatusBadRequest,
	)
	ErrLeaveReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Reason is required when an employee leaves",
		http.StatusBadRequest,
	)
	ErrAlreadyEmployee = apperror.New(
		apperror.CodeInvalidState,
		"Personnel is already an employee",
		http.StatusConflict,
	)
	ErrCandidateNotAccepted = apperror.New(
		apperror.CodeInvalidState,
		"Only accepted candidates can be converted to employees",
		http.StatusConflict,
	)
)
