package departmenterrors

import (
	"net/http"

	"github.com/RahimovIlhom/personnel-management/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)
	ErrDepartmentTypeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Department type does not exist",
		http.StatusBadRequest,
	)
	ErrDepartmentAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Department with the same name already exists for this type",
		http.StatusConflict,
	)
	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid department ID",
		http.StatusBadRequest,
	)
)
