package positionerrors

import (
	"net/http"

	"github.com/RahimovIlhom/personnel-management/internal/shared/apperror"
)

var (
	ErrPositionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Position not found",
		http.StatusNotFound,
	)
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Department does not exist",
		http.StatusBadRequest,
	)
	ErrPositionAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Position with the same name already exists in this department",
		http.StatusConflict,
	)
	ErrInvalidPositionID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid position ID",
		http.StatusBadRequest,
	)
)
