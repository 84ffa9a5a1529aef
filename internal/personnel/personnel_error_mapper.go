package personnel

import (
	"context"
	"errors"
	"strings"

	personnelerrors "github.com/RahimovIlhom/personnel-management/internal/personnel/errors"
	"github.com/RahimovIlhom/personnel-management/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return personnelerrors.ErrPersonnelNotFound
	}

	// A timed-out or broken storage operation is retryable, not a bug in
	// the caller's input.
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return apperror.Wrap(err, apperror.CodeStorageError, apperror.ErrStorage.Message, apperror.ErrStorage.HTTPStatus)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "uq_personnel_pinfl":
				return personnelerrors.ErrPinflAlreadyExists
			case "uq_personnel_passport":
				return personnelerrors.ErrPassportAlreadyExists
			}
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_personnel_pinfl") {
		return personnelerrors.ErrPinflAlreadyExists
	}
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_personnel_passport") {
		return personnelerrors.ErrPassportAlreadyExists
	}

	return err
}
