package personnel

import (
	"context"
	"errors"
	"testing"

	personnelerrors "github.com/RahimovIlhom/personnel-management/internal/personnel/errors"
	"github.com/RahimovIlhom/personnel-management/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMapRepositoryError(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, mapRepositoryError(nil))
	})

	t.Run("app errors pass through untouched", func(t *testing.T) {
		err := mapRepositoryError(personnelerrors.ErrCandidateNotAccepted)
		assert.Same(t, personnelerrors.ErrCandidateNotAccepted, err)
	})

	t.Run("record not found", func(t *testing.T) {
		err := mapRepositoryError(gorm.ErrRecordNotFound)
		assert.Same(t, personnelerrors.ErrPersonnelNotFound, err)
	})

	t.Run("deadline exceeded maps to storage error", func(t *testing.T) {
		err := mapRepositoryError(context.DeadlineExceeded)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeStorageError, appErr.Code)
	})

	t.Run("pinfl unique violation by constraint name", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "uq_personnel_pinfl"}
		assert.Same(t, personnelerrors.ErrPinflAlreadyExists, mapRepositoryError(pgErr))
	})

	t.Run("passport unique violation by constraint name", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "uq_personnel_passport"}
		assert.Same(t, personnelerrors.ErrPassportAlreadyExists, mapRepositoryError(pgErr))
	})

	t.Run("unique violation by message fallback", func(t *testing.T) {
		err := errors.New(`ERROR: duplicate key value violates unique constraint "uq_personnel_pinfl" (SQLSTATE 23505)`)
		assert.Same(t, personnelerrors.ErrPinflAlreadyExists, mapRepositoryError(err))
	})

	t.Run("unknown errors pass through", func(t *testing.T) {
		err := errors.New("connection refused")
		assert.Same(t, err, mapRepositoryError(err))
	})
}
