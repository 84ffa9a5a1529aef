package personnel_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/RahimovIlhom/personnel-management/internal/events"
	"github.com/RahimovIlhom/personnel-management/internal/messaging/kafka"
	kafkamock "github.com/RahimovIlhom/personnel-management/internal/messaging/kafka/mock"
	"github.com/RahimovIlhom/personnel-management/internal/personnel"
	personnelerrors "github.com/RahimovIlhom/personnel-management/internal/personnel/errors"
	"github.com/RahimovIlhom/personnel-management/internal/personnel/mock"
	"github.com/RahimovIlhom/personnel-management/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGormDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gdb, dbMock
}

func validCreateRequest() personnel.CreatePersonnelRequest {
	return personnel.CreatePersonnelRequest{
		PositionID: uuid.NewString(),
		FullName:   "Aziz Karimov",

		Birthdate:    "1990-04-12",
		BirthplaceID: 1,
		NationID:     1,
		Gender:       personnel.GenderMale,
		Pinfl:        "12345678901234",
		Passport:     "AA1234567",

		ResidenceDistrictID: 2,
		PhoneNumber:         "+998901234567",

		EducationLevelID: 1,
		ResumeKey:        "resumes/aziz.pdf",
	}
}

func expectReferencesOK(repo *mock.MockRepository) {
	repo.EXPECT().PositionExists(gomock.Any(), gomock.Any()).Return(true, nil).AnyTimes()
	repo.EXPECT().DistrictExists(gomock.Any(), gomock.Any()).Return(true, nil).AnyTimes()
	repo.EXPECT().NationExists(gomock.Any(), gomock.Any()).Return(true, nil).AnyTimes()
	repo.EXPECT().EducationLevelExists(gomock.Any(), gomock.Any()).Return(true, nil).AnyTimes()
	repo.EXPECT().AcademicDegreeExists(gomock.Any(), gomock.Any()).Return(true, nil).AnyTimes()
	repo.EXPECT().AcademicSpecializationExists(gomock.Any(), gomock.Any()).Return(true, nil).AnyTimes()
	repo.EXPECT().AcademicTitleExists(gomock.Any(), gomock.Any()).Return(true, nil).AnyTimes()
}

func TestService_Create(t *testing.T) {
	actorID := uuid.NewString()

	t.Run("success with default candidate status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gdb, dbMock := newGormDB(t)

		repo := mock.NewMockRepository(ctrl)
		history := mock.NewMockHistoryRepository(ctrl)

		expectReferencesOK(repo)
		repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()

		var created *personnel.Personnel
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *personnel.Personnel) error {
				created = p
				return nil
			})

		dbMock.ExpectBegin()
		dbMock.ExpectCommit()

		svc := personnel.NewService(gdb, repo, history, nil)
		resp, err := svc.Create(context.Background(), actorID, personnel.KindCandidate, validCreateRequest())

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, personnel.KindCandidate, created.Kind)
		assert.Equal(t, personnel.StatusSubmitted, created.Status)
		assert.Equal(t, personnel.StatusSubmitted, resp.Status)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("invalid kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gdb, _ := newGormDB(t)

		svc := personnel.NewService(gdb, mock.NewMockRepository(ctrl), mock.NewMockHistoryRepository(ctrl), nil)
		_, err := svc.Create(context.Background(), actorID, "CONTRACTOR", validCreateRequest())

		assert.ErrorIs(t, err, personnelerrors.ErrInvalidKind)
	})

	t.Run("invalid actor id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gdb, _ := newGormDB(t)

		svc := personnel.NewService(gdb, mock.NewMockRepository(ctrl), mock.NewMockHistoryRepository(ctrl), nil)
		_, err := svc.Create(context.Background(), "not-a-uuid", personnel.KindCandidate, validCreateRequest())

		assert.ErrorIs(t, err, personnelerrors.ErrInvalidActorID)
	})

	t.Run("collects every field violation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gdb, _ := newGormDB(t)

		repo := mock.NewMockRepository(ctrl)
		expectReferencesOK(repo)

		req := validCreateRequest()
		req.Pinfl = "123"
		req.Passport = "xx1"
		req.PhoneNumber = "12345"

		svc := personnel.NewService(gdb, repo, mock.NewMockHistoryRepository(ctrl), nil)
		_, err := svc.Create(context.Background(), actorID, personnel.KindCandidate, req)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
		require.Len(t, appErr.Fields, 3)
	})

	t.Run("missing referenced position", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gdb, _ := newGormDB(t)

		repo := mock.NewMockRepository(ctrl)
		repo.EXPECT().PositionExists(gomock.Any(), gomock.Any()).Return(false, nil)
		repo.EXPECT().DistrictExists(gomock.Any(), gomock.Any()).Return(true, nil).AnyTimes()
		repo.EXPECT().NationExists(gomock.Any(), gomock.Any()).Return(true, nil).AnyTimes()
		repo.EXPECT().EducationLevelExists(gomock.Any(), gomock.Any()).Return(true, nil).AnyTimes()

		svc := personnel.NewService(gdb, repo, mock.NewMockHistoryRepository(ctrl), nil)
		_, err := svc.Create(context.Background(), actorID, personnel.KindCandidate, validCreateRequest())

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		require.Len(t, appErr.Fields, 1)
		assert.Equal(t, "position_id", appErr.Fields[0].Field)
	})

	t.Run("duplicate pinfl maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gdb, dbMock := newGormDB(t)

		repo := mock.NewMockRepository(ctrl)
		expectReferencesOK(repo)
		repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_personnel_pinfl"})

		dbMock.ExpectBegin()
		dbMock.ExpectRollback()

		svc := personnel.NewService(gdb, repo, mock.NewMockHistoryRepository(ctrl), nil)
		_, err := svc.Create(context.Background(), actorID, personnel.KindCandidate, validCreateRequest())

		assert.ErrorIs(t, err, personnelerrors.ErrPinflAlreadyExists)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})
}

func TestService_UpdateStatus(t *testing.T) {
	actorID := uuid.New()

	newRecord := func(kind, status string) *personnel.Personnel {
		return &personnel.Personnel{
			ID:     uuid.New(),
			Kind:   kind,
			Status: status,
		}
	}

	t.Run("accepted transition writes exactly one ledger entry and one event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gdb, dbMock := newGormDB(t)

		repo := mock.NewMockRepository(ctrl)
		history := mock.NewMockHistoryRepository(ctrl)
		outbox := kafkamock.NewMockOutboxRepository(ctrl)

		record := newRecord(personnel.KindCandidate, personnel.StatusSubmitted)
		repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()
		history.EXPECT().WithTx(gomock.Any()).Return(history).AnyTimes()
		outbox.EXPECT().WithTx(gomock.Any()).Return(outbox).AnyTimes()

		repo.EXPECT().FindByIDForUpdate(gomock.Any(), record.ID.String()).Return(record, nil)
		repo.EXPECT().Update(gomock.Any(), record).Return(nil)

		var entry *personnel.StatusHistory
		history.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *personnel.StatusHistory) error {
				entry = e
				return nil
			})

		var outboxEvent kafka.OutboxEvent
		outbox.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ev kafka.OutboxEvent) error {
				outboxEvent = ev
				return nil
			})

		dbMock.ExpectBegin()
		dbMock.ExpectCommit()

		svc := personnel.NewServiceWithOutbox(gdb, repo, history, outbox, nil)
		resp, err := svc.UpdateStatus(context.Background(), actorID.String(), record.ID.String(), personnel.StatusAccepted, "")

		require.NoError(t, err)
		assert.Equal(t, personnel.StatusAccepted, resp.Status)

		require.NotNil(t, entry)
		assert.Equal(t, personnel.StatusSubmitted, entry.OldStatus)
		assert.Equal(t, personnel.StatusAccepted, entry.NewStatus)
		assert.Equal(t, personnel.DefaultChangeReason, entry.Reason)
		require.NotNil(t, entry.ChangedBy)
		assert.Equal(t, actorID, *entry.ChangedBy)

		assert.Equal(t, events.PersonnelLifecycleTopic, outboxEvent.Topic)
		assert.Equal(t, events.EventTypeStatusChanged, outboxEvent.EventType)

		var payload events.PersonnelStatusChangedEvent
		require.NoError(t, json.Unmarshal(outboxEvent.Payload, &payload))
		assert.Equal(t, personnel.StatusSubmitted, payload.OldStatus)
		assert.Equal(t, personnel.StatusAccepted, payload.NewStatus)

		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("same status is an idempotent no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gdb, dbMock := newGormDB(t)

		repo := mock.NewMockRepository(ctrl)
		history := mock.NewMockHistoryRepository(ctrl)

		record := newRecord(personnel.KindCandidate, personnel.StatusAccepted)
		repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()
		repo.EXPECT().FindByIDForUpdate(gomock.Any(), record.ID.String()).Return(record, nil)
		// No Update, no ledger write.

		dbMock.ExpectBegin()
		dbMock.ExpectRollback()

		svc := personnel.NewService(gdb, repo, history, nil)
		resp, err := svc.UpdateStatus(context.Background(), actorID.String(), record.ID.String(), personnel.StatusAccepted, "")

		require.NoError(t, err)
		assert.Equal(t, personnel.StatusAccepted, resp.Status)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("status outside the kind vocabulary is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gdb, dbMock := newGormDB(t)

		repo := mock.NewMockRepository(ctrl)
		record := newRecord(personnel.KindCandidate, personnel.StatusSubmitted)
		repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()
		repo.EXPECT().FindByIDForUpdate(gomock.Any(), record.ID.String()).Return(record, nil)

		dbMock.ExpectBegin()
		dbMock.ExpectRollback()

		svc := personnel.NewService(gdb, repo, mock.NewMockHistoryRepository(ctrl), nil)
		_, err := svc.UpdateStatus(context.Background(), actorID.String(), record.ID.String(), personnel.StatusWorking, "")

		assert.ErrorIs(t, err, personnelerrors.ErrStatusNotAllowedForKind)
	})

	t.Run("employee leaving requires a reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gdb, dbMock := newGormDB(t)

		repo := mock.NewMockRepository(ctrl)
		record := newRecord(personnel.KindEmployee, personnel.StatusWorking)
		repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()
		repo.EXPECT().FindByIDForUpdate(gomock.Any(), record.ID.String()).Return(record, nil)

		dbMock.ExpectBegin()
		dbMock.ExpectRollback()

		svc := personnel.NewService(gdb, repo, mock.NewMockHistoryRepository(ctrl), nil)
		_, err := svc.UpdateStatus(context.Background(), actorID.String(), record.ID.String(), personnel.StatusLeft, "   ")

		assert.ErrorIs(t, err, personnelerrors.ErrLeaveReasonRequired)
	})

	t.Run("employee leaving with reason records it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gdb, dbMock := newGormDB(t)

		repo := mock.NewMockRepository(ctrl)
		history := mock.NewMockHistoryRepository(ctrl)

		record := newRecord(personnel.KindEmployee, personnel.StatusWorking)
		repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()
		history.EXPECT().WithTx(gomock.Any()).Return(history).AnyTimes()
		repo.EXPECT().FindByIDForUpdate(gomock.Any(), record.ID.String()).Return(record, nil)
		repo.EXPECT().Update(gomock.Any(), record).Return(nil)

		var entry *personnel.StatusHistory
		history.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *personnel.StatusHistory) error {
				entry = e
				return nil
			})

		dbMock.ExpectBegin()
		dbMock.ExpectCommit()

		svc := personnel.NewService(gdb, repo, history, nil)
		resp, err := svc.UpdateStatus(context.Background(), actorID.String(), record.ID.String(), personnel.StatusLeft, "contract ended")

		require.NoError(t, err)
		assert.Equal(t, personnel.StatusLeft, resp.Status)
		require.NotNil(t, entry)
		assert.Equal(t, "contract ended", entry.Reason)
	})

	t.Run("unknown id maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gdb, dbMock := newGormDB(t)

		repo := mock.NewMockRepository(ctrl)
		repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()
		repo.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

		dbMock.ExpectBegin()
		dbMock.ExpectRollback()

		svc := personnel.NewService(gdb, repo, mock.NewMockHistoryRepository(ctrl), nil)
		_, err := svc.UpdateStatus(context.Background(), actorID.String(), uuid.NewString(), personnel.StatusAccepted, "")

		assert.ErrorIs(t, err, personnelerrors.ErrPersonnelNotFound)
	})
}

func TestService_ConvertToEmployee(t *testing.T) {
	actorID := uuid.New()

	t.Run("accepted candidate becomes a working employee", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gdb, dbMock := newGormDB(t)

		repo := mock.NewMockRepository(ctrl)
		history := mock.NewMockHistoryRepository(ctrl)
		outbox := kafkamock.NewMockOutboxRepository(ctrl)

		record := &personnel.Personnel{
			ID:     uuid.New(),
			Kind:   personnel.KindCandidate,
			Status: personnel.StatusAccepted,
		}
		repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()
		history.EXPECT().WithTx(gomock.Any()).Return(history).AnyTimes()
		outbox.EXPECT().WithTx(gomock.Any()).Return(outbox).AnyTimes()

		repo.EXPECT().FindByIDForUpdate(gomock.Any(), record.ID.String()).Return(record, nil)
		repo.EXPECT().Update(gomock.Any(), record).Return(nil)

		var entry *personnel.StatusHistory
		history.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *personnel.StatusHistory) error {
				entry = e
				return nil
			})

		var outboxEvent kafka.OutboxEvent
		outbox.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ev kafka.OutboxEvent) error {
				outboxEvent = ev
				return nil
			})

		dbMock.ExpectBegin()
		dbMock.ExpectCommit()

		svc := personnel.NewServiceWithOutbox(gdb, repo, history, outbox, nil)
		resp, err := svc.ConvertToEmployee(context.Background(), actorID.String(), record.ID.String(), "")

		require.NoError(t, err)
		assert.Equal(t, personnel.KindEmployee, resp.Kind)
		assert.Equal(t, personnel.StatusWorking, resp.Status)

		require.NotNil(t, entry)
		assert.Equal(t, personnel.StatusAccepted, entry.OldStatus)
		assert.Equal(t, personnel.StatusWorking, entry.NewStatus)
		assert.Equal(t, personnel.ConversionReason, entry.Reason)

		assert.Equal(t, events.EventTypeConverted, outboxEvent.EventType)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("initial status must come from the employee vocabulary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gdb, _ := newGormDB(t)

		svc := personnel.NewService(gdb, mock.NewMockRepository(ctrl), mock.NewMockHistoryRepository(ctrl), nil)
		_, err := svc.ConvertToEmployee(context.Background(), actorID.String(), uuid.NewString(), personnel.StatusSubmitted)

		assert.ErrorIs(t, err, personnelerrors.ErrStatusNotAllowedForKind)
	})

	t.Run("converting an employee again fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gdb, dbMock := newGormDB(t)

		repo := mock.NewMockRepository(ctrl)
		record := &personnel.Personnel{
			ID:     uuid.New(),
			Kind:   personnel.KindEmployee,
			Status: personnel.StatusWorking,
		}
		repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()
		repo.EXPECT().FindByIDForUpdate(gomock.Any(), record.ID.String()).Return(record, nil)

		dbMock.ExpectBegin()
		dbMock.ExpectRollback()

		svc := personnel.NewService(gdb, repo, mock.NewMockHistoryRepository(ctrl), nil)
		_, err := svc.ConvertToEmployee(context.Background(), actorID.String(), record.ID.String(), "")

		assert.ErrorIs(t, err, personnelerrors.ErrAlreadyEmployee)
	})

	t.Run("unaccepted candidate cannot be converted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gdb, dbMock := newGormDB(t)

		repo := mock.NewMockRepository(ctrl)
		record := &personnel.Personnel{
			ID:     uuid.New(),
			Kind:   personnel.KindCandidate,
			Status: personnel.StatusSubmitted,
		}
		repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()
		repo.EXPECT().FindByIDForUpdate(gomock.Any(), record.ID.String()).Return(record, nil)

		dbMock.ExpectBegin()
		dbMock.ExpectRollback()

		svc := personnel.NewService(gdb, repo, mock.NewMockHistoryRepository(ctrl), nil)
		_, err := svc.ConvertToEmployee(context.Background(), actorID.String(), record.ID.String(), "")

		assert.ErrorIs(t, err, personnelerrors.ErrCandidateNotAccepted)
	})
}

func TestService_GetHistory(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gdb, _ := newGormDB(t)

		svc := personnel.NewService(gdb, mock.NewMockRepository(ctrl), mock.NewMockHistoryRepository(ctrl), nil)
		_, err := svc.GetHistory(context.Background(), "oops")

		assert.ErrorIs(t, err, personnelerrors.ErrInvalidPersonnelID)
	})

	t.Run("unknown personnel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gdb, _ := newGormDB(t)

		repo := mock.NewMockRepository(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

		svc := personnel.NewService(gdb, repo, mock.NewMockHistoryRepository(ctrl), nil)
		_, err := svc.GetHistory(context.Background(), uuid.NewString())

		assert.ErrorIs(t, err, personnelerrors.ErrPersonnelNotFound)
	})

	t.Run("returns the ledger entries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gdb, _ := newGormDB(t)

		repo := mock.NewMockRepository(ctrl)
		history := mock.NewMockHistoryRepository(ctrl)

		id := uuid.New()
		changedBy := uuid.New()
		repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(&personnel.Personnel{ID: id}, nil)
		history.EXPECT().FindByPersonnel(gomock.Any(), id.String()).Return([]personnel.StatusHistory{
			{ID: uuid.New(), PersonnelID: id, OldStatus: personnel.StatusAccepted, NewStatus: personnel.StatusWorking, ChangedBy: &changedBy, Reason: personnel.ConversionReason},
			{ID: uuid.New(), PersonnelID: id, OldStatus: personnel.StatusSubmitted, NewStatus: personnel.StatusAccepted, ChangedBy: &changedBy, Reason: personnel.DefaultChangeReason},
		}, nil)

		svc := personnel.NewService(gdb, repo, history, nil)
		entries, err := svc.GetHistory(context.Background(), id.String())

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, personnel.ConversionReason, entries[0].Reason)
		assert.Equal(t, changedBy.String(), entries[0].ChangedBy)
	})
}
