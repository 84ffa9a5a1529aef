package personnel

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/RahimovIlhom/personnel-management/internal/events"
	"github.com/RahimovIlhom/personnel-management/internal/messaging/kafka"
	personnelerrors "github.com/RahimovIlhom/personnel-management/internal/personnel/errors"
	"github.com/RahimovIlhom/personnel-management/internal/shared/apperror"
	"github.com/RahimovIlhom/personnel-management/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const OptionsKeyPrefix = "personnel:options:"

// storageTimeout bounds every mutating storage operation so a stuck
// connection surfaces as a retryable error instead of hanging the caller.
const storageTimeout = 5 * time.Second

func GetOptionsKey(kind string) string {
	if kind == "" {
		kind = "all"
	}
	return OptionsKeyPrefix + kind
}

//go:generate mockgen -source=personnel_service.go -destination=mock/personnel_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorID, kind string, req CreatePersonnelRequest) (PersonnelResponse, error)
	GetAll(ctx context.Context, f Filter) ([]PersonnelResponse, error)
	GetOptions(ctx context.Context, kind string) ([]PersonnelOption, error)
	GetByID(ctx context.Context, id string) (PersonnelResponse, error)
	UpdateFields(ctx context.Context, actorID, id string, req UpdatePersonnelRequest) (PersonnelResponse, error)
	UpdateStatus(ctx context.Context, actorID, id, newStatus, reason string) (PersonnelResponse, error)
	ConvertToEmployee(ctx context.Context, actorID, id, initialStatus string) (PersonnelResponse, error)
	GetHistory(ctx context.Context, id string) ([]StatusHistoryResponse, error)
}

type service struct {
	db      *gorm.DB
	repo    Repository
	history HistoryRepository
	outbox  kafka.OutboxRepository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, history HistoryRepository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, history, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *gorm.DB,
	repo Repository,
	history HistoryRepository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("personnel.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("personnel.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		history: history,
		outbox:  outboxRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func (s *service) Create(
	ctx context.Context,
	actorID, kind string,
	req CreatePersonnelRequest,
) (PersonnelResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create personnel requested",
		zap.String("request_id", rid),
		zap.String("kind", kind),
		zap.String("position_id", req.PositionID),
		zap.String("pinfl", req.Pinfl),
	)

	if !IsValidKind(kind) {
		return PersonnelResponse{}, personnelerrors.ErrInvalidKind
	}
	if _, err := uuid.Parse(actorID); err != nil {
		return PersonnelResponse{}, personnelerrors.ErrInvalidActorID
	}

	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	now := time.Now().UTC()
	draft, violations := validateDraft(kind, req, now)

	refViolations, err := s.checkReferences(ctx, req)
	if err != nil {
		s.logger.Error("create personnel reference check failed", zap.Error(err))
		return PersonnelResponse{}, mapRepositoryError(err)
	}
	violations = append(violations, refViolations...)

	if len(violations) > 0 {
		s.logger.Warn("create personnel validation failed",
			zap.String("request_id", rid),
			zap.Int("violations", len(violations)),
		)
		return PersonnelResponse{}, apperror.NewValidation(violations...)
	}

	status := req.Status
	if status == "" {
		status = DefaultStatus(kind)
	}

	p := &Personnel{
		ID:         uuid.New(),
		Kind:       kind,
		Status:     status,
		PositionID: draft.positionID,
		FullName:   req.FullName,

		Birthdate:    draft.birthdate,
		BirthplaceID: req.BirthplaceID,
		NationID:     req.NationID,
		Gender:       req.Gender,
		Pinfl:        req.Pinfl,
		Passport:     req.Passport,

		ResidenceDistrictID: req.ResidenceDistrictID,
		ResidenceAddress:    req.ResidenceAddress,
		PhoneNumber:         req.PhoneNumber,
		AdditionalPhone:     req.AdditionalPhone,

		EducationLevelID:       req.EducationLevelID,
		BachelorUniversity:     req.BachelorUniversity,
		BachelorGraduationYear: req.BachelorGraduationYear,
		MasterUniversity:       req.MasterUniversity,
		MasterGraduationYear:   req.MasterGraduationYear,

		AcademicDegreeID:         req.AcademicDegreeID,
		AcademicSpecializationID: req.AcademicSpecializationID,
		AcademicTitleID:          req.AcademicTitleID,
		AcademicTitleDate:        draft.academicTitleDate,

		ResumeKey: req.ResumeKey,

		HiredDate: draft.hiredDate,
		LeftDate:  draft.leftDate,

		WorkExperiences: draft.workExperiences,
		LanguageSkills:  draft.languageSkills,
		StateAwards:     draft.stateAwards,
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("create personnel begin tx failed", zap.Error(tx.Error))
		return PersonnelResponse{}, mapRepositoryError(tx.Error)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// No history row on create: there is no prior status to record.
	if err := qtx.Create(ctx, p); err != nil {
		s.logger.Error("create personnel persist failed", zap.Error(err))
		return PersonnelResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("create personnel commit failed", zap.String("request_id", rid), zap.Error(err))
		return PersonnelResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("create personnel success",
		zap.String("request_id", rid),
		zap.String("personnel_id", p.ID.String()),
		zap.String("kind", kind),
		zap.String("status", status),
	)

	return mapToResponse(*p, now), nil
}

func (s *service) GetAll(ctx context.Context, f Filter) ([]PersonnelResponse, error) {
	s.logger.Debug("get all personnel requested",
		zap.String("kind", f.Kind),
		zap.String("status", f.Status),
	)
	records, err := s.repo.FindAll(ctx, f)
	if err != nil {
		s.logger.Error("get all personnel failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(records), nil
}

func (s *service) GetOptions(ctx context.Context, kind string) ([]PersonnelOption, error) {
	cacheKey := GetOptionsKey(kind)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []PersonnelOption
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		records, err := s.repo.FindOptions(ctx, kind)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]PersonnelOption, len(records))
		for i, p := range records {
			resp[i] = PersonnelOption{
				ID:       p.ID.String(),
				FullName: p.FullName,
				Status:   p.Status,
			}
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]PersonnelOption), nil
}

func (s *service) GetByID(ctx context.Context, id string) (PersonnelResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PersonnelResponse{}, personnelerrors.ErrInvalidPersonnelID
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get personnel by id failed", zap.String("personnel_id", id), zap.Error(err))
		return PersonnelResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*p, time.Now().UTC()), nil
}

func (s *service) UpdateFields(
	ctx context.Context,
	actorID, id string,
	req UpdatePersonnelRequest,
) (PersonnelResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update personnel fields requested",
		zap.String("request_id", rid),
		zap.String("personnel_id", id),
	)

	if _, err := uuid.Parse(id); err != nil {
		return PersonnelResponse{}, personnelerrors.ErrInvalidPersonnelID
	}
	if _, err := uuid.Parse(actorID); err != nil {
		return PersonnelResponse{}, personnelerrors.ErrInvalidActorID
	}

	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	now := time.Now().UTC()
	asCreate := req.asCreateRequest()

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("update personnel begin tx failed", zap.Error(tx.Error))
		return PersonnelResponse{}, mapRepositoryError(tx.Error)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return PersonnelResponse{}, mapRepositoryError(err)
	}

	// Status is intentionally out of reach here; validate against the
	// record's current kind so a bad status field cannot sneak through.
	draft, violations := validateDraft(p.Kind, asCreate, now)

	refViolations, err := s.checkReferences(ctx, asCreate)
	if err != nil {
		s.logger.Error("update personnel reference check failed", zap.Error(err))
		return PersonnelResponse{}, mapRepositoryError(err)
	}
	violations = append(violations, refViolations...)

	if len(violations) > 0 {
		s.logger.Warn("update personnel validation failed",
			zap.String("personnel_id", id),
			zap.Int("violations", len(violations)),
		)
		return PersonnelResponse{}, apperror.NewValidation(violations...)
	}

	p.PositionID = draft.positionID
	p.FullName = req.FullName
	p.Birthdate = draft.birthdate
	p.BirthplaceID = req.BirthplaceID
	p.NationID = req.NationID
	p.Gender = req.Gender
	p.Pinfl = req.Pinfl
	p.Passport = req.Passport
	p.ResidenceDistrictID = req.ResidenceDistrictID
	p.ResidenceAddress = req.ResidenceAddress
	p.PhoneNumber = req.PhoneNumber
	p.AdditionalPhone = req.AdditionalPhone
	p.EducationLevelID = req.EducationLevelID
	p.BachelorUniversity = req.BachelorUniversity
	p.BachelorGraduationYear = req.BachelorGraduationYear
	p.MasterUniversity = req.MasterUniversity
	p.MasterGraduationYear = req.MasterGraduationYear
	p.AcademicDegreeID = req.AcademicDegreeID
	p.AcademicSpecializationID = req.AcademicSpecializationID
	p.AcademicTitleID = req.AcademicTitleID
	p.AcademicTitleDate = draft.academicTitleDate
	p.ResumeKey = req.ResumeKey
	p.HiredDate = draft.hiredDate
	p.LeftDate = draft.leftDate

	// Field edits never touch the ledger.
	if err := qtx.Update(ctx, p); err != nil {
		s.logger.Error("update personnel persist failed", zap.Error(err))
		return PersonnelResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("update personnel commit failed", zap.Error(err))
		return PersonnelResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("update personnel fields success", zap.String("personnel_id", id))

	return mapToResponse(*p, now), nil
}

func (s *service) UpdateStatus(
	ctx context.Context,
	actorID, id, newStatus, reason string,
) (PersonnelResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update personnel status requested",
		zap.String("request_id", rid),
		zap.String("personnel_id", id),
		zap.String("new_status", newStatus),
	)

	if _, err := uuid.Parse(id); err != nil {
		return PersonnelResponse{}, personnelerrors.ErrInvalidPersonnelID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return PersonnelResponse{}, personnelerrors.ErrInvalidActorID
	}

	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	now := time.Now().UTC()

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("update status begin tx failed", zap.Error(tx.Error))
		return PersonnelResponse{}, mapRepositoryError(tx.Error)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return PersonnelResponse{}, mapRepositoryError(err)
	}

	if !IsStatusAllowed(p.Kind, newStatus) {
		s.logger.Warn("update status not allowed for kind",
			zap.String("personnel_id", id),
			zap.String("kind", p.Kind),
			zap.String("new_status", newStatus),
		)
		return PersonnelResponse{}, personnelerrors.ErrStatusNotAllowedForKind
	}

	if p.Kind == KindEmployee && newStatus == StatusLeft && strings.TrimSpace(reason) == "" {
		return PersonnelResponse{}, personnelerrors.ErrLeaveReasonRequired
	}

	// Idempotent short-circuit: same status means no mutation and, just
	// as important, no ledger row.
	if newStatus == p.Status {
		s.logger.Debug("update status no-op, status unchanged",
			zap.String("personnel_id", id),
			zap.String("status", newStatus),
		)
		return mapToResponse(*p, now), nil
	}

	oldStatus := p.Status
	p.Status = newStatus

	if err := s.applyTransition(ctx, tx, p, oldStatus, actorUUID, reason, events.EventTypeStatusChanged, rid); err != nil {
		return PersonnelResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("update status commit failed", zap.Error(err))
		return PersonnelResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("update personnel status success",
		zap.String("request_id", rid),
		zap.String("personnel_id", id),
		zap.String("old_status", oldStatus),
		zap.String("new_status", newStatus),
	)

	return mapToResponse(*p, now), nil
}

func (s *service) ConvertToEmployee(
	ctx context.Context,
	actorID, id, initialStatus string,
) (PersonnelResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("convert candidate requested",
		zap.String("request_id", rid),
		zap.String("personnel_id", id),
		zap.String("initial_status", initialStatus),
	)

	if _, err := uuid.Parse(id); err != nil {
		return PersonnelResponse{}, personnelerrors.ErrInvalidPersonnelID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return PersonnelResponse{}, personnelerrors.ErrInvalidActorID
	}

	if initialStatus == "" {
		initialStatus = StatusWorking
	}
	if !IsStatusAllowed(KindEmployee, initialStatus) {
		return PersonnelResponse{}, personnelerrors.ErrStatusNotAllowedForKind
	}

	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	now := time.Now().UTC()

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("convert candidate begin tx failed", zap.Error(tx.Error))
		return PersonnelResponse{}, mapRepositoryError(tx.Error)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return PersonnelResponse{}, mapRepositoryError(err)
	}

	if p.Kind == KindEmployee {
		return PersonnelResponse{}, personnelerrors.ErrAlreadyEmployee
	}
	if p.Status != StatusAccepted {
		return PersonnelResponse{}, personnelerrors.ErrCandidateNotAccepted
	}

	oldStatus := p.Status
	p.Kind = KindEmployee
	p.Status = initialStatus

	if err := s.applyTransition(ctx, tx, p, oldStatus, actorUUID, ConversionReason, events.EventTypeConverted, rid); err != nil {
		return PersonnelResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("convert candidate commit failed", zap.Error(err))
		return PersonnelResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("convert candidate success",
		zap.String("request_id", rid),
		zap.String("personnel_id", id),
		zap.String("status", initialStatus),
	)

	return mapToResponse(*p, now), nil
}

// applyTransition persists the record, appends exactly one ledger entry
// and queues the lifecycle event, all on the caller's transaction.
func (s *service) applyTransition(
	ctx context.Context,
	tx *gorm.DB,
	p *Personnel,
	oldStatus string,
	actor uuid.UUID,
	reason, eventType, requestID string,
) error {
	qtx := s.repo.WithTx(tx)
	qhx := s.history.WithTx(tx)

	if err := qtx.Update(ctx, p); err != nil {
		s.logger.Error("transition persist failed",
			zap.String("personnel_id", p.ID.String()),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}

	if strings.TrimSpace(reason) == "" {
		reason = DefaultChangeReason
	}

	changedBy := actor
	entry := &StatusHistory{
		ID:          uuid.New(),
		PersonnelID: p.ID,
		OldStatus:   oldStatus,
		NewStatus:   p.Status,
		ChangedBy:   &changedBy,
		Reason:      reason,
	}
	if err := qhx.Create(ctx, entry); err != nil {
		s.logger.Error("transition ledger append failed",
			zap.String("personnel_id", p.ID.String()),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.PersonnelStatusChangedEvent{
			EventType:   eventType,
			RequestID:   requestID,
			PersonnelID: p.ID.String(),
			Kind:        p.Kind,
			OldStatus:   oldStatus,
			NewStatus:   p.Status,
			ChangedBy:   actor.String(),
			Reason:      reason,
			OccurredAt:  time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal lifecycle event failed", zap.Error(err))
			return err
		}

		qox := s.outbox.WithTx(tx)
		if err := qox.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     requestID,
			AggregateType: "personnel",
			AggregateID:   p.ID.String(),
			EventType:     eventType,
			Topic:         events.PersonnelLifecycleTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("transition outbox persist failed",
				zap.String("personnel_id", p.ID.String()),
				zap.Error(err),
			)
			return mapRepositoryError(err)
		}
	}

	return nil
}

func (s *service) GetHistory(ctx context.Context, id string) ([]StatusHistoryResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, personnelerrors.ErrInvalidPersonnelID
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, mapRepositoryError(err)
	}

	entries, err := s.history.FindByPersonnel(ctx, id)
	if err != nil {
		s.logger.Error("get status history failed", zap.String("personnel_id", id), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	resp := make([]StatusHistoryResponse, len(entries))
	for i, e := range entries {
		resp[i] = mapHistoryToResponse(e)
	}
	return resp, nil
}

// checkReferences verifies the external reference rows exist; a missing
// reference is a validation problem, never auto-created.
func (s *service) checkReferences(ctx context.Context, req CreatePersonnelRequest) ([]apperror.FieldError, error) {
	var fields []apperror.FieldError

	type refCheck struct {
		field  string
		exists func() (bool, error)
	}

	checks := []refCheck{
		{"position_id", func() (bool, error) { return s.repo.PositionExists(ctx, req.PositionID) }},
		{"birthplace_id", func() (bool, error) { return s.repo.DistrictExists(ctx, req.BirthplaceID) }},
		{"residence_district_id", func() (bool, error) { return s.repo.DistrictExists(ctx, req.ResidenceDistrictID) }},
		{"nation_id", func() (bool, error) { return s.repo.NationExists(ctx, req.NationID) }},
		{"education_level_id", func() (bool, error) { return s.repo.EducationLevelExists(ctx, req.EducationLevelID) }},
	}
	if req.AcademicDegreeID != nil {
		checks = append(checks, refCheck{"academic_degree_id", func() (bool, error) {
			return s.repo.AcademicDegreeExists(ctx, *req.AcademicDegreeID)
		}})
	}
	if req.AcademicSpecializationID != nil {
		checks = append(checks, refCheck{"academic_specialization_id", func() (bool, error) {
			return s.repo.AcademicSpecializationExists(ctx, *req.AcademicSpecializationID)
		}})
	}
	if req.AcademicTitleID != nil {
		checks = append(checks, refCheck{"academic_title_id", func() (bool, error) {
			return s.repo.AcademicTitleExists(ctx, *req.AcademicTitleID)
		}})
	}

	for _, c := range checks {
		ok, err := c.exists()
		if err != nil {
			return nil, err
		}
		if !ok {
			fields = append(fields, apperror.FieldError{Field: c.field, Message: "referenced record does not exist"})
		}
	}

	return fields, nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	for _, kind := range []string{"", KindCandidate, KindEmployee} {
		cacheKey := GetOptionsKey(kind)
		if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
			s.logger.Error("failed to invalidate personnel options cache",
				zap.Error(err),
				zap.String("key", cacheKey),
			)
		}
	}
}

func mapToResponse(p Personnel, now time.Time) PersonnelResponse {
	resp := PersonnelResponse{
		ID:         p.ID.String(),
		Kind:       p.Kind,
		Status:     p.Status,
		PositionID: p.PositionID.String(),
		FullName:   p.FullName,

		Birthdate:    p.Birthdate.Format(dateLayout),
		Age:          p.Age(now),
		BirthplaceID: p.BirthplaceID,
		NationID:     p.NationID,
		Gender:       p.Gender,
		Pinfl:        p.Pinfl,
		Passport:     p.Passport,

		ResidenceDistrictID: p.ResidenceDistrictID,
		ResidenceAddress:    p.ResidenceAddress,
		PhoneNumber:         p.PhoneNumber,
		AdditionalPhone:     p.AdditionalPhone,

		EducationLevelID:       p.EducationLevelID,
		BachelorUniversity:     p.BachelorUniversity,
		BachelorGraduationYear: p.BachelorGraduationYear,
		MasterUniversity:       p.MasterUniversity,
		MasterGraduationYear:   p.MasterGraduationYear,

		AcademicDegreeID:         p.AcademicDegreeID,
		AcademicSpecializationID: p.AcademicSpecializationID,
		AcademicTitleID:          p.AcademicTitleID,

		ResumeKey: p.ResumeKey,

		ExperienceYears: p.ExperienceYears(now),

		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if p.AcademicTitleDate != nil {
		resp.AcademicTitleDate = p.AcademicTitleDate.Format(dateLayout)
	}
	if p.HiredDate != nil {
		resp.HiredDate = p.HiredDate.Format(dateLayout)
	}
	if p.LeftDate != nil {
		resp.LeftDate = p.LeftDate.Format(dateLayout)
	}
	for _, we := range p.WorkExperiences {
		wr := WorkExperienceResponse{
			Workplace: we.Workplace,
			Position:  we.Position,
			StartDate: we.StartDate.Format(dateLayout),
		}
		if we.EndDate != nil {
			wr.EndDate = we.EndDate.Format(dateLayout)
		}
		resp.WorkExperiences = append(resp.WorkExperiences, wr)
	}
	for _, ls := range p.LanguageSkills {
		resp.LanguageSkills = append(resp.LanguageSkills, LanguageSkillResponse{
			Language: ls.Language,
			Level:    ls.Level,
		})
	}
	for _, sa := range p.StateAwards {
		resp.StateAwards = append(resp.StateAwards, StateAwardResponse{
			Name: sa.Name,
			Year: sa.Year,
		})
	}
	return resp
}

func mapToListResponse(records []Personnel) []PersonnelResponse {
	now := time.Now().UTC()
	res := make([]PersonnelResponse, len(records))
	for i, p := range records {
		res[i] = mapToResponse(p, now)
	}
	return res
}

func mapHistoryToResponse(e StatusHistory) StatusHistoryResponse {
	resp := StatusHistoryResponse{
		ID:          e.ID.String(),
		PersonnelID: e.PersonnelID.String(),
		OldStatus:   e.OldStatus,
		NewStatus:   e.NewStatus,
		Reason:      e.Reason,
		CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339),
	}
	if e.ChangedBy != nil {
		resp.ChangedBy = e.ChangedBy.String()
	}
	return resp
}
