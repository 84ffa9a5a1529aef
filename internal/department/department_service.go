package department

import (
	"context"
	"errors"
	"strings"

	departmenterrors "github.com/RahimovIlhom/personnel-management/internal/department/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, id string) (DepartmentResponse, error)
	Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error) {
	s.logger.Debug("create department requested",
		zap.Int64("type_id", req.TypeID),
		zap.String("name", req.Name),
	)

	exists, err := s.repo.TypeExists(ctx, req.TypeID)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}
	if !exists {
		return DepartmentResponse{}, departmenterrors.ErrDepartmentTypeNotFound
	}

	d := &Department{
		ID:     uuid.New(),
		TypeID: req.TypeID,
		Name:   strings.TrimSpace(req.Name),
	}

	if err := s.repo.Create(ctx, d); err != nil {
		s.logger.Error("create department persist failed", zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create department success", zap.String("department_id", d.ID.String()))
	return mapToResponse(*d), nil
}

func (s *service) GetAll(ctx context.Context) ([]DepartmentResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	res := make([]DepartmentResponse, len(rows))
	for i, d := range rows {
		res[i] = mapToResponse(d)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (DepartmentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
	}
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*d), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
	}

	exists, err := s.repo.TypeExists(ctx, req.TypeID)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}
	if !exists {
		return DepartmentResponse{}, departmenterrors.ErrDepartmentTypeNotFound
	}

	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	d.TypeID = req.TypeID
	d.Name = strings.TrimSpace(req.Name)

	if err := s.repo.Update(ctx, d); err != nil {
		s.logger.Error("update department persist failed", zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update department success", zap.String("department_id", id))
	return mapToResponse(*d), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return departmenterrors.ErrInvalidDepartmentID
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete department failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	s.logger.Info("delete department success", zap.String("department_id", id))
	return nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return departmenterrors.ErrDepartmentNotFound
	}
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_department_type_name") {
		return departmenterrors.ErrDepartmentAlreadyExists
	}
	return err
}

func mapToResponse(d Department) DepartmentResponse {
	resp := DepartmentResponse{
		ID:     d.ID.String(),
		TypeID: d.TypeID,
		Name:   d.Name,
	}
	if d.Type != nil {
		resp.TypeName = d.Type.Name
	}
	return resp
}
