package position

import (
	"context"
	"errors"
	"strings"

	positionerrors "github.com/RahimovIlhom/personnel-management/internal/position/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=position_service.go -destination=mock/position_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreatePositionRequest) (PositionResponse, error)
	GetAll(ctx context.Context, departmentID string) ([]PositionResponse, error)
	GetByID(ctx context.Context, id string) (PositionResponse, error)
	Update(ctx context.Context, id string, req UpdatePositionRequest) (PositionResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("position.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("position.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreatePositionRequest) (PositionResponse, error) {
	deptID, err := uuid.Parse(req.DepartmentID)
	if err != nil {
		return PositionResponse{}, positionerrors.ErrDepartmentNotFound
	}

	exists, err := s.repo.DepartmentExists(ctx, req.DepartmentID)
	if err != nil {
		return PositionResponse{}, mapRepositoryError(err)
	}
	if !exists {
		return PositionResponse{}, positionerrors.ErrDepartmentNotFound
	}

	p := &Position{
		ID:           uuid.New(),
		DepartmentID: deptID,
		Name:         strings.TrimSpace(req.Name),
		NumberOfJobs: req.NumberOfJobs,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("create position persist failed", zap.Error(err))
		return PositionResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create position success", zap.String("position_id", p.ID.String()))
	return mapToResponse(*p), nil
}

func (s *service) GetAll(ctx context.Context, departmentID string) ([]PositionResponse, error) {
	if departmentID != "" {
		if _, err := uuid.Parse(departmentID); err != nil {
			return nil, positionerrors.ErrDepartmentNotFound
		}
	}
	rows, err := s.repo.FindAll(ctx, departmentID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	res := make([]PositionResponse, len(rows))
	for i, p := range rows {
		res[i] = mapToResponse(p)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (PositionResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PositionResponse{}, positionerrors.ErrInvalidPositionID
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PositionResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*p), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdatePositionRequest) (PositionResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PositionResponse{}, positionerrors.ErrInvalidPositionID
	}
	deptID, err := uuid.Parse(req.DepartmentID)
	if err != nil {
		return PositionResponse{}, positionerrors.ErrDepartmentNotFound
	}

	exists, err := s.repo.DepartmentExists(ctx, req.DepartmentID)
	if err != nil {
		return PositionResponse{}, mapRepositoryError(err)
	}
	if !exists {
		return PositionResponse{}, positionerrors.ErrDepartmentNotFound
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PositionResponse{}, mapRepositoryError(err)
	}

	p.DepartmentID = deptID
	p.Name = strings.TrimSpace(req.Name)
	p.NumberOfJobs = req.NumberOfJobs

	if err := s.repo.Update(ctx, p); err != nil {
		s.logger.Error("update position persist failed", zap.Error(err))
		return PositionResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update position success", zap.String("position_id", id))
	return mapToResponse(*p), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return positionerrors.ErrInvalidPositionID
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete position failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	s.logger.Info("delete position success", zap.String("position_id", id))
	return nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return positionerrors.ErrPositionNotFound
	}
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_position_department_name") {
		return positionerrors.ErrPositionAlreadyExists
	}
	return err
}

func mapToResponse(p Position) PositionResponse {
	resp := PositionResponse{
		ID:           p.ID.String(),
		DepartmentID: p.DepartmentID.String(),
		Name:         p.Name,
		NumberOfJobs: p.NumberOfJobs,
	}
	if p.Department != nil {
		resp.DepartmentName = p.Department.Name
	}
	return resp
}
