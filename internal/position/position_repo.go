package position

import (
	"context"

	"github.com/RahimovIlhom/personnel-management/internal/department"

	"gorm.io/gorm"
)

//go:generate mockgen -source=position_repo.go -destination=mock/position_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, p *Position) error
	FindAll(ctx context.Context, departmentID string) ([]Position, error)
	FindByID(ctx context.Context, id string) (*Position, error)
	DepartmentExists(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, p *Position) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, p *Position) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindAll(ctx context.Context, departmentID string) ([]Position, error) {
	q := r.db.WithContext(ctx).
		Preload("Department").
		Order("name ASC")
	if departmentID != "" {
		q = q.Where("department_id = ?", departmentID)
	}
	var rows []Position
	err := q.Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Position, error) {
	var p Position
	err := r.db.WithContext(ctx).
		Preload("Department").
		First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) DepartmentExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&department.Department{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, p *Position) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Position{}, "id = ?", id).Error
}
