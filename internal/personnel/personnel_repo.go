package personnel

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Filter narrows list queries; zero values mean "any".
type Filter struct {
	Kind       string
	Status     string
	PositionID string
}

//go:generate mockgen -source=personnel_repo.go -destination=mock/personnel_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, p *Personnel) error
	FindByID(ctx context.Context, id string) (*Personnel, error)
	// FindByIDForUpdate locks the row so concurrent status updates on the
	// same personnel id serialize inside their transactions.
	FindByIDForUpdate(ctx context.Context, id string) (*Personnel, error)
	FindAll(ctx context.Context, f Filter) ([]Personnel, error)
	FindOptions(ctx context.Context, kind string) ([]Personnel, error)
	Update(ctx context.Context, p *Personnel) error

	PositionExists(ctx context.Context, id string) (bool, error)
	DistrictExists(ctx context.Context, id int64) (bool, error)
	NationExists(ctx context.Context, id int64) (bool, error)
	EducationLevelExists(ctx context.Context, id int64) (bool, error)
	AcademicDegreeExists(ctx context.Context, id int64) (bool, error)
	AcademicSpecializationExists(ctx context.Context, id int64) (bool, error)
	AcademicTitleExists(ctx context.Context, id int64) (bool, error)
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

func (r *repository) Create(ctx context.Context, p *Personnel) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Personnel, error) {
	var p Personnel
	err := r.db.WithContext(ctx).
		Preload("WorkExperiences").
		Preload("LanguageSkills").
		Preload("StateAwards").
		First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*Personnel, error) {
	var p Personnel
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) FindAll(ctx context.Context, f Filter) ([]Personnel, error) {
	var records []Personnel
	q := r.db.WithContext(ctx)
	if f.Kind != "" {
		q = q.Where("kind = ?", f.Kind)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.PositionID != "" {
		q = q.Where("position_id = ?", f.PositionID)
	}
	err := q.Order("full_name ASC").Find(&records).Error
	return records, err
}

func (r *repository) FindOptions(ctx context.Context, kind string) ([]Personnel, error) {
	var records []Personnel
	q := r.db.WithContext(ctx).Select("id", "full_name", "status")
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}
	err := q.Order("full_name ASC").Find(&records).Error
	return records, err
}

func (r *repository) Update(ctx context.Context, p *Personnel) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) PositionExists(ctx context.Context, id string) (bool, error) {
	return r.rowExists(ctx, "positions", id)
}

func (r *repository) DistrictExists(ctx context.Context, id int64) (bool, error) {
	return r.rowExists(ctx, "districts", id)
}

func (r *repository) NationExists(ctx context.Context, id int64) (bool, error) {
	return r.rowExists(ctx, "nations", id)
}

func (r *repository) EducationLevelExists(ctx context.Context, id int64) (bool, error) {
	return r.rowExists(ctx, "education_levels", id)
}

func (r *repository) AcademicDegreeExists(ctx context.Context, id int64) (bool, error) {
	return r.rowExists(ctx, "academic_degrees", id)
}

func (r *repository) AcademicSpecializationExists(ctx context.Context, id int64) (bool, error) {
	return r.rowExists(ctx, "academic_specializations", id)
}

func (r *repository) AcademicTitleExists(ctx context.Context, id int64) (bool, error) {
	return r.rowExists(ctx, "academic_titles", id)
}

func (r *repository) rowExists(ctx context.Context, table string, id any) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table(table).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}
