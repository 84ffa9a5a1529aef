package refdata

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=refdata_repo.go -destination=mock/refdata_repo_mock.go -package=mock
type Repository interface {
	ListRegions(ctx context.Context) ([]Region, error)
	ListDistricts(ctx context.Context, regionID int64) ([]District, error)
	ListNations(ctx context.Context) ([]Nation, error)
	ListEducationLevels(ctx context.Context) ([]EducationLevel, error)
	ListAcademicDegrees(ctx context.Context) ([]AcademicDegree, error)
	ListAcademicSpecializations(ctx context.Context) ([]AcademicSpecialization, error)
	ListAcademicTitles(ctx context.Context) ([]AcademicTitle, error)

	UpsertRegions(ctx context.Context, regions []Region) error
	UpsertDistricts(ctx context.Context, districts []District) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListRegions(ctx context.Context) ([]Region, error) {
	var rows []Region
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) ListDistricts(ctx context.Context, regionID int64) ([]District, error) {
	var rows []District
	q := r.db.WithContext(ctx)
	if regionID > 0 {
		q = q.Where("region_id = ?", regionID)
	}
	err := q.Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) ListNations(ctx context.Context) ([]Nation, error) {
	var rows []Nation
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) ListEducationLevels(ctx context.Context) ([]EducationLevel, error) {
	var rows []EducationLevel
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) ListAcademicDegrees(ctx context.Context) ([]AcademicDegree, error) {
	var rows []AcademicDegree
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) ListAcademicSpecializations(ctx context.Context) ([]AcademicSpecialization, error) {
	var rows []AcademicSpecialization
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) ListAcademicTitles(ctx context.Context) ([]AcademicTitle, error) {
	var rows []AcademicTitle
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	return rows, err
}

// UpsertRegions keeps the ids supplied by the national registry stable.
func (r *repository) UpsertRegions(ctx context.Context, regions []Region) error {
	if len(regions) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name"}),
		}).
		Create(&regions).Error
}

func (r *repository) UpsertDistricts(ctx context.Context, districts []District) error {
	if len(districts) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"region_id", "name"}),
		}).
		Create(&districts).Error
}
