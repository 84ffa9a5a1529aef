package position

import (
	"time"

	"github.com/RahimovIlhom/personnel-management/internal/department"

	"github.com/google/uuid"
)

type Position struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	DepartmentID uuid.UUID `gorm:"column:department_id;type:uuid;not null;uniqueIndex:uq_position_department_name"`
	Name         string    `gorm:"column:name;type:varchar(255);not null;uniqueIndex:uq_position_department_name"`
	NumberOfJobs int       `gorm:"column:number_of_jobs;not null;default:1"`

	Department *department.Department `gorm:"foreignKey:DepartmentID;references:ID"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Position) TableName() string { return "positions" }
