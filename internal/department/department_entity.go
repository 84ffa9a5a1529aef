package department

import (
	"time"

	"github.com/google/uuid"
)

type DepartmentType struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:name;type:varchar(255);not null;uniqueIndex" json:"name"`
}

func (DepartmentType) TableName() string { return "department_types" }

type Department struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	TypeID int64     `gorm:"column:type_id;not null;uniqueIndex:uq_department_type_name"`
	Name   string    `gorm:"column:name;type:varchar(255);not null;uniqueIndex:uq_department_type_name"`

	Type *DepartmentType `gorm:"foreignKey:TypeID;references:ID"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Department) TableName() string { return "departments" }
