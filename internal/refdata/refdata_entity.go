package refdata

// Reference data: read-mostly lookup rows the lifecycle engine only ever
// checks for existence. Rows are loaded by the seed command, never
// auto-created on behalf of a personnel record.

type Region struct {
	ID   int64  `gorm:"column:id;primaryKey" json:"id"`
	Name string `gorm:"column:name;type:varchar(255);not null" json:"name"`
}

func (Region) TableName() string { return "regions" }

type District struct {
	ID       int64  `gorm:"column:id;primaryKey" json:"id"`
	RegionID int64  `gorm:"column:region_id;not null;index" json:"region_id"`
	Name     string `gorm:"column:name;type:varchar(255);not null" json:"name"`
}

func (District) TableName() string { return "districts" }

type Nation struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:name;type:varchar(255);not null" json:"name"`
}

func (Nation) TableName() string { return "nations" }

type EducationLevel struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:name;type:varchar(255);not null" json:"name"`
}

func (EducationLevel) TableName() string { return "education_levels" }

type AcademicDegree struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:name;type:varchar(255);not null" json:"name"`
}

func (AcademicDegree) TableName() string { return "academic_degrees" }

type AcademicSpecialization struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:name;type:varchar(255);not null" json:"name"`
}

func (AcademicSpecialization) TableName() string { return "academic_specializations" }

type AcademicTitle struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:name;type:varchar(255);not null" json:"name"`
}

func (AcademicTitle) TableName() string { return "academic_titles" }
