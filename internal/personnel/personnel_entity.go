package personnel

import (
	"time"

	"github.com/google/uuid"
)

const (
	KindCandidate = "CANDIDATE"
	KindEmployee  = "EMPLOYEE"
)

// Candidate statuses
const (
	StatusSubmitted = "submitted"
	StatusAccepted  = "accepted"
	StatusRejected  = "rejected"
)

// Employee statuses
const (
	StatusWorking  = "working"
	StatusLeft     = "left"
	StatusVacation = "vacation"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

var candidateStatuses = []string{StatusSubmitted, StatusAccepted, StatusRejected}
var employeeStatuses = []string{StatusWorking, StatusLeft, StatusVacation}

// StatusesForKind returns the status vocabulary legal for a kind.
func StatusesForKind(kind string) []string {
	switch kind {
	case KindCandidate:
		return candidateStatuses
	case KindEmployee:
		return employeeStatuses
	default:
		return nil
	}
}

// IsStatusAllowed reports whether status belongs to the kind's vocabulary.
func IsStatusAllowed(kind, status string) bool {
	for _, s := range StatusesForKind(kind) {
		if s == status {
			return true
		}
	}
	return false
}

// DefaultStatus is the status a freshly created record gets.
func DefaultStatus(kind string) string {
	if kind == KindCandidate {
		return StatusSubmitted
	}
	return StatusWorking
}

func IsValidKind(kind string) bool {
	return kind == KindCandidate || kind == KindEmployee
}

// Personnel is a single record for both candidates and employees; the Kind
// tag decides which status vocabulary applies. Kind changes exactly once,
// through conversion, never back.
type Personnel struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Kind   string    `gorm:"column:kind;type:varchar(20);not null;index:idx_personnel_kind_status"`
	Status string    `gorm:"column:status;type:varchar(20);not null;index:idx_personnel_kind_status"`

	PositionID uuid.UUID `gorm:"column:position_id;type:uuid;not null;index"`
	FullName   string    `gorm:"column:full_name;type:varchar(255);not null"`

	Birthdate    time.Time `gorm:"column:birthdate;type:date;not null"`
	BirthplaceID int64     `gorm:"column:birthplace_id;not null"`
	NationID     int64     `gorm:"column:nation_id;not null"`
	Gender       string    `gorm:"column:gender;type:varchar(10);not null"`
	Pinfl        string    `gorm:"column:pinfl;type:varchar(14);not null;uniqueIndex:uq_personnel_pinfl"`
	Passport     string    `gorm:"column:passport;type:varchar(9);not null;uniqueIndex:uq_personnel_passport"`

	ResidenceDistrictID int64  `gorm:"column:residence_district_id;not null"`
	ResidenceAddress    string `gorm:"column:residence_address;type:varchar(255)"`
	PhoneNumber         string `gorm:"column:phone_number;type:varchar(13);not null"`
	AdditionalPhone     string `gorm:"column:additional_phone;type:varchar(13)"`

	EducationLevelID       int64  `gorm:"column:education_level_id;not null"`
	BachelorUniversity     string `gorm:"column:bachelor_university;type:varchar(255)"`
	BachelorGraduationYear *int   `gorm:"column:bachelor_graduation_year"`
	MasterUniversity       string `gorm:"column:master_university;type:varchar(255)"`
	MasterGraduationYear   *int   `gorm:"column:master_graduation_year"`

	AcademicDegreeID         *int64     `gorm:"column:academic_degree_id"`
	AcademicSpecializationID *int64     `gorm:"column:academic_specialization_id"`
	AcademicTitleID          *int64     `gorm:"column:academic_title_id"`
	AcademicTitleDate        *time.Time `gorm:"column:academic_title_date;type:date"`

	ResumeKey string `gorm:"column:resume_key;type:varchar(512);not null"`

	HiredDate *time.Time `gorm:"column:hired_date;type:date"`
	LeftDate  *time.Time `gorm:"column:left_date;type:date"`

	WorkExperiences []WorkExperience `gorm:"foreignKey:PersonnelID"`
	LanguageSkills  []LanguageSkill  `gorm:"foreignKey:PersonnelID"`
	StateAwards     []StateAward     `gorm:"foreignKey:PersonnelID"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Personnel) TableName() string {
	return "personnel"
}

// Age in whole years as of today, nil when birthdate is unset.
func (p *Personnel) Age(now time.Time) int {
	age := now.Year() - p.Birthdate.Year()
	if now.Month() < p.Birthdate.Month() ||
		(now.Month() == p.Birthdate.Month() && now.Day() < p.Birthdate.Day()) {
		age--
	}
	return age
}

// ExperienceYears counts whole years between hire and leave (or now).
func (p *Personnel) ExperienceYears(now time.Time) int {
	if p.HiredDate == nil {
		return 0
	}
	end := now
	if p.LeftDate != nil {
		end = *p.LeftDate
	}
	years := end.Year() - p.HiredDate.Year()
	if end.Month() < p.HiredDate.Month() ||
		(end.Month() == p.HiredDate.Month() && end.Day() < p.HiredDate.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

type WorkExperience struct {
	ID          uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	PersonnelID uuid.UUID  `gorm:"column:personnel_id;type:uuid;not null;index"`
	Workplace   string     `gorm:"column:workplace;type:varchar(255);not null"`
	Position    string     `gorm:"column:position;type:varchar(255);not null"`
	StartDate   time.Time  `gorm:"column:start_date;type:date;not null"`
	EndDate     *time.Time `gorm:"column:end_date;type:date"`
}

func (WorkExperience) TableName() string {
	return "personnel_work_experiences"
}

type LanguageSkill struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	PersonnelID uuid.UUID `gorm:"column:personnel_id;type:uuid;not null;index"`
	Language    string    `gorm:"column:language;type:varchar(255);not null"`
	Level       string    `gorm:"column:level;type:varchar(2);not null"`
}

func (LanguageSkill) TableName() string {
	return "personnel_language_skills"
}

// CEFR proficiency levels
var languageLevels = []string{"A1", "A2", "B1", "B2", "C1", "C2"}

func IsValidLanguageLevel(level string) bool {
	for _, l := range languageLevels {
		if l == level {
			return true
		}
	}
	return false
}

type StateAward struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	PersonnelID uuid.UUID `gorm:"column:personnel_id;type:uuid;not null;index"`
	Name        string    `gorm:"column:name;type:varchar(255);not null"`
	Year        int       `gorm:"column:year;not null"`
}

func (StateAward) TableName() string {
	return "personnel_state_awards"
}
