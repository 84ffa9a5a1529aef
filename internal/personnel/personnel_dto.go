package personnel

type WorkExperienceInput struct {
	Workplace string `json:"workplace" binding:"required"`
	Position  string `json:"position" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date"`
}

type LanguageSkillInput struct {
	Language string `json:"language" binding:"required"`
	Level    string `json:"level" binding:"required"`
}

type StateAwardInput struct {
	Name string `json:"name" binding:"required"`
	Year int    `json:"year" binding:"required"`
}

// CreatePersonnelRequest is the draft record for both kinds; status is
// optional and defaults per kind.
type CreatePersonnelRequest struct {
	Status     string `json:"status"`
	PositionID string `json:"position_id" binding:"required,uuid"`
	FullName   string `json:"full_name" binding:"required"`

	Birthdate    string `json:"birthdate" binding:"required"`
	BirthplaceID int64  `json:"birthplace_id" binding:"required"`
	NationID     int64  `json:"nation_id" binding:"required"`
	Gender       string `json:"gender" binding:"required"`
	Pinfl        string `json:"pinfl" binding:"required"`
	Passport     string `json:"passport" binding:"required"`

	ResidenceDistrictID int64  `json:"residence_district_id" binding:"required"`
	ResidenceAddress    string `json:"residence_address"`
	PhoneNumber         string `json:"phone_number" binding:"required"`
	AdditionalPhone     string `json:"additional_phone"`

	EducationLevelID       int64  `json:"education_level_id" binding:"required"`
	BachelorUniversity     string `json:"bachelor_university"`
	BachelorGraduationYear *int   `json:"bachelor_graduation_year"`
	MasterUniversity       string `json:"master_university"`
	MasterGraduationYear   *int   `json:"master_graduation_year"`

	AcademicDegreeID         *int64 `json:"academic_degree_id"`
	AcademicSpecializationID *int64 `json:"academic_specialization_id"`
	AcademicTitleID          *int64 `json:"academic_title_id"`
	AcademicTitleDate        string `json:"academic_title_date"`

	ResumeKey string `json:"resume_key" binding:"required"`

	HiredDate string `json:"hired_date"`
	LeftDate  string `json:"left_date"`

	WorkExperiences []WorkExperienceInput `json:"work_experiences"`
	LanguageSkills  []LanguageSkillInput  `json:"language_skills"`
	StateAwards     []StateAwardInput     `json:"state_awards"`
}

// UpdatePersonnelRequest covers non-status edits only. Status and kind are
// never touched here; status goes through the explicit status endpoint so
// the ledger write can never be a side effect of a field edit.
type UpdatePersonnelRequest struct {
	PositionID string `json:"position_id" binding:"required,uuid"`
	FullName   string `json:"full_name" binding:"required"`

	Birthdate    string `json:"birthdate" binding:"required"`
	BirthplaceID int64  `json:"birthplace_id" binding:"required"`
	NationID     int64  `json:"nation_id" binding:"required"`
	Gender       string `json:"gender" binding:"required"`
	Pinfl        string `json:"pinfl" binding:"required"`
	Passport     string `json:"passport" binding:"required"`

	ResidenceDistrictID int64  `json:"residence_district_id" binding:"required"`
	ResidenceAddress    string `json:"residence_address"`
	PhoneNumber         string `json:"phone_number" binding:"required"`
	AdditionalPhone     string `json:"additional_phone"`

	EducationLevelID       int64  `json:"education_level_id" binding:"required"`
	BachelorUniversity     string `json:"bachelor_university"`
	BachelorGraduationYear *int   `json:"bachelor_graduation_year"`
	MasterUniversity       string `json:"master_university"`
	MasterGraduationYear   *int   `json:"master_graduation_year"`

	AcademicDegreeID         *int64 `json:"academic_degree_id"`
	AcademicSpecializationID *int64 `json:"academic_specialization_id"`
	AcademicTitleID          *int64 `json:"academic_title_id"`
	AcademicTitleDate        string `json:"academic_title_date"`

	ResumeKey string `json:"resume_key" binding:"required"`

	HiredDate string `json:"hired_date"`
	LeftDate  string `json:"left_date"`
}

// asCreateRequest reuses the draft validator for field edits; status is
// left empty so the record's current status is never re-validated here.
func (r UpdatePersonnelRequest) asCreateRequest() CreatePersonnelRequest {
	return CreatePersonnelRequest{
		PositionID: r.PositionID,
		FullName:   r.FullName,

		Birthdate:    r.Birthdate,
		BirthplaceID: r.BirthplaceID,
		NationID:     r.NationID,
		Gender:       r.Gender,
		Pinfl:        r.Pinfl,
		Passport:     r.Passport,

		ResidenceDistrictID: r.ResidenceDistrictID,
		ResidenceAddress:    r.ResidenceAddress,
		PhoneNumber:         r.PhoneNumber,
		AdditionalPhone:     r.AdditionalPhone,

		EducationLevelID:       r.EducationLevelID,
		BachelorUniversity:     r.BachelorUniversity,
		BachelorGraduationYear: r.BachelorGraduationYear,
		MasterUniversity:       r.MasterUniversity,
		MasterGraduationYear:   r.MasterGraduationYear,

		AcademicDegreeID:         r.AcademicDegreeID,
		AcademicSpecializationID: r.AcademicSpecializationID,
		AcademicTitleID:          r.AcademicTitleID,
		AcademicTitleDate:        r.AcademicTitleDate,

		ResumeKey: r.ResumeKey,

		HiredDate: r.HiredDate,
		LeftDate:  r.LeftDate,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

type ConvertRequest struct {
	InitialStatus string `json:"initial_status"`
}

type WorkExperienceResponse struct {
	Workplace string `json:"workplace"`
	Position  string `json:"position"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date,omitempty"`
}

type LanguageSkillResponse struct {
	Language string `json:"language"`
	Level    string `json:"level"`
}

type StateAwardResponse struct {
	Name string `json:"name"`
	Year int    `json:"year"`
}

type PersonnelResponse struct {
	ID         string `json:"id"`
	Kind       string `json:"kind"`
	Status     string `json:"status"`
	PositionID string `json:"position_id"`
	FullName   string `json:"full_name"`

	Birthdate    string `json:"birthdate"`
	Age          int    `json:"age"`
	BirthplaceID int64  `json:"birthplace_id"`
	NationID     int64  `json:"nation_id"`
	Gender       string `json:"gender"`
	Pinfl        string `json:"pinfl"`
	Passport     string `json:"passport"`

	ResidenceDistrictID int64  `json:"residence_district_id"`
	ResidenceAddress    string `json:"residence_address,omitempty"`
	PhoneNumber         string `json:"phone_number"`
	AdditionalPhone     string `json:"additional_phone,omitempty"`

	EducationLevelID       int64  `json:"education_level_id"`
	BachelorUniversity     string `json:"bachelor_university,omitempty"`
	BachelorGraduationYear *int   `json:"bachelor_graduation_year,omitempty"`
	MasterUniversity       string `json:"master_university,omitempty"`
	MasterGraduationYear   *int   `json:"master_graduation_year,omitempty"`

	AcademicDegreeID         *int64 `json:"academic_degree_id,omitempty"`
	AcademicSpecializationID *int64 `json:"academic_specialization_id,omitempty"`
	AcademicTitleID          *int64 `json:"academic_title_id,omitempty"`
	AcademicTitleDate        string `json:"academic_title_date,omitempty"`

	ResumeKey string `json:"resume_key"`

	HiredDate       string `json:"hired_date,omitempty"`
	LeftDate        string `json:"left_date,omitempty"`
	ExperienceYears int    `json:"experience_years"`

	WorkExperiences []WorkExperienceResponse `json:"work_experiences,omitempty"`
	LanguageSkills  []LanguageSkillResponse  `json:"language_skills,omitempty"`
	StateAwards     []StateAwardResponse     `json:"state_awards,omitempty"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// PersonnelOption is the trimmed shape for selection lists.
type PersonnelOption struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Status   string `json:"status"`
}

type StatusHistoryResponse struct {
	ID          string `json:"id"`
	PersonnelID string `json:"personnel_id"`
	OldStatus   string `json:"old_status"`
	NewStatus   string `json:"new_status"`
	ChangedBy   string `json:"changed_by,omitempty"`
	Reason      string `json:"reason"`
	CreatedAt   string `json:"created_at"`
}
