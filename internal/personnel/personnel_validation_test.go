package personnel

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() CreatePersonnelRequest {
	return CreatePersonnelRequest{
		PositionID: uuid.NewString(),
		FullName:   "Aziz Karimov",

		Birthdate:    "1990-04-12",
		BirthplaceID: 1,
		NationID:     1,
		Gender:       GenderMale,
		Pinfl:        "12345678901234",
		Passport:     "AA1234567",

		ResidenceDistrictID: 2,
		PhoneNumber:         "+998901234567",

		EducationLevelID: 1,
		ResumeKey:        "resumes/aziz.pdf",
	}
}

func violationFields(t *testing.T, kind string, req CreatePersonnelRequest) []string {
	t.Helper()
	_, violations := validateDraft(kind, req, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	names := make([]string, len(violations))
	for i, v := range violations {
		names[i] = v.Field
	}
	return names
}

func TestValidateDraft_ValidRequest(t *testing.T) {
	req := validCreateRequest()
	draft, violations := validateDraft(KindCandidate, req, time.Now().UTC())

	require.Empty(t, violations)
	assert.Equal(t, req.PositionID, draft.positionID.String())
	assert.Equal(t, 1990, draft.birthdate.Year())
}

func TestValidateDraft_FormatViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreatePersonnelRequest)
		field  string
	}{
		{"pinfl too short", func(r *CreatePersonnelRequest) { r.Pinfl = "123" }, "pinfl"},
		{"pinfl with letters", func(r *CreatePersonnelRequest) { r.Pinfl = "1234567890123a" }, "pinfl"},
		{"passport lowercase series", func(r *CreatePersonnelRequest) { r.Passport = "aa1234567" }, "passport"},
		{"passport short number", func(r *CreatePersonnelRequest) { r.Passport = "AA123456" }, "passport"},
		{"phone without prefix", func(r *CreatePersonnelRequest) { r.PhoneNumber = "998901234567" }, "phone_number"},
		{"phone too long", func(r *CreatePersonnelRequest) { r.PhoneNumber = "+9989012345678" }, "phone_number"},
		{"additional phone malformed", func(r *CreatePersonnelRequest) { r.AdditionalPhone = "+7701234567" }, "additional_phone"},
		{"unknown gender", func(r *CreatePersonnelRequest) { r.Gender = "other" }, "gender"},
		{"birthdate in future", func(r *CreatePersonnelRequest) { r.Birthdate = "2030-01-01" }, "birthdate"},
		{"birthdate malformed", func(r *CreatePersonnelRequest) { r.Birthdate = "12.04.1990" }, "birthdate"},
		{"position id not uuid", func(r *CreatePersonnelRequest) { r.PositionID = "not-a-uuid" }, "position_id"},
		{"blank resume key", func(r *CreatePersonnelRequest) { r.ResumeKey = "   " }, "resume_key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)
			assert.Contains(t, violationFields(t, KindCandidate, req), tt.field)
		})
	}
}

func TestValidateDraft_StatusVocabulary(t *testing.T) {
	req := validCreateRequest()
	req.Status = StatusWorking

	assert.Contains(t, violationFields(t, KindCandidate, req), "status")

	req.Status = StatusSubmitted
	assert.NotContains(t, violationFields(t, KindCandidate, req), "status")
}

func TestValidateDraft_GraduationYearOrdering(t *testing.T) {
	bachelor := 2015
	master := 2013

	req := validCreateRequest()
	req.BachelorGraduationYear = &bachelor
	req.MasterGraduationYear = &master
	assert.Contains(t, violationFields(t, KindCandidate, req), "master_graduation_year")

	future := 2031
	req = validCreateRequest()
	req.BachelorGraduationYear = &future
	assert.Contains(t, violationFields(t, KindCandidate, req), "bachelor_graduation_year")
}

func TestValidateDraft_EmploymentDateOrdering(t *testing.T) {
	req := validCreateRequest()
	req.HiredDate = "2024-05-01"
	req.LeftDate = "2024-04-01"

	assert.Contains(t, violationFields(t, KindEmployee, req), "left_date")
}

func TestValidateDraft_ChildRecords(t *testing.T) {
	req := validCreateRequest()
	req.WorkExperiences = []WorkExperienceInput{
		{Workplace: "Tashkent IT Park", Position: "Engineer", StartDate: "2022-01-10", EndDate: "2021-12-01"},
	}
	req.LanguageSkills = []LanguageSkillInput{
		{Language: "English", Level: "D1"},
	}
	req.StateAwards = []StateAwardInput{
		{Name: "Shuhrat", Year: 2031},
	}

	fields := violationFields(t, KindCandidate, req)
	assert.Contains(t, fields, "work_experiences[0].end_date")
	assert.Contains(t, fields, "language_skills[0].level")
	assert.Contains(t, fields, "state_awards[0].year")
}

func TestValidateDraft_AccumulatesAllViolations(t *testing.T) {
	req := validCreateRequest()
	req.Pinfl = "bad"
	req.Passport = "bad"
	req.PhoneNumber = "bad"

	_, violations := validateDraft(KindCandidate, req, time.Now().UTC())
	require.Len(t, violations, 3)
}
