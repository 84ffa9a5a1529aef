package personnel

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/RahimovIlhom/personnel-management/internal/shared/apperror"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

var (
	pinflPattern    = regexp.MustCompile(`^\d{14}$`)
	passportPattern = regexp.MustCompile(`^[A-Z]{2}\d{7}$`)
	phonePattern    = regexp.MustCompile(`^\+998\d{9}$`)
)

// validatedDraft carries the parsed values out of validation so the
// service does not parse twice.
type validatedDraft struct {
	positionID        uuid.UUID
	birthdate         time.Time
	academicTitleDate *time.Time
	hiredDate         *time.Time
	leftDate          *time.Time
	workExperiences   []WorkExperience
	languageSkills    []LanguageSkill
	stateAwards       []StateAward
}

// validateDraft checks every data-model invariant and accumulates all
// violations instead of stopping at the first, so a form can show the
// full set of problems at once.
func validateDraft(kind string, req CreatePersonnelRequest, now time.Time) (validatedDraft, []apperror.FieldError) {
	var draft validatedDraft
	var fields []apperror.FieldError

	invalid := func(field, msg string) {
		fields = append(fields, apperror.FieldError{Field: field, Message: msg})
	}

	if req.Status != "" && !IsStatusAllowed(kind, req.Status) {
		invalid("status", fmt.Sprintf("status %q is not allowed for kind %s", req.Status, kind))
	}

	positionID, err := uuid.Parse(req.PositionID)
	if err != nil {
		invalid("position_id", "must be a valid UUID")
	}
	draft.positionID = positionID

	if strings.TrimSpace(req.FullName) == "" {
		invalid("full_name", "is required")
	}

	birthdate, ok := parseRequiredDate(req.Birthdate, "birthdate", invalid)
	draft.birthdate = birthdate
	if ok && birthdate.After(now) {
		invalid("birthdate", "cannot be in the future")
	}

	if req.Gender != GenderMale && req.Gender != GenderFemale {
		invalid("gender", "must be male or female")
	}

	if !pinflPattern.MatchString(req.Pinfl) {
		invalid("pinfl", "must consist of exactly 14 digits")
	}
	if !passportPattern.MatchString(req.Passport) {
		invalid("passport", "must be 2 uppercase letters followed by 7 digits (AA1234567)")
	}

	if !phonePattern.MatchString(req.PhoneNumber) {
		invalid("phone_number", "must match +998XXXXXXXXX")
	}
	if req.AdditionalPhone != "" && !phonePattern.MatchString(req.AdditionalPhone) {
		invalid("additional_phone", "must match +998XXXXXXXXX")
	}

	currentYear := now.Year()
	if req.BachelorGraduationYear != nil && *req.BachelorGraduationYear > currentYear {
		invalid("bachelor_graduation_year", "cannot be a future year")
	}
	if req.MasterGraduationYear != nil && *req.MasterGraduationYear > currentYear {
		invalid("master_graduation_year", "cannot be a future year")
	}
	if req.BachelorGraduationYear != nil && req.MasterGraduationYear != nil &&
		*req.MasterGraduationYear <= *req.BachelorGraduationYear {
		invalid("master_graduation_year", "must be after the bachelor graduation year")
	}

	draft.academicTitleDate = parseOptionalDate(req.AcademicTitleDate, "academic_title_date", invalid)

	if strings.TrimSpace(req.ResumeKey) == "" {
		invalid("resume_key", "is required")
	}

	draft.hiredDate = parseOptionalDate(req.HiredDate, "hired_date", invalid)
	draft.leftDate = parseOptionalDate(req.LeftDate, "left_date", invalid)
	if draft.hiredDate != nil && draft.leftDate != nil && draft.leftDate.Before(*draft.hiredDate) {
		invalid("left_date", "cannot be before hired_date")
	}

	for i, we := range req.WorkExperiences {
		prefix := fmt.Sprintf("work_experiences[%d]", i)
		start, ok := parseRequiredDate(we.StartDate, prefix+".start_date", invalid)
		end := parseOptionalDate(we.EndDate, prefix+".end_date", invalid)
		if ok && end != nil && end.Before(start) {
			invalid(prefix+".end_date", "cannot be before start_date")
		}
		if strings.TrimSpace(we.Workplace) == "" {
			invalid(prefix+".workplace", "is required")
		}
		draft.workExperiences = append(draft.workExperiences, WorkExperience{
			ID:        uuid.New(),
			Workplace: we.Workplace,
			Position:  we.Position,
			StartDate: start,
			EndDate:   end,
		})
	}

	for i, ls := range req.LanguageSkills {
		if !IsValidLanguageLevel(ls.Level) {
			invalid(fmt.Sprintf("language_skills[%d].level", i), "must be one of A1, A2, B1, B2, C1, C2")
		}
		draft.languageSkills = append(draft.languageSkills, LanguageSkill{
			ID:       uuid.New(),
			Language: ls.Language,
			Level:    ls.Level,
		})
	}

	for i, sa := range req.StateAwards {
		if sa.Year > currentYear {
			invalid(fmt.Sprintf("state_awards[%d].year", i), "cannot be a future year")
		}
		draft.stateAwards = append(draft.stateAwards, StateAward{
			ID:   uuid.New(),
			Name: sa.Name,
			Year: sa.Year,
		})
	}

	return draft, fields
}

func parseRequiredDate(value, field string, invalid func(field, msg string)) (time.Time, bool) {
	if strings.TrimSpace(value) == "" {
		invalid(field, "is required")
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		invalid(field, "invalid date format, expected YYYY-MM-DD")
		return time.Time{}, false
	}
	return t, true
}

func parseOptionalDate(value, field string, invalid func(field, msg string)) *time.Time {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		invalid(field, "invalid date format, expected YYYY-MM-DD")
		return nil
	}
	return &t
}
