package apperror

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	// recipient_phone -> Recipient Phone
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError converts Gin binding errors into a single AppError
// carrying every violated field.
func MapValidationError(err error) error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return ErrInvalidInput
	}

	fields := make([]FieldError, 0, len(errs))
	for _, e := range errs {
		// e.Field() is already the json tag name, see Init()
		name := formatFieldName(e.Field())

		var msg string
		switch e.Tag() {
		case "required":
			msg = name + " is required"
		default:
			msg = name + " is invalid"
		}
		fields = append(fields, FieldError{Field: e.Field(), Message: msg})
	}

	return NewValidation(fields...)
}
