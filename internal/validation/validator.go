package validation

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/miniactivity/server/internal/apperrors"
)

// Date formats accepted for event dates.
var dateFormats = []string{time.RFC3339, "2006-01-02"}

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	// Report issues against the json field names clients actually sent
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Custom validators
	v.RegisterValidation("eventdate", validateEventDate)

	return &Validator{validate: v}
}

// Validate checks a request struct against its schema tags and converts
// failures into a ValidationError with one issue per offending field.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	issues := make([]apperrors.Issue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, apperrors.Issue{
			Field:   fe.Field(),
			Message: issueMessage(fe),
		})
	}
	return apperrors.NewValidationError("Invalid input", issues...)
}

func validateEventDate(fl validator.FieldLevel) bool {
	_, err := ParseDate(fl.Field().String())
	return err == nil
}

// ParseDate parses an event date, accepting RFC3339 or plain "YYYY-MM-DD".
func ParseDate(raw string) (time.Time, error) {
	for _, format := range dateFormats {
		if t, err := time.Parse(format, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date format: %q", raw)
}

func issueMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", titleField(fe.Field()))
	case "email":
		return "Invalid email address"
	case "eventdate":
		return "Invalid date format"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", titleField(fe.Field()), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// titleField uppercases the first rune of a json field name for messages.
func titleField(name string) string {
	r := []rune(name)
	if len(r) == 0 {
		return name
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
