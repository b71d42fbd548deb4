package entities

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Violation describes one broken input constraint.
type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Violations is the result of validating an input. Empty means valid.
type Violations []Violation

func (v Violations) Valid() bool {
	return len(v) == 0
}

func (v Violations) String() string {
	msgs := make([]string, 0, len(v))
	for _, violation := range v {
		msgs = append(msgs, violation.Message)
	}
	return strings.Join(msgs, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := ParseReleaseDate(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}

	return v
}

func validateStruct(in any) Violations {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Violations{{Rule: "invalid", Message: err.Error()}}
	}

	violations := make(Violations, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, Violation{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: describe(fe),
		})
	}
	return violations
}

func describe(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s should not be empty", fe.Field())
	case "min":
		if isString {
			return fmt.Sprintf("%s should not be empty", fe.Field())
		}
		return fmt.Sprintf("%s must not be less than %s", fe.Field(), fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("%s must be shorter than or equal to %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must not be greater than %s", fe.Field(), fe.Param())
	case "isodate":
		return fmt.Sprintf("%s must be a valid ISO 8601 date string", fe.Field())
	default:
		return fmt.Sprintf("%s failed the %s constraint", fe.Field(), fe.Tag())
	}
}
