// Package validation binds flat RPC parameters onto structs and checks them
// with go-playground/validator.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"

	"game-admin/internal/common/errors"
)

// ReasonInvalidParam is reported for any parameter that fails validation
const ReasonInvalidParam = "invalid_param"

var (
	idPattern       = regexp.MustCompile(`^[A-Za-z0-9_.:-]+$`)
	roleNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_-]{1,31}$`)
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.@-]{3,64}$`)
)

// Validator wraps a configured validator.Validate
type Validator struct {
	validate *validator.Validate
}

// FieldError describes one failed rule
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// New creates a validator that names fields after their param tag and knows
// the service specific rules
func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"param", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})

	registerRules(v)
	return &Validator{validate: v}
}

func registerRules(v *validator.Validate) {
	v.RegisterValidation("ident", func(fl validator.FieldLevel) bool {
		return idPattern.MatchString(fl.Field().String())
	})

	v.RegisterValidation("role_name", func(fl validator.FieldLevel) bool {
		return roleNamePattern.MatchString(fl.Field().String())
	})

	v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})

	v.RegisterValidation("cron_expression", func(fl validator.FieldLevel) bool {
		_, err := cron.ParseStandard(fl.Field().String())
		return err == nil
	})

	v.RegisterValidation("timezone", func(fl validator.FieldLevel) bool {
		_, err := time.LoadLocation(fl.Field().String())
		return err == nil
	})
}

// Struct validates s and returns an AppError with reason invalid_param
func (v *Validator) Struct(s interface{}) error {
	if err := v.validate.Struct(s); err != nil {
		return toAppError(err)
	}
	return nil
}

// Var validates a single value against tag
func (v *Validator) Var(field interface{}, tag string) error {
	if err := v.validate.Var(field, tag); err != nil {
		return toAppError(err)
	}
	return nil
}

// FieldErrors lists the failed rules of s, or nil when s is valid
func (v *Validator) FieldErrors(s interface{}) []FieldError {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	return fieldErrors(err)
}

func toAppError(err error) error {
	fes := fieldErrors(err)
	msgs := make([]string, len(fes))
	for i, fe := range fes {
		msgs[i] = fe.Message
	}

	appErr := errors.ValidationError(strings.Join(msgs, "; ")).WithReason(ReasonInvalidParam)
	if len(fes) > 0 {
		appErr.WithContext("field", fes[0].Field)
	}
	return appErr
}

func fieldErrors(err error) []FieldError {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "unknown", Tag: "error", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Message: message(fe),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("field '%s' is required", fe.Field())
	case "min":
		return fmt.Sprintf("field '%s' must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("field '%s' must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("field '%s' must be one of: %s", fe.Field(), fe.Param())
	case "uuid":
		return fmt.Sprintf("field '%s' must be a valid UUID", fe.Field())
	case "ident":
		return fmt.Sprintf("field '%s' may only contain letters, digits and _ . : -", fe.Field())
	case "role_name":
		return fmt.Sprintf("field '%s' must be a lowercase role name", fe.Field())
	case "username":
		return fmt.Sprintf("field '%s' must be 3-64 characters of letters, digits and _ . @ -", fe.Field())
	case "cron_expression":
		return fmt.Sprintf("field '%s' must be a valid cron expression", fe.Field())
	case "timezone":
		return fmt.Sprintf("field '%s' must be a valid timezone", fe.Field())
	default:
		return fmt.Sprintf("field '%s' failed validation: %s", fe.Field(), fe.Tag())
	}
}

var defaultValidator = New()

// Struct validates s with the shared validator
func Struct(s interface{}) error {
	return defaultValidator.Struct(s)
}

// Var validates a value with the shared validator
func Var(field interface{}, tag string) error {
	return defaultValidator.Var(field, tag)
}
