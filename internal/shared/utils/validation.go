package utils

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"complaintdesk/internal/shared/errors"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// engine returns gin's validator so binding tags and ValidateStruct share the
// same registered rules. It falls back to a private instance when gin was
// configured with another engine.
func engine() *validator.Validate {
	validateOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			v = validator.New()
		}
		v.RegisterTagNameFunc(jsonTagName)
		validate = v
	})
	return validate
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "" {
		name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
	}
	if name == "-" {
		return ""
	}
	return name
}

// RegisterEnum adds a validation tag that accepts a string field when valid
// reports true. Empty strings pass so the tag composes with omitempty and
// required.
func RegisterEnum(tag string, valid func(string) bool) error {
	return engine().RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || valid(s)
	})
}

// ValidateStruct validates a struct and returns a user-friendly error
func ValidateStruct(s interface{}) error {
	return BindingError(engine().Struct(s))
}

// BindingError converts a gin binding or validator failure into a validation
// AppError. A nil error stays nil.
func BindingError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !stderrors.As(err, &validationErrors) {
		return errors.NewBadRequestError("invalid request body", err.Error())
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, fieldErrorMessage(fe))
	}
	return errors.NewValidationError("Validation failed", strings.Join(messages, "; "))
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	case "complaint_status", "complaint_priority", "complaint_category", "user_role", "sort_order":
		return fmt.Sprintf("%s has an unknown value %q", field, fe.Value())
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, fe.Tag())
	}
}
