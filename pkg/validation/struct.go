package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/iwvelando/property-simulator/pkg/jurisdiction"
)

// ErrInvalidInput wraps every struct validation failure.
var ErrInvalidInput = errors.New("invalid input")

// Validator wraps the go-playground validator with the simulator's custom
// tags registered. Field names in errors follow the json tags.
type Validator struct {
	v *validator.Validate
}

// New creates a Validator with the "country" tag registered.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	// Registration only fails on an empty tag or nil function.
	_ = v.RegisterValidation("country", func(fl validator.FieldLevel) bool {
		return jurisdiction.Country(fl.Field().String()).Valid()
	})
	return &Validator{v: v}
}

// Struct validates s against its validate tags. Field failures are reported
// together in a single error wrapping ErrInvalidInput.
func (val *Validator) Struct(s interface{}) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, describeFieldError(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(messages, "; "))
}

// RegisterValidation registers an additional custom validation function.
func (val *Validator) RegisterValidation(tag string, fn validator.Func) error {
	return val.v.RegisterValidation(tag, fn)
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "country":
		return fmt.Sprintf("%s must be one of %s", field, strings.Join(jurisdiction.Countries(), ", "))
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date formatted as YYYY-MM-DD", field)
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
