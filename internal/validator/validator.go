// Package validator wraps go-playground/validator for request payloads.
// Field errors are reported under their JSON names.
package validator

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator validates request structs using struct tags
type Validator struct {
	v *validator.Validate
}

// New returns a Validator backed by the shared validator instance
func New() *Validator {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})

	return &Validator{v: validate}
}

// Validate validates a struct and returns validator.ValidationErrors on failure
func (v *Validator) Validate(i interface{}) error {
	return v.v.Struct(i)
}

// FailedFields returns the JSON names of the fields that failed validation,
// in struct order. It returns nil when err is not a validation error.
func FailedFields(err error) []string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return nil
	}

	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field())
	}
	return fields
}
