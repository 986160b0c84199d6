package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/idelchi/gogen/pkg/validator"
)

// newValidator returns a translating validator with the custom validations registered
// and field names reported by their label tag.
func newValidator() (*validator.Validator, error) {
	validate := validator.NewValidator()

	if err := validate.RegisterValidationAndTranslation(
		"exclusive",
		validateExclusive,
		"{0} and {1} are mutually exclusive",
	); err != nil {
		return nil, fmt.Errorf("registering exclusive validation: %w", err)
	}

	validate.Validator().RegisterTagNameFunc(labelName)

	return validate, nil
}

func labelName(fld reflect.StructField) string {
	const splitSize = 2

	name := strings.SplitN(fld.Tag.Get("label"), ",", splitSize)[0]
	if name == "-" || name == "" {
		return fld.Name
	}

	return name
}

// fieldByLabel returns the field of the struct value parent whose label is label.
func fieldByLabel(parent reflect.Value, label string) reflect.Value {
	if parent.Kind() == reflect.Pointer {
		parent = parent.Elem()
	}

	if parent.Kind() != reflect.Struct {
		return reflect.Value{}
	}

	for idx := range parent.NumField() {
		if labelName(parent.Type().Field(idx)) == label {
			return parent.Field(idx)
		}
	}

	return reflect.Value{}
}

// validateExclusive checks if two fields are mutually exclusive.
// The parameter is the label of the other field.
// Returns false if both fields have non-empty values.
func validateExclusive(fl validator.FieldLevel) bool {
	field := fl.Field()
	otherField := fieldByLabel(fl.Parent(), fl.Param())

	if !field.IsValid() || !otherField.IsValid() {
		return true
	}

	if field.Kind() == reflect.String && otherField.Kind() == reflect.String {
		return field.String() == "" || otherField.String() == ""
	}

	return true
}
