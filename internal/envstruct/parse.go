// Package envstruct populates configuration structs from environment variables.
package envstruct

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrEnvNotSet is returned when a tagged variable is missing and has no default.
	ErrEnvNotSet = errors.New("environment variable not set")
	// ErrInvalidValue is returned when v is not a pointer to a struct of string fields.
	ErrInvalidValue = errors.New("v must be a pointer to a struct")
)

// Populate fills the string fields of the struct pointed to by v from the
// environment.
//
// lookupEnv has the same signature as [os.LookupEnv]. Fields are tagged
// `env:"ENV_VAR"`; when the variable is unset the `envDefault:"value"` tag
// applies, and without one ErrEnvNotSet is returned.
func Populate(v any, lookupEnv func(string) (string, bool)) error {
	ptrRef := reflect.ValueOf(v)
	if ptrRef.Kind() != reflect.Ptr {
		return fmt.Errorf("%w: not pointer: %v", ErrInvalidValue, v)
	}
	ref := ptrRef.Elem()
	if ref.Kind() != reflect.Struct {
		return fmt.Errorf("%w: not struct: %v", ErrInvalidValue, v)
	}
	refType := ref.Type()

	var errs []error
	for i := range refType.NumField() {
		field := ref.Field(i)
		typeField := refType.Field(i)

		envVarName, tagged := typeField.Tag.Lookup("env")
		if !tagged {
			continue
		}
		if !field.CanSet() {
			errs = append(errs, fmt.Errorf("%w: cannot set field: %s", ErrInvalidValue, typeField.Name))
			continue
		}
		if field.Kind() != reflect.String {
			errs = append(errs, fmt.Errorf("%w: only strings are supported - field: %s, type: %s, env: %s",
				ErrInvalidValue, typeField.Name, field.Kind().String(), envVarName))
			continue
		}

		value, ok := lookupEnv(envVarName)
		if !ok {
			if value, ok = typeField.Tag.Lookup("envDefault"); !ok {
				errs = append(errs, fmt.Errorf("%w: %s", ErrEnvNotSet, envVarName))
				continue
			}
		}
		field.SetString(value)
	}

	return errors.Join(errs...)
}
