package validator

import (
	"errors"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be less than or equal to {param}",
		"min":      "{field} must be greater than or equal to {param}",
	}

	// length limits on text read better in characters
	stringMessages = map[string]string{
		"max": "{field} must be at most {param} characters",
		"min": "{field} must be at least {param} characters",
	}
)

// message renders the first validation failure. Var validations carry no field
// name, so name stands in for it.
func message(err error, name string) string {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, valErr := range valErrors {
		errStr := messages[valErr.Tag()]
		if valErr.Kind() == reflect.String && stringMessages[valErr.Tag()] != "" {
			errStr = stringMessages[valErr.Tag()]
		}

		if errStr == "" {
			continue
		}

		field := valErr.Field()
		if field == "" {
			field = name
		}

		errStr = strings.ReplaceAll(errStr, "{field}", field)

		return strings.ReplaceAll(errStr, "{param}", valErr.Param())
	}

	return valErrors.Error()
}
