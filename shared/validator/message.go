package validator

import (
	"errors"
	"fmt"

	val "github.com/go-playground/validator/v10"
)

// messages renders a failed tag for the client. Tags without an entry fall
// back to the validator's own text.
var messages = map[string]func(field, param string) string{
	"required": func(field, _ string) string { return field + " is required" },
	"max":      func(field, param string) string { return fmt.Sprintf("%s must be at most %s characters", field, param) },
	"email":    func(field, _ string) string { return field + " must be a valid email address" },
}

// message describes the first failed field of err.
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, valErr := range valErrors {
		if render, ok := messages[valErr.Tag()]; ok {
			return render(valErr.Field(), valErr.Param())
		}
	}

	return valErrors.Error()
}
