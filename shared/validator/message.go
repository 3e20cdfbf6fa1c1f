package validator

import (
	"errors"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":      "{field} is required",
		"required_with": "{field} is required when {param} is set",
		"gt":            "{field} must be greater than {param}",
		"gte":           "{field} must be greater than or equal to {param}",
		"lte":           "{field} must be less than or equal to {param}",
		"oneof":         "{field} must be one of {param}",
		"max":           "{field} must be at most {param} characters",
		"min":           "{field} must be at least {param}",
		"email":         "{field} must be a valid email address",
		"url":           "{field} must be a valid URL",
		"loose_email":   "{field} must be a valid email address",
		"coordinates":   "{field} must be in the form latitude,longitude",
		"document_type": "{field} must be one of CC CE PASAPORTE",
		"mimetypes":     "{field} must be one of {param}",
		"maxfilesize":   "{field} must not exceed {param} MB",
		"latitude":      "{field} must be between -90 and 90",
		"longitude":     "{field} must be between -180 and 180",
	}

	numericMessages = map[string]string{
		"max": "{field} must be less than or equal to {param}",
		"min": "{field} must be greater than or equal to {param}",
	}
)

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			field := valErr.Field()
			param := valErr.Param()

			errStr := messages[valErr.Tag()]
			if numeric, ok := numericMessages[valErr.Tag()]; ok && valErr.Kind() != reflect.String {
				errStr = numeric
			}

			if errStr != "" {
				errStr = strings.ReplaceAll(errStr, "{field}", field)
				errStr = strings.ReplaceAll(errStr, "{param}", param)

				return errStr
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}
