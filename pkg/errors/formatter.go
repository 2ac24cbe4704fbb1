package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ValidationErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var tagMessages = map[string]string{
	"required": "This field is required",
	"email":    "Invalid email format",
	"min":      "Value is too short or too small",
	"max":      "Value is too long or too large",
	"len":      "Value must be exact length",
	"numeric":  "Value must be numeric",
	"url":      "Invalid URL format",
	"oneof":    "Value is not one of the allowed options",
	"gte":      "Value must be greater than or equal to specified",
	"lte":      "Value must be less than or equal to specified",
}

// paramMessages take the tag parameter, e.g. max=255.
var paramMessages = map[string]string{
	"min":   "Must be at least %s characters",
	"max":   "Must not exceed %s characters",
	"len":   "Must be exactly %s characters",
	"oneof": "Must be one of: %s",
	"gte":   "Must be greater than or equal to %s",
	"lte":   "Must be less than or equal to %s",
}

func messageFor(fe validator.FieldError) string {
	if format, ok := paramMessages[fe.Tag()]; ok && fe.Param() != "" {
		return fmt.Sprintf(format, fe.Param())
	}
	if msg, ok := tagMessages[fe.Tag()]; ok {
		return msg
	}
	return "Invalid value"
}

// getJSONFieldName prefers the json tag and falls back to the form tag, so
// errors from HTML form bindings name the same field the browser posted.
func getJSONFieldName(structType reflect.Type, fieldName string) string {
	field, found := structType.FieldByName(fieldName)
	if !found {
		return fieldName
	}

	for _, tagName := range []string{"json", "form"} {
		tag := field.Tag.Get(tagName)
		if tag == "" || tag == "-" {
			continue
		}
		if name := strings.Split(tag, ",")[0]; name != "" {
			return name
		}
	}

	return fieldName
}

// FormatValidationErrors turns binding and validator failures into
// per-field messages named after the model's json or form tags.
func FormatValidationErrors(err error, model any) []ValidationErrorResponse {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []ValidationErrorResponse{{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("Invalid type for field %s. Expected %s, got %s", typeErr.Field, typeErr.Type, typeErr.Value),
		}}
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	var structType reflect.Type
	if model != nil {
		structType = reflect.TypeOf(model)
		if structType.Kind() == reflect.Pointer {
			structType = structType.Elem()
		}
	}

	out := make([]ValidationErrorResponse, 0, len(validationErrors))
	for _, fe := range validationErrors {
		field := fe.Field()
		if structType != nil {
			field = getJSONFieldName(structType, fe.Field())
		}
		out = append(out, ValidationErrorResponse{Field: field, Message: messageFor(fe)})
	}
	return out
}
