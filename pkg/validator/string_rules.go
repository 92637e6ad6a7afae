package validator

import (
	"strings"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// UnknownField always fails; it reports a field that is not expected at all.
func UnknownField(field string) Rule {
	return Rule{
		Check: func() bool {
			return false
		},
		Error: ValidationError{
			Field:          field,
			Message:        "unknown field",
			TranslationKey: "validation.unknown_field",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
