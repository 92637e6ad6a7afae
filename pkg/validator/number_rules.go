package validator

import (
	"github.com/dmitrymomot/docnum/pkg/numfmt"
)

// NumberFormat validates that value is a decimal number admissible under the
// N(m,k) format described by format. The error message carries the reason
// reported by the format.
func NumberFormat(field, value string, format *numfmt.Validator) Rule {
	err := format.Check(value)
	message := "must match number format " + format.String()
	if err != nil {
		message += ": " + err.Error()
	}

	return Rule{
		Check: func() bool {
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        message,
			TranslationKey: "validation.number_format",
			TranslationValues: map[string]any{
				"field":     field,
				"format":    format.String(),
				"precision": format.Precision(),
				"scale":     format.Scale(),
			},
		},
	}
}

// OptionalNumberFormat is NumberFormat for values that may be left empty.
func OptionalNumberFormat(field, value string, format *numfmt.Validator) Rule {
	rule := NumberFormat(field, value, format)
	if value == "" {
		rule.Check = func() bool { return true }
	}
	return rule
}
