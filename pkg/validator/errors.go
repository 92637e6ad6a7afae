package validator

import "errors"

var (
	// ErrValidationFailed matches any ValidationErrors value with errors.Is.
	ErrValidationFailed = errors.New("validation failed")
)
