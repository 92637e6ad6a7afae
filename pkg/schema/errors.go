package schema

import "errors"

var (
	// ErrInvalidSchema is returned when a schema document cannot be decoded
	// or one of its formats is invalid.
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrNoFields is returned when a schema declares no fields.
	ErrNoFields = errors.New("schema declares no fields")

	// ErrInvalidValues is returned when a values document cannot be decoded.
	ErrInvalidValues = errors.New("invalid values document")
)
