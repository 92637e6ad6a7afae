package numfmt

import "errors"

// Configuration errors returned by New, MustNew and Parse.
var (
	// ErrInvalidConfiguration is wrapped by every construction failure.
	ErrInvalidConfiguration = errors.New("invalid number format configuration")

	// ErrNonPositivePrecision is returned when precision is zero or negative.
	ErrNonPositivePrecision = errors.New("precision must be a positive number")

	// ErrScaleOutOfRange is returned when scale is negative or not less than precision.
	ErrScaleOutOfRange = errors.New("scale must be a non-negative number less than precision")

	// ErrInvalidNotation is returned when a format string is not N(m), N(m,k) or N(m.k).
	ErrInvalidNotation = errors.New("invalid number format notation")
)

// Classification reasons returned by Check.
var (
	ErrEmpty              = errors.New("value is empty")
	ErrMalformed          = errors.New("value is not a decimal number")
	ErrPrecisionExceeded  = errors.New("too many digits")
	ErrScaleExceeded      = errors.New("too many fractional digits")
	ErrNegativeNotAllowed = errors.New("negative numbers are not allowed")
)
