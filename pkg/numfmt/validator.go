package numfmt

import (
	"fmt"
	"regexp"
	"strconv"
)

// numberPattern captures sign, integer digits and fractional digits.
// RE2 \d is ASCII-only and $ anchors at the very end of the input.
var numberPattern = regexp.MustCompile(`^([+-]?)(\d+)([.,](\d+))?$`)

// Submatch index offsets for numberPattern.FindStringSubmatchIndex.
const (
	signStart = 2
	signEnd   = 3
	intStart  = 4
	intEnd    = 5
	fracStart = 8
	fracEnd   = 9
)

// Validator checks strings against an N(precision,scale) number format.
// Instances are immutable and safe for concurrent use. The zero value rejects
// every input; use New to obtain a usable Validator.
type Validator struct {
	precision    int
	scale        int
	onlyPositive bool
}

// New returns a Validator for the N(precision,scale) format.
// precision counts the sign, integer and fractional digits; scale limits the
// fractional digits. When onlyPositive is set a leading minus is rejected,
// an explicit plus is still accepted.
func New(precision, scale int, onlyPositive bool) (*Validator, error) {
	if precision <= 0 {
		return nil, fmt.Errorf("%w: %w (got %d)", ErrInvalidConfiguration, ErrNonPositivePrecision, precision)
	}
	if scale < 0 || scale >= precision {
		return nil, fmt.Errorf("%w: %w (got scale %d, precision %d)", ErrInvalidConfiguration, ErrScaleOutOfRange, scale, precision)
	}
	return &Validator{
		precision:    precision,
		scale:        scale,
		onlyPositive: onlyPositive,
	}, nil
}

// NewInteger returns a Validator for the N(precision) format: no fractional
// digits, signs of both kinds allowed.
func NewInteger(precision int) (*Validator, error) {
	return New(precision, 0, false)
}

// MustNew works like New but panics on an invalid configuration.
func MustNew(precision, scale int, onlyPositive bool) *Validator {
	v, err := New(precision, scale, onlyPositive)
	if err != nil {
		panic(err)
	}
	return v
}

func (v *Validator) Precision() int     { return v.precision }
func (v *Validator) Scale() int         { return v.scale }
func (v *Validator) OnlyPositive() bool { return v.onlyPositive }

// IsValidNumber reports whether value is admissible under the format.
func (v *Validator) IsValidNumber(value string) bool {
	return v.Check(value) == nil
}

// IsValidNumberPtr is IsValidNumber for optional values; nil is never valid.
func (v *Validator) IsValidNumberPtr(value *string) bool {
	if value == nil {
		return false
	}
	return v.IsValidNumber(*value)
}

// Check returns nil when value is admissible, otherwise an error wrapping one
// of ErrEmpty, ErrMalformed, ErrPrecisionExceeded, ErrScaleExceeded or
// ErrNegativeNotAllowed. Precision is checked before scale.
func (v *Validator) Check(value string) error {
	if value == "" {
		return ErrEmpty
	}

	m := numberPattern.FindStringSubmatchIndex(value)
	if m == nil {
		return ErrMalformed
	}

	sign := value[m[signStart]:m[signEnd]]
	intWidth := len(sign) + m[intEnd] - m[intStart]
	fracWidth := 0
	if m[fracStart] >= 0 {
		fracWidth = m[fracEnd] - m[fracStart]
	}

	if intWidth+fracWidth > v.precision {
		return fmt.Errorf("%w: %d of at most %d", ErrPrecisionExceeded, intWidth+fracWidth, v.precision)
	}
	if fracWidth > v.scale {
		return fmt.Errorf("%w: %d of at most %d", ErrScaleExceeded, fracWidth, v.scale)
	}
	if v.onlyPositive && sign == "-" {
		return ErrNegativeNotAllowed
	}
	return nil
}

// String renders the format in N(m,k) notation, N(m) when scale is zero,
// followed by "+" when negative numbers are rejected.
func (v *Validator) String() string {
	s := "N(" + strconv.Itoa(v.precision)
	if v.scale > 0 {
		s += "," + strconv.Itoa(v.scale)
	}
	s += ")"
	if v.onlyPositive {
		s += "+"
	}
	return s
}
