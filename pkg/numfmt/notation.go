package numfmt

import (
	"fmt"
	"regexp"
	"strconv"
)

var notationPattern = regexp.MustCompile(`^[Nn]\((\d+)(?:[.,](\d+))?\)(\+?)$`)

// Parse builds a Validator from format notation as written in document
// inventories: N(m), N(m,k) or N(m.k). A trailing "+" marks the format as
// positive-only. Parse(v.String()) returns an equivalent Validator.
func Parse(notation string) (*Validator, error) {
	m := notationPattern.FindStringSubmatch(notation)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNotation, notation)
	}

	precision, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidNotation, notation, err)
	}

	scale := 0
	if m[2] != "" {
		if scale, err = strconv.Atoi(m[2]); err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidNotation, notation, err)
		}
	}

	return New(precision, scale, m[3] == "+")
}

// MustParse works like Parse but panics on error.
func MustParse(notation string) *Validator {
	v, err := Parse(notation)
	if err != nil {
		panic(err)
	}
	return v
}
