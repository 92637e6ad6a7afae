// Package numfmt validates decimal numbers written as text against the
// fixed-width N(m,k) numeric format used by electronic document inventories.
//
// In N(m,k) notation m is the maximum count of characters in the number,
// including the sign of a negative number and both the integer and fractional
// digits but excluding the decimal separator, and k is the maximum count of
// fractional digits. N(m) is shorthand for N(m,0).
//
// # Usage
//
//	v, err := numfmt.New(17, 2, true)
//	if err != nil {
//	    // errors.Is(err, numfmt.ErrInvalidConfiguration)
//	}
//	v.IsValidNumber("1.23")  // true
//	v.IsValidNumber("1,23")  // true, comma is an equivalent separator
//	v.IsValidNumber("-1.23") // false, negative numbers rejected
//	v.IsValidNumber(" 1.23") // false, no surrounding whitespace
//
// The same validator can be built from its notation:
//
//	v := numfmt.MustParse("N(17,2)+")
//
// # Error Handling
//
// Construction fails with an error wrapping ErrInvalidConfiguration together
// with either ErrNonPositivePrecision or ErrScaleOutOfRange. Classification
// never fails: IsValidNumber returns false for anything that is not admissible,
// and Check reports why.
//
// # Concurrency
//
// A Validator is immutable after construction. The matching pattern is
// compiled once per process and shared, so a single Validator may be used
// from many goroutines without synchronisation.
package numfmt
