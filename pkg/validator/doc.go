// Package validator provides declarative validation rules with
// translation-friendly error metadata.
//
// A Rule couples a boolean Check function with a ValidationError describing
// the failure. Apply evaluates rules and aggregates failures into a
// ValidationErrors slice that satisfies the error interface, so every failing
// field of a document is reported in a single error return.
//
// # Usage
//
//	format := numfmt.MustParse("N(17,2)+")
//	err := validator.Apply(
//	    validator.RequiredString("total", total),
//	    validator.NumberFormat("total", total, format),
//	    validator.OptionalNumberFormat("discount", discount, format),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // iterate over field-level messages or translate them
//	}
//
// # Error Handling
//
// ValidationErrors matches ErrValidationFailed with errors.Is and can be
// recovered with errors.As or ExtractValidationErrors. Individual field errors
// can be inspected with Has, Get, GetErrors and Fields.
//
// Rules hold no shared state and are safe to build from many goroutines.
package validator
