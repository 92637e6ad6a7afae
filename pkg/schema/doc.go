// Package schema describes the numeric fields of an interchange document and
// validates document values against them.
//
// A schema maps field names to N(m,k) number formats (see package numfmt)
// and is usually loaded from YAML:
//
//	fields:
//	  total:
//	    format: N(17,2)+
//	    required: true
//	  correction:
//	    format: N(17,2)
//
// Validate reports every failing field at once as validator.ValidationErrors.
package schema
