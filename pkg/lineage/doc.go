// Package lineage models person records linked to their parent and compares
// such chains structurally.
//
// Equal compares every trait of a person and of each of its ancestors, and
// ignores the record identifier. Traits are grouped in a comparable struct so
// a field added to Traits is compared without touching the comparison code.
// Chains are walked iteratively, so the comparison depth is not limited by the
// goroutine stack.
//
// Equivalent offers the same result through github.com/google/go-cmp with an
// explicit exclusion list, which is handy when callers need to skip more
// fields than the identifier.
//
// Parent chains are expected to be finite and acyclic.
package lineage
