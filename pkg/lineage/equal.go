package lineage

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// ChainEqual walks two parent-linked chains in lockstep. Identical pointers
// are equal, a nil against a non-nil is not, and otherwise the keys of both
// links must match before moving to the next link.
func ChainEqual[T any, K comparable](a, b *T, key func(*T) K, next func(*T) *T) bool {
	for {
		if a == b {
			return true
		}
		if a == nil || b == nil {
			return false
		}
		if key(a) != key(b) {
			return false
		}
		a, b = next(a), next(b)
	}
}

// Equal reports whether a and b have equal traits at every depth of their
// parent chains. IDs are ignored.
func Equal(a, b *Person) bool {
	return ChainEqual(a, b, traitsOf, parentOf)
}

func traitsOf(p *Person) Traits  { return p.Traits }
func parentOf(p *Person) *Person { return p.Parent }

// Equivalent compares a and b field by field with go-cmp, ignoring ID and any
// additional field paths in exclude (for example "Traits.Weight") at every
// depth. Unknown field names panic, as with cmpopts.IgnoreFields.
func Equivalent(a, b *Person, exclude ...string) bool {
	ignored := append([]string{"ID"}, exclude...)
	return cmp.Equal(a, b, cmpopts.IgnoreFields(Person{}, ignored...))
}
