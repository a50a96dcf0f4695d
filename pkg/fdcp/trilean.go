// Package fdcp implements a finite-domain constraint propagation engine: a
// variable store, a constraint store, an event/reactor subscription
// mechanism, and a representative propagator family over bounded integer
// domains. Search (branching, labeling) is an external collaborator; the
// package only exposes the freeze/restore and clone primitives it needs.
package fdcp

import "fmt"

// Trilean is three-valued logic over {False, Unknown, True}, ordered
// False < Unknown < True. Conjunction is the pointwise minimum in that
// order.
type Trilean int8

const (
	False Trilean = iota
	Unknown
	True
)

// And computes the conjunction: False absorbs, True is the identity,
// Unknown ∧ Unknown = Unknown.
func (t Trilean) And(other Trilean) Trilean {
	if t < other {
		return t
	}
	return other
}

// Or computes the disjunction: True absorbs, False is the identity.
func (t Trilean) Or(other Trilean) Trilean {
	if t > other {
		return t
	}
	return other
}

// Not negates True and False, leaving Unknown unchanged.
func (t Trilean) Not() Trilean {
	switch t {
	case True:
		return False
	case False:
		return True
	default:
		return Unknown
	}
}

func (t Trilean) String() string {
	switch t {
	case False:
		return "False"
	case True:
		return "True"
	case Unknown:
		return "Unknown"
	default:
		return fmt.Sprintf("Trilean(%d)", int8(t))
	}
}
