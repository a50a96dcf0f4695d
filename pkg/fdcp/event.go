package fdcp

// Event is a variable-change kind in the finite-domain event lattice.
// Numeric order follows strength: Inner is weakest, Assignment is
// strongest. A propagator subscribed at event e wakes whenever an
// observed event e' satisfies e <= e' (the observed change is at least as
// strong as what the propagator asked for).
type Event int8

const (
	// Inner marks a domain change that removed an interior value without
	// moving either bound.
	Inner Event = iota
	// Bound marks a domain change that moved the lower or upper bound.
	Bound
	// Assignment marks a domain change that reduced the domain to a
	// single value.
	Assignment
)

// EventCount returns the number of event kinds in the lattice.
func EventCount() int { return 3 }

// Join returns the stronger of two observed events, used when a variable
// accumulates more than one delta within a single propagation round.
func Join(a, b Event) Event {
	if a > b {
		return a
	}
	return b
}

// Index returns the event's position in [0, EventCount).
func (e Event) Index() int { return int(e) }

// Subsumes reports whether e is at least as strong as other.
func (e Event) Subsumes(other Event) bool { return e >= other }

func (e Event) String() string {
	switch e {
	case Inner:
		return "Inner"
	case Bound:
		return "Bound"
	case Assignment:
		return "Assignment"
	default:
		return "Event(?)"
	}
}
