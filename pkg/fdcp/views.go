package fdcp

import "strconv"

// Dependency names a (variable, event) pair a propagator or view cares
// about: the subscriber wakes whenever an observed event on that variable
// is at least as strong as Event.
type Dependency struct {
	VarIndex int
	Event    Event
}

// View is a read/update interface over a variable or a simple expression
// of one variable. Propagators operate on Views rather than raw variable
// indices so they can be written once and reused against a plain variable,
// a constant, or an affine transform of a variable.
type View interface {
	Read(vs *VStore) Domain
	Update(vs *VStore, d Domain) bool
	Dependencies(event Event) []Dependency
	String() string
}

// Identity is a direct view onto a single variable.
type Identity struct {
	VarIndex int
}

func (v Identity) Read(vs *VStore) Domain { return vs.Read(v.VarIndex) }

func (v Identity) Update(vs *VStore, d Domain) bool { return vs.Update(v.VarIndex, d) }

func (v Identity) Dependencies(event Event) []Dependency {
	return []Dependency{{VarIndex: v.VarIndex, Event: event}}
}

func (v Identity) String() string { return "x" + strconv.Itoa(v.VarIndex) }

// Constant is a read-only view over a fixed domain (typically a
// singleton). It declares no dependencies and rejects any update that
// would change its value.
type Constant struct {
	Value Domain
}

func (c Constant) Read(vs *VStore) Domain { return c.Value }

// Update accepts only a no-op (the proposed domain already equals the
// constant's value); any genuine narrowing attempt indicates a propagator
// bug, so it fails rather than silently mutating shared constant state.
func (c Constant) Update(vs *VStore, d Domain) bool {
	return d.Equal(c.Value)
}

func (c Constant) Dependencies(event Event) []Dependency { return nil }

func (c Constant) String() string { return c.Value.String() }

// Affine is the view aX+b over a base view. Read scales and shifts the
// base view's domain; Update inverts the transform and delegates to the
// base view, failing if the target domain is not representable after
// inversion (e.g. a does not divide the required shift evenly).
type Affine struct {
	Base View
	A, B int
}

func (v Affine) Read(vs *VStore) Domain {
	base := v.Base.Read(vs)
	if v.A == 0 {
		return NewIntervalDomain(v.B, v.B)
	}
	lo := base.Min()*v.A + v.B
	hi := base.Max()*v.A + v.B
	if v.A < 0 {
		lo, hi = hi, lo
	}
	return NewIntervalDomain(lo, hi)
}

// Update inverts d (a domain over aX+b) into a domain over X, then
// delegates to the base view. Since a affine view's forward map can skip
// values relative to the underlying variable's granularity, the inverse
// is computed value-by-value from the base view's current domain rather
// than assumed to be a clean interval division.
func (v Affine) Update(vs *VStore, d Domain) bool {
	base := v.Base.Read(vs)
	candidates := make([]int, 0, base.Count())
	for _, x := range base.Values() {
		if d.Has(v.A*x + v.B) {
			candidates = append(candidates, x)
		}
	}
	narrowed := NewDomainFromValues(base.Base(), base.Span(), candidates)
	return v.Base.Update(vs, narrowed)
}

func (v Affine) Dependencies(event Event) []Dependency {
	return v.Base.Dependencies(event)
}

func (v Affine) String() string {
	switch {
	case v.A == 1 && v.B == 0:
		return v.Base.String()
	case v.B == 0:
		return strconv.Itoa(v.A) + "*" + v.Base.String()
	case v.A == 1:
		return v.Base.String() + signedOffset(v.B)
	default:
		return strconv.Itoa(v.A) + "*" + v.Base.String() + signedOffset(v.B)
	}
}

func signedOffset(b int) string {
	if b >= 0 {
		return "+" + strconv.Itoa(b)
	}
	return strconv.Itoa(b)
}
