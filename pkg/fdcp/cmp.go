package fdcp

import "fmt"

// GreaterThanSum is the representative propagator of SPEC_FULL.md §4.5:
// X > Y + Z (strict), ported directly from original_source's
// x_greater_y_plus_z.rs.
type GreaterThanSum struct {
	X, Y, Z View
}

func (p GreaterThanSum) Dependencies() []Dependency {
	var deps []Dependency
	deps = append(deps, p.X.Dependencies(Bound)...)
	deps = append(deps, p.Y.Dependencies(Bound)...)
	deps = append(deps, p.Z.Dependencies(Bound)...)
	return deps
}

func (p GreaterThanSum) IsSubsumed(vs *VStore) Trilean {
	x, y, z := p.X.Read(vs), p.Y.Read(vs), p.Z.Read(vs)
	if x.Max() <= y.Min()+z.Min() {
		return False
	}
	if x.Min() > y.Max()+z.Max() {
		return True
	}
	return Unknown
}

func (p GreaterThanSum) Propagate(vs *VStore) bool {
	x, y, z := p.X.Read(vs), p.Y.Read(vs), p.Z.Read(vs)
	if !p.X.Update(vs, x.StrictShrinkLeft(y.Min()+z.Min())) {
		return false
	}
	if !p.Y.Update(vs, y.StrictShrinkRight(x.Max()-z.Min())) {
		return false
	}
	if !p.Z.Update(vs, z.StrictShrinkRight(x.Max()-y.Min())) {
		return false
	}
	return true
}

func (p GreaterThanSum) Clone() Propagator { return p }

func (p GreaterThanSum) String() string {
	return fmt.Sprintf("%s > %s + %s", p.X, p.Y, p.Z)
}

// ordKind names the direction of a bounds-consistent comparison
// propagator.
type ordKind int8

const (
	kindLT ordKind = iota
	kindLE
	kindGT
	kindGE
)

// Compare is a bounds-consistent binary inequality X ? Y for
// ? in {<, <=, >, >=}, ported from the teacher's Inequality propagator
// (propagation.go), generalized from *FDVariable to View.
type Compare struct {
	X, Y View
	Kind ordKind
}

func LessThan(x, y View) Compare     { return Compare{X: x, Y: y, Kind: kindLT} }
func LessEqual(x, y View) Compare    { return Compare{X: x, Y: y, Kind: kindLE} }
func GreaterThan(x, y View) Compare  { return Compare{X: x, Y: y, Kind: kindGT} }
func GreaterEqual(x, y View) Compare { return Compare{X: x, Y: y, Kind: kindGE} }

func (c Compare) Dependencies() []Dependency {
	return append(c.X.Dependencies(Bound), c.Y.Dependencies(Bound)...)
}

func (c Compare) IsSubsumed(vs *VStore) Trilean {
	x, y := c.X.Read(vs), c.Y.Read(vs)
	switch c.Kind {
	case kindLT:
		if x.Max() < y.Min() {
			return True
		}
		if x.Min() >= y.Max() {
			return False
		}
	case kindLE:
		if x.Max() <= y.Min() {
			return True
		}
		if x.Min() > y.Max() {
			return False
		}
	case kindGT:
		if x.Min() > y.Max() {
			return True
		}
		if x.Max() <= y.Min() {
			return False
		}
	case kindGE:
		if x.Min() >= y.Max() {
			return True
		}
		if x.Max() < y.Min() {
			return False
		}
	}
	return Unknown
}

// Propagate prunes both sides from the bounds read at the start of the
// call (not refreshed mid-way), mirroring the teacher's propLT/propLE/
// propGT/propGE (propagation.go): X's prune uses Y's original bound and
// vice versa.
func (c Compare) Propagate(vs *VStore) bool {
	x, y := c.X.Read(vs), c.Y.Read(vs)
	switch c.Kind {
	case kindLT:
		if !c.X.Update(vs, x.StrictShrinkRight(y.Max())) {
			return false
		}
		return c.Y.Update(vs, y.StrictShrinkLeft(x.Min()))
	case kindLE:
		if !c.X.Update(vs, x.ShrinkRight(y.Max())) {
			return false
		}
		return c.Y.Update(vs, y.ShrinkLeft(x.Min()))
	case kindGT:
		if !c.X.Update(vs, x.StrictShrinkLeft(y.Min())) {
			return false
		}
		return c.Y.Update(vs, y.StrictShrinkRight(x.Max()))
	case kindGE:
		if !c.X.Update(vs, x.ShrinkLeft(y.Min())) {
			return false
		}
		return c.Y.Update(vs, y.ShrinkRight(x.Max()))
	}
	return true
}

func (c Compare) Clone() Propagator { return c }

func (c Compare) String() string {
	ops := [...]string{"<", "<=", ">", ">="}
	return fmt.Sprintf("%s %s %s", c.X, ops[c.Kind], c.Y)
}

// Equal is the bounds-and-value-consistent propagator X = Y: both views
// are narrowed to their intersection.
type Equal struct {
	X, Y View
}

func (e Equal) Dependencies() []Dependency {
	return append(e.X.Dependencies(Inner), e.Y.Dependencies(Inner)...)
}

func (e Equal) IsSubsumed(vs *VStore) Trilean {
	x, y := e.X.Read(vs), e.Y.Read(vs)
	yInX := sameRangeAs(y, x)
	if x.IsSingleton() && x.Equal(yInX) {
		return True
	}
	if x.Intersect(yInX).IsEmpty() {
		return False
	}
	return Unknown
}

func (e Equal) Propagate(vs *VStore) bool {
	x, y := e.X.Read(vs), e.Y.Read(vs)
	shared := x.Intersect(sameRangeAs(y, x))
	if !e.X.Update(vs, shared) {
		return false
	}
	return e.Y.Update(vs, sameRangeAs(shared, y))
}

func (e Equal) Clone() Propagator { return e }

func (e Equal) String() string { return fmt.Sprintf("%s = %s", e.X, e.Y) }

// sameRangeAs rebuilds d's value set against target's representable
// bitset range, so that domains produced by different views (which may
// have different Base/Span) can be intersected. Values of d outside
// target's range are dropped (they cannot be shared assignments anyway).
func sameRangeAs(d, target Domain) Domain {
	if d.Base() == target.Base() && d.Span() == target.Span() {
		return d
	}
	return NewDomainFromValues(target.Base(), target.Span(), d.Values())
}

// NotEqual is the propagator X != Y. It only usefully prunes once one
// side is bound to a single value, mirroring the teacher's diagonal-queens
// use of XNeqY: the pruned side removes that one value, if present.
type NotEqual struct {
	X, Y View
}

func (n NotEqual) Dependencies() []Dependency {
	return append(n.X.Dependencies(Assignment), n.Y.Dependencies(Assignment)...)
}

func (n NotEqual) IsSubsumed(vs *VStore) Trilean {
	x, y := n.X.Read(vs), n.Y.Read(vs)
	if xv, ok := x.SingletonValue(); ok {
		if yv, ok := y.SingletonValue(); ok {
			if xv == yv {
				return False
			}
			return True
		}
		if !y.Has(xv) {
			return True
		}
		return Unknown
	}
	if yv, ok := y.SingletonValue(); ok {
		if !x.Has(yv) {
			return True
		}
	}
	return Unknown
}

func (n NotEqual) Propagate(vs *VStore) bool {
	x, y := n.X.Read(vs), n.Y.Read(vs)
	if xv, ok := x.SingletonValue(); ok {
		if y.Has(xv) {
			if !n.Y.Update(vs, y.Remove(xv)) {
				return false
			}
		}
	}
	y = n.Y.Read(vs)
	if yv, ok := y.SingletonValue(); ok {
		if x.Has(yv) {
			if !n.X.Update(vs, x.Remove(yv)) {
				return false
			}
		}
	}
	return true
}

func (n NotEqual) Clone() Propagator { return n }

func (n NotEqual) String() string { return fmt.Sprintf("%s != %s", n.X, n.Y) }
