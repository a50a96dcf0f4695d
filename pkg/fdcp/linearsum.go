package fdcp

import (
	"fmt"
	"strings"
)

// LinearSum is the bounds-consistent weighted-sum propagator
// Σ coeffs[i]*vars[i] = total, ported from the teacher's LinearSum
// (sum.go), generalized from *FDVariable to View and from the teacher's
// [1,Max] domain convention to the arbitrary-base domain of this package.
// Coefficients may be positive, negative, or zero.
type LinearSum struct {
	Vars   []View
	Coeffs []int
	Total  View
}

// NewLinearSum validates shapes and returns a LinearSum propagator.
func NewLinearSum(vars []View, coeffs []int, total View) (LinearSum, error) {
	if len(vars) == 0 {
		return LinearSum{}, fmt.Errorf("fdcp: LinearSum needs at least one term")
	}
	if len(vars) != len(coeffs) {
		return LinearSum{}, fmt.Errorf("fdcp: LinearSum len(vars)=%d != len(coeffs)=%d", len(vars), len(coeffs))
	}
	return LinearSum{Vars: vars, Coeffs: coeffs, Total: total}, nil
}

func (s LinearSum) Dependencies() []Dependency {
	var deps []Dependency
	for _, v := range s.Vars {
		deps = append(deps, v.Dependencies(Bound)...)
	}
	deps = append(deps, s.Total.Dependencies(Bound)...)
	return deps
}

// bounds returns [sumMin, sumMax] of coeffs[i]*vars[i], summed term-wise.
func (s LinearSum) bounds(vs *VStore) (int, int) {
	sumMin, sumMax := 0, 0
	for i, v := range s.Vars {
		d := v.Read(vs)
		a := s.Coeffs[i]
		if a >= 0 {
			sumMin += a * d.Min()
			sumMax += a * d.Max()
		} else {
			sumMin += a * d.Max()
			sumMax += a * d.Min()
		}
	}
	return sumMin, sumMax
}

func (s LinearSum) IsSubsumed(vs *VStore) Trilean {
	sumMin, sumMax := s.bounds(vs)
	total := s.Total.Read(vs)
	if sumMin > total.Max() || sumMax < total.Min() {
		return False
	}
	if sumMin == sumMax && total.IsSingleton() {
		if tv, _ := total.SingletonValue(); tv == sumMin {
			return True
		}
		return False
	}
	return Unknown
}

// Propagate narrows total to [sumMin, sumMax], then for each term derives
// an admissible interval for that variable from total's bounds and the
// other terms' bounds, using sign-aware division to convert a bound on
// coeffs[k]*vars[k] into a bound on vars[k].
func (s LinearSum) Propagate(vs *VStore) bool {
	sumMin, sumMax := s.bounds(vs)
	total := s.Total.Read(vs)
	if !s.Total.Update(vs, total.ShrinkLeft(sumMin).ShrinkRight(sumMax)) {
		return false
	}
	total = s.Total.Read(vs)

	for k, v := range s.Vars {
		a := s.Coeffs[k]
		if a == 0 {
			continue
		}
		d := v.Read(vs)
		otherMin, otherMax := 0, 0
		for i, other := range s.Vars {
			if i == k {
				continue
			}
			od := other.Read(vs)
			c := s.Coeffs[i]
			if c >= 0 {
				otherMin += c * od.Min()
				otherMax += c * od.Max()
			} else {
				otherMin += c * od.Max()
				otherMax += c * od.Min()
			}
		}
		// a*vars[k] must lie in [total.Min()-otherMax, total.Max()-otherMin]
		termLo := total.Min() - otherMax
		termHi := total.Max() - otherMin

		var lo, hi int
		if a > 0 {
			lo = ceilDiv(termLo, a)
			hi = floorDiv(termHi, a)
		} else {
			lo = ceilDiv(termHi, a)
			hi = floorDiv(termLo, a)
		}
		if !v.Update(vs, d.ShrinkLeft(lo).ShrinkRight(hi)) {
			return false
		}
	}
	return true
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) == (b < 0)) {
		q++
	}
	return q
}

func (s LinearSum) Clone() Propagator {
	return LinearSum{
		Vars:   append([]View(nil), s.Vars...),
		Coeffs: append([]int(nil), s.Coeffs...),
		Total:  s.Total,
	}
}

func (s LinearSum) String() string {
	var b strings.Builder
	for i, v := range s.Vars {
		if i > 0 {
			b.WriteString(" + ")
		}
		fmt.Fprintf(&b, "%d*%s", s.Coeffs[i], v)
	}
	b.WriteString(" = ")
	b.WriteString(s.Total.String())
	return b.String()
}
