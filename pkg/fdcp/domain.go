package fdcp

import (
	"fmt"
	"math/bits"
	"strings"
)

// Domain is a finite set of integers represented as a bitset over a
// contiguous range. Unlike a board-indexed domain restricted to
// [1, maxValue], a Domain here covers an arbitrary integer range
// [base, base+n), so that affine views (aX+b) and subtraction-style
// propagators can produce negative or zero bounds.
//
// All shrink operations, Remove, Intersect and Difference are monotone:
// the result is always a subset of the receiver (Union is not). Domain values are immutable; every operation
// returns a new Domain rather than mutating in place.
type Domain interface {
	// Base and Span describe the representable bitset range
	// [Base, Base+Span). Two domains must share Base/Span to be
	// combined via Intersect/Union/Difference/Equal.
	Base() int
	Span() int

	Count() int
	IsEmpty() bool
	IsSingleton() bool
	SingletonValue() (int, bool)
	Has(v int) bool
	Min() int
	Max() int

	ShrinkLeft(bound int) Domain
	ShrinkRight(bound int) Domain
	StrictShrinkLeft(bound int) Domain
	StrictShrinkRight(bound int) Domain
	Remove(v int) Domain

	Intersect(other Domain) Domain
	Union(other Domain) Domain
	Difference(other Domain) Domain
	Equal(other Domain) bool

	Clone() Domain
	Values() []int
	String() string
}

// BitSetDomain is the only Domain implementation in this package: a dense
// bitset over [base, base+n). Ported from the teacher's BitSetDomain
// (board-indexed [1, maxValue]) and generalized with an explicit base so
// that negative and zero-crossing ranges are representable.
type BitSetDomain struct {
	base  int
	n     int
	words []uint64
}

const wordBits = 64

func wordsFor(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + wordBits - 1) / wordBits
}

// NewIntervalDomain builds a full domain [lo, hi] as a Domain whose
// representable bitset range is exactly [lo, hi].
func NewIntervalDomain(lo, hi int) *BitSetDomain {
	if hi < lo {
		return &BitSetDomain{base: lo, n: 0}
	}
	n := hi - lo + 1
	d := &BitSetDomain{base: lo, n: n, words: make([]uint64, wordsFor(n))}
	for i := 0; i < n; i++ {
		d.words[i/wordBits] |= 1 << uint(i%wordBits)
	}
	d.maskTail()
	return d
}

// NewEmptyDomain builds an empty domain over the representable range
// [base, base+n) — used to keep range bookkeeping consistent when a
// propagator must produce an always-empty result within a given variable's
// range.
func NewEmptyDomain(base, n int) *BitSetDomain {
	return &BitSetDomain{base: base, n: n, words: make([]uint64, wordsFor(n))}
}

// NewDomainFromValues builds a domain over [base, base+n) containing
// exactly the given values (values outside the range are ignored).
func NewDomainFromValues(base, n int, values []int) *BitSetDomain {
	d := &BitSetDomain{base: base, n: n, words: make([]uint64, wordsFor(n))}
	for _, v := range values {
		idx := v - base
		if idx >= 0 && idx < n {
			d.words[idx/wordBits] |= 1 << uint(idx%wordBits)
		}
	}
	return d
}

func (d *BitSetDomain) maskTail() {
	if d.n == 0 {
		return
	}
	last := (d.n - 1) / wordBits
	rem := d.n % wordBits
	if rem != 0 {
		d.words[last] &= (uint64(1) << uint(rem)) - 1
	}
}

func (d *BitSetDomain) Base() int { return d.base }
func (d *BitSetDomain) Span() int { return d.n }

func (d *BitSetDomain) Count() int {
	c := 0
	for _, w := range d.words {
		c += bits.OnesCount64(w)
	}
	return c
}

func (d *BitSetDomain) IsEmpty() bool { return d.Count() == 0 }

func (d *BitSetDomain) IsSingleton() bool { return d.Count() == 1 }

func (d *BitSetDomain) SingletonValue() (int, bool) {
	if !d.IsSingleton() {
		return 0, false
	}
	return d.Min(), true
}

func (d *BitSetDomain) Has(v int) bool {
	idx := v - d.base
	if idx < 0 || idx >= d.n {
		return false
	}
	return d.words[idx/wordBits]&(1<<uint(idx%wordBits)) != 0
}

func (d *BitSetDomain) Min() int {
	for wi, w := range d.words {
		if w != 0 {
			return d.base + wi*wordBits + bits.TrailingZeros64(w)
		}
	}
	return d.base
}

func (d *BitSetDomain) Max() int {
	for wi := len(d.words) - 1; wi >= 0; wi-- {
		w := d.words[wi]
		if w != 0 {
			return d.base + wi*wordBits + (63 - bits.LeadingZeros64(w))
		}
	}
	return d.base - 1
}

func (d *BitSetDomain) Values() []int {
	out := make([]int, 0, d.Count())
	for i := 0; i < d.n; i++ {
		if d.words[i/wordBits]&(1<<uint(i%wordBits)) != 0 {
			out = append(out, d.base+i)
		}
	}
	return out
}

func (d *BitSetDomain) Clone() Domain {
	words := make([]uint64, len(d.words))
	copy(words, d.words)
	return &BitSetDomain{base: d.base, n: d.n, words: words}
}

// ShrinkLeft returns the largest sub-domain whose values are >= bound.
func (d *BitSetDomain) ShrinkLeft(bound int) Domain {
	return d.removeBelow(bound)
}

// ShrinkRight returns the largest sub-domain whose values are <= bound.
func (d *BitSetDomain) ShrinkRight(bound int) Domain {
	return d.removeAbove(bound)
}

// StrictShrinkLeft returns the largest sub-domain whose values are > bound.
func (d *BitSetDomain) StrictShrinkLeft(bound int) Domain {
	return d.removeBelow(bound + 1)
}

// StrictShrinkRight returns the largest sub-domain whose values are < bound.
func (d *BitSetDomain) StrictShrinkRight(bound int) Domain {
	return d.removeAbove(bound - 1)
}

func (d *BitSetDomain) removeBelow(bound int) Domain {
	out := d.Clone().(*BitSetDomain)
	for i := 0; i < out.n; i++ {
		if out.base+i < bound {
			out.words[i/wordBits] &^= 1 << uint(i%wordBits)
		}
	}
	return out
}

func (d *BitSetDomain) removeAbove(bound int) Domain {
	out := d.Clone().(*BitSetDomain)
	for i := 0; i < out.n; i++ {
		if out.base+i > bound {
			out.words[i/wordBits] &^= 1 << uint(i%wordBits)
		}
	}
	return out
}

func (d *BitSetDomain) Remove(v int) Domain {
	idx := v - d.base
	if idx < 0 || idx >= d.n {
		return d.Clone()
	}
	out := d.Clone().(*BitSetDomain)
	out.words[idx/wordBits] &^= 1 << uint(idx%wordBits)
	return out
}

func (d *BitSetDomain) sameRange(other Domain) bool {
	return d.base == other.Base() && d.n == other.Span()
}

func (d *BitSetDomain) Intersect(other Domain) Domain {
	o := other.(*BitSetDomain)
	if !d.sameRange(other) {
		panic(fmt.Sprintf("fdcp: Intersect on mismatched ranges [%d,%d) vs [%d,%d)", d.base, d.base+d.n, o.base, o.base+o.n))
	}
	words := make([]uint64, len(d.words))
	for i := range words {
		words[i] = d.words[i] & o.words[i]
	}
	return &BitSetDomain{base: d.base, n: d.n, words: words}
}

func (d *BitSetDomain) Union(other Domain) Domain {
	o := other.(*BitSetDomain)
	if !d.sameRange(other) {
		panic(fmt.Sprintf("fdcp: Union on mismatched ranges [%d,%d) vs [%d,%d)", d.base, d.base+d.n, o.base, o.base+o.n))
	}
	words := make([]uint64, len(d.words))
	for i := range words {
		words[i] = d.words[i] | o.words[i]
	}
	return &BitSetDomain{base: d.base, n: d.n, words: words}
}

func (d *BitSetDomain) Difference(other Domain) Domain {
	o := other.(*BitSetDomain)
	if !d.sameRange(other) {
		panic(fmt.Sprintf("fdcp: Difference on mismatched ranges [%d,%d) vs [%d,%d)", d.base, d.base+d.n, o.base, o.base+o.n))
	}
	words := make([]uint64, len(d.words))
	for i := range words {
		words[i] = d.words[i] &^ o.words[i]
	}
	return &BitSetDomain{base: d.base, n: d.n, words: words}
}

func (d *BitSetDomain) Equal(other Domain) bool {
	o, ok := other.(*BitSetDomain)
	if !ok || !d.sameRange(other) {
		return false
	}
	for i := range d.words {
		if d.words[i] != o.words[i] {
			return false
		}
	}
	return true
}

func (d *BitSetDomain) String() string {
	if d.IsEmpty() {
		return "{}"
	}
	vals := d.Values()
	var b strings.Builder
	b.WriteByte('{')
	start := vals[0]
	prev := vals[0]
	first := true
	flush := func(lo, hi int) {
		if !first {
			b.WriteByte(',')
		}
		first = false
		if lo == hi {
			fmt.Fprintf(&b, "%d", lo)
		} else {
			fmt.Fprintf(&b, "%d..%d", lo, hi)
		}
	}
	for _, v := range vals[1:] {
		if v == prev+1 {
			prev = v
			continue
		}
		flush(start, prev)
		start, prev = v, v
	}
	flush(start, prev)
	b.WriteByte('}')
	return b.String()
}

// DomainAdd computes the interval-arithmetic sum of two domains, rebuilt
// against the representable range [base, base+n) of the result variable
// (mirroring the teacher's imageForTarget pattern of reconstructing a
// computed domain into the target's own bitset shape before combining it).
func DomainAdd(a, b Domain, base, n int) Domain {
	lo := a.Min() + b.Min()
	hi := a.Max() + b.Max()
	return clampedInterval(base, n, lo, hi)
}

// DomainSub computes the interval-arithmetic difference a - b.
func DomainSub(a, b Domain, base, n int) Domain {
	lo := a.Min() - b.Max()
	hi := a.Max() - b.Min()
	return clampedInterval(base, n, lo, hi)
}

// DomainMul computes the interval-arithmetic product a * b.
func DomainMul(a, b Domain, base, n int) Domain {
	amin, amax := a.Min(), a.Max()
	bmin, bmax := b.Min(), b.Max()
	candidates := [4]int{amin * bmin, amin * bmax, amax * bmin, amax * bmax}
	lo, hi := candidates[0], candidates[0]
	for _, c := range candidates[1:] {
		if c < lo {
			lo = c
		}
		if c > hi {
			hi = c
		}
	}
	return clampedInterval(base, n, lo, hi)
}

func clampedInterval(base, n, lo, hi int) Domain {
	if lo < base {
		lo = base
	}
	if hi > base+n-1 {
		hi = base + n - 1
	}
	if hi < lo {
		return NewEmptyDomain(base, n)
	}
	out := NewEmptyDomain(base, n)
	for v := lo; v <= hi; v++ {
		idx := v - base
		out.words[idx/wordBits] |= 1 << uint(idx%wordBits)
	}
	return out
}
