package fdcp

import "testing"

func TestNewIntervalDomain(t *testing.T) {
	d := NewIntervalDomain(1, 4)
	if d.Count() != 4 {
		t.Errorf("Count() = %d, want 4", d.Count())
	}
	if d.Min() != 1 || d.Max() != 4 {
		t.Errorf("bounds = [%d,%d], want [1,4]", d.Min(), d.Max())
	}
	for _, v := range []int{1, 2, 3, 4} {
		if !d.Has(v) {
			t.Errorf("expected Has(%d)", v)
		}
	}
	if d.Has(0) || d.Has(5) {
		t.Errorf("domain should not contain values outside [1,4]")
	}
}

func TestNewIntervalDomainNegativeBase(t *testing.T) {
	d := NewIntervalDomain(-3, 2)
	if d.Count() != 6 {
		t.Errorf("Count() = %d, want 6", d.Count())
	}
	if d.Min() != -3 || d.Max() != 2 {
		t.Errorf("bounds = [%d,%d], want [-3,2]", d.Min(), d.Max())
	}
}

func TestShrinkLeftRight(t *testing.T) {
	d := NewIntervalDomain(1, 10)

	left := d.ShrinkLeft(5)
	if left.Min() != 5 || left.Max() != 10 {
		t.Errorf("ShrinkLeft(5) = [%d,%d], want [5,10]", left.Min(), left.Max())
	}

	strictLeft := d.StrictShrinkLeft(5)
	if strictLeft.Min() != 6 {
		t.Errorf("StrictShrinkLeft(5).Min() = %d, want 6", strictLeft.Min())
	}

	right := d.ShrinkRight(5)
	if right.Min() != 1 || right.Max() != 5 {
		t.Errorf("ShrinkRight(5) = [%d,%d], want [1,5]", right.Min(), right.Max())
	}

	strictRight := d.StrictShrinkRight(5)
	if strictRight.Max() != 4 {
		t.Errorf("StrictShrinkRight(5).Max() = %d, want 4", strictRight.Max())
	}
}

func TestShrinkMonotone(t *testing.T) {
	d := NewIntervalDomain(1, 10)
	shrunk := d.ShrinkLeft(5)
	for _, v := range shrunk.Values() {
		if !d.Has(v) {
			t.Errorf("ShrinkLeft produced a value %d not in the original domain", v)
		}
	}
}

func TestShrinkToEmpty(t *testing.T) {
	d := NewIntervalDomain(1, 4)
	empty := d.StrictShrinkLeft(10)
	if !empty.IsEmpty() {
		t.Errorf("expected an empty domain, got %v", empty)
	}
}

func TestIntersectUnionDifference(t *testing.T) {
	a := NewDomainFromValues(1, 10, []int{1, 2, 3, 4})
	b := NewDomainFromValues(1, 10, []int{3, 4, 5, 6})

	inter := a.Intersect(b)
	if inter.Count() != 2 || !inter.Has(3) || !inter.Has(4) {
		t.Errorf("Intersect = %v, want {3,4}", inter)
	}

	union := a.Union(b)
	if union.Count() != 6 {
		t.Errorf("Union count = %d, want 6", union.Count())
	}

	diff := a.Difference(b)
	if diff.Count() != 2 || !diff.Has(1) || !diff.Has(2) {
		t.Errorf("Difference = %v, want {1,2}", diff)
	}
}

func TestEqual(t *testing.T) {
	a := NewDomainFromValues(1, 10, []int{1, 2, 3})
	b := NewDomainFromValues(1, 10, []int{1, 2, 3})
	c := NewDomainFromValues(1, 10, []int{1, 2})
	if !a.Equal(b) {
		t.Errorf("expected a.Equal(b)")
	}
	if a.Equal(c) {
		t.Errorf("did not expect a.Equal(c)")
	}
}

func TestSingleton(t *testing.T) {
	d := NewIntervalDomain(7, 7)
	if !d.IsSingleton() {
		t.Errorf("expected singleton")
	}
	v, ok := d.SingletonValue()
	if !ok || v != 7 {
		t.Errorf("SingletonValue() = (%d,%v), want (7,true)", v, ok)
	}
}

func TestDomainAddSubMul(t *testing.T) {
	a := NewIntervalDomain(1, 4)
	b := NewIntervalDomain(2, 3)

	sum := DomainAdd(a, b, 0, 20)
	if sum.Min() != 3 || sum.Max() != 7 {
		t.Errorf("DomainAdd bounds = [%d,%d], want [3,7]", sum.Min(), sum.Max())
	}

	diff := DomainSub(a, b, -10, 20)
	if diff.Min() != -2 || diff.Max() != 2 {
		t.Errorf("DomainSub bounds = [%d,%d], want [-2,2]", diff.Min(), diff.Max())
	}

	prod := DomainMul(a, b, 0, 20)
	if prod.Min() != 2 || prod.Max() != 12 {
		t.Errorf("DomainMul bounds = [%d,%d], want [2,12]", prod.Min(), prod.Max())
	}
}

func TestDomainString(t *testing.T) {
	d := NewDomainFromValues(1, 10, []int{1, 2, 3, 5, 7, 8, 9})
	got := d.String()
	want := "{1..3,5,7..9}"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDomainClone(t *testing.T) {
	a := NewIntervalDomain(1, 5)
	b := a.Clone()
	mutated := b.Remove(3)
	if !a.Has(3) {
		t.Errorf("cloning must not mutate the receiver")
	}
	if mutated.Has(3) {
		t.Errorf("Remove must exclude the removed value")
	}
}
