package fdcp

import "testing"

func TestVStoreAllocRead(t *testing.T) {
	vs := NewVStore()
	idx := vs.Alloc(NewIntervalDomain(1, 10))
	if idx != 0 {
		t.Errorf("first Alloc index = %d, want 0", idx)
	}
	if vs.Size() != 1 {
		t.Errorf("Size() = %d, want 1", vs.Size())
	}
	if vs.Read(idx).Min() != 1 || vs.Read(idx).Max() != 10 {
		t.Errorf("unexpected domain after Alloc")
	}
}

func TestVStoreUpdateAcceptsNarrowing(t *testing.T) {
	vs := NewVStore()
	idx := vs.Alloc(NewIntervalDomain(1, 10))
	ok := vs.Update(idx, NewIntervalDomain(1, 5))
	if !ok {
		t.Fatalf("narrowing update should succeed")
	}
	if vs.Read(idx).Max() != 5 {
		t.Errorf("domain not updated")
	}
}

func TestVStoreUpdateToEmptyFails(t *testing.T) {
	vs := NewVStore()
	idx := vs.Alloc(NewIntervalDomain(1, 10))
	ok := vs.Update(idx, NewEmptyDomain(1, 10))
	if ok {
		t.Fatalf("updating to an empty domain must return false")
	}
	if !vs.Read(idx).IsEmpty() {
		t.Errorf("variable should be left empty")
	}
}

func TestVStoreEventKindClassification(t *testing.T) {
	vs := NewVStore()
	idx := vs.Alloc(NewIntervalDomain(1, 10))

	vs.Update(idx, NewDomainFromValues(1, 10, []int{1, 2, 3, 5, 6, 7, 8, 9, 10})) // remove interior 4: Inner
	deltas := vs.DrainDelta()
	if len(deltas) != 1 || deltas[0].Event != Inner {
		t.Errorf("expected a single Inner delta, got %v", deltas)
	}

	vs.Update(idx, NewDomainFromValues(1, 10, []int{2, 3, 5, 6, 7, 8, 9})) // moves both bounds: Bound
	deltas = vs.DrainDelta()
	if len(deltas) != 1 || deltas[0].Event != Bound {
		t.Errorf("expected a single Bound delta, got %v", deltas)
	}

	vs.Update(idx, NewIntervalDomain(5, 5)) // singleton: Assignment
	deltas = vs.DrainDelta()
	if len(deltas) != 1 || deltas[0].Event != Assignment {
		t.Errorf("expected a single Assignment delta, got %v", deltas)
	}
}

func TestVStoreDeltaJoinsToStrongest(t *testing.T) {
	vs := NewVStore()
	idx := vs.Alloc(NewIntervalDomain(1, 10))

	vs.Update(idx, NewIntervalDomain(2, 9)) // Bound
	vs.Update(idx, NewIntervalDomain(4, 4)) // Assignment, same round

	deltas := vs.DrainDelta()
	if len(deltas) != 1 {
		t.Fatalf("each variable contributes at most one delta per round, got %d", len(deltas))
	}
	if deltas[0].Event != Assignment {
		t.Errorf("joined event = %v, want Assignment (the stronger of Bound and Assignment)", deltas[0].Event)
	}
}

func TestVStoreHasChangedAndDrainClears(t *testing.T) {
	vs := NewVStore()
	idx := vs.Alloc(NewIntervalDomain(1, 10))
	if vs.HasChanged() {
		t.Errorf("fresh store should report no changes")
	}
	vs.Update(idx, NewIntervalDomain(1, 5))
	if !vs.HasChanged() {
		t.Errorf("expected HasChanged() after an update")
	}
	vs.DrainDelta()
	if vs.HasChanged() {
		t.Errorf("DrainDelta should clear pending changes")
	}
}

func TestVStoreCloneIndependence(t *testing.T) {
	vs := NewVStore()
	idx := vs.Alloc(NewIntervalDomain(1, 10))
	clone := vs.Clone()
	clone.Update(idx, NewIntervalDomain(1, 3))
	if vs.Read(idx).Max() != 10 {
		t.Errorf("mutating a clone must not mutate the original")
	}
}

func TestVStoreSnapshotRoundTrip(t *testing.T) {
	vs := NewVStore()
	idx := vs.Alloc(NewIntervalDomain(1, 10))
	label := vs.Freeze().Label()

	vs.Update(idx, NewIntervalDomain(1, 5))
	vs.Alloc(NewIntervalDomain(1, 3))
	if vs.Size() != 2 {
		t.Fatalf("expected 2 variables before restore")
	}

	label.Restore()
	if vs.Size() != 1 {
		t.Errorf("Restore should truncate back to the labeled variable count, got size=%d", vs.Size())
	}
	if vs.Read(idx).Max() != 10 {
		t.Errorf("Restore should revert domain narrowing, got max=%d", vs.Read(idx).Max())
	}
}
