package fdcp

import "fmt"

// CStore owns a vector of propagators and drives the fixpoint propagation
// loop, exactly as SPEC_FULL.md §4.8 describes (ported from
// original_source's libpcp/propagation/store.rs). The propagator vector is
// append-only within a round: a True (subsumed) propagator is unlinked
// from the Reactor/Scheduler but stays in the vector, so Freeze/Label/Restore
// (CStoreSnapshot, below) can truncate it back out later.
type CStore struct {
	propagators []Propagator
	reactor     *reactor
	scheduler   *scheduler
	monitor     *Monitor
}

// NewCStore returns an empty constraint store.
func NewCStore() *CStore {
	return &CStore{}
}

// SetMonitor attaches a Monitor for propagation telemetry. Passing nil
// detaches it; every Monitor method is nil-receiver-safe.
func (cs *CStore) SetMonitor(m *Monitor) { cs.monitor = m }

// Alloc appends propagator and returns its index. Subscriptions are not
// registered until the next Propagate/Consistency call.
func (cs *CStore) Alloc(p Propagator) int {
	cs.propagators = append(cs.propagators, p)
	return len(cs.propagators) - 1
}

// Size returns the number of propagators, including unlinked ones.
func (cs *CStore) Size() int { return len(cs.propagators) }

// prepare rebuilds the Reactor and Scheduler from scratch, subscribing
// every propagator (even ones already subsumed in a prior round) and
// scheduling all of them for an initial wake-up.
func (cs *CStore) prepare(vs *VStore) {
	cs.reactor = newReactor(vs.Size(), EventCount())
	for idx, p := range cs.propagators {
		for _, dep := range p.Dependencies() {
			if dep.VarIndex < 0 || dep.VarIndex >= vs.Size() {
				panic(fmt.Sprintf("fdcp: propagator %d (%s) depends on var %d but store has size %d", idx, p, dep.VarIndex, vs.Size()))
			}
			cs.reactor.subscribe(dep.VarIndex, dep.Event, idx)
		}
	}
	cs.scheduler = newScheduler(len(cs.propagators))
	for idx := range cs.propagators {
		cs.scheduler.schedule(idx)
	}
}

// Propagate runs the fixpoint loop to completion and returns false iff the
// store became inconsistent (some propagator emptied a domain).
func (cs *CStore) Propagate(vs *VStore) bool {
	if cs.monitor != nil {
		cs.monitor.StartPropagation()
		defer cs.monitor.EndPropagation()
	}
	cs.prepare(vs)
	for {
		idx, ok := cs.scheduler.pop()
		if !ok {
			return true
		}
		if !cs.propagateOne(idx, vs) {
			return false
		}
	}
}

// propagateOne fuses a single propagator's filtering step with its
// entailment check (the "consistency" operation of SPEC_FULL.md §4.8):
// Propagate narrows domains first; if that empties one, the round fails.
// Otherwise IsSubsumed decides whether to unlink (True), fail (False), or
// leave the propagator scheduled/resting (Unknown) before draining deltas
// and waking reactor subscribers.
func (cs *CStore) propagateOne(idx int, vs *VStore) bool {
	p := cs.propagators[idx]
	if !p.Propagate(vs) {
		return false
	}
	switch p.IsSubsumed(vs) {
	case False:
		return false
	case True:
		cs.unlinkProp(idx)
	case Unknown:
		cs.rescheduleProp(idx, vs)
	}
	cs.react(vs)
	return true
}

func (cs *CStore) rescheduleProp(idx int, vs *VStore) {
	if vs.HasChanged() {
		cs.scheduler.schedule(idx)
	}
}

func (cs *CStore) react(vs *VStore) {
	for _, d := range vs.DrainDelta() {
		for _, p := range cs.reactor.react(d.VarIndex, d.Event) {
			cs.scheduler.schedule(p)
		}
	}
}

func (cs *CStore) unlinkProp(idx int) {
	cs.scheduler.unschedule(idx)
	if cs.monitor != nil {
		cs.monitor.RecordUnlink()
	}
	for _, dep := range cs.propagators[idx].Dependencies() {
		cs.reactor.unsubscribe(dep.VarIndex, dep.Event, idx)
	}
}

// Consistency runs Propagate and folds the result and the final Reactor
// state into a single Trilean: False if inconsistent, True if every
// propagator ended up subsumed (Reactor empty), Unknown otherwise.
func (cs *CStore) Consistency(vs *VStore) Trilean {
	if !cs.Propagate(vs) {
		return False
	}
	if cs.reactor.isEmpty() {
		return True
	}
	return Unknown
}

// IsSubsumed folds every propagator's current IsSubsumed verdict via
// Trilean conjunction, without running propagation. Useful for checking
// entailment of a frozen store without mutating it.
func (cs *CStore) IsSubsumed(vs *VStore) Trilean {
	result := True
	for _, p := range cs.propagators {
		result = result.And(p.IsSubsumed(vs))
		if result == False {
			break
		}
	}
	return result
}

// Clone returns a fully independent CStore: every propagator is
// deep-cloned via Propagator.Clone, and the Reactor/Scheduler are left nil
// (rebuilt lazily by the next Propagate/Consistency call), matching
// original_source's Store::Clone which clones propagators into a fresh
// empty store.
func (cs *CStore) Clone() *CStore {
	props := make([]Propagator, len(cs.propagators))
	for i, p := range cs.propagators {
		props[i] = p.Clone()
	}
	return &CStore{propagators: props, monitor: cs.monitor}
}

// CStoreSnapshot is the frozen wrapper returned by Freeze and the
// write-once label returned by its Label call: the propagator count at
// Label time. Because propagators are never mutated
// in place after Alloc (only appended or unlinked from the
// Reactor/Scheduler), Restore is a pure truncation.
type CStoreSnapshot struct {
	store *CStore
	count int
}

// Freeze wraps cs for a later Label/Restore pair.
func (cs *CStore) Freeze() *CStoreSnapshot {
	return &CStoreSnapshot{store: cs}
}

// Label records the current propagator count.
func (f *CStoreSnapshot) Label() CStoreSnapshot {
	return CStoreSnapshot{store: f.store, count: len(f.store.propagators)}
}

// Restore truncates the live store's propagator vector back to
// label.count and returns it.
func (label CStoreSnapshot) Restore() *CStore {
	cs := label.store
	cs.propagators = cs.propagators[:label.count]
	return cs
}
