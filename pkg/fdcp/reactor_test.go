package fdcp

import "testing"

func TestReactorSubscribeIdempotent(t *testing.T) {
	r := newReactor(2, EventCount())
	r.subscribe(0, Bound, 5)
	r.subscribe(0, Bound, 5)
	woken := r.react(0, Bound)
	if len(woken) != 1 {
		t.Errorf("subscribe must be idempotent, got %d wakeups", len(woken))
	}
}

func TestReactorReactWakesWeakerOrEqual(t *testing.T) {
	r := newReactor(1, EventCount())
	r.subscribe(0, Inner, 1)
	r.subscribe(0, Bound, 2)
	r.subscribe(0, Assignment, 3)

	woken := r.react(0, Assignment)
	if len(woken) != 3 {
		t.Fatalf("an Assignment should wake every subscriber, got %v", woken)
	}

	woken = r.react(0, Bound)
	if len(woken) != 2 {
		t.Fatalf("a Bound should wake Bound and Inner subscribers, got %v", woken)
	}

	woken = r.react(0, Inner)
	if len(woken) != 1 {
		t.Fatalf("an Inner change should wake only Inner subscribers, got %v", woken)
	}
}

func TestReactorUnsubscribe(t *testing.T) {
	r := newReactor(1, EventCount())
	r.subscribe(0, Bound, 7)
	r.unsubscribe(0, Bound, 7)
	woken := r.react(0, Assignment)
	if len(woken) != 0 {
		t.Errorf("unsubscribed propagator should not wake, got %v", woken)
	}
	if !r.isEmpty() {
		t.Errorf("reactor should be empty after unsubscribing its only entry")
	}
}

func TestReactorEachPropagatorOnce(t *testing.T) {
	r := newReactor(1, EventCount())
	r.subscribe(0, Inner, 1)
	r.subscribe(0, Bound, 1) // same propagator, two dependency kinds
	woken := r.react(0, Assignment)
	if len(woken) != 1 {
		t.Errorf("a propagator must be produced at most once per react call, got %v", woken)
	}
}

func TestReactorIsEmpty(t *testing.T) {
	r := newReactor(3, EventCount())
	if !r.isEmpty() {
		t.Errorf("fresh reactor should be empty")
	}
	r.subscribe(1, Inner, 0)
	if r.isEmpty() {
		t.Errorf("reactor with a subscription should not be empty")
	}
}
