package fdcp

import "testing"

func TestSchedulerDedup(t *testing.T) {
	s := newScheduler(3)
	s.schedule(1)
	s.schedule(1)
	s.schedule(2)

	var popped []int
	for {
		p, ok := s.pop()
		if !ok {
			break
		}
		popped = append(popped, p)
	}
	if len(popped) != 2 {
		t.Errorf("schedule should dedup, popped %v", popped)
	}
}

func TestSchedulerFIFO(t *testing.T) {
	s := newScheduler(3)
	s.schedule(2)
	s.schedule(0)
	s.schedule(1)

	want := []int{2, 0, 1}
	for _, w := range want {
		p, ok := s.pop()
		if !ok || p != w {
			t.Fatalf("pop() = (%d,%v), want (%d,true)", p, ok, w)
		}
	}
}

func TestSchedulerUnschedule(t *testing.T) {
	s := newScheduler(2)
	s.schedule(0)
	s.schedule(1)
	s.unschedule(0)

	p, ok := s.pop()
	if !ok || p != 1 {
		t.Fatalf("expected unscheduled entry to be skipped, got (%d,%v)", p, ok)
	}
	_, ok = s.pop()
	if ok {
		t.Errorf("expected scheduler to be empty after the one live entry is popped")
	}
}

func TestSchedulerEmpty(t *testing.T) {
	s := newScheduler(1)
	if !s.isEmpty() {
		t.Errorf("fresh scheduler should be empty")
	}
	s.schedule(0)
	if s.isEmpty() {
		t.Errorf("scheduler with a scheduled entry should not be empty")
	}
	s.unschedule(0)
	if !s.isEmpty() {
		t.Errorf("scheduler should be empty after unscheduling its only entry")
	}
}
