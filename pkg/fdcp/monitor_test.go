package fdcp

import "testing"

func TestMonitorRunIDUnique(t *testing.T) {
	a := NewMonitor()
	b := NewMonitor()
	if a.RunID() == "" {
		t.Errorf("RunID() should be non-empty")
	}
	if a.RunID() == b.RunID() {
		t.Errorf("two monitors should not share a RunID")
	}
	if (*Monitor)(nil).RunID() != "" {
		t.Errorf("RunID() on a nil Monitor should return empty string")
	}
}

func TestMonitorSnapshotCarriesRunID(t *testing.T) {
	m := NewMonitor()
	if got := m.Snapshot().RunID; got != m.RunID() {
		t.Errorf("Snapshot().RunID = %q, want %q", got, m.RunID())
	}
}
