package fdcp

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Stats is a point-in-time snapshot of Monitor's counters.
type Stats struct {
	RunID            string
	PropagationCount int64
	PropagationTime  time.Duration
	PropagatorsUnlinked int64
	SearchNodes      int64
	SearchBacktracks int64
	MaxSearchDepth   int64
}

// Monitor is a lock-free, nil-receiver-safe collector of propagation and
// search telemetry, ported in spirit from the teacher's SolverMonitor
// (fd_monitor.go): atomic counters and a CAS-loop max, generalized from
// the teacher's FDStore-specific vocabulary to CStore/VStore, plus search
// counters (RecordNode/RecordBacktrack/RecordDepth) for a caller's search
// loop.
type Monitor struct {
	runID            string
	propagationCount int64
	propagationTime  int64 // nanoseconds
	propStart        atomic.Int64
	propagatorsUnlinked int64
	searchNodes      int64
	searchBacktracks int64
	maxSearchDepth   int64
}

// NewMonitor returns a fresh Monitor tagged with a new run ID, so that a
// run's log lines (cmd/fdcp logs it as run_id) can be correlated across a
// propagation/search session.
func NewMonitor() *Monitor { return &Monitor{runID: uuid.New().String()} }

// RunID returns the monitor's run identifier. Safe on nil (returns "").
func (m *Monitor) RunID() string {
	if m == nil {
		return ""
	}
	return m.runID
}

// StartPropagation marks the beginning of a Propagate call. Safe on nil.
func (m *Monitor) StartPropagation() {
	if m == nil {
		return
	}
	m.propStart.Store(time.Now().UnixNano())
}

// EndPropagation marks the end of a Propagate call. Safe on nil.
func (m *Monitor) EndPropagation() {
	if m == nil {
		return
	}
	start := m.propStart.Load()
	if start == 0 {
		return
	}
	atomic.AddInt64(&m.propagationTime, time.Now().UnixNano()-start)
	atomic.AddInt64(&m.propagationCount, 1)
	m.propStart.Store(0)
}

// RecordUnlink records a propagator becoming subsumed and unlinked. Safe
// on nil.
func (m *Monitor) RecordUnlink() {
	if m == nil {
		return
	}
	atomic.AddInt64(&m.propagatorsUnlinked, 1)
}

// RecordNode records a search node being explored. Safe on nil.
func (m *Monitor) RecordNode() {
	if m == nil {
		return
	}
	atomic.AddInt64(&m.searchNodes, 1)
}

// RecordBacktrack records a search backtrack. Safe on nil.
func (m *Monitor) RecordBacktrack() {
	if m == nil {
		return
	}
	atomic.AddInt64(&m.searchBacktracks, 1)
}

// RecordDepth records the current search depth, keeping the running
// maximum via compare-and-swap. Safe on nil.
func (m *Monitor) RecordDepth(depth int) {
	if m == nil {
		return
	}
	d := int64(depth)
	for {
		old := atomic.LoadInt64(&m.maxSearchDepth)
		if d <= old {
			return
		}
		if atomic.CompareAndSwapInt64(&m.maxSearchDepth, old, d) {
			return
		}
	}
}

// Snapshot returns a consistent point-in-time copy of the counters. Safe
// on nil (returns a zero Stats).
func (m *Monitor) Snapshot() Stats {
	if m == nil {
		return Stats{}
	}
	return Stats{
		RunID:               m.runID,
		PropagationCount:    atomic.LoadInt64(&m.propagationCount),
		PropagationTime:     time.Duration(atomic.LoadInt64(&m.propagationTime)),
		PropagatorsUnlinked: atomic.LoadInt64(&m.propagatorsUnlinked),
		SearchNodes:         atomic.LoadInt64(&m.searchNodes),
		SearchBacktracks:    atomic.LoadInt64(&m.searchBacktracks),
		MaxSearchDepth:      atomic.LoadInt64(&m.maxSearchDepth),
	}
}

func (s Stats) String() string {
	return fmt.Sprintf(
		"run=%s propagations=%d prop_time=%v unlinked=%d nodes=%d backtracks=%d max_depth=%d",
		s.RunID, s.PropagationCount, s.PropagationTime, s.PropagatorsUnlinked,
		s.SearchNodes, s.SearchBacktracks, s.MaxSearchDepth,
	)
}
