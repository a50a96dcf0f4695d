package fdcp

// reactor is the subscription index mapping (varIndex, event) to the set
// of propagator indices that must be reconsidered when that change is
// observed. Sized once at construction time and rebuilt fresh every
// propagation round (see cstore.go prepare), per SPEC_FULL.md §4.6/§9.
type reactor struct {
	varCount   int
	eventCount int
	buckets    []map[int]struct{} // indexed by varIndex*eventCount + event.Index()
	subCount   int
}

func newReactor(varCount, eventCount int) *reactor {
	r := &reactor{
		varCount:   varCount,
		eventCount: eventCount,
		buckets:    make([]map[int]struct{}, varCount*eventCount),
	}
	return r
}

func (r *reactor) bucketIndex(varIndex int, event Event) int {
	return varIndex*r.eventCount + event.Index()
}

// subscribe registers propIndex for (varIndex, event); idempotent.
func (r *reactor) subscribe(varIndex int, event Event, propIndex int) {
	bi := r.bucketIndex(varIndex, event)
	bucket := r.buckets[bi]
	if bucket == nil {
		bucket = make(map[int]struct{})
		r.buckets[bi] = bucket
	}
	if _, ok := bucket[propIndex]; !ok {
		bucket[propIndex] = struct{}{}
		r.subCount++
	}
}

// unsubscribe removes the single (varIndex, event, propIndex) entry, if
// present.
func (r *reactor) unsubscribe(varIndex int, event Event, propIndex int) {
	bi := r.bucketIndex(varIndex, event)
	bucket := r.buckets[bi]
	if bucket == nil {
		return
	}
	if _, ok := bucket[propIndex]; ok {
		delete(bucket, propIndex)
		r.subCount--
	}
}

// react returns every propagator index subscribed to (varIndex, e') for
// every e' <= observedEvent, each produced at most once.
func (r *reactor) react(varIndex int, observedEvent Event) []int {
	seen := make(map[int]struct{})
	var out []int
	for e := 0; e <= observedEvent.Index(); e++ {
		bucket := r.buckets[r.bucketIndex(varIndex, Event(e))]
		for p := range bucket {
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}

// isEmpty reports whether no subscriptions remain.
func (r *reactor) isEmpty() bool { return r.subCount == 0 }
