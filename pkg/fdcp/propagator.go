package fdcp

// Propagator narrows variable domains while preserving every solution. It
// is owned exclusively by a CStore; the CStore holds a heterogeneous slice
// of Propagator, so dispatch on the propagator is virtual by design (§9 of
// SPEC_FULL.md). Domains are also handled through the Domain interface
// (VStore stores them as Domain values and views return Domain), so domain
// operations are interface calls as well.
type Propagator interface {
	// Dependencies lists the (varIndex, event) pairs that may cause this
	// propagator to be reconsidered. Stable for the propagator's lifetime.
	Dependencies() []Dependency

	// IsSubsumed reports whether the constraint is already certainly
	// satisfied (True), certainly violated (False), or undetermined
	// (Unknown) given the current domains. Once True or False, must not
	// change for any further refinement of the store.
	IsSubsumed(vs *VStore) Trilean

	// Propagate removes inconsistent values via monotone Updates. Returns
	// false iff a domain became empty. Must be idempotent: calling
	// Propagate again on an unchanged store must not alter it further.
	Propagate(vs *VStore) bool

	// Clone returns a deep, independent copy for search branching.
	Clone() Propagator

	String() string
}
