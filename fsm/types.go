// Package fsm declares the FSM container, its Transition tuple, and the
// sentinel errors shared by all construction operations.
package fsm

import "errors"

// Sentinel errors for state machine construction.
var (
	// ErrNoStates indicates that New was called with an empty state set.
	ErrNoStates = errors.New("fsm: state set must be non-empty")

	// ErrUnknownInitial indicates that the initial state is not a member of
	// the state set.
	ErrUnknownInitial = errors.New("fsm: initial state not in states")

	// ErrUnknownState indicates that a transition endpoint references a state
	// outside the machine's state set.
	ErrUnknownState = errors.New("fsm: src/dst must be existing states")
)

// Transition is one directed, weighted, optionally event-labeled edge.
//
// Event == "" means the transition is unlabeled (an epsilon transition).
type Transition struct {
	// Src is the source state label.
	Src string

	// Event is the optional event label; empty means unlabeled.
	Event string

	// Dst is the destination state label.
	Dst string

	// Weight is the transition cost; negative values are permitted.
	Weight float64
}

// bucketKey identifies one (source, event) transition bucket.
type bucketKey struct {
	src   string
	event string
}

// bucket stores the destinations of one (source, event) key.
// The order slice preserves destination insertion order for deterministic
// enumeration; weights is the authoritative destination→weight mapping.
type bucket struct {
	order   []string
	weights map[string]float64
}

// FSM is a deterministic finite state machine with weighted transitions,
// structured as a directed multigraph labeled by events.
//
// The zero value is not usable; construct with New.
type FSM struct {
	states  map[string]struct{}
	initial string

	edges    map[bucketKey]*bucket
	keyOrder []bucketKey
}
