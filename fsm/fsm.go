package fsm

// New constructs an FSM over the given state labels with the distinguished
// initial state.
//
// The state set is fixed for the machine's lifetime: AddTransition rejects
// endpoints outside it. Duplicate labels in states are collapsed.
//
// Returns ErrNoStates when states is empty and ErrUnknownInitial when the
// initial label is not a member of states.
//
// Complexity: O(len(states)).
func New(states []string, initial string) (*FSM, error) {
	if len(states) == 0 {
		return nil, ErrNoStates
	}

	set := make(map[string]struct{}, len(states))
	for _, s := range states {
		set[s] = struct{}{}
	}
	if _, ok := set[initial]; !ok {
		return nil, ErrUnknownInitial
	}

	return &FSM{
		states:  set,
		initial: initial,
		edges:   make(map[bucketKey]*bucket),
	}, nil
}

// AddTransition inserts the directed transition src→dst under the given
// event label ("" for unlabeled) with the given weight.
//
// Re-adding an existing (src, event, dst) triple overwrites the prior
// weight; weights never accumulate.
//
// Returns ErrUnknownState when either endpoint is not a registered state.
//
// Complexity: O(1) amortized.
func (f *FSM) AddTransition(src, dst, event string, weight float64) error {
	if !f.Has(src) || !f.Has(dst) {
		return ErrUnknownState
	}

	key := bucketKey{src: src, event: event}
	b, ok := f.edges[key]
	if !ok {
		b = &bucket{weights: make(map[string]float64)}
		f.edges[key] = b
		f.keyOrder = append(f.keyOrder, key)
	}
	if _, seen := b.weights[dst]; !seen {
		b.order = append(b.order, dst)
	}
	b.weights[dst] = weight

	return nil
}

// Neighbors returns a copy of the destination→weight mapping for the
// (src, event) bucket. The result is empty (non-nil) when no such bucket
// exists; mutating it does not affect the machine.
//
// Complexity: O(k) where k is the bucket size.
func (f *FSM) Neighbors(src, event string) map[string]float64 {
	out := make(map[string]float64)
	if b, ok := f.edges[bucketKey{src: src, event: event}]; ok {
		for dst, w := range b.weights {
			out[dst] = w
		}
	}

	return out
}

// Transitions materializes every (src, event, dst, weight) tuple in stable
// insertion order: buckets in the order they were first created, and
// destinations in the order they first appeared within each bucket.
//
// The returned slice is a fresh copy on every call, so callers may iterate
// it repeatedly or mutate it freely.
//
// Complexity: O(E).
func (f *FSM) Transitions() []Transition {
	out := make([]Transition, 0, len(f.keyOrder))
	for _, key := range f.keyOrder {
		b := f.edges[key]
		for _, dst := range b.order {
			out = append(out, Transition{
				Src:    key.src,
				Event:  key.event,
				Dst:    dst,
				Weight: b.weights[dst],
			})
		}
	}

	return out
}

// States returns the state labels as a fresh slice in unspecified order.
//
// Complexity: O(V).
func (f *FSM) States() []string {
	out := make([]string, 0, len(f.states))
	for s := range f.states {
		out = append(out, s)
	}

	return out
}

// Initial returns the distinguished initial state label.
//
// Complexity: O(1).
func (f *FSM) Initial() string { return f.initial }

// Has reports whether the given label is a registered state.
//
// Complexity: O(1).
func (f *FSM) Has(state string) bool {
	_, ok := f.states[state]

	return ok
}
