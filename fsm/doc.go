// Package fsm provides the weighted, event-labeled state machine that the
// cycle planner runs over.
//
// Overview:
//
//   - States are opaque string labels, fixed at construction time.
//   - Transitions are directed edges keyed by (source, event); the empty
//     event string denotes an unlabeled (epsilon) transition.
//   - Multiple transitions may share a (source, event) key as long as their
//     destinations differ; re-adding the same (source, event, destination)
//     triple overwrites the stored weight (last write wins, no accumulation).
//   - Weights are float64 and may be negative; negative-weight safety is the
//     planner's concern, not the machine's.
//
// Determinism:
//
//   - Transitions() enumerates edges in bucket insertion order, and within a
//     bucket in destination insertion order. The order carries no meaning for
//     planning results, but it is stable within a process run so tests can
//     rely on it.
//
// Concurrency:
//
//   - The machine follows a build-then-query lifecycle: add every transition
//     first, then plan. Construction is not synchronized against concurrent
//     reads; callers interleaving mutation and querying must synchronize
//     externally.
//
// Errors (sentinel):
//
//   - ErrNoStates       if the state set is empty.
//   - ErrUnknownInitial if the initial state is not in the state set.
//   - ErrUnknownState   if a transition endpoint is not in the state set.
//
// Complexity:
//
//   - AddTransition, Neighbors: O(1) amortized (plus bucket copy for
//     Neighbors).
//   - Transitions: O(E) to materialize the edge list.
package fsm
