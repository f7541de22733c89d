// Package pathfind declares the Edge tuple consumed by the engine and the
// sentinel errors that encode planning-leg failures.
package pathfind

import "errors"

// Sentinel errors returned by ShortestPath.
//
// Their messages are part of the planning contract: the cycle planner embeds
// them verbatim in human-readable failure reasons (for example
// "A->B planning failed: unreachable"), so they carry no package prefix.
var (
	// ErrNodeNotFound indicates that the source or target label is not a
	// member of the supplied node set.
	ErrNodeNotFound = errors.New("source or target not in node set")

	// ErrNegativeCycle indicates a negative cycle reachable from the source.
	ErrNegativeCycle = errors.New("negative cycle detected")

	// ErrUnreachable indicates the target is not reachable from the source.
	ErrUnreachable = errors.New("unreachable")

	// ErrReconstructCycle indicates the predecessor walk revisited a node.
	// After negative-cycle exclusion this should be impossible; the guard is
	// kept so a corrupted predecessor map can never hang the walk.
	ErrReconstructCycle = errors.New("path reconstruction cycle detected")

	// ErrReconstructFailed indicates the predecessor walk terminated without
	// reaching the source.
	ErrReconstructFailed = errors.New("path reconstruction failed")
)

// Edge is one directed, weighted edge of the materialized edge list.
// Weights may be negative; callers wanting to exclude negative edges filter
// the list before invoking the engine.
type Edge struct {
	// From is the source node label.
	From string

	// To is the destination node label.
	To string

	// Weight is the edge cost.
	Weight float64
}
