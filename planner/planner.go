package planner

import (
	"fmt"
	"math"

	"github.com/Idyll-Intelligent-Systems/QuantumTimeTravel/fsm"
	"github.com/Idyll-Intelligent-Systems/QuantumTimeTravel/pathfind"
)

// Result is the outcome of one planning invocation. It is created fresh per
// call and never mutated after return.
//
// On failure Path is nil, Cost is +Inf (held as a sentinel only, never fed
// into arithmetic), OK is false, and Reason describes the failure.
type Result struct {
	// Path is the planned node sequence, A..A inclusive.
	Path []string `json:"path"`

	// Cost is the summed cost of the three legs.
	Cost float64 `json:"cost"`

	// OK reports whether all three legs were planned.
	OK bool `json:"ok"`

	// Reason is "ok" on success, otherwise a human-readable failure cause.
	Reason string `json:"reason"`
}

// failure builds a failed Result with the infinite-cost sentinel.
func failure(reason string) Result {
	return Result{Cost: math.Inf(1), Reason: reason}
}

// edgesOf flattens the machine's transitions into the engine's edge list.
// Event labels are irrelevant to planning; only endpoints and weights
// survive.
func edgesOf(f *fsm.FSM) []pathfind.Edge {
	ts := f.Transitions()
	edges := make([]pathfind.Edge, 0, len(ts))
	for _, t := range ts {
		edges = append(edges, pathfind.Edge{From: t.Src, To: t.Dst, Weight: t.Weight})
	}

	return edges
}

// PlanCycle plans the cycle a→b→c→a over the machine's weighted transitions.
//
// With forbidNegativeEdges set, every edge with a negative weight is removed
// before planning; otherwise negative edges are permitted and only negative
// cycles are rejected. Either way a graph-wide negative-cycle check runs
// before any leg, and the three legs are planned strictly in order with the
// first failure propagated.
//
// The returned path starts at a (first leg's source) and ends at a (third
// leg's destination); it contains all three waypoints in order.
func PlanCycle(f *fsm.FSM, a, b, c string, forbidNegativeEdges bool) Result {
	// 1) Waypoint membership: fail before any computation.
	if !f.Has(a) || !f.Has(b) || !f.Has(c) {
		return failure("A/B/C not in FSM states")
	}

	// 2) Materialize the edge list, optionally excluding negative edges.
	nodes := f.States()
	edges := edgesOf(f)
	if forbidNegativeEdges {
		kept := edges[:0]
		for _, e := range edges {
			if e.Weight >= 0 {
				kept = append(kept, e)
			}
		}
		edges = kept
	}

	// 3) Graph-wide negative-cycle pre-check; a cycle anywhere is fatal even
	//    if no single leg would encounter it from its own source.
	if pathfind.HasNegativeCycle(nodes, edges) {
		return failure("negative cycle exists in graph")
	}

	// 4) Three legs, in order, over the same filtered edge set. The first
	//    failure names its leg and stops everything.
	legs := [3]struct{ from, to string }{{a, b}, {b, c}, {c, a}}
	var (
		path  []string
		total float64
	)
	for i, leg := range legs {
		p, d, err := pathfind.ShortestPath(nodes, edges, leg.from, leg.to)
		if err != nil {
			return failure(fmt.Sprintf("%s->%s planning failed: %v", leg.from, leg.to, err))
		}
		if i == 0 {
			path = append(path, p...)
		} else {
			path = append(path, p[1:]...) // each leg starts where the last ended
		}
		total += d
	}

	return Result{Path: path, Cost: total, OK: true, Reason: "ok"}
}
