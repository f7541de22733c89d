// Package pathfind implements the shortest-path engine behind the cycle
// planner: Bellman-Ford single-source distances with predecessor
// reconstruction, and a graph-wide negative-cycle detector.
//
// Overview:
//
//   - ShortestPath runs Bellman-Ford over an explicit node set and edge
//     list: up to |V|−1 relaxation passes with an early exit once a full
//     pass changes nothing, then one verification pass that reports a
//     negative cycle reachable from the source if any edge still relaxes.
//     On success it walks predecessor links back from the target and
//     returns the node sequence source..target inclusive with the total
//     distance.
//   - HasNegativeCycle answers the graph-wide question independent of any
//     source by seeding every real node at distance zero, which is
//     equivalent to relaxing from a synthetic super source with zero-weight
//     edges to all nodes. The synthetic source exists only as an internal
//     index and can never collide with a real node label.
//
// Numeric semantics:
//
//   - Unreachability is tracked with an explicit boolean per node rather
//     than IEEE infinity, so no arithmetic ever mixes a real cost with an
//     infinite sentinel. Clients can therefore distinguish "no path" from
//     "cost zero" without inspecting float values.
//   - All relaxation comparisons are strict less-than; floating-point
//     equality is never used for a control decision.
//
// Errors (sentinel):
//
// The error messages are stable and surfaced verbatim inside planning
// failure reasons, so they are phrased for end users rather than prefixed
// with the package name.
//
//   - ErrNodeNotFound      if source or target is outside the node set.
//   - ErrNegativeCycle     if the verification pass still relaxes an edge.
//   - ErrUnreachable       if the target keeps an infinite distance.
//   - ErrReconstructCycle  if the predecessor walk revisits a node.
//   - ErrReconstructFailed if the walk terminates away from the source.
//
// Complexity:
//
//   - ShortestPath:     O(V·E) time, O(V) space.
//   - HasNegativeCycle: O(V·E) time, O(V) space.
package pathfind
