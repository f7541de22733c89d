// Package planner orchestrates the fixed-topology A→B→C→A cycle over a
// weighted state machine.
//
// Overview:
//
// PlanCycle materializes the machine's edge list, optionally drops every
// negative edge (a blunt alternative to relying on Bellman-Ford's
// negative-edge tolerance), runs the graph-wide negative-cycle pre-check,
// and then plans the three legs A→B, B→C, C→A in order over the same edge
// set. The pre-check exists because a single-source Bellman-Ford run can
// miss a negative cycle that is unreachable from that particular source yet
// reachable between the three leg queries.
//
// Planning failures are normal outcomes, not errors: Result.OK is false and
// Result.Reason names the first failing leg with that leg's specific
// failure ("A->B planning failed: unreachable"). No leg is attempted after
// an earlier one fails, and no partial cycle is ever returned.
//
// On success the three sub-paths are concatenated with the duplicated
// boundary nodes dropped (each leg starts where the previous ended), so the
// final path runs from A back to A with every interior waypoint appearing
// once per visit.
//
// Complexity: three Bellman-Ford invocations, O(V·E) each.
package planner
