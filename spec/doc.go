// Package spec loads planning documents and builds the machine, waypoints,
// and policy a planning run needs.
//
// A document names the state set, the initial state, the three waypoints
// (key "ABC", defaulting to A, B, C), an aggregation policy, and the
// transitions with their physical trip attributes. Documents are YAML; JSON
// documents parse through the same path since JSON is a YAML subset, which
// lets the HTTP API and the CLI share one format.
//
// Loading is strictly the collaborator side of the planning core: Build
// aggregates each transition's attributes into an edge weight under the
// document's policy and feeds the weighted machine to the caller; the core
// itself never touches files or serialization.
//
// Validation combines struct-tag checks (go-playground/validator) with
// domain rules: the initial state and every transition endpoint must be
// members of the state set, and the waypoints must be exactly three member
// states.
package spec
