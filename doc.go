// Package quantumtimetravel plans fixed A→B→C→A mission cycles through a
// weighted, possibly cyclic state graph.
//
// 🚀 What does it do?
//
//	A small, deterministic planning toolkit built from five layers:
//		• fsm      — states and weighted, event-labelled transitions
//		• pathfind — Bellman-Ford shortest paths with negative-cycle detection
//		• cost     — multi-factor edge weights (energy, time, dilated crew
//		             time, risk, credits) with a diagnostic breakdown
//		• planner  — the A→B→C→A cycle composed from three shortest legs
//		• spec     — YAML/JSON planning documents validated and compiled
//		             into an FSM plus policy
//
// Around the core sit the operational surfaces:
//
//	httpapi/  — gin HTTP API: plan, validate, status, spec and log access
//	eventlog/ — structured JSON event log with redaction and rotation
//	backend/  — execution-backend seam (null backend only)
//	cmd/qtt/  — cobra CLI: plan, plan-file, serve
//
// Planning is total: every request yields either a path with a finite cost
// or an explicit machine-readable failure reason. Nothing is retried and
// nothing panics on bad input.
//
//	go get github.com/Idyll-Intelligent-Systems/QuantumTimeTravel
package quantumtimetravel
