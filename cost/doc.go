// Package cost converts heterogeneous trip attributes into a single scalar
// edge weight plus a diagnostic breakdown, under strict or permissive
// invariant checking.
//
// Overview:
//
// A trip is described by a flat mapping of optional physical quantities:
// energy (J), spatial distance (m), velocity as a fraction of light speed,
// rest mass (kg), failure risk probability, earth-frame duration (s, also
// derivable from a departure/arrival epoch pair), crew (proper) time (s,
// also derivable via time dilation), and a credit adjustment. Aggregate
// fuses them, in a fixed evaluation order, into
//
//	cost = energyWeight·(energy / max(1, energyScale))
//	     + earthTimeWeight·duration
//	     + crewTimeWeight·crewTime
//	     + riskWeight·(−ln(1−risk))
//	     − credits
//
// and reports every derived quantity, the effective weights actually used,
// each additive term, and a list of advisory warnings in a Breakdown.
//
// The model is a simplified single-frame approximation: time dilation uses
// γ = 1/√(1−β²) with a single earth frame, not a full spacetime solver.
//
// Modes:
//
// ModeRealWorld nonlinearly scales the time and risk weights with trip
// length and risk magnitude: the earth-time weight grows up to +50% and the
// crew-time weight up to +20% over the first ten days of duration, and the
// risk weight grows up to ×3 as risk approaches 0.99. Longer, riskier
// missions are deliberately punished superlinearly.
//
// Strictness:
//
// With Policy.StrictInvariants set, Aggregate rejects negative energy,
// distance, mass, or duration; risk outside [0,1); a resolved velocity
// fraction outside [0,1); and an explicitly supplied velocity whose implied
// travel time exceeds the given duration beyond a 1e-9 s tolerance. An
// inferred velocity is definitionally consistent with the distance and
// duration it was inferred from and is not re-checked against the kinematic
// bound; the advisory warning still covers that case. Violations are
// returned as errors, never silently corrected.
//
// Warnings are never errors: kinematic implausibility, high relativistic
// speed, implied superluminal average speed, high risk, and crew time
// exceeding the earth-frame duration are reported in the Breakdown for the
// caller to act on or ignore. The Breakdown is purely diagnostic; only the
// scalar cost feeds the shortest-path engine.
//
// Purity:
//
// Aggregate is a pure function: identical attributes and policy always
// yield an identical (cost, breakdown) pair.
package cost
