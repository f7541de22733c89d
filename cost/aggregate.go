package cost

import "math"

const (
	// betaCap clamps inferred velocity fractions strictly below 1.
	betaCap = 0.999999

	// kinematicTol is the tolerance (seconds) for the kinematic lower bound.
	kinematicTol = 1e-9

	// logFloor keeps the risk-penalty logarithm argument away from zero.
	logFloor = 1e-12

	secondsPerDay = 86_400.0
)

// Gamma computes the relativistic time-dilation factor γ = 1/√(1−β²) for a
// velocity fraction β of light speed.
//
// Returns ErrVelocityRange when β lies outside [0,1): β ≥ 1 would divide by
// zero or take the square root of a negative number.
func Gamma(beta float64) (float64, error) {
	if beta < 0 || beta >= 1 {
		return 0, ErrVelocityRange
	}

	return 1.0 / math.Sqrt(1.0-beta*beta), nil
}

// Aggregate fuses the trip attributes into a scalar edge weight under the
// given policy and returns the diagnostic Breakdown alongside it.
//
// Evaluation order (fixed):
//  1. Resolve the earth-frame duration (explicit, else epoch pair, else 0).
//  2. Strict-invariant checks on the raw, non-derived quantities. These run
//     before velocity inference so an explicit bad velocity is caught even
//     though inference could later overwrite it; the kinematic bound is only
//     checked against an explicitly supplied velocity.
//  3. Resolve the velocity fraction (explicit, else inferred from
//     distance/duration when enabled, else 0).
//  4. Re-validate the resolved velocity under strict invariants.
//  5. Compute γ (β > 0) or use 1.
//  6. Resolve crew time (explicit, else duration/γ, else 0).
//  7. Convex risk penalty −ln(1−risk), clamped away from ln(0).
//  8. Effective weights, with ModeRealWorld scaling.
//  9. Scalar cost.
//  10. Zero floor when negative edges are disallowed (scalar only; the
//     breakdown terms are untouched).
//  11. Advisory warnings.
//
// On a strict violation the returned error is one of the package sentinels
// and both cost and breakdown are zero-valued.
func Aggregate(attrs Attributes, policy Policy) (float64, *Breakdown, error) {
	energy := attrs[AttrEnergy]
	distance := attrs[AttrDistance]
	mass := attrs[AttrMass]
	risk := attrs[AttrRisk]
	credits := attrs[AttrCredits]
	explicitBeta, hasBeta := attrs[AttrVelocity]

	// 1) Earth-frame duration: explicit value wins, even an explicit zero;
	//    else derive from the epoch pair; else zero.
	duration := 0.0
	if d, ok := attrs[AttrDuration]; ok {
		duration = d
	} else {
		dep, hasDep := attrs[AttrDeparture]
		arr, hasArr := attrs[AttrArrival]
		if hasDep && hasArr {
			duration = math.Max(0, arr-dep)
		}
	}

	// 2) Strict invariants on raw quantities, before any inference.
	if policy.StrictInvariants {
		if energy < 0 || distance < 0 || mass < 0 || duration < 0 {
			return 0, nil, ErrNegativeQuantity
		}
		if risk < 0 || risk >= 1 {
			return 0, nil, ErrRiskRange
		}
		// Kinematic lower bound T ≥ D/(β·c), only for an explicit velocity.
		if distance > 0 && duration > 0 && hasBeta && explicitBeta > 0 {
			minTime := distance / (explicitBeta * SpeedOfLight)
			if duration+kinematicTol < minTime {
				return 0, nil, ErrKinematicBound
			}
		}
	}

	// 3) Resolve the velocity fraction.
	beta := 0.0
	switch {
	case hasBeta:
		beta = explicitBeta
	case policy.InferVelocity && distance > 0 && duration > 0:
		beta = math.Max(0, math.Min(distance/duration/SpeedOfLight, betaCap))
	}

	// 4) Re-validate the resolved velocity under strict invariants.
	if policy.StrictInvariants && (beta < 0 || beta >= 1) {
		return 0, nil, ErrVelocityRange
	}

	// 5) Relativistic factor. Gamma still guards the domain in permissive
	//    mode; β ≤ 0 short-circuits to 1.
	gamma := 1.0
	if beta > 0 {
		g, err := Gamma(beta)
		if err != nil {
			return 0, nil, err
		}
		gamma = g
	}

	// 6) Crew (proper) time: explicit value wins; else time dilation.
	crewTime := 0.0
	if ct, ok := attrs[AttrCrewTime]; ok {
		crewTime = ct
	} else if duration > 0 {
		crewTime = duration / gamma
	}

	// 7) Convex risk penalty: −ln(1−p) ≈ p for small p, divergent near 1.
	riskPenalty := -math.Log(math.Max(logFloor, 1.0-math.Min(math.Max(risk, 0), betaCap)))

	// 8) Effective weights, scaled under real_world mode.
	eW := policy.EnergyWeight
	etW := policy.EarthTimeWeight
	ctW := policy.CrewTimeWeight
	rW := policy.RiskWeight
	if policy.Mode == ModeRealWorld {
		days := 0.0
		if duration > 0 {
			days = duration / secondsPerDay
		}
		etW *= 1.0 + math.Min(days, 10)*0.05              // up to +50% over ten days
		ctW *= 1.0 + math.Min(days, 10)*0.02              // up to +20% over ten days
		rW *= 1.0 + math.Min(math.Max(risk, 0), 0.99)*2.0 // up to ~3x near-certain failure
	}

	// 9) Scalar cost.
	energyTerm := energy / math.Max(1.0, policy.EnergyScale)
	timeTerm := etW*duration + ctW*crewTime
	riskTerm := rW * riskPenalty
	total := eW*energyTerm + timeTerm + riskTerm - credits

	// 10) Zero floor applies to the scalar only.
	if !policy.AllowNegativeEdges {
		total = math.Max(0, total)
	}

	// 11) Advisory warnings: informational, never fatal.
	var warnings []string
	if distance > 0 && duration > 0 && beta > 0 {
		if minTime := distance / (beta * SpeedOfLight); duration+kinematicTol < minTime {
			warnings = append(warnings, "duration below kinematic bound distance/velocity")
		}
	}
	if beta >= 0.9 {
		warnings = append(warnings, "high relativistic speed (beta>=0.9)")
	}
	if distance > 0 && duration > 0 && distance/duration > SpeedOfLight {
		warnings = append(warnings, "implied superluminal average speed from distance/duration")
	}
	if risk >= 0.2 {
		warnings = append(warnings, "high mission risk (risk_prob>=0.2)")
	}
	if crewTime > duration+kinematicTol {
		warnings = append(warnings, "crew_time exceeds earth-frame duration (unexpected)")
	}

	breakdown := &Breakdown{
		EnergyJ:           energy,
		DistanceM:         distance,
		VelocityFractionC: beta,
		Gamma:             gamma,
		DurationS:         duration,
		CrewTimeS:         crewTime,
		RiskProb:          risk,
		RiskPenalty:       riskPenalty,
		Credits:           credits,
		EffectiveWeights:  Weights{Energy: eW, EarthTime: etW, CrewTime: ctW, Risk: rW},
		Terms:             Terms{EnergyTerm: energyTerm, TimeTerm: timeTerm, RiskTerm: riskTerm},
		Warnings:          warnings,
	}

	return total, breakdown, nil
}
