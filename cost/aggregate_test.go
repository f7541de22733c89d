// Package cost_test validates the aggregation algorithm: resolution order,
// strict invariants, mode scaling, the scalar formula, and the advisory
// warning set.
package cost_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Idyll-Intelligent-Systems/QuantumTimeTravel/cost"
)

// ------------------------------------------------------------------------
// 1. Gamma domain behavior.
// ------------------------------------------------------------------------

func TestGamma_Domain(t *testing.T) {
	_, err := cost.Gamma(-0.1)
	assert.ErrorIs(t, err, cost.ErrVelocityRange)

	_, err = cost.Gamma(1.0)
	assert.ErrorIs(t, err, cost.ErrVelocityRange)

	g, err := cost.Gamma(0.6)
	require.NoError(t, err)
	assert.InDelta(t, 1.25, g, 1e-12, "γ(0.6) = 1/√(1−0.36) = 1.25")
}

// ------------------------------------------------------------------------
// 2. Strict-invariant violations.
// ------------------------------------------------------------------------

func TestAggregate_StrictRejectsNegativeQuantities(t *testing.T) {
	pol := cost.DefaultPolicy()
	for _, key := range []string{cost.AttrEnergy, cost.AttrDistance, cost.AttrMass, cost.AttrDuration} {
		_, _, err := cost.Aggregate(cost.Attributes{key: -1}, pol)
		assert.ErrorIs(t, err, cost.ErrNegativeQuantity, "key %s", key)
	}
}

func TestAggregate_StrictRejectsRiskOutOfRange(t *testing.T) {
	pol := cost.DefaultPolicy()

	_, _, err := cost.Aggregate(cost.Attributes{cost.AttrRisk: 1.0}, pol)
	assert.ErrorIs(t, err, cost.ErrRiskRange)

	_, _, err = cost.Aggregate(cost.Attributes{cost.AttrRisk: -0.2}, pol)
	assert.ErrorIs(t, err, cost.ErrRiskRange)
}

func TestAggregate_StrictRejectsSuperluminalVelocity(t *testing.T) {
	_, _, err := cost.Aggregate(cost.Attributes{cost.AttrVelocity: 1.2}, cost.DefaultPolicy())
	assert.ErrorIs(t, err, cost.ErrVelocityRange)
}

func TestAggregate_PermissiveStillGuardsGammaDomain(t *testing.T) {
	// Even with strict checks off, β ≥ 1 cannot enter γ = 1/√(1−β²).
	pol := cost.DefaultPolicy()
	pol.StrictInvariants = false
	_, _, err := cost.Aggregate(cost.Attributes{cost.AttrVelocity: 1.2}, pol)
	assert.ErrorIs(t, err, cost.ErrVelocityRange)
}

func TestAggregate_KinematicBoundOnExplicitVelocity(t *testing.T) {
	// 3e8 m at β=0.5 needs ≥ ~2.0014 s; 1 s violates the bound.
	attrs := cost.Attributes{
		cost.AttrDistance: 3e8,
		cost.AttrDuration: 1,
		cost.AttrVelocity: 0.5,
	}
	_, _, err := cost.Aggregate(attrs, cost.DefaultPolicy())
	assert.ErrorIs(t, err, cost.ErrKinematicBound)
}

func TestAggregate_KinematicBoundNotAppliedToInferredVelocity(t *testing.T) {
	// Same distance/duration without an explicit velocity: inference clamps
	// β below 1, strict mode accepts, and the superluminal warning fires
	// instead. The asymmetry with the explicit-velocity case is intentional.
	attrs := cost.Attributes{
		cost.AttrDistance: 3e8 * 10,
		cost.AttrDuration: 1,
	}
	_, br, err := cost.Aggregate(attrs, cost.DefaultPolicy())
	require.NoError(t, err)
	assert.InDelta(t, 0.999999, br.VelocityFractionC, 1e-12)
	assert.Contains(t, br.Warnings, "implied superluminal average speed from distance/duration")
}

func TestAggregate_PermissiveAcceptsNegativeQuantities(t *testing.T) {
	pol := cost.DefaultPolicy()
	pol.StrictInvariants = false
	_, br, err := cost.Aggregate(cost.Attributes{cost.AttrEnergy: -5e8}, pol)
	require.NoError(t, err)
	assert.InDelta(t, -0.5, br.Terms.EnergyTerm, 1e-12, "permissive mode passes bad inputs through unchanged")
}

// ------------------------------------------------------------------------
// 3. Resolution of duration, velocity, and crew time.
// ------------------------------------------------------------------------

func TestAggregate_DurationFromEpochPair(t *testing.T) {
	attrs := cost.Attributes{
		cost.AttrDeparture: 1_000,
		cost.AttrArrival:   1_060,
	}
	_, br, err := cost.Aggregate(attrs, cost.DefaultPolicy())
	require.NoError(t, err)
	assert.Equal(t, 60.0, br.DurationS)
}

func TestAggregate_DurationFromReversedEpochsClampsToZero(t *testing.T) {
	attrs := cost.Attributes{
		cost.AttrDeparture: 2_000,
		cost.AttrArrival:   1_000,
	}
	_, br, err := cost.Aggregate(attrs, cost.DefaultPolicy())
	require.NoError(t, err)
	assert.Equal(t, 0.0, br.DurationS)
}

func TestAggregate_ExplicitDurationBeatsEpochPair(t *testing.T) {
	attrs := cost.Attributes{
		cost.AttrDuration:  0, // explicit zero must win over the epochs
		cost.AttrDeparture: 0,
		cost.AttrArrival:   500,
	}
	_, br, err := cost.Aggregate(attrs, cost.DefaultPolicy())
	require.NoError(t, err)
	assert.Equal(t, 0.0, br.DurationS)
}

func TestAggregate_VelocityInference(t *testing.T) {
	// Half light speed over 2 seconds.
	attrs := cost.Attributes{
		cost.AttrDistance: cost.SpeedOfLight, // one light-second of distance
		cost.AttrDuration: 2,
	}
	_, br, err := cost.Aggregate(attrs, cost.DefaultPolicy())
	require.NoError(t, err)
	assert.InDelta(t, 0.5, br.VelocityFractionC, 1e-12)
}

func TestAggregate_VelocityInferenceDisabled(t *testing.T) {
	pol := cost.DefaultPolicy()
	pol.InferVelocity = false
	attrs := cost.Attributes{
		cost.AttrDistance: cost.SpeedOfLight,
		cost.AttrDuration: 2,
	}
	_, br, err := cost.Aggregate(attrs, pol)
	require.NoError(t, err)
	assert.Equal(t, 0.0, br.VelocityFractionC)
	assert.Equal(t, 1.0, br.Gamma)
}

func TestAggregate_VelocityRoundTrip(t *testing.T) {
	// Re-deriving β from the breakdown's distance and duration reproduces
	// the inferred β within floating tolerance.
	attrs := cost.Attributes{
		cost.AttrDistance: 7.3e7,
		cost.AttrDuration: 11,
	}
	_, br, err := cost.Aggregate(attrs, cost.DefaultPolicy())
	require.NoError(t, err)

	rederived := br.DistanceM / br.DurationS / cost.SpeedOfLight
	assert.InDelta(t, rederived, br.VelocityFractionC, 1e-12)
}

func TestAggregate_CrewTimeDilation(t *testing.T) {
	// β = 0.8 → γ = 5/3; 100 s of earth time is 60 s of proper time.
	attrs := cost.Attributes{
		cost.AttrDuration: 100,
		cost.AttrVelocity: 0.8,
	}
	_, br, err := cost.Aggregate(attrs, cost.DefaultPolicy())
	require.NoError(t, err)
	assert.InDelta(t, 5.0/3.0, br.Gamma, 1e-12)
	assert.InDelta(t, 60.0, br.CrewTimeS, 1e-9)
	assert.Empty(t, br.Warnings)
}

func TestAggregate_ExplicitCrewTimeAboveDurationWarns(t *testing.T) {
	attrs := cost.Attributes{
		cost.AttrDuration: 10,
		cost.AttrCrewTime: 25, // should be physically impossible
	}
	_, br, err := cost.Aggregate(attrs, cost.DefaultPolicy())
	require.NoError(t, err)
	assert.Equal(t, 25.0, br.CrewTimeS, "explicit crew time is never overwritten")
	assert.Contains(t, br.Warnings, "crew_time exceeds earth-frame duration (unexpected)")
}

// ------------------------------------------------------------------------
// 4. Scalar formula, credits, mode scaling, and the zero floor.
// ------------------------------------------------------------------------

func TestAggregate_CreditsDominateToNegativeCost(t *testing.T) {
	attrs := cost.Attributes{
		cost.AttrEnergy:   1e9,
		cost.AttrDuration: 10,
		cost.AttrRisk:     0,
		cost.AttrCredits:  100,
	}
	total, br, err := cost.Aggregate(attrs, cost.DefaultPolicy())
	require.NoError(t, err)
	assert.Less(t, total, 0.0, "credits must be able to push the cost negative")
	// 1·(1e9/1e9) + 0.1·10 + 0.2·10 + 0 − 100 = −96.
	assert.InDelta(t, -96.0, total, 1e-9)
	assert.Equal(t, 100.0, br.Credits)
}

func TestAggregate_ZeroFloorLeavesBreakdownTermsAlone(t *testing.T) {
	pol := cost.DefaultPolicy()
	pol.AllowNegativeEdges = false
	attrs := cost.Attributes{
		cost.AttrEnergy:  1e9,
		cost.AttrCredits: 100,
	}
	total, br, err := cost.Aggregate(attrs, pol)
	require.NoError(t, err)
	assert.Equal(t, 0.0, total, "scalar is floored at zero")
	assert.Equal(t, 1.0, br.Terms.EnergyTerm, "component terms are not floored")
	assert.Equal(t, 100.0, br.Credits)
}

func TestAggregate_RiskPenaltyIsConvex(t *testing.T) {
	pol := cost.DefaultPolicy()

	_, brLow, err := cost.Aggregate(cost.Attributes{cost.AttrRisk: 0.1}, pol)
	require.NoError(t, err)
	_, brHigh, err := cost.Aggregate(cost.Attributes{cost.AttrRisk: 0.5}, pol)
	require.NoError(t, err)

	assert.InDelta(t, -math.Log(0.9), brLow.RiskPenalty, 1e-12)
	assert.InDelta(t, -math.Log(0.5), brHigh.RiskPenalty, 1e-12)
	assert.Greater(t, brHigh.RiskPenalty/5, brLow.RiskPenalty, "penalty grows faster than linearly in p")
}

func TestAggregate_RealWorldModeScalesWeights(t *testing.T) {
	pol := cost.DefaultPolicy()
	pol.Mode = cost.ModeRealWorld
	attrs := cost.Attributes{
		cost.AttrDuration: 20 * 86_400, // twenty days, capped at ten days of effect
		cost.AttrRisk:     0.5,
	}
	_, br, err := cost.Aggregate(attrs, pol)
	require.NoError(t, err)

	assert.InDelta(t, 0.15, br.EffectiveWeights.EarthTime, 1e-12, "earth-time weight +50% at the ten-day cap")
	assert.InDelta(t, 0.24, br.EffectiveWeights.CrewTime, 1e-12, "crew-time weight +20% at the ten-day cap")
	assert.InDelta(t, 4.0, br.EffectiveWeights.Risk, 1e-12, "risk weight doubles at p=0.5")
	assert.InDelta(t, 1.0, br.EffectiveWeights.Energy, 1e-12, "energy weight is never mode-scaled")
	assert.Contains(t, br.Warnings, "high mission risk (risk_prob>=0.2)")
}

func TestAggregate_EnergyScaleFloor(t *testing.T) {
	pol := cost.DefaultPolicy()
	pol.EnergyScale = 0.001 // below the floor of 1
	total, br, err := cost.Aggregate(cost.Attributes{cost.AttrEnergy: 5}, pol)
	require.NoError(t, err)
	assert.Equal(t, 5.0, br.Terms.EnergyTerm, "scale is floored at 1, never amplifies")
	assert.Equal(t, 5.0, total)
}

func TestAggregate_HighSpeedWarning(t *testing.T) {
	_, br, err := cost.Aggregate(cost.Attributes{cost.AttrVelocity: 0.95}, cost.DefaultPolicy())
	require.NoError(t, err)
	assert.Contains(t, br.Warnings, "high relativistic speed (beta>=0.9)")
}

// ------------------------------------------------------------------------
// 5. Purity.
// ------------------------------------------------------------------------

func TestAggregate_IsPure(t *testing.T) {
	pol := cost.DefaultPolicy()
	pol.Mode = cost.ModeRealWorld
	attrs := cost.Attributes{
		cost.AttrEnergy:   3.2e9,
		cost.AttrDistance: 1.5e11,
		cost.AttrDuration: 86_400,
		cost.AttrRisk:     0.25,
		cost.AttrCredits:  12.5,
	}

	c1, b1, err1 := cost.Aggregate(attrs, pol)
	c2, b2, err2 := cost.Aggregate(attrs, pol)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, c1, c2)
	assert.Equal(t, b1, b2)
}
