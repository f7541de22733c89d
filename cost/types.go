// Package cost declares the attribute vocabulary, the aggregation Policy,
// the diagnostic Breakdown, and the sentinel errors for strict violations.
package cost

import "errors"

// SpeedOfLight is the speed of light in meters per second.
const SpeedOfLight = 299_792_458.0

// ModeRealWorld is the named policy mode that scales time and risk weights
// nonlinearly with trip duration and risk magnitude.
const ModeRealWorld = "real_world"

// Attribute keys accepted by Aggregate. Unknown keys are ignored; missing
// keys default to zero or are derived from the others.
const (
	// AttrEnergy is the trip energy in Joules (≥0).
	AttrEnergy = "energy_j"

	// AttrDistance is the spatial distance in meters (≥0).
	AttrDistance = "distance_m"

	// AttrVelocity is the velocity as a fraction of light speed, in [0,1).
	AttrVelocity = "velocity_fraction_c"

	// AttrMass is the rest mass in kilograms (≥0).
	AttrMass = "mass_kg"

	// AttrRisk is the mission failure probability, in [0,1).
	AttrRisk = "risk_prob"

	// AttrDuration is the earth-frame duration in seconds (≥0). When absent
	// it is derived from the departure/arrival epoch pair, else zero.
	AttrDuration = "duration_s"

	// AttrDeparture is the earth-frame departure epoch in seconds.
	AttrDeparture = "earth_departure_epoch_s"

	// AttrArrival is the earth-frame arrival epoch in seconds.
	AttrArrival = "earth_arrival_epoch_s"

	// AttrCrewTime is the proper (traveler) time in seconds (≥0). When
	// absent it is derived from the duration via time dilation.
	AttrCrewTime = "crew_time_s"

	// AttrCredits is a credit adjustment subtracted from the cost; any real
	// value is accepted.
	AttrCredits = "credits"
)

// Sentinel errors for strict-invariant and domain violations.
var (
	// ErrNegativeQuantity indicates a negative energy, distance, mass, or
	// duration under strict invariants.
	ErrNegativeQuantity = errors.New("cost: energy_j, distance_m, mass_kg, duration_s must be >= 0")

	// ErrRiskRange indicates a risk probability outside [0,1) under strict
	// invariants.
	ErrRiskRange = errors.New("cost: risk_prob must be in [0,1)")

	// ErrVelocityRange indicates a velocity fraction outside [0,1). It is a
	// mathematical domain constraint, enforced even in permissive mode when
	// the relativistic factor must be computed.
	ErrVelocityRange = errors.New("cost: velocity_fraction_c must be in [0,1)")

	// ErrKinematicBound indicates that the supplied duration is shorter than
	// distance / (velocity·c) beyond the numerical tolerance.
	ErrKinematicBound = errors.New("cost: duration_s violates kinematic lower bound distance/velocity")
)

// Attributes is the flat name→value mapping describing one trip.
// Key presence is significant for AttrDuration, AttrVelocity, and
// AttrCrewTime: an explicit zero is used as-is, while an absent key lets
// the aggregator derive a value.
type Attributes map[string]float64

// Policy configures aggregation. It is immutable per planning run: supplied
// once and applied uniformly to every edge.
type Policy struct {
	// EnergyWeight scales the normalized energy term.
	EnergyWeight float64

	// EarthTimeWeight scales the earth-frame duration term.
	EarthTimeWeight float64

	// CrewTimeWeight scales the proper-time term.
	CrewTimeWeight float64

	// RiskWeight scales the convex risk penalty term.
	RiskWeight float64

	// AllowNegativeEdges permits a negative aggregated cost. When false the
	// scalar is floored at zero; the breakdown's component terms are not
	// altered.
	AllowNegativeEdges bool

	// StrictInvariants enables the strict attribute checks documented on
	// Aggregate.
	StrictInvariants bool

	// EnergyScale normalizes the energy term; values below 1 are treated
	// as 1.
	EnergyScale float64

	// InferVelocity enables inferring the velocity fraction from distance
	// and duration when no explicit velocity is supplied.
	InferVelocity bool

	// Mode optionally names a weight-scaling mode; see ModeRealWorld.
	Mode string
}

// DefaultPolicy returns the standard aggregation policy: unit energy
// weight, mild time weights, a strong risk weight, giga-Joule energy
// normalization, negative edges allowed, strict invariants on, velocity
// inference on, no mode.
func DefaultPolicy() Policy {
	return Policy{
		EnergyWeight:       1.0,
		EarthTimeWeight:    0.1,
		CrewTimeWeight:     0.2,
		RiskWeight:         2.0,
		AllowNegativeEdges: true,
		StrictInvariants:   true,
		EnergyScale:        1e9,
		InferVelocity:      true,
	}
}

// Weights is the effective weight set actually used for one aggregation,
// after any mode scaling.
type Weights struct {
	Energy    float64 `json:"energy" yaml:"energy"`
	EarthTime float64 `json:"earth_time" yaml:"earth_time"`
	CrewTime  float64 `json:"crew_time" yaml:"crew_time"`
	Risk      float64 `json:"risk" yaml:"risk"`
}

// Terms holds the additive components of the scalar cost. EnergyTerm is the
// normalized (unweighted) energy; TimeTerm and RiskTerm include their
// effective weights.
type Terms struct {
	EnergyTerm float64 `json:"energy_term" yaml:"energy_term"`
	TimeTerm   float64 `json:"time_term" yaml:"time_term"`
	RiskTerm   float64 `json:"risk_term" yaml:"risk_term"`
}

// Breakdown is the diagnostic companion of an aggregated cost: every
// resolved or derived quantity, the effective weights, the additive terms,
// and the advisory warnings. It never influences planning.
type Breakdown struct {
	EnergyJ           float64  `json:"energy_j" yaml:"energy_j"`
	DistanceM         float64  `json:"distance_m" yaml:"distance_m"`
	VelocityFractionC float64  `json:"velocity_fraction_c" yaml:"velocity_fraction_c"`
	Gamma             float64  `json:"gamma" yaml:"gamma"`
	DurationS         float64  `json:"duration_s" yaml:"duration_s"`
	CrewTimeS         float64  `json:"crew_time_s" yaml:"crew_time_s"`
	RiskProb          float64  `json:"risk_prob" yaml:"risk_prob"`
	RiskPenalty       float64  `json:"risk_penalty" yaml:"risk_penalty"`
	Credits           float64  `json:"credits" yaml:"credits"`
	EffectiveWeights  Weights  `json:"effective_weights" yaml:"effective_weights"`
	Terms             Terms    `json:"terms" yaml:"terms"`
	Warnings          []string `json:"warnings" yaml:"warnings"`
}
