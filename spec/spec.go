package spec

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/Idyll-Intelligent-Systems/QuantumTimeTravel/cost"
	"github.com/Idyll-Intelligent-Systems/QuantumTimeTravel/fsm"
)

// Sentinel errors for document validation.
var (
	// ErrNoStates indicates a missing or empty state list.
	ErrNoStates = errors.New("spec: states must be a non-empty list")

	// ErrBadInitial indicates an initial state outside the state list.
	ErrBadInitial = errors.New("spec: initial must be in states")

	// ErrBadWaypoints indicates that ABC is not a 3-item list of member states.
	ErrBadWaypoints = errors.New("spec: ABC must be a 3-item list of states present in 'states'")

	// ErrBadTransition indicates a transition endpoint outside the state list.
	ErrBadTransition = errors.New("spec: transition src/dst must be in states")
)

var validate = validator.New()

// TransitionDoc is one transition entry: endpoints, an optional event
// label, and the raw trip attributes to aggregate into the edge weight.
type TransitionDoc struct {
	Src        string             `json:"src" yaml:"src" validate:"required"`
	Dst        string             `json:"dst" yaml:"dst" validate:"required"`
	Event      string             `json:"event,omitempty" yaml:"event,omitempty"`
	Attributes map[string]float64 `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// PolicyDoc is the serialized aggregation policy. Absent fields fall back
// to the defaults of cost.DefaultPolicy, so pointer types distinguish
// "absent" from an explicit false/zero.
type PolicyDoc struct {
	Weights            map[string]float64 `json:"weights,omitempty" yaml:"weights,omitempty"`
	AllowNegativeEdges *bool              `json:"allow_negative_edges,omitempty" yaml:"allow_negative_edges,omitempty"`
	StrictInvariants   *bool              `json:"strict_invariants,omitempty" yaml:"strict_invariants,omitempty"`
	EnergyScale        *float64           `json:"energy_scale,omitempty" yaml:"energy_scale,omitempty"`
	InferVelocity      *bool              `json:"infer_velocity,omitempty" yaml:"infer_velocity,omitempty"`
	Mode               string             `json:"mode,omitempty" yaml:"mode,omitempty"`
}

// Policy materializes the document policy over the package defaults.
func (p *PolicyDoc) Policy() cost.Policy {
	pol := cost.DefaultPolicy()
	if p == nil {
		return pol
	}

	if w, ok := p.Weights["energy"]; ok {
		pol.EnergyWeight = w
	}
	if w, ok := p.Weights["earth_time"]; ok {
		pol.EarthTimeWeight = w
	}
	if w, ok := p.Weights["crew_time"]; ok {
		pol.CrewTimeWeight = w
	}
	if w, ok := p.Weights["risk"]; ok {
		pol.RiskWeight = w
	}
	if p.AllowNegativeEdges != nil {
		pol.AllowNegativeEdges = *p.AllowNegativeEdges
	}
	if p.StrictInvariants != nil {
		pol.StrictInvariants = *p.StrictInvariants
	}
	if p.EnergyScale != nil {
		pol.EnergyScale = *p.EnergyScale
	}
	if p.InferVelocity != nil {
		pol.InferVelocity = *p.InferVelocity
	}
	pol.Mode = p.Mode

	return pol
}

// Document is a full planning document.
type Document struct {
	States      []string        `json:"states" yaml:"states" validate:"required,min=1"`
	Initial     string          `json:"initial" yaml:"initial" validate:"required"`
	ABC         []string        `json:"ABC,omitempty" yaml:"ABC,omitempty"`
	Policy      *PolicyDoc      `json:"policy,omitempty" yaml:"policy,omitempty"`
	Transitions []TransitionDoc `json:"transitions,omitempty" yaml:"transitions,omitempty" validate:"dive"`

	// WarnedOnly asks validation endpoints to report only edges that carry
	// warnings. It does not affect planning.
	WarnedOnly bool `json:"warned_only,omitempty" yaml:"warned_only,omitempty"`
}

// Waypoints returns the document's A, B, C labels, defaulting to
// "A", "B", "C" when the ABC key is absent.
func (d *Document) Waypoints() [3]string {
	if len(d.ABC) == 3 {
		return [3]string{d.ABC[0], d.ABC[1], d.ABC[2]}
	}

	return [3]string{"A", "B", "C"}
}

// Validate checks structural rules (via validator tags) and the domain
// rules: initial and all transition endpoints must be member states, and
// ABC, when present, must be exactly three member states.
func (d *Document) Validate() error {
	if err := validate.Struct(d); err != nil {
		if len(d.States) == 0 {
			return ErrNoStates
		}

		return fmt.Errorf("spec: invalid document: %w", err)
	}

	members := make(map[string]struct{}, len(d.States))
	for _, s := range d.States {
		members[s] = struct{}{}
	}
	if _, ok := members[d.Initial]; !ok {
		return ErrBadInitial
	}

	if d.ABC != nil {
		if len(d.ABC) != 3 {
			return ErrBadWaypoints
		}
		for _, s := range d.ABC {
			if _, ok := members[s]; !ok {
				return ErrBadWaypoints
			}
		}
	}

	for _, t := range d.Transitions {
		if _, ok := members[t.Src]; !ok {
			return ErrBadTransition
		}
		if _, ok := members[t.Dst]; !ok {
			return ErrBadTransition
		}
	}

	return nil
}

// Parse decodes a YAML or JSON document and validates it.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("spec: parse: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Load reads and parses a document file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("spec: load: %w", err)
	}

	return Parse(data)
}

// Build aggregates every transition's attributes under the document policy
// and assembles the weighted machine.
//
// Returns the machine, the three waypoint labels, and the materialized
// policy. Aggregation errors (strict-invariant violations) and machine
// construction errors are surfaced verbatim.
func Build(doc *Document) (*fsm.FSM, [3]string, cost.Policy, error) {
	pol := doc.Policy.Policy()
	abc := doc.Waypoints()

	f, err := fsm.New(doc.States, doc.Initial)
	if err != nil {
		return nil, abc, pol, err
	}

	for _, t := range doc.Transitions {
		w, _, err := cost.Aggregate(cost.Attributes(t.Attributes), pol)
		if err != nil {
			return nil, abc, pol, fmt.Errorf("spec: transition %s->%s: %w", t.Src, t.Dst, err)
		}
		if err := f.AddTransition(t.Src, t.Dst, t.Event, w); err != nil {
			return nil, abc, pol, err
		}
	}

	return f, abc, pol, nil
}
