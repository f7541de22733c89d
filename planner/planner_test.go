// Package planner_test exercises the A→B→C→A orchestration: the concrete
// planning scenarios, leg-failure propagation, negative-cycle safety, and
// the two independent negative-edge knobs.
package planner_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Idyll-Intelligent-Systems/QuantumTimeTravel/fsm"
	"github.com/Idyll-Intelligent-Systems/QuantumTimeTravel/pathfind"
	"github.com/Idyll-Intelligent-Systems/QuantumTimeTravel/planner"
)

// triangle builds the three-state machine used by most scenarios.
func triangle(t *testing.T, weights map[[2]string]float64) *fsm.FSM {
	t.Helper()
	f, err := fsm.New([]string{"A", "B", "C"}, "A")
	require.NoError(t, err)
	for ends, w := range weights {
		require.NoError(t, f.AddTransition(ends[0], ends[1], "", w))
	}

	return f
}

func TestPlanCycle_SimpleTriangle(t *testing.T) {
	f := triangle(t, map[[2]string]float64{
		{"A", "B"}: 1,
		{"B", "C"}: 2,
		{"C", "A"}: 3,
	})

	res := planner.PlanCycle(f, "A", "B", "C", false)
	require.True(t, res.OK, "reason: %s", res.Reason)
	assert.Equal(t, []string{"A", "B", "C", "A"}, res.Path)
	assert.Equal(t, 6.0, res.Cost)
	assert.Equal(t, "ok", res.Reason)
}

func TestPlanCycle_NegativeEdgeWithoutCycle(t *testing.T) {
	f := triangle(t, map[[2]string]float64{
		{"A", "B"}: -1,
		{"B", "C"}: 2,
		{"C", "A"}: 3,
	})

	res := planner.PlanCycle(f, "A", "B", "C", false)
	require.True(t, res.OK, "reason: %s", res.Reason)
	assert.Equal(t, 4.0, res.Cost)
}

func TestPlanCycle_NegativeCycleRejected(t *testing.T) {
	f := triangle(t, map[[2]string]float64{
		{"A", "B"}: 1,
		{"B", "A"}: -3, // A↔B nets −2 per loop
		{"B", "C"}: 1,
		{"C", "A"}: 1,
	})

	res := planner.PlanCycle(f, "A", "B", "C", false)
	assert.False(t, res.OK)
	assert.Contains(t, res.Reason, "negative cycle")
	assert.Nil(t, res.Path)
	assert.True(t, math.IsInf(res.Cost, 1))
}

func TestPlanCycle_NegativeCycleOffTheRoute(t *testing.T) {
	// The D↔E cycle touches none of the waypoints; planning must still fail.
	f, err := fsm.New([]string{"A", "B", "C", "D", "E"}, "A")
	require.NoError(t, err)
	for _, e := range []struct {
		src, dst string
		w        float64
	}{
		{"A", "B", 1}, {"B", "C", 1}, {"C", "A", 1},
		{"D", "E", -2}, {"E", "D", 1},
	} {
		require.NoError(t, f.AddTransition(e.src, e.dst, "", e.w))
	}

	res := planner.PlanCycle(f, "A", "B", "C", false)
	assert.False(t, res.OK)
	assert.Contains(t, res.Reason, "negative cycle")
}

func TestPlanCycle_UnknownWaypoint(t *testing.T) {
	f := triangle(t, nil)
	res := planner.PlanCycle(f, "A", "B", "Z", false)
	assert.False(t, res.OK)
	assert.Equal(t, "A/B/C not in FSM states", res.Reason)
}

func TestPlanCycle_FirstFailingLegNamed(t *testing.T) {
	// B→C exists, C→A exists, but A→B does not: the first leg fails and the
	// later legs are never attempted.
	f := triangle(t, map[[2]string]float64{
		{"B", "C"}: 1,
		{"C", "A"}: 1,
	})

	res := planner.PlanCycle(f, "A", "B", "C", false)
	assert.False(t, res.OK)
	assert.Equal(t, "A->B planning failed: unreachable", res.Reason)
}

func TestPlanCycle_MiddleLegFailureNamed(t *testing.T) {
	f := triangle(t, map[[2]string]float64{
		{"A", "B"}: 1,
		{"C", "A"}: 1,
	})

	res := planner.PlanCycle(f, "A", "B", "C", false)
	assert.False(t, res.OK)
	assert.Equal(t, "B->C planning failed: unreachable", res.Reason)
}

func TestPlanCycle_ForbidNegativeEdgesFiltersBeforePlanning(t *testing.T) {
	// The negative cycle disappears once negative edges are filtered, but so
	// does the only A→B edge: the failure shifts from cycle to reachability.
	f := triangle(t, map[[2]string]float64{
		{"A", "B"}: -1,
		{"B", "A"}: -1,
		{"B", "C"}: 1,
		{"C", "A"}: 1,
	})

	res := planner.PlanCycle(f, "A", "B", "C", false)
	assert.Contains(t, res.Reason, "negative cycle")

	res = planner.PlanCycle(f, "A", "B", "C", true)
	assert.False(t, res.OK)
	assert.Equal(t, "A->B planning failed: unreachable", res.Reason)
}

func TestPlanCycle_ForbidNegativeEdgesKeepsZeroWeight(t *testing.T) {
	f := triangle(t, map[[2]string]float64{
		{"A", "B"}: 0,
		{"B", "C"}: 2,
		{"C", "A"}: 3,
	})

	res := planner.PlanCycle(f, "A", "B", "C", true)
	require.True(t, res.OK, "zero-weight edges survive the filter")
	assert.Equal(t, 5.0, res.Cost)
}

func TestPlanCycle_CostEqualsSumOfIndependentLegs(t *testing.T) {
	f, err := fsm.New([]string{"A", "B", "C", "D"}, "A")
	require.NoError(t, err)
	for _, e := range []struct {
		src, dst string
		w        float64
	}{
		{"A", "D", 1}, {"D", "B", 1}, // A→B via D
		{"B", "C", 2.5},
		{"C", "D", 0.5}, {"D", "A", 1}, // C→A via D
		{"A", "B", 10}, // expensive direct edge, never taken
	} {
		require.NoError(t, f.AddTransition(e.src, e.dst, "", e.w))
	}

	nodes := f.States()
	var edges []pathfind.Edge
	for _, tr := range f.Transitions() {
		edges = append(edges, pathfind.Edge{From: tr.Src, To: tr.Dst, Weight: tr.Weight})
	}

	var want float64
	for _, leg := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}} {
		_, d, err := pathfind.ShortestPath(nodes, edges, leg[0], leg[1])
		require.NoError(t, err)
		want += d
	}

	res := planner.PlanCycle(f, "A", "B", "C", false)
	require.True(t, res.OK, "reason: %s", res.Reason)
	assert.InDelta(t, want, res.Cost, 1e-9, "total equals the sum of independently computed legs")
	assert.Equal(t, []string{"A", "D", "B", "C", "D", "A"}, res.Path, "boundary nodes are deduplicated, interior revisits are kept")
}

func TestPlanCycle_DegenerateSingleState(t *testing.T) {
	f, err := fsm.New([]string{"A"}, "A")
	require.NoError(t, err)

	res := planner.PlanCycle(f, "A", "A", "A", false)
	require.True(t, res.OK)
	assert.Equal(t, []string{"A"}, res.Path, "three zero-length legs collapse to the single waypoint")
	assert.Equal(t, 0.0, res.Cost)
}
