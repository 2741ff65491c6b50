package search

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbpl-go/armlattice/collab"
	"github.com/sbpl-go/armlattice/collab/refimpl"
	"github.com/sbpl-go/armlattice/lattice"
)

func buildEnv(t *testing.T, numJoints int) (*lattice.Environment, []float64) {
	t.Helper()
	delta := make([]float64, numJoints)
	continuous := make([]bool, numJoints)
	linkLength := make([]float64, numJoints)
	minLimit := make([]float64, numJoints)
	maxLimit := make([]float64, numJoints)
	for i := range delta {
		delta[i] = math.Pi / 90
		continuous[i] = true
		linkLength[i] = 0.1
	}

	grid := refimpl.NewVoxelGrid(100, 100, 100, 0.05, r3.Vector{X: -2.5, Y: -2.5, Z: -2.5})
	robot := refimpl.NewStubRobotModel(minLimit, maxLimit, linkLength, continuous)
	collider := refimpl.SphereSweepChecker{Robot: robot, Grid: grid, PlanningLink: "ee", SegmentSamples: 4}
	actions := refimpl.PerJointActionSet{Delta: delta}

	params := collab.PlanningParams{
		NumJoints:       numJoints,
		CoordDelta:      delta,
		CoordContinuous: continuous,
		CostMultiplier:  10,
		CostPerCell:     100,
		CostPerMeter:    1,
		UseBFSHeuristic: true,
		PlanningLink:    "ee",
	}

	env := lattice.New(lattice.Config{
		Params:   params,
		Robot:    robot,
		Collider: collider,
		Grid:     grid,
		Actions:  actions,
	})
	return env, delta
}

func TestSearchFindsOneEdgePlanE1(t *testing.T) {
	numJoints := 7
	env, delta := buildEnv(t, numJoints)

	start := make([]float64, numJoints)
	env.SetStart(start)

	goal := append([]float64(nil), start...)
	goal[0] += delta[0]
	tol := make([]float64, numJoints)
	for i := range tol {
		tol[i] = delta[i] * 0.5
	}
	require.True(t, env.SetGoalConfiguration(goal, tol))

	result := Run(env, nil, 1000)
	require.True(t, result.Found)
	assert.LessOrEqual(t, len(result.Path)-1, 1)
	assert.LessOrEqual(t, result.Expansions, 8)
}

func TestSearchIsDeterministicAcrossRuns(t *testing.T) {
	numJoints := 5
	env1, delta := buildEnv(t, numJoints)
	env2, _ := buildEnv(t, numJoints)

	start := make([]float64, numJoints)
	goal := append([]float64(nil), start...)
	goal[0] += delta[0] * 2
	tol := make([]float64, numJoints)
	for i := range tol {
		tol[i] = delta[i] * 0.5
	}

	env1.SetStart(start)
	env2.SetStart(start)
	require.True(t, env1.SetGoalConfiguration(goal, tol))
	require.True(t, env2.SetGoalConfiguration(goal, tol))

	r1 := Run(env1, nil, 1000)
	r2 := Run(env2, nil, 1000)

	assert.Equal(t, r1.Path, r2.Path)
	assert.Equal(t, r1.Cost, r2.Cost)
	assert.Equal(t, r1.Expansions, r2.Expansions)
}
