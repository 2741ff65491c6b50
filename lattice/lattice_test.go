package lattice

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbpl-go/armlattice/collab"
	"github.com/sbpl-go/armlattice/collab/refimpl"
	"github.com/sbpl-go/armlattice/goalmodel"
)

func newTestEnv(t *testing.T, numJoints int) (*Environment, *refimpl.VoxelGrid, []float64) {
	t.Helper()
	delta := make([]float64, numJoints)
	continuous := make([]bool, numJoints)
	minLimit := make([]float64, numJoints)
	maxLimit := make([]float64, numJoints)
	linkLength := make([]float64, numJoints)
	for i := range delta {
		delta[i] = math.Pi / 90
		continuous[i] = true
		linkLength[i] = 0.1
	}

	grid := refimpl.NewVoxelGrid(100, 100, 100, 0.05, r3.Vector{X: -2.5, Y: -2.5, Z: -2.5})
	robot := refimpl.NewStubRobotModel(minLimit, maxLimit, linkLength, continuous)
	collider := refimpl.SphereSweepChecker{
		Robot:          robot,
		Grid:           grid,
		PlanningLink:   "ee",
		SphereRadius:   0.0,
		SegmentSamples: 4,
	}
	actions := refimpl.PerJointActionSet{Delta: delta}

	params := collab.PlanningParams{
		NumJoints:                numJoints,
		CoordDelta:               delta,
		CoordContinuous:          continuous,
		CostMultiplier:           10,
		CostPerCell:              100,
		CostPerMeter:             1,
		UseBFSHeuristic:          true,
		PlanningLinkSphereRadius: 0,
		PlanningLink:             "ee",
	}

	env := New(Config{
		Params:   params,
		Robot:    robot,
		Collider: collider,
		Grid:     grid,
		Actions:  actions,
	})
	return env, grid, delta
}

func TestE1JointSpaceGoalOneEdgePlan(t *testing.T) {
	numJoints := 7
	env, _, delta := newTestEnv(t, numJoints)

	start := make([]float64, numJoints)
	env.SetStart(start)

	goalAngles := append([]float64(nil), start...)
	goalAngles[0] += delta[0]
	tol := make([]float64, numJoints)
	for i := range tol {
		tol[i] = delta[i] * 0.5
	}
	require.True(t, env.SetGoalConfiguration(goalAngles, tol))

	ids, costs := env.GetSuccs(env.StartStateID())
	require.NotEmpty(t, ids)

	foundGoal := false
	for i, id := range ids {
		if id == env.GoalStateID() {
			foundGoal = true
			assert.Equal(t, env.cfg.Params.CostMultiplier, costs[i])
		}
	}
	assert.True(t, foundGoal, "expected a 1-edge plan to the goal")
}

func TestE3GoalOutOfBoundsFailsWithoutBFS(t *testing.T) {
	env, _, _ := newTestEnv(t, 7)
	goal := goalmodel.Pose6Dof{
		Type:   goalmodel.XYZGoal,
		Target: goalmodel.Pose{1000, 1000, 1000, 0, 0, 0},
		XYZTol: [3]float64{0.05, 0.05, 0.05},
	}
	ok := env.SetGoalPose(goal)
	assert.False(t, ok)
	assert.Nil(t, env.bfsGrid)
}

func TestE4AbsorbingGoalEmitsNoSuccessors(t *testing.T) {
	env, _, _ := newTestEnv(t, 7)
	ids, costs := env.GetSuccs(env.GoalStateID())
	assert.Nil(t, ids)
	assert.Nil(t, costs)
	assert.Equal(t, 0, env.GoalHeuristic(env.GoalStateID()))
}

func TestInterningUniquenessAcrossRepeatedExpansion(t *testing.T) {
	numJoints := 3
	env, _, _ := newTestEnv(t, numJoints)
	start := make([]float64, numJoints)
	env.SetStart(start)

	sizeBefore := env.SizeCreated()
	ids1, _ := env.GetSuccs(env.StartStateID())
	sizeAfterFirst := env.SizeCreated()
	ids2, _ := env.GetSuccs(env.StartStateID())
	sizeAfterSecond := env.SizeCreated()

	assert.Equal(t, ids1, ids2)
	assert.Greater(t, sizeAfterFirst, sizeBefore)
	assert.Equal(t, sizeAfterFirst, sizeAfterSecond)
}

func TestDeterministicSuccessorOrder(t *testing.T) {
	numJoints := 4
	env1, _, _ := newTestEnv(t, numJoints)
	env2, _, _ := newTestEnv(t, numJoints)
	start := make([]float64, numJoints)
	env1.SetStart(start)
	env2.SetStart(start)

	ids1, costs1 := env1.GetSuccs(env1.StartStateID())
	ids2, costs2 := env2.GetSuccs(env2.StartStateID())
	assert.Equal(t, ids1, ids2)
	assert.Equal(t, costs1, costs2)
}

func TestStateIDToAnglesNormalizesIntoPiRange(t *testing.T) {
	numJoints := 1
	env, _, _ := newTestEnv(t, numJoints)
	env.SetStart([]float64{0})
	angles := env.StateIDToAngles(env.StartStateID())
	require.Len(t, angles, 1)
	assert.LessOrEqual(t, angles[0], math.Pi)
	assert.Greater(t, angles[0], -math.Pi)
}
