package refimpl

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/sbpl-go/armlattice/collab"
)

// SphereSweepChecker validates configurations and swept segments by
// forward-kinematicking each interpolated waypoint and checking its
// planning-link sphere against a VoxelGrid's obstacle-distance field.
type SphereSweepChecker struct {
	Robot          collab.RobotModel
	Grid           *VoxelGrid
	PlanningLink   string
	SphereRadius   float64
	SegmentSamples int
}

// IsStateValid forward-kinematics angles and checks the planning link's
// sphere against the grid's obstacle distance at that cell.
func (c SphereSweepChecker) IsStateValid(angles []float64) (bool, float64) {
	pose, err := c.Robot.ForwardKinematics(angles, c.PlanningLink)
	if err != nil {
		return false, 0
	}
	i, j, k := c.Grid.WorldToGrid(r3.Vector{X: pose[0], Y: pose[1], Z: pose[2]})
	dist := c.Grid.DistanceToNearestObstacle(i, j, k)
	return dist > c.SphereRadius, dist
}

// IsSegmentValid linearly interpolates between a and b at
// SegmentSamples steps (minimum 2) and checks every sample with
// IsStateValid.
func (c SphereSweepChecker) IsSegmentValid(a, b []float64) (bool, float64, int) {
	samples := c.SegmentSamples
	if samples < 2 {
		samples = 2
	}
	var pathLength float64
	prev := a
	for s := 1; s <= samples; s++ {
		t := float64(s) / float64(samples)
		wp := make([]float64, len(a))
		for i := range a {
			wp[i] = a[i] + (b[i]-a[i])*t
		}
		if valid, _ := c.IsStateValid(wp); !valid {
			return false, pathLength, s
		}
		pathLength += segmentNorm(prev, wp)
		prev = wp
	}
	return true, pathLength, samples
}

func segmentNorm(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := b[i] - a[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
