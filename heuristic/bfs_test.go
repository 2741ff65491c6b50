package heuristic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObstacleGrid struct {
	dimX, dimY, dimZ int
	wallAt           func(i, j, k int) bool
}

func (f fakeObstacleGrid) Dims() (int, int, int) { return f.dimX, f.dimY, f.dimZ }

func (f fakeObstacleGrid) DistanceToNearestObstacle(i, j, k int) float64 {
	if f.wallAt(i, j, k) {
		return 0
	}
	return 100
}

func TestBFSGoalDistanceIsZero(t *testing.T) {
	g := NewGrid(nil, 10, 10, 10, 100)
	g.Run(5, 5, 5)
	assert.Equal(t, 0, g.Distance(5, 5, 5))
	assert.Equal(t, 0, g.CostToGoal(5, 5, 5))
}

func TestBFSMonotoneAwayFromGoal(t *testing.T) {
	g := NewGrid(nil, 10, 10, 10, 100)
	g.Run(5, 5, 5)
	d1 := g.Distance(5, 5, 5)
	d2 := g.Distance(6, 5, 5)
	d3 := g.Distance(7, 5, 5)
	require.Less(t, d1, d2)
	require.Less(t, d2, d3)
}

func TestBFSWallBlocksAndRoutesAround(t *testing.T) {
	// E2 scenario: wall plane at x=50 except a hole at (50,50,50).
	grid := fakeObstacleGrid{
		dimX: 100, dimY: 100, dimZ: 100,
		wallAt: func(i, j, k int) bool {
			return i == 50 && !(j == 50 && k == 50)
		},
	}
	g := NewGrid(nil, 100, 100, 100, 100)
	g.ResetWallsFromGrid(grid, 0)
	g.Run(75, 50, 50)

	assert.Equal(t, WALL, g.Distance(50, 0, 0))
	startDist := g.Distance(25, 50, 50)
	assert.GreaterOrEqual(t, startDist, 50)
}

func TestBFSGoalOnWallStaysUnreachable(t *testing.T) {
	grid := fakeObstacleGrid{
		dimX: 5, dimY: 5, dimZ: 5,
		wallAt: func(i, j, k int) bool { return i == 2 && j == 2 && k == 2 },
	}
	g := NewGrid(nil, 5, 5, 5, 100)
	g.ResetWallsFromGrid(grid, 0)
	g.Run(2, 2, 2)
	assert.Equal(t, WALL, g.Distance(2, 2, 2))
	assert.Equal(t, Infinity, g.CostToGoal(0, 0, 0))
}

func TestWallsAndValuesUpToAreDataOnly(t *testing.T) {
	grid := fakeObstacleGrid{
		dimX: 4, dimY: 4, dimZ: 4,
		wallAt: func(i, j, k int) bool { return i == 1 },
	}
	g := NewGrid(nil, 4, 4, 4, 10)
	g.ResetWallsFromGrid(grid, 0)
	g.Run(0, 0, 0)

	walls := g.Walls()
	assert.NotEmpty(t, walls)
	for _, w := range walls {
		assert.Equal(t, 1, w[0])
	}

	values := g.ValuesUpTo(0)
	assert.Equal(t, 0, values[[3]int{0, 0, 0}])
}
