package heuristic

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
)

func TestEuclideanZeroAtGoal(t *testing.T) {
	e := Euclidean{
		GoalWorld:    r3.Vector{X: 1, Y: 2, Z: 3},
		CellToWorld:  func(x, y, z int) r3.Vector { return r3.Vector{X: 1, Y: 2, Z: 3} },
		CostPerMeter: 10,
	}
	assert.Equal(t, 0, e.CostToGoal(0, 0, 0))
}

func TestEuclideanScalesWithDistance(t *testing.T) {
	e := Euclidean{
		GoalWorld:    r3.Vector{X: 0, Y: 0, Z: 0},
		CellToWorld:  func(x, y, z int) r3.Vector { return r3.Vector{X: float64(x), Y: 0, Z: 0} },
		CostPerMeter: 1,
	}
	assert.Equal(t, 1*euclideanMultiplier, e.CostToGoal(1, 0, 0))
	assert.Equal(t, 2*euclideanMultiplier, e.CostToGoal(2, 0, 0))
}
