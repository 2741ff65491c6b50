package heuristic

import "github.com/golang/geo/r3"

// Euclidean is the fallback heuristic used when the BFS grid is
// disabled: straight-line distance from a cell's world position to the
// goal's world position, scaled to a cost via CostPerMeter and a fixed
// multiplier that keeps the fallback comparable in magnitude to the
// BFS-cell costing.
type Euclidean struct {
	GoalWorld    r3.Vector
	CellToWorld  func(x, y, z int) r3.Vector
	CostPerMeter float64
}

const euclideanMultiplier = 500

// CostToGoal returns ‖cellWorld - goalWorld‖ * CostPerMeter * 500.
func (e Euclidean) CostToGoal(x, y, z int) int {
	world := e.CellToWorld(x, y, z)
	dist := world.Sub(e.GoalWorld).Norm()
	return int(dist * e.CostPerMeter * euclideanMultiplier)
}
