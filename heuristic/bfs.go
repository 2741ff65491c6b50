// Package heuristic supplies the admissible cost-to-go estimate the
// lattice exposes to an external search: a 3D grid BFS run from the
// goal cell outward, plus a Euclidean fallback, both implementing a
// shared CostToGoer interface so the choice is a stored variant rather
// than a function pointer.
package heuristic

import (
	"github.com/edaniels/golog"
)

// Cell sentinels. WALL and UNREACHABLE must never be mixed with finite
// distances in arithmetic; CostToGoal maps both to Infinity.
const (
	WALL        = -1
	UNREACHABLE = -2
	// Infinity is the cost returned for any cell whose distance exceeds
	// SaturationThreshold, or that is a WALL or UNREACHABLE cell.
	Infinity = 1 << 30
	// SaturationThreshold is the 1e6 cutoff past which a BFS distance is
	// treated as effectively unreachable for costing.
	SaturationThreshold = 1_000_000
)

// CostToGoer is the heuristic interface the Lattice stores as a single
// tagged variant: either Grid (BFS) or Euclidean.
type CostToGoer interface {
	CostToGoal(x, y, z int) int
}

// ObstacleGrid is the subset of collab.OccupancyGrid the BFS grid needs
// to build its wall mask.
type ObstacleGrid interface {
	Dims() (x, y, z int)
	DistanceToNearestObstacle(i, j, k int) float64
}

// Grid is a 3D, 6-connected BFS distance field over a voxelized
// workspace, rebuilt and rerun whenever the goal cell changes.
type Grid struct {
	logger      golog.Logger
	dimX        int
	dimY        int
	dimZ        int
	costPerCell int
	dist        []int32
}

// NewGrid allocates a Grid of the given dimensions, all cells initially
// UNREACHABLE. costPerCell must not exceed the lattice's minimum edge
// cost for the resulting heuristic to remain admissible (default 100).
func NewGrid(logger golog.Logger, dimX, dimY, dimZ, costPerCell int) *Grid {
	g := &Grid{
		logger:      logger,
		dimX:        dimX,
		dimY:        dimY,
		dimZ:        dimZ,
		costPerCell: costPerCell,
		dist:        make([]int32, dimX*dimY*dimZ),
	}
	for i := range g.dist {
		g.dist[i] = UNREACHABLE
	}
	return g
}

func (g *Grid) index(x, y, z int) int { return (x*g.dimY+y)*g.dimZ + z }

func (g *Grid) inBounds(x, y, z int) bool {
	return x >= 0 && x < g.dimX && y >= 0 && y < g.dimY && z >= 0 && z < g.dimZ
}

// ResetWallsFromGrid marks every cell within inflationRadius of an
// obstacle as WALL, clearing any previously-marked wall that is now
// clear. Non-wall cells are reset to UNREACHABLE; call Run afterward.
func (g *Grid) ResetWallsFromGrid(grid ObstacleGrid, inflationRadius float64) {
	for x := 0; x < g.dimX; x++ {
		for y := 0; y < g.dimY; y++ {
			for z := 0; z < g.dimZ; z++ {
				idx := g.index(x, y, z)
				if grid.DistanceToNearestObstacle(x, y, z) <= inflationRadius {
					g.dist[idx] = WALL
				} else {
					g.dist[idx] = UNREACHABLE
				}
			}
		}
	}
}

var neighborOffsets = [6][3]int{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// Run performs a 6-connected BFS from (gx, gy, gz) over non-wall,
// in-bounds cells, writing the shortest hop count to every reachable
// cell. Cells unreachable from the goal, and wall cells, are left as
// UNREACHABLE / WALL respectively.
func (g *Grid) Run(gx, gy, gz int) {
	if !g.inBounds(gx, gy, gz) {
		return
	}
	goalIdx := g.index(gx, gy, gz)
	if g.dist[goalIdx] == WALL {
		return
	}
	g.dist[goalIdx] = 0
	queue := make([][3]int, 0, 1024)
	queue = append(queue, [3]int{gx, gy, gz})
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		curIdx := g.index(cur[0], cur[1], cur[2])
		curDist := g.dist[curIdx]
		for _, off := range neighborOffsets {
			nx, ny, nz := cur[0]+off[0], cur[1]+off[1], cur[2]+off[2]
			if !g.inBounds(nx, ny, nz) {
				continue
			}
			nIdx := g.index(nx, ny, nz)
			if g.dist[nIdx] == WALL || g.dist[nIdx] != UNREACHABLE {
				continue
			}
			g.dist[nIdx] = curDist + 1
			queue = append(queue, [3]int{nx, ny, nz})
		}
	}
	if g.logger != nil {
		g.logger.Debugw("bfs heuristic run complete", "goal", [3]int{gx, gy, gz}, "visited", len(queue))
	}
}

// Distance returns WALL, UNREACHABLE, or the integer BFS hop distance
// for the cell.
func (g *Grid) Distance(x, y, z int) int {
	if !g.inBounds(x, y, z) {
		return UNREACHABLE
	}
	return int(g.dist[g.index(x, y, z)])
}

// CostToGoal converts a BFS distance into an admissible cost-to-go: any
// WALL, UNREACHABLE, or saturated cell costs Infinity; otherwise
// distance * costPerCell.
func (g *Grid) CostToGoal(x, y, z int) int {
	d := g.Distance(x, y, z)
	if d == WALL || d == UNREACHABLE || d > SaturationThreshold {
		return Infinity
	}
	return d * g.costPerCell
}

// Walls returns the coordinates of every cell currently marked WALL.
// Data-only; no visualization type.
func (g *Grid) Walls() [][3]int {
	var out [][3]int
	for x := 0; x < g.dimX; x++ {
		for y := 0; y < g.dimY; y++ {
			for z := 0; z < g.dimZ; z++ {
				if g.dist[g.index(x, y, z)] == WALL {
					out = append(out, [3]int{x, y, z})
				}
			}
		}
	}
	return out
}

// ValuesUpTo returns every (cell, distance) pair whose BFS distance is
// finite and at most maxCost hops. Data-only.
func (g *Grid) ValuesUpTo(maxCost int) map[[3]int]int {
	out := make(map[[3]int]int)
	for x := 0; x < g.dimX; x++ {
		for y := 0; y < g.dimY; y++ {
			for z := 0; z < g.dimZ; z++ {
				d := g.dist[g.index(x, y, z)]
				if d >= 0 && int(d) <= maxCost {
					out[[3]int{x, y, z}] = int(d)
				}
			}
		}
	}
	return out
}
