// Package refimpl ships minimal, concrete collaborator implementations
// satisfying the collab contracts: a dense voxel grid, a trivial N-joint
// stub robot model, a sphere-swept collision checker, and a per-joint
// action set. These exist so the lattice core's own tests and the demo
// CLI can exercise the E1-E6 scenarios without a real robot stack; they
// are not the contract, only something that satisfies it.
package refimpl

import (
	"math"

	"github.com/golang/geo/r3"
)

// VoxelGrid is a dense occupancy grid: a flat obstacle-distance array
// plus a fixed resolution and origin for world<->grid conversion.
type VoxelGrid struct {
	dimX, dimY, dimZ int
	resolution       float64
	origin           r3.Vector
	obstacleDist     []float64
}

// NewVoxelGrid allocates a grid of the given dimensions and resolution,
// with every cell initialized to a large (free) obstacle distance.
func NewVoxelGrid(dimX, dimY, dimZ int, resolution float64, origin r3.Vector) *VoxelGrid {
	g := &VoxelGrid{
		dimX:         dimX,
		dimY:         dimY,
		dimZ:         dimZ,
		resolution:   resolution,
		origin:       origin,
		obstacleDist: make([]float64, dimX*dimY*dimZ),
	}
	for i := range g.obstacleDist {
		g.obstacleDist[i] = 1e6
	}
	return g
}

func (g *VoxelGrid) index(i, j, k int) int { return (i*g.dimY+j)*g.dimZ + k }

// SetObstacle marks cell (i,j,k) as an obstacle (distance 0).
func (g *VoxelGrid) SetObstacle(i, j, k int) {
	g.obstacleDist[g.index(i, j, k)] = 0
}

// Dims returns the grid's cell dimensions.
func (g *VoxelGrid) Dims() (int, int, int) { return g.dimX, g.dimY, g.dimZ }

// Resolution returns the edge length of one voxel, in meters.
func (g *VoxelGrid) Resolution() float64 { return g.resolution }

// WorldToGrid converts a world-frame point to the containing cell index.
func (g *VoxelGrid) WorldToGrid(p r3.Vector) (int, int, int) {
	rel := p.Sub(g.origin)
	return int(math.Floor(rel.X / g.resolution)), int(math.Floor(rel.Y / g.resolution)), int(math.Floor(rel.Z / g.resolution))
}

// GridToWorld converts a cell index to its world-frame center.
func (g *VoxelGrid) GridToWorld(i, j, k int) r3.Vector {
	return r3.Vector{
		X: g.origin.X + (float64(i)+0.5)*g.resolution,
		Y: g.origin.Y + (float64(j)+0.5)*g.resolution,
		Z: g.origin.Z + (float64(k)+0.5)*g.resolution,
	}
}

// DistanceToNearestObstacle returns the stored obstacle distance for
// cell (i,j,k), or 0 for an out-of-bounds query (treated as occupied).
func (g *VoxelGrid) DistanceToNearestObstacle(i, j, k int) float64 {
	if i < 0 || i >= g.dimX || j < 0 || j >= g.dimY || k < 0 || k >= g.dimZ {
		return 0
	}
	return g.obstacleDist[g.index(i, j, k)]
}
