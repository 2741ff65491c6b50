// Package discretize maps continuous joint angles onto the integer
// coordinate space of the planning lattice, and back.
package discretize

import "math"

const twoPi = 2 * math.Pi

// Joint describes one planning joint's discretization. It is immutable
// once built by NewJoint.
type Joint struct {
	MinLimit   float64
	MaxLimit   float64
	Continuous bool
	Delta      float64
	NumVals    int
}

// NewJoint builds a Joint descriptor. For a continuous joint, NumVals is
// derived as round(2*pi/delta); minLimit/maxLimit are ignored. For a
// bounded joint, NumVals is round((max-min)/delta) + 1, the count of bins
// 0..round((max-min)/delta).
func NewJoint(minLimit, maxLimit, delta float64, continuous bool) Joint {
	j := Joint{
		MinLimit:   minLimit,
		MaxLimit:   maxLimit,
		Continuous: continuous,
		Delta:      delta,
	}
	if continuous {
		j.NumVals = int(math.Round(twoPi / delta))
	} else {
		j.NumVals = int(math.Round((maxLimit-minLimit)/delta)) + 1
	}
	return j
}

// Coord is the fixed-length integer coordinate of a lattice state, one
// entry per planning joint.
type Coord []int32

// Equal reports whether two coords are element-wise identical.
func (c Coord) Equal(o Coord) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if c[i] != o[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of c.
func (c Coord) Clone() Coord {
	out := make(Coord, len(c))
	copy(out, c)
	return out
}

// Discretizer converts between joint angles and lattice coordinates for a
// fixed, ordered set of joints.
type Discretizer struct {
	joints []Joint
}

// New builds a Discretizer for the given ordered joint descriptors.
func New(joints []Joint) *Discretizer {
	cp := make([]Joint, len(joints))
	copy(cp, joints)
	return &Discretizer{joints: cp}
}

// NumJoints returns the number of planning joints.
func (d *Discretizer) NumJoints() int { return len(d.joints) }

// Joint returns the descriptor for joint i.
func (d *Discretizer) Joint(i int) Joint { return d.joints[i] }

// AnglesToCoord bins a joint-angle vector into a lattice coordinate.
// Continuous joints are normalized into [0, 2*pi) before binning and the
// resulting bin is wrapped into [0, NumVals) should it land exactly on
// NumVals. Bounded joints are rounded to the nearest bin relative to
// MinLimit.
func (d *Discretizer) AnglesToCoord(angles []float64) Coord {
	coord := make(Coord, len(d.joints))
	for i, j := range d.joints {
		a := angles[i]
		if j.Continuous {
			for a < 0 {
				a += twoPi
			}
			for a >= twoPi {
				a -= twoPi
			}
			bin := int32(math.Floor((a + j.Delta*0.5) / j.Delta))
			if int(bin) == j.NumVals {
				bin = 0
			}
			coord[i] = bin
		} else {
			coord[i] = int32(math.Round((a - j.MinLimit) / j.Delta))
		}
	}
	return coord
}

// CoordToAngles recovers the representative angle vector for a coordinate.
func (d *Discretizer) CoordToAngles(coord Coord) []float64 {
	angles := make([]float64, len(d.joints))
	for i, j := range d.joints {
		if j.Continuous {
			angles[i] = float64(coord[i]) * j.Delta
		} else {
			angles[i] = j.MinLimit + float64(coord[i])*j.Delta
		}
	}
	return angles
}

// NormalizeToPi folds an angle in [0, 2*pi) into [-pi, pi) by
// subtracting 2*pi when it is >= pi (so pi itself maps to -pi).
func NormalizeToPi(angle float64) float64 {
	if angle >= math.Pi {
		return angle - twoPi
	}
	return angle
}

// ShortestAngularDistance returns the signed distance from `from` to `to`,
// wrapped into (-pi, pi].
func ShortestAngularDistance(from, to float64) float64 {
	d := math.Mod(to-from, twoPi)
	if d > math.Pi {
		d -= twoPi
	} else if d <= -math.Pi {
		d += twoPi
	}
	return d
}
