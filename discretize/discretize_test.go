package discretize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContinuousWrap(t *testing.T) {
	// E6: continuous joint, delta = 2*pi/8.
	joints := []Joint{NewJoint(0, 0, twoPi/8, true)}
	d := New(joints)

	require.Equal(t, 8, d.Joint(0).NumVals)

	c0 := d.AnglesToCoord([]float64{0})
	cNeg := d.AnglesToCoord([]float64{-1e-9})
	assert.Equal(t, c0, cNeg)
	assert.EqualValues(t, 0, c0[0])

	angles := d.CoordToAngles(Coord{0})
	assert.Equal(t, 0.0, angles[0])
}

func TestBoundedRoundTrip(t *testing.T) {
	joints := []Joint{NewJoint(-1.0, 1.0, 0.1, false)}
	d := New(joints)

	for _, a := range []float64{-1.0, -0.55, 0, 0.23, 0.999} {
		coord := d.AnglesToCoord([]float64{a})
		back := d.CoordToAngles(coord)
		assert.LessOrEqual(t, math.Abs(back[0]-a), joints[0].Delta/2+1e-9)
	}
}

func TestShortestAngularDistanceWraps(t *testing.T) {
	// Crossing the +-pi boundary should take the short way around.
	from := math.Pi - 0.05
	to := -math.Pi + 0.05
	assert.InDelta(t, 0.1, ShortestAngularDistance(from, to), 1e-9)
	assert.InDelta(t, 0.0, ShortestAngularDistance(1.0, 1.0), 1e-9)
}

func TestNormalizeToPi(t *testing.T) {
	assert.InDelta(t, -math.Pi+0.1, NormalizeToPi(math.Pi+0.1), 1e-9)
	assert.InDelta(t, 1.0, NormalizeToPi(1.0), 1e-9)
}
