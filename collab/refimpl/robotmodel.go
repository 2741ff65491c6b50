package refimpl

import (
	"math"

	"github.com/sbpl-go/armlattice/collab"
)

// StubRobotModel is a trivial N-joint planar robot: each joint rotates
// about Z and is followed by a fixed-length link in the rotated frame,
// giving a simple serial planar chain. It exists only to exercise the
// RobotModel contract in tests and the demo; it models no real robot.
type StubRobotModel struct {
	minLimit   []float64
	maxLimit   []float64
	continuous []bool
	linkLength []float64
}

// NewStubRobotModel builds a planar chain of len(linkLength) joints.
// continuous[i] marks joint i as unbounded (modulo 2*pi); otherwise
// minLimit[i]/maxLimit[i] bound it.
func NewStubRobotModel(minLimit, maxLimit, linkLength []float64, continuous []bool) *StubRobotModel {
	return &StubRobotModel{
		minLimit:   minLimit,
		maxLimit:   maxLimit,
		continuous: continuous,
		linkLength: linkLength,
	}
}

// NumJoints returns the chain length.
func (r *StubRobotModel) NumJoints() int { return len(r.linkLength) }

// MinLimit returns joint i's lower bound (meaningless if HasLimit(i) is
// false).
func (r *StubRobotModel) MinLimit(i int) float64 { return r.minLimit[i] }

// MaxLimit returns joint i's upper bound (meaningless if HasLimit(i) is
// false).
func (r *StubRobotModel) MaxLimit(i int) float64 { return r.maxLimit[i] }

// HasLimit reports whether joint i is bounded.
func (r *StubRobotModel) HasLimit(i int) bool { return !r.continuous[i] }

// CheckJointLimits reports whether every bounded joint in angles lies
// within its [min, max] range. Continuous joints always pass.
func (r *StubRobotModel) CheckJointLimits(angles []float64) bool {
	for i, a := range angles {
		if r.continuous[i] {
			continue
		}
		if a < r.minLimit[i] || a > r.maxLimit[i] {
			return false
		}
	}
	return true
}

// ForwardKinematics walks the planar chain and returns the end
// effector's pose. The link argument is accepted for contract
// compliance but ignored: this stub has only one terminal link.
func (r *StubRobotModel) ForwardKinematics(angles []float64, link string) (collab.Pose, error) {
	var x, y, cumulative float64
	for i, a := range angles {
		cumulative += a
		x += r.linkLength[i] * math.Cos(cumulative)
		y += r.linkLength[i] * math.Sin(cumulative)
	}
	return collab.Pose{x, y, 0, 0, 0, cumulative}, nil
}
