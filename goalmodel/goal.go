// Package goalmodel holds the planner's goal specification and the
// acceptance predicate a candidate configuration is checked against: a
// 6-DoF Cartesian pose goal or a 7-DoF joint-space goal, mutually
// exclusive at any one time.
package goalmodel

import (
	"time"

	"github.com/sbpl-go/armlattice/discretize"
)

// Pose is a 6-DoF end-effector pose: (x, y, z, roll, pitch, yaw).
type Pose [6]float64

// GoalKind is the sum type of goal variants. It is implemented by
// Pose6Dof and JointSpace; Model.Accepts dispatches on it with a type
// switch rather than a bool flag plus two parallel structs.
type GoalKind interface {
	isGoalKind()
}

// PoseType distinguishes a position-only goal from a full pose goal.
type PoseType int

const (
	// XYZGoal requires only position to match within tolerance.
	XYZGoal PoseType = iota
	// XYZRPYGoal additionally requires orientation to match.
	XYZRPYGoal
)

// Pose6Dof is a 6-DoF Cartesian goal: target pose plus per-axis
// tolerances for position and, if Type is XYZRPYGoal, orientation.
type Pose6Dof struct {
	Type       PoseType
	Target     Pose
	XYZTol     [3]float64
	RPYTol     [3]float64
}

func (Pose6Dof) isGoalKind() {}

// JointSpace is a 7-DoF (or N-DoF) joint-space goal: target angles plus
// a per-joint absolute tolerance. No wrap is applied; callers are
// responsible for normalizing angles before comparison if required.
type JointSpace struct {
	Angles     []float64
	AngleTol   []float64
}

func (JointSpace) isGoalKind() {}

// Observation is a diagnostics-only latch: whether any successor has
// satisfied the positional-only part of a 6-DoF goal, and the
// wall-clock time from planning start until that first happened. It is
// purely observational and never gates acceptance.
type Observation struct {
	started          time.Time
	NearGoal         bool
	TimeToGoalRegion time.Duration
}

// Model holds the current goal and its observation latch.
type Model struct {
	kind GoalKind
	obs  Observation
}

// New returns a Model with no goal installed.
func New() *Model {
	return &Model{}
}

// SetGoal installs kind as the current goal and resets the observation
// latch's start time on every call.
func (m *Model) SetGoal(kind GoalKind) {
	m.kind = kind
	m.obs = Observation{started: time.Now()}
}

// Kind returns the currently installed goal, or nil if none has been set.
func (m *Model) Kind() GoalKind { return m.kind }

// Observation returns a copy of the current observation latch.
func (m *Model) Observation() Observation { return m.obs }

// AcceptsPose evaluates the 6-DoF predicate against a candidate
// end-effector pose. It is the caller's responsibility to invoke this
// only when the installed goal is a Pose6Dof (or when a JointSpace goal
// derives its positional-only check from FK, per set_goal_configuration
// in the lattice).
func (m *Model) AcceptsPose(goal Pose6Dof, candidate Pose) bool {
	for i := 0; i < 3; i++ {
		if absf(candidate[i]-goal.Target[i]) > goal.XYZTol[i] {
			return false
		}
	}
	if !m.obs.NearGoal {
		m.obs.NearGoal = true
		m.obs.TimeToGoalRegion = time.Since(m.obs.started)
	}
	if goal.Type != XYZRPYGoal {
		return true
	}
	for i := 0; i < 3; i++ {
		d := discretize.ShortestAngularDistance(candidate[3+i], goal.Target[3+i])
		if absf(d) >= goal.RPYTol[i] {
			return false
		}
	}
	return true
}

// AcceptsJointSpace evaluates the 7-DoF predicate against candidate
// joint angles: an absolute, unwrapped per-joint tolerance check.
func (m *Model) AcceptsJointSpace(goal JointSpace, candidate []float64) bool {
	for i := range goal.Angles {
		if absf(candidate[i]-goal.Angles[i]) > goal.AngleTol[i] {
			return false
		}
	}
	return true
}

// Accepts dispatches on the installed goal kind via a type switch and
// evaluates the appropriate predicate. pose is the candidate
// end-effector pose (used for Pose6Dof); angles is the candidate joint
// configuration (used for JointSpace).
func (m *Model) Accepts(pose Pose, angles []float64) bool {
	switch g := m.kind.(type) {
	case Pose6Dof:
		return m.AcceptsPose(g, pose)
	case JointSpace:
		return m.AcceptsJointSpace(g, angles)
	default:
		return false
	}
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
