// Package collab defines the external collaborator contracts the
// lattice core consumes: RobotModel, CollisionChecker, OccupancyGrid,
// and ActionSet, plus the PlanningParams configuration bundle and the
// core's own output contract. These are the interfaces the core
// queries; it does not implement them. collab/refimpl ships minimal
// concrete implementations for tests and the demo CLI.
package collab

import "github.com/golang/geo/r3"

// Pose is a 6-DoF end-effector pose: (x, y, z, roll, pitch, yaw).
type Pose [6]float64

// RobotModel is the kinematic/joint-limit oracle: joint bounds, limit
// checking, and forward kinematics for a named link.
type RobotModel interface {
	NumJoints() int
	MinLimit(i int) float64
	MaxLimit(i int) float64
	// HasLimit reports whether joint i is bounded. false means
	// continuous (wraps modulo 2*pi).
	HasLimit(i int) bool
	CheckJointLimits(angles []float64) bool
	// ForwardKinematics returns the pose of the named link at the given
	// joint configuration, or an error if the configuration cannot be
	// resolved (e.g. a singular chain).
	ForwardKinematics(angles []float64, link string) (Pose, error)
}

// CollisionChecker validates a single configuration and the swept path
// between two configurations.
type CollisionChecker interface {
	// IsStateValid reports whether angles is collision-free, and
	// returns the distance to the nearest obstacle regardless of the
	// validity verdict.
	IsStateValid(angles []float64) (valid bool, distanceToNearestObstacle float64)
	// IsSegmentValid interpolates between a and b at a resolution of
	// its own choosing and reports whether every interpolated waypoint
	// is collision-free, along with the path length traversed and the
	// number of interpolation checks performed.
	IsSegmentValid(a, b []float64) (valid bool, pathLength float64, numChecks int)
}

// OccupancyGrid is the voxelized, signed-distance workspace.
type OccupancyGrid interface {
	Dims() (x, y, z int)
	Resolution() float64
	WorldToGrid(p r3.Vector) (i, j, k int)
	GridToWorld(i, j, k int) r3.Vector
	DistanceToNearestObstacle(i, j, k int) float64
}

// Action is an ordered, non-empty sequence of joint-space waypoints
// applied from a source configuration to produce a successor; the last
// waypoint is the successor configuration.
type Action struct {
	Name      string
	Waypoints [][]float64
}

// ActionSet is the motion-primitive provider queried at every expanded
// state.
type ActionSet interface {
	// ActionsAt returns the ordered list of candidate actions available
	// from sourceAngles. Order is significant: GetSuccs emits successors
	// in this order and implementers must not sort.
	ActionsAt(sourceAngles []float64) []Action
}

// PlanningParams bundles the configuration values the core's components
// need at construction time.
type PlanningParams struct {
	NumJoints                int       `mapstructure:"num_joints" yaml:"num_joints"`
	CoordDelta               []float64 `mapstructure:"coord_delta" yaml:"coord_delta"`
	CoordContinuous          []bool    `mapstructure:"coord_continuous" yaml:"coord_continuous"`
	CoordMinLimit            []float64 `mapstructure:"coord_min_limit" yaml:"coord_min_limit"`
	CoordMaxLimit            []float64 `mapstructure:"coord_max_limit" yaml:"coord_max_limit"`
	CostMultiplier           int       `mapstructure:"cost_multiplier" yaml:"cost_multiplier"`
	CostPerCell              int       `mapstructure:"cost_per_cell" yaml:"cost_per_cell"`
	CostPerMeter             float64   `mapstructure:"cost_per_meter" yaml:"cost_per_meter"`
	UseBFSHeuristic          bool      `mapstructure:"use_bfs_heuristic" yaml:"use_bfs_heuristic"`
	PlanningLinkSphereRadius float64   `mapstructure:"planning_link_sphere_radius" yaml:"planning_link_sphere_radius"`
	MaxMprimOffset           int       `mapstructure:"max_mprim_offset" yaml:"max_mprim_offset"`
	PlanningLink             string    `mapstructure:"planning_link" yaml:"planning_link"`
}

// LatticeCore is the output contract the core exposes to an external
// best-first search: size/id accessors, successor generation, the
// admissible heuristic, and the two ways of turning ids back into angles.
type LatticeCore interface {
	SizeCreated() int
	StartStateID() int
	GoalStateID() int
	GetSuccs(id int) ([]int, []int)
	GoalHeuristic(id int) int
	StateIDToAngles(id int) []float64
	PathToTrajectory(ids []int) [][]float64
}
