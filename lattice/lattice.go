// Package lattice implements the planning lattice's successor
// generation, the goal-absorption contract, and the glue between the
// Discretizer, the State Table, the Goal Model, and the BFS Heuristic.
// It is the central algorithm of the core: GetSuccs mirrors
// EnvironmentROBARM3D::GetSuccs step for step (decode parent coord,
// query the ActionSet, validate waypoints and swept segments, compute
// the successor coord/cell, evaluate the goal, intern, emit).
package lattice

import (
	"math"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/sbpl-go/armlattice/collab"
	"github.com/sbpl-go/armlattice/discretize"
	"github.com/sbpl-go/armlattice/goalmodel"
	"github.com/sbpl-go/armlattice/heuristic"
	"github.com/sbpl-go/armlattice/statetable"
)

// Sentinel errors, per the Error Handling Design table.
var (
	ErrUninitialized   = errors.New("lattice: not initialized")
	ErrGoalOutOfBounds = errors.New("lattice: goal cell outside grid")
)

// Config bundles the construction-time dependencies an Environment
// needs: the collaborator contracts plus planning parameters.
type Config struct {
	Params   collab.PlanningParams
	Robot    collab.RobotModel
	Collider collab.CollisionChecker
	Grid     collab.OccupancyGrid
	Actions  collab.ActionSet
	Logger   golog.Logger
}

// Environment is the central lattice: it owns the Discretizer, the
// State Table, the Goal Model, and the BFS Heuristic, and implements
// collab.LatticeCore.
type Environment struct {
	cfg    Config
	logger golog.Logger
	runID  uuid.UUID

	disc  *discretize.Discretizer
	table *statetable.Table
	goal  *goalmodel.Model

	bfsGrid    *heuristic.Grid
	costToGo   heuristic.CostToGoer
	goalWorld  r3.Vector
	goalCellOK bool

	initialized bool
	startID     int
	goalID      int
}

// New constructs an Environment, pre-interning the start and goal
// entries with placeholder coords so their ids are stable before any
// angles are ever set.
func New(cfg Config) *Environment {
	logger := cfg.Logger
	disc := buildDiscretizer(cfg.Params)
	table := statetable.New(logger, statetable.DefaultTableSize)

	placeholder := make(discretize.Coord, cfg.Params.NumJoints)
	startID := table.Create(placeholder.Clone(), [3]int32{})
	goalID := table.ReserveGoal(placeholder.Clone())

	env := &Environment{
		cfg:         cfg,
		logger:      logger,
		runID:       uuid.New(),
		disc:        disc,
		table:       table,
		goal:        goalmodel.New(),
		startID:     startID,
		goalID:      goalID,
		initialized: true,
	}
	if logger != nil {
		logger.Infow("lattice environment initialized", "run_id", env.runID, "num_joints", cfg.Params.NumJoints)
	}
	return env
}

func buildDiscretizer(p collab.PlanningParams) *discretize.Discretizer {
	joints := make([]discretize.Joint, p.NumJoints)
	for i := 0; i < p.NumJoints; i++ {
		continuous := i < len(p.CoordContinuous) && p.CoordContinuous[i]
		var minL, maxL float64
		if i < len(p.CoordMinLimit) {
			minL = p.CoordMinLimit[i]
		}
		if i < len(p.CoordMaxLimit) {
			maxL = p.CoordMaxLimit[i]
		}
		delta := p.CoordDelta[i]
		joints[i] = discretize.NewJoint(minL, maxL, delta, continuous)
	}
	return discretize.New(joints)
}

// SizeCreated returns the number of interned states.
func (e *Environment) SizeCreated() int { return e.table.Size() }

// StartStateID returns the pre-interned start entry's id.
func (e *Environment) StartStateID() int { return e.startID }

// GoalStateID returns the distinguished absorbing goal entry's id.
func (e *Environment) GoalStateID() int { return e.goalID }

// SetStart discretizes angles into the start entry's coord and computes
// its grid cell via forward kinematics. It does not fail on out-of-limit
// or colliding start angles: it warns and proceeds, matching
// InvalidStart's "warn, proceed" handling.
func (e *Environment) SetStart(angles []float64) {
	coord := e.disc.AnglesToCoord(angles)
	entry := e.table.Entry(e.startID)
	entry.Coord = coord
	entry.ContinuousState = append([]float64(nil), angles...)

	if !e.cfg.Robot.CheckJointLimits(angles) {
		e.warnf("start configuration violates joint limits; proceeding")
	}
	if valid, dist := e.cfg.Collider.IsStateValid(angles); !valid {
		e.warnf("start configuration is in collision; proceeding")
		entry.CachedObstacleDistance = dist
	}

	pose, err := e.cfg.Robot.ForwardKinematics(angles, e.cfg.Params.PlanningLink)
	if err != nil {
		e.warnf("start forward kinematics failed: %v; proceeding", err)
		return
	}
	entry.EECell = e.poseToCell(pose)
}

func (e *Environment) poseToCell(pose collab.Pose) [3]int32 {
	i, j, k := e.cfg.Grid.WorldToGrid(poseToVec(pose))
	return [3]int32{int32(i), int32(j), int32(k)}
}

func poseToVec(pose collab.Pose) r3.Vector {
	return r3.Vector{X: pose[0], Y: pose[1], Z: pose[2]}
}

// SetGoalPose installs a 6-DoF pose goal, computes its grid cell,
// resets the goal entry's coord to placeholder zeros, and (re)builds and
// runs the BFS heuristic, or installs the Euclidean fallback when
// UseBFSHeuristic is false. It returns false without running BFS if the
// goal cell lies outside the grid (GoalOutOfBounds).
func (e *Environment) SetGoalPose(goal goalmodel.Pose6Dof) bool {
	if !e.initialized {
		if e.logger != nil {
			e.logger.Warn(ErrUninitialized)
		}
		return false
	}
	e.goal.SetGoal(goal)

	placeholder := make(discretize.Coord, e.cfg.Params.NumJoints)
	e.table.OverwriteGoal(placeholder, [3]int32{}, nil)

	worldGoal := r3.Vector{X: goal.Target[0], Y: goal.Target[1], Z: goal.Target[2]}
	gi, gj, gk := e.cfg.Grid.WorldToGrid(worldGoal)
	dimX, dimY, dimZ := e.cfg.Grid.Dims()
	if gi < 0 || gi >= dimX || gj < 0 || gj >= dimY || gk < 0 || gk >= dimZ {
		if e.logger != nil {
			e.logger.Warnw(ErrGoalOutOfBounds.Error(), "cell", [3]int{gi, gj, gk}, "dims", [3]int{dimX, dimY, dimZ})
		}
		return false
	}

	e.goalWorld = worldGoal
	e.goalCellOK = true

	if e.cfg.Params.UseBFSHeuristic {
		grid := heuristic.NewGrid(e.logger, dimX, dimY, dimZ, e.cfg.Params.CostPerCell)
		grid.ResetWallsFromGrid(e.cfg.Grid, e.cfg.Params.PlanningLinkSphereRadius)
		grid.Run(gi, gj, gk)
		e.bfsGrid = grid
		e.costToGo = grid
	} else {
		e.costToGo = heuristic.Euclidean{
			GoalWorld:    worldGoal,
			CellToWorld:  e.cfg.Grid.GridToWorld,
			CostPerMeter: e.cfg.Params.CostPerMeter,
		}
	}
	return true
}

// SetGoalConfiguration derives a 6-DoF pose from forward kinematics on
// angles with a uniform 0.05 positional tolerance, delegates to
// SetGoalPose for the BFS cell/grid setup, and additionally installs
// the 7-DoF joint-space predicate so GetSuccs's goal evaluation switches
// to a per-joint tolerance comparison.
func (e *Environment) SetGoalConfiguration(angles, tolerances []float64) bool {
	if !e.initialized {
		return false
	}
	pose, err := e.cfg.Robot.ForwardKinematics(angles, e.cfg.Params.PlanningLink)
	if err != nil {
		e.warnf("goal forward kinematics failed: %v", err)
		return false
	}
	poseGoal := goalmodel.Pose6Dof{
		Type:   goalmodel.XYZGoal,
		Target: goalmodel.Pose(pose),
		XYZTol: [3]float64{0.05, 0.05, 0.05},
	}
	if !e.SetGoalPose(poseGoal) {
		return false
	}
	e.goal.SetGoal(goalmodel.JointSpace{
		Angles:   append([]float64(nil), angles...),
		AngleTol: append([]float64(nil), tolerances...),
	})
	return true
}

// GetSuccs is the central successor-generation algorithm. If sourceID is
// the goal id, it returns no successors (the goal is absorbing).
// Otherwise it decodes the source coord, queries the ActionSet, validates
// each candidate action's waypoints and swept segments, computes the
// successor coord/cell, evaluates the goal predicate, interns the
// result, and emits (id, cost) pairs in ActionSet order.
func (e *Environment) GetSuccs(sourceID int) ([]int, []int) {
	if sourceID == e.goalID {
		return nil, nil
	}

	source := e.table.Entry(sourceID)
	sourceAngles := e.disc.CoordToAngles(source.Coord)

	actions := e.cfg.Actions.ActionsAt(sourceAngles)
	if len(actions) == 0 {
		e.warnf("action set returned no actions at state %d", sourceID)
		return nil, nil
	}

	var ids, costs []int
	for _, action := range actions {
		succID, ok := e.tryAction(sourceAngles, action)
		if !ok {
			continue
		}
		ids = append(ids, succID)
		costs = append(costs, e.cfg.Params.CostMultiplier)
	}
	return ids, costs
}

// tryAction validates one action's waypoints and swept segments, and on
// success interns (or absorbs into the goal) its resulting state.
func (e *Environment) tryAction(sourceAngles []float64, action collab.Action) (int, bool) {
	if len(action.Waypoints) == 0 {
		return 0, false
	}

	prev := sourceAngles
	for _, wp := range action.Waypoints {
		if !e.cfg.Robot.CheckJointLimits(wp) {
			return 0, false
		}
		if valid, _ := e.cfg.Collider.IsStateValid(wp); !valid {
			return 0, false
		}
		if valid, _, _ := e.cfg.Collider.IsSegmentValid(prev, wp); !valid {
			return 0, false
		}
		prev = wp
	}

	final := action.Waypoints[len(action.Waypoints)-1]
	coord := e.disc.AnglesToCoord(final)

	pose, err := e.cfg.Robot.ForwardKinematics(final, e.cfg.Params.PlanningLink)
	if err != nil {
		return 0, false
	}
	cell := e.poseToCell(pose)

	isGoal := e.goal.Accepts(goalmodel.Pose(pose), final)

	if isGoal {
		e.table.OverwriteGoal(coord, cell, final)
		return e.goalID, true
	}

	id, existed := e.table.Get(coord)
	if !existed {
		id = e.table.Create(coord, cell)
		entry := e.table.Entry(id)
		entry.ContinuousState = append([]float64(nil), final...)
	}
	return id, true
}

// StateIDToAngles decodes the representative joint angles for id: for a
// non-goal id, its stored coord; for the goal id, the goal entry's
// (possibly overwritten) coord. Each angle is folded into [-pi, pi) by
// subtracting 2*pi when it is >= pi.
func (e *Environment) StateIDToAngles(id int) []float64 {
	entry := e.table.Entry(id)
	angles := e.disc.CoordToAngles(entry.Coord)
	for i, a := range angles {
		angles[i] = discretize.NormalizeToPi(foldToTwoPi(a))
	}
	return angles
}

func foldToTwoPi(a float64) float64 {
	const twoPi = 2 * 3.14159265358979323846
	for a < 0 {
		a += twoPi
	}
	for a >= twoPi {
		a -= twoPi
	}
	return a
}

// PathToTrajectory maps each id in ids to its representative angles, via
// StateIDToAngles.
func (e *Environment) PathToTrajectory(ids []int) [][]float64 {
	out := make([][]float64, len(ids))
	for i, id := range ids {
		out[i] = e.StateIDToAngles(id)
	}
	return out
}

// GoalHeuristic looks up id's end-effector cell in the installed
// CostToGoer and returns the admissible cost-to-go. It is always 0 for
// the goal id itself.
func (e *Environment) GoalHeuristic(id int) int {
	if id == e.goalID {
		return 0
	}
	if e.costToGo == nil {
		return 0
	}
	cell := e.table.Entry(id).EECell
	return e.costToGo.CostToGoal(int(cell[0]), int(cell[1]), int(cell[2]))
}

// PrimitiveEdgeCost computes the primitive-count cost of moving from
// `from` to `to`: how many maximal-offset primitives are needed to cover
// the biggest joint change, excluding the trailing wrist/forearm-roll
// axes (the last two joints), multiplied by the cost multiplier. Joint
// changes are measured in bins of each joint's CoordDelta, the same unit
// as MaxMprimOffset, and the count is at least one. It is
// reserved for an external search that wants a richer cost and is never
// called by GetSuccs, whose edge cost stays the flat CostMultiplier.
func (e *Environment) PrimitiveEdgeCost(from, to []float64) int {
	maxOffsetAxes := len(from)
	if maxOffsetAxes > 2 {
		maxOffsetAxes -= 2
	}
	var maxBins float64
	for i := 0; i < maxOffsetAxes; i++ {
		d := discretize.ShortestAngularDistance(from[i], to[i])
		if d < 0 {
			d = -d
		}
		d /= e.cfg.Params.CoordDelta[i]
		if d > maxBins {
			maxBins = d
		}
	}
	maxOffset := float64(e.cfg.Params.MaxMprimOffset)
	if maxOffset <= 0 {
		maxOffset = 1
	}
	primCount := int(math.Ceil(maxBins/maxOffset - 1e-9))
	if primCount < 1 {
		primCount = 1
	}
	return primCount * e.cfg.Params.CostMultiplier
}

func (e *Environment) warnf(format string, args ...interface{}) {
	if e.logger == nil {
		return
	}
	e.logger.Warnw(errors.Errorf(format, args...).Error(), "run_id", e.runID)
}
