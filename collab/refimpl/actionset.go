package refimpl

import (
	"strconv"

	"github.com/sbpl-go/armlattice/collab"
)

// PerJointActionSet generates, at every source configuration, one
// single-waypoint action per joint per direction (+1 bin, -1 bin), plus
// an optional coarse action per joint at CoarseOffset bins, matching the
// "identity single-joint primitives" ActionSet described for scenario E1.
type PerJointActionSet struct {
	Delta        []float64
	CoarseOffset int
}

// ActionsAt returns, in a fixed deterministic order (joint 0's +1/-1
// first, then joint 1's, ..., then any coarse actions), the candidate
// single-joint actions available from sourceAngles.
func (a PerJointActionSet) ActionsAt(sourceAngles []float64) []collab.Action {
	var actions []collab.Action
	for i := range sourceAngles {
		actions = append(actions,
			a.offsetAction(sourceAngles, i, 1),
			a.offsetAction(sourceAngles, i, -1),
		)
	}
	if a.CoarseOffset > 1 {
		for i := range sourceAngles {
			actions = append(actions,
				a.offsetAction(sourceAngles, i, a.CoarseOffset),
				a.offsetAction(sourceAngles, i, -a.CoarseOffset),
			)
		}
	}
	return actions
}

func (a PerJointActionSet) offsetAction(sourceAngles []float64, joint, bins int) collab.Action {
	wp := append([]float64(nil), sourceAngles...)
	wp[joint] += float64(bins) * a.Delta[joint]
	return collab.Action{
		Name:      actionName(joint, bins),
		Waypoints: [][]float64{wp},
	}
}

func actionName(joint, bins int) string {
	dir := "plus"
	n := bins
	if n < 0 {
		dir = "minus"
		n = -n
	}
	return "joint" + strconv.Itoa(joint) + "_" + dir + strconv.Itoa(n)
}
