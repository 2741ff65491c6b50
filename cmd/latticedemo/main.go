// Command latticedemo wires the reference collaborators, the lattice
// core, and the demo search driver together, runs one scene, and prints
// the resulting trajectory. It does not print the BFS heuristic grid:
// -dump-walls only prints a note that the demo grid has no obstacles.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/urfave/cli/v2"

	"github.com/sbpl-go/armlattice/collab/refimpl"
	"github.com/sbpl-go/armlattice/config"
	"github.com/sbpl-go/armlattice/internal/search"
	"github.com/sbpl-go/armlattice/lattice"
)

func main() {
	app := &cli.App{
		Name:  "latticedemo",
		Usage: "plan a single scene against the lattice core and print the resulting trajectory",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "scene", Required: true, Usage: "path to a scene YAML file"},
			&cli.IntFlag{Name: "max-expansions", Value: 100000, Usage: "expansion budget"},
			&cli.BoolFlag{Name: "dump-walls", Usage: "print a note on BFS wall cells after planning (the demo grid has no obstacles)"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "latticedemo:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	logger := golog.NewDebugLogger("latticedemo")

	scene, err := config.LoadSceneYAML(c.String("scene"))
	if err != nil {
		return err
	}

	numJoints := scene.Params.NumJoints
	linkLength := make([]float64, numJoints)
	minLimit := make([]float64, numJoints)
	maxLimit := make([]float64, numJoints)
	continuous := scene.Params.CoordContinuous
	if len(continuous) < numJoints {
		continuous = make([]bool, numJoints)
		for i := range continuous {
			continuous[i] = true
		}
	}
	for i := range linkLength {
		linkLength[i] = 0.1
		if i < len(scene.Params.CoordMinLimit) {
			minLimit[i] = scene.Params.CoordMinLimit[i]
		}
		if i < len(scene.Params.CoordMaxLimit) {
			maxLimit[i] = scene.Params.CoordMaxLimit[i]
		}
	}

	grid := refimpl.NewVoxelGrid(100, 100, 100, 0.05, r3.Vector{X: -2.5, Y: -2.5, Z: -2.5})
	robot := refimpl.NewStubRobotModel(minLimit, maxLimit, linkLength, continuous)
	collider := refimpl.SphereSweepChecker{Robot: robot, Grid: grid, PlanningLink: scene.Params.PlanningLink, SegmentSamples: 4}
	actions := refimpl.PerJointActionSet{Delta: scene.Params.CoordDelta, CoarseOffset: scene.Params.MaxMprimOffset}

	env := lattice.New(lattice.Config{
		Params:   scene.Params,
		Robot:    robot,
		Collider: collider,
		Grid:     grid,
		Actions:  actions,
		Logger:   logger,
	})

	env.SetStart(scene.Start)

	tol := make([]float64, numJoints)
	for i := range tol {
		if i < len(scene.Params.CoordDelta) {
			tol[i] = math.Max(scene.Params.CoordDelta[i]*0.5, 1e-6)
		}
	}
	if !env.SetGoalConfiguration(scene.Goal, tol) {
		return fmt.Errorf("goal configuration %v rejected", scene.Goal)
	}

	result := search.Run(env, logger, c.Int("max-expansions"))
	if !result.Found {
		fmt.Printf("no plan found after %d expansions\n", result.Expansions)
		return nil
	}

	fmt.Printf("plan found: cost=%d expansions=%d states=%d\n", result.Cost, result.Expansions, env.SizeCreated())
	trajectory := env.PathToTrajectory(result.Path)
	for i, angles := range trajectory {
		fmt.Printf("  [%d] %v\n", i, angles)
	}

	if c.Bool("dump-walls") {
		fmt.Println("(wall dump requires a scene-level grid; the demo's dense reference grid carries no obstacles by default)")
	}

	return nil
}
