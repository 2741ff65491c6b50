// Package main generates deterministic lattice planning scenes: a
// joint-variable descriptor, a start configuration and a goal joint
// configuration, emitted as the YAML scene format config.LoadSceneYAML
// reads. It emits no voxel obstacles: -walls only prints a note to
// stderr, since the scene format has no obstacle field.
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sbpl-go/armlattice/collab"
	"github.com/sbpl-go/armlattice/config"
)

func main() {
	var (
		seed      = flag.Int64("seed", 1, "PRNG seed for reproducible generation")
		numJoints = flag.Int("joints", 7, "number of planning joints")
		name      = flag.String("name", "generated-scene", "scene name")
		out       = flag.String("out", "", "output file (default: stdout)")
		wallCount = flag.Int("walls", 0, "number of wall cells requested (only reported on stderr; not emitted)")
	)
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	delta := make([]float64, *numJoints)
	continuous := make([]bool, *numJoints)
	start := make([]float64, *numJoints)
	goal := make([]float64, *numJoints)
	for i := range delta {
		delta[i] = math.Pi / 90
		continuous[i] = true
		start[i] = 0
		goal[i] = delta[i] * float64(1+rng.Intn(4))
	}

	scene := config.Scene{
		Name:  *name,
		Start: start,
		Goal:  goal,
		Params: collab.PlanningParams{
			NumJoints:                *numJoints,
			CoordDelta:               delta,
			CoordContinuous:          continuous,
			CostMultiplier:           10,
			CostPerCell:              100,
			CostPerMeter:             1,
			UseBFSHeuristic:          true,
			PlanningLinkSphereRadius: 0.02,
			MaxMprimOffset:           2,
			PlanningLink:             "ee",
		},
	}

	data, err := yaml.Marshal(scene)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gen_instances: marshal scene:", err)
		os.Exit(1)
	}

	if *wallCount > 0 {
		fmt.Fprintf(os.Stderr, "gen_instances: note: %d wall cells requested but scene format carries only start/goal/params; load the scene into a refimpl.VoxelGrid and call SetObstacle to place them\n", *wallCount)
	}

	if *out == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "gen_instances: write output:", err)
		os.Exit(1)
	}
}
