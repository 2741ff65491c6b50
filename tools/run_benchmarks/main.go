// Package main runs the demo search driver against one or more lattice
// scene files and reports expansion counts, cost, and wall-clock time
// as JSON, one object per scene.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/golang/geo/r3"

	"github.com/sbpl-go/armlattice/collab/refimpl"
	"github.com/sbpl-go/armlattice/config"
	"github.com/sbpl-go/armlattice/internal/search"
	"github.com/sbpl-go/armlattice/lattice"
)

// BenchmarkResult is one scene's outcome.
type BenchmarkResult struct {
	Scene         string  `json:"scene"`
	Found         bool    `json:"found"`
	Cost          int     `json:"cost"`
	Expansions    int     `json:"expansions"`
	PathLength    int     `json:"path_length"`
	RuntimeMillis float64 `json:"runtime_ms"`
	Error         string  `json:"error,omitempty"`
}

func main() {
	maxExpansions := flag.Int("max-expansions", 100000, "expansion budget per scene")
	flag.Parse()

	scenes := flag.Args()
	if len(scenes) == 0 {
		fmt.Fprintln(os.Stderr, "run_benchmarks: usage: run_benchmarks [-max-expansions N] scene.yaml [scene2.yaml ...]")
		os.Exit(2)
	}

	results := make([]BenchmarkResult, 0, len(scenes))
	for _, path := range scenes {
		results = append(results, runScene(path, *maxExpansions))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		fmt.Fprintln(os.Stderr, "run_benchmarks: encode results:", err)
		os.Exit(1)
	}
}

func runScene(path string, maxExpansions int) BenchmarkResult {
	result := BenchmarkResult{Scene: path}

	scene, err := config.LoadSceneYAML(path)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	numJoints := scene.Params.NumJoints
	linkLength := make([]float64, numJoints)
	minLimit := make([]float64, numJoints)
	maxLimit := make([]float64, numJoints)
	for i := range linkLength {
		linkLength[i] = 0.1
		if i < len(scene.Params.CoordMinLimit) {
			minLimit[i] = scene.Params.CoordMinLimit[i]
		}
		if i < len(scene.Params.CoordMaxLimit) {
			maxLimit[i] = scene.Params.CoordMaxLimit[i]
		}
	}
	continuous := scene.Params.CoordContinuous
	if len(continuous) < numJoints {
		continuous = make([]bool, numJoints)
		for i := range continuous {
			continuous[i] = true
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
	})

	env.SetStart(scene.Start)
	tol := uniformTolerance(scene.Params.CoordDelta, numJoints)
	if !env.SetGoalConfiguration(scene.Goal, tol) {
		result.Error = "goal configuration rejected (out of bounds or FK failure)"
		return result
	}

	started := time.Now()
	outcome := search.Run(env, nil, maxExpansions)
	result.RuntimeMillis = float64(time.Since(started).Microseconds()) / 1000.0
	result.Found = outcome.Found
	result.Cost = outcome.Cost
	result.Expansions = outcome.Expansions
	result.PathLength = len(outcome.Path)
	return result
}

func uniformTolerance(delta []float64, numJoints int) []float64 {
	tol := make([]float64, numJoints)
	for i := range tol {
		if i < len(delta) {
			tol[i] = math.Max(delta[i]*0.5, 1e-6)
		}
	}
	return tol
}
