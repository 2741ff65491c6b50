// Package config decodes planning parameters from an attribute map (the
// Viam-family config idiom) or a YAML scene file, into
// collab.PlanningParams.
package config

import (
	"os"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sbpl-go/armlattice/collab"
)

// ErrMissingNumJoints is returned by Decode/LoadSceneYAML when the
// resulting params have a non-positive joint count.
var ErrMissingNumJoints = errors.New("config: num_joints must be positive")

// Decode builds a collab.PlanningParams from an attribute map, the way
// a Viam-family component decodes its config attributes.
func Decode(attrs map[string]interface{}) (collab.PlanningParams, error) {
	var params collab.PlanningParams
	if err := mapstructure.Decode(attrs, &params); err != nil {
		return collab.PlanningParams{}, errors.Wrap(err, "config: decode planning params")
	}
	if err := validate(params); err != nil {
		return collab.PlanningParams{}, err
	}
	return params, nil
}

// Scene is a demo/test fixture bundling planning params with a named
// start and goal configuration, loadable from YAML.
type Scene struct {
	Params collab.PlanningParams `yaml:"planning_params"`
	Start  []float64             `yaml:"start"`
	Goal   []float64             `yaml:"goal"`
	Name   string                `yaml:"name"`
}

// LoadSceneYAML reads and parses a scene file from path.
func LoadSceneYAML(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, errors.Wrapf(err, "config: read scene file %q", path)
	}
	var scene Scene
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return Scene{}, errors.Wrapf(err, "config: parse scene file %q", path)
	}
	if err := validate(scene.Params); err != nil {
		return Scene{}, err
	}
	return scene, nil
}

func validate(p collab.PlanningParams) error {
	if p.NumJoints <= 0 {
		return ErrMissingNumJoints
	}
	if len(p.CoordDelta) < p.NumJoints {
		return errors.Errorf("config: coord_delta has %d entries, want %d", len(p.CoordDelta), p.NumJoints)
	}
	return nil
}
