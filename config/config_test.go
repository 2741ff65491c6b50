package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFromAttrs(t *testing.T) {
	attrs := map[string]interface{}{
		"num_joints":      3,
		"coord_delta":     []float64{0.1, 0.1, 0.1},
		"cost_multiplier": 10,
		"cost_per_cell":   100,
	}
	params, err := Decode(attrs)
	require.NoError(t, err)
	assert.Equal(t, 3, params.NumJoints)
	assert.Equal(t, 10, params.CostMultiplier)
}

func TestDecodeRejectsMissingJoints(t *testing.T) {
	_, err := Decode(map[string]interface{}{})
	assert.ErrorIs(t, err, ErrMissingNumJoints)
}

func TestLoadSceneYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	contents := `
name: e1-empty-workspace
start: [0, 0, 0]
goal: [0.1, 0, 0]
planning_params:
  num_joints: 3
  coord_delta: [0.0349, 0.0349, 0.0349]
  cost_multiplier: 10
  cost_per_cell: 100
  use_bfs_heuristic: true
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	scene, err := LoadSceneYAML(path)
	require.NoError(t, err)
	assert.Equal(t, "e1-empty-workspace", scene.Name)
	assert.Equal(t, 3, scene.Params.NumJoints)
	assert.Equal(t, []float64{0, 0, 0}, scene.Start)
}
