package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadGraphConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadGraphConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultGraphConfig(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadGraphConfig(t *testing.T) {
	path := writeConfig(t, `
graph {
  root_seed = 42
  workers   = 4
}

node "weights" {
  seed  = 7
  op    = "uniform"
  size  = 1000
  from  = -0.5
  to    = 0.5
  fills = 3
}

node "mask" {
  seed = 9
  op   = "dropout"
  size = 256
}

node "noise" {
  op   = "normal"
  size = 10
  mean = 1
}
`)

	cfg, err := LoadGraphConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, int64(42), cfg.Graph.RootSeed)
	assert.Equal(t, 4, cfg.Graph.Workers)
	assert.Equal(t, 4096, cfg.Graph.ChunkSize)
	assert.Equal(t, "info", cfg.Graph.LogLevel)
	require.Len(t, cfg.Nodes, 3)

	weights := cfg.NodeByName("weights")
	require.NotNil(t, weights)
	assert.Equal(t, OpUniform, weights.Op)
	assert.Equal(t, -0.5, weights.From)
	assert.Equal(t, 0.5, weights.To)
	assert.Equal(t, 3, weights.Fills)

	mask := cfg.NodeByName("mask")
	require.NotNil(t, mask)
	assert.Equal(t, 0.5, mask.P)
	assert.Equal(t, 1, mask.Fills)

	noise := cfg.NodeByName("noise")
	require.NotNil(t, noise)
	assert.Equal(t, 1.0, noise.StdDev)
	assert.Equal(t, 1.0, noise.Mean)

	assert.Nil(t, cfg.NodeByName("missing"))
}

func TestLoadGraphConfigParseError(t *testing.T) {
	path := writeConfig(t, `graph {`)
	_, err := LoadGraphConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse HCL file")
}

func TestLoadGraphConfigDecodeError(t *testing.T) {
	path := writeConfig(t, `
graph {}
node "x" {
  size = 10
}
`)
	_, err := LoadGraphConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode HCL")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *GraphConfig)
		wantErr string
	}{
		{"defaults", func(c *GraphConfig) {}, ""},
		{"no nodes", func(c *GraphConfig) { c.Nodes = nil }, "at least one node"},
		{"zero workers", func(c *GraphConfig) { c.Graph.Workers = 0 }, "workers"},
		{"bad op", func(c *GraphConfig) { c.Nodes[0].Op = "gamma" }, "invalid op"},
		{"duplicate", func(c *GraphConfig) { c.Nodes[1].Name = c.Nodes[0].Name }, "duplicate"},
		{"empty range", func(c *GraphConfig) { c.Nodes[0].From = 1 }, "less than"},
		{"negative stddev", func(c *GraphConfig) { c.Nodes[1].StdDev = -1 }, "stddev"},
		{"dropout one", func(c *GraphConfig) {
			c.Nodes[0].Op = OpDropout
			c.Nodes[0].P = 1
		}, "[0, 1)"},
		{"bernoulli one", func(c *GraphConfig) {
			c.Nodes[0].Op = OpBernoulli
			c.Nodes[0].P = 1
		}, ""},
		{"xavier fan", func(c *GraphConfig) { c.Nodes[0].Op = OpXavier }, "fan_in"},
		{"zero fills", func(c *GraphConfig) { c.Nodes[0].Fills = 0 }, "fills"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGraphConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSeedPolicy(t *testing.T) {
	cfg := DefaultGraphConfig()
	s := cfg.Seed(cfg.Nodes[0])
	assert.False(t, s.IsTimeBased())
	assert.Equal(t, int64(42), s.Root())
	assert.Equal(t, int64(7), s.Node())

	cfg.Graph.RootSeed = 0
	assert.True(t, cfg.Seed(NodeConfig{Name: "unseeded"}).IsTimeBased())
	assert.False(t, cfg.Seed(NodeConfig{Name: "node-only", Seed: 3}).IsTimeBased())
}
