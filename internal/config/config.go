// Package config loads the HCL description of a random-fill graph: the
// graph-level seed and the nodes that each produce one or more tensors.
package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/Sword-zgz/deeplearning4j/random"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Op names accepted in node blocks.
const (
	OpUniform         = "uniform"
	OpIntegers        = "integers"
	OpNormal          = "normal"
	OpTruncatedNormal = "truncated_normal"
	OpBernoulli       = "bernoulli"
	OpDropout         = "dropout"
	OpXavier          = "xavier"
)

var validOps = map[string]bool{
	OpUniform:         true,
	OpIntegers:        true,
	OpNormal:          true,
	OpTruncatedNormal: true,
	OpBernoulli:       true,
	OpDropout:         true,
	OpXavier:          true,
}

// GraphConfig represents a complete graph description
type GraphConfig struct {
	Graph GraphSettings `hcl:"graph,block"`
	Nodes []NodeConfig  `hcl:"node,block"`
}

// GraphSettings contains graph-level configuration
type GraphSettings struct {
	RootSeed  int64  `hcl:"root_seed,optional"`
	Workers   int    `hcl:"workers,optional"`
	ChunkSize int    `hcl:"chunk_size,optional"`
	LogLevel  string `hcl:"log_level,optional"`
}

// NodeConfig defines one random op in the graph
type NodeConfig struct {
	Name   string  `hcl:"name,label"`
	Seed   int64   `hcl:"seed,optional"`
	Op     string  `hcl:"op"`
	Size   int     `hcl:"size"`
	From   float64 `hcl:"from,optional"`
	To     float64 `hcl:"to,optional"`
	Mean   float64 `hcl:"mean,optional"`
	StdDev float64 `hcl:"stddev,optional"`
	P      float64 `hcl:"p,optional"`
	FanIn  int     `hcl:"fan_in,optional"`
	FanOut int     `hcl:"fan_out,optional"`
	Fills  int     `hcl:"fills,optional"`
}

// DefaultGraphConfig returns default graph configuration
func DefaultGraphConfig() *GraphConfig {
	return &GraphConfig{
		Graph: GraphSettings{
			RootSeed:  42,
			Workers:   runtime.GOMAXPROCS(0),
			ChunkSize: 4096,
			LogLevel:  "info",
		},
		Nodes: []NodeConfig{
			{
				Name:  "weights",
				Seed:  7,
				Op:    OpUniform,
				Size:  100000,
				From:  -1,
				To:    1,
				Fills: 1,
			},
			{
				Name:   "noise",
				Seed:   8,
				Op:     OpNormal,
				Size:   100000,
				StdDev: 1,
				Fills:  1,
			},
		},
	}
}

// LoadGraphConfig loads graph configuration from an HCL file. A missing file
// yields the default configuration.
func LoadGraphConfig(filename string) (*GraphConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultGraphConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config GraphConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *GraphConfig) applyDefaults() {
	if c.Graph.Workers == 0 {
		c.Graph.Workers = runtime.GOMAXPROCS(0)
	}
	if c.Graph.ChunkSize == 0 {
		c.Graph.ChunkSize = 4096
	}
	if c.Graph.LogLevel == "" {
		c.Graph.LogLevel = "info"
	}

	for i := range c.Nodes {
		n := &c.Nodes[i]
		if n.Fills == 0 {
			n.Fills = 1
		}
		switch n.Op {
		case OpUniform:
			if n.From == 0 && n.To == 0 {
				n.To = 1
			}
		case OpNormal, OpTruncatedNormal:
			if n.StdDev == 0 {
				n.StdDev = 1
			}
		case OpBernoulli, OpDropout:
			if n.P == 0 {
				n.P = 0.5
			}
		}
	}
}

// Validate validates the graph configuration
func (c *GraphConfig) Validate() error {
	if c.Graph.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Graph.Workers)
	}
	if c.Graph.ChunkSize < 1 {
		return fmt.Errorf("chunk_size must be positive, got %d", c.Graph.ChunkSize)
	}
	if len(c.Nodes) == 0 {
		return fmt.Errorf("at least one node must be configured")
	}

	seen := make(map[string]bool, len(c.Nodes))
	for _, n := range c.Nodes {
		if seen[n.Name] {
			return fmt.Errorf("node %s: duplicate name", n.Name)
		}
		seen[n.Name] = true

		if !validOps[n.Op] {
			return fmt.Errorf("node %s: invalid op %s", n.Name, n.Op)
		}
		if n.Size < 0 {
			return fmt.Errorf("node %s: size must not be negative", n.Name)
		}
		if n.Fills < 1 {
			return fmt.Errorf("node %s: fills must be positive", n.Name)
		}

		switch n.Op {
		case OpUniform, OpIntegers:
			if !(n.From < n.To) {
				return fmt.Errorf("node %s: from (%v) must be less than to (%v)", n.Name, n.From, n.To)
			}
		case OpNormal, OpTruncatedNormal:
			if n.StdDev < 0 {
				return fmt.Errorf("node %s: stddev must not be negative", n.Name)
			}
		case OpBernoulli:
			if n.P < 0 || n.P > 1 {
				return fmt.Errorf("node %s: p must be in [0, 1]", n.Name)
			}
		case OpDropout:
			if n.P < 0 || n.P >= 1 {
				return fmt.Errorf("node %s: p must be in [0, 1)", n.Name)
			}
		case OpXavier:
			if n.FanIn < 1 || n.FanOut < 1 {
				return fmt.Errorf("node %s: fan_in and fan_out must be positive", n.Name)
			}
		}
	}

	return nil
}

// Seed returns the seed policy for a node. A zero root seed combined with a
// zero node seed means no seed was supplied and selects the time-based
// policy.
func (c *GraphConfig) Seed(n NodeConfig) random.Seed {
	return random.SeedFrom(c.Graph.RootSeed, n.Seed)
}

// NodeByName returns a node configuration by name
func (c *GraphConfig) NodeByName(name string) *NodeConfig {
	for i := range c.Nodes {
		if c.Nodes[i].Name == name {
			return &c.Nodes[i]
		}
	}
	return nil
}
