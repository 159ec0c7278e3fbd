package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Sword-zgz/deeplearning4j/random"
)

type SampleCmd struct {
	Root    int64   `help:"Graph-level root seed (root and node both 0 selects the wall clock)"`
	Node    int64   `help:"Node seed"`
	Rewind  int     `help:"Rehash-advance the node state this many times first"`
	Indices []int64 `arg:"" optional:"" help:"Element indices to derive (default 0..9)"`
}

func (c *SampleCmd) Run(cli *CLI) error {
	logger := newLogger("info", cli.Debug)

	seed := random.SeedFrom(c.Root, c.Node)
	g := random.New(seed)
	g.Rewind(c.Rewind)
	logger.Debug("generator ready",
		"seed", seed,
		"root_state", g.RootState(),
		"node_state", fmt.Sprintf("%016x", g.NodeState()))

	indices := c.Indices
	if len(indices) == 0 {
		for i := int64(0); i < 10; i++ {
			indices = append(indices, i)
		}
	}

	fmt.Fprintln(os.Stdout, renderSamples(g, indices))
	return nil
}

func formatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}
