package main

import (
	"fmt"
	"os"

	"github.com/Sword-zgz/deeplearning4j/internal/graph"
	"github.com/coder/quartz"
)

type VerifyCmd struct {
	Config  string `short:"c" default:"graph.hcl" help:"Graph configuration file (defaults are used if it does not exist)"`
	Workers []int  `short:"w" default:"1,2,8" help:"Worker counts to compare"`
}

func (c *VerifyCmd) Run(cli *CLI) error {
	cfg, err := loadConfig(c.Config)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Graph.LogLevel, cli.Debug)
	ctx := setupSignalHandler(logger)

	mismatches, err := graph.Verify(ctx, cfg, c.Workers, logger, quartz.NewReal())
	if err != nil {
		return err
	}
	if len(mismatches) > 0 {
		for _, m := range mismatches {
			fmt.Fprintln(os.Stderr, errorStyle.Render(m.String()))
		}
		return fmt.Errorf("%d tensors differ across worker counts", len(mismatches))
	}

	fmt.Fprintln(os.Stdout, successStyle.Render(
		fmt.Sprintf("all %d nodes identical across worker counts %v", len(cfg.Nodes), c.Workers)))
	return nil
}
