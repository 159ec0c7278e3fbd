package main

import (
	"fmt"
	"os"

	"github.com/Sword-zgz/deeplearning4j/internal/config"
	"github.com/Sword-zgz/deeplearning4j/internal/graph"
)

type FillCmd struct {
	Config  string `short:"c" default:"graph.hcl" help:"Graph configuration file (defaults are used if it does not exist)"`
	Out     string `short:"o" help:"Directory to dump tensors into"`
	Workers int    `short:"w" help:"Override the configured worker count"`
}

func (c *FillCmd) Run(cli *CLI) error {
	cfg, err := loadConfig(c.Config)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Graph.LogLevel, cli.Debug)
	ctx := setupSignalHandler(logger)

	opts := []graph.Option{graph.WithLogger(logger)}
	if c.Workers > 0 {
		opts = append(opts, graph.WithWorkers(c.Workers))
	}

	logger.Info("filling graph",
		"config", c.Config,
		"nodes", len(cfg.Nodes),
		"root_seed", cfg.Graph.RootSeed)

	results, err := graph.NewRunner(cfg, opts...).Run(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, renderResults(results))

	if c.Out != "" {
		paths, err := graph.WriteResults(c.Out, results)
		if err != nil {
			return err
		}
		logger.Info("wrote tensors", "dir", c.Out, "files", len(paths))
	}
	return nil
}

func loadConfig(path string) (*config.GraphConfig, error) {
	cfg, err := config.LoadGraphConfig(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}
