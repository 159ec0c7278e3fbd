package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Debug   bool             `help:"Enable debug logging"`

	Fill   FillCmd   `cmd:"" help:"Fill every node of a graph and print a summary"`
	Verify VerifyCmd `cmd:"" help:"Check that fills are identical across worker counts"`
	Sample SampleCmd `cmd:"" help:"Print raw generator values for a seed pair"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("ndrandom"),
		kong.Description("Deterministic, index-addressable random tensor fills"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
