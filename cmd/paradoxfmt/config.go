package main

import (
	"github.com/scott-cotton/cli"
)

// Config holds the CLI's struct-tag-declared flags, spec §6's single
// command-line surface.
type Config struct {
	NoCompact        bool `cli:"name=no-compact desc='suppress block compaction'"`
	UseCountTriggers bool `cli:"name=use-count-triggers desc='prefer the count_X trigger form when converting'"`
	UseAnyTriggers   bool `cli:"name=use-any-triggers desc='prefer the any_X trigger form when converting'"`

	Main *cli.Command
}

// RootCommand builds the single paradoxfmt command: read a document from
// standard input, rewrite and print it, emit the result as JSON.
func RootCommand() *cli.Command {
	cfg := &Config{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "paradoxfmt").
		WithSynopsis("paradoxfmt [opts]").
		WithDescription("paradoxfmt rewrites and pretty-prints a Paradox-style trigger script read from standard input.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc)
		})
}
