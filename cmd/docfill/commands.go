package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "D",
			Aliases:     []string{"dfmt"},
			Description: "defaults format: json/j, yaml/y (default: by extension)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.DefaultsFormat), "(format)"),
		},
		&cli.Opt{
			Name:        "T",
			Aliases:     []string{"tfmt"},
			Description: "target format: json/j, yaml/y (default: by extension)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.TargetFormat), "(format)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y (default: target format)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "docfill").
		WithSynopsis("docfill [opts] <defaults-file> <target-file>").
		WithDescription(description).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return docFill(cfg, cc, args)
		})
}

const description = `docfill fills members absent from a target document with values
from a defaults document.

Both documents may be JSON or YAML, independently; the defaults are
frozen once and materialized into the target across representations.
Existing target values are never overwritten, and merging is additive:
members present in the target but absent from the defaults survive.

Use '-' as the target file to read it from stdin.`
