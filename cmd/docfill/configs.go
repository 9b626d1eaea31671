package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/scott-cotton/cli"
)

type docFormat int

const (
	autoFormat docFormat = iota
	jsonFormat
	yamlFormat
)

func parseDocFormat(v string) (docFormat, error) {
	switch strings.ToLower(v) {
	case "json", "j":
		return jsonFormat, nil
	case "yaml", "yml", "y":
		return yamlFormat, nil
	}
	return autoFormat, fmt.Errorf("unknown format %q", v)
}

// formatFor resolves a format from an explicit flag or the file
// extension, defaulting to JSON.
func formatFor(explicit docFormat, path string) docFormat {
	if explicit != autoFormat {
		return explicit
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlFormat
	default:
		return jsonFormat
	}
}

type MainConfig struct {
	Diff  bool `cli:"name=diff desc='print a diff of the target instead of the result'"`
	Color bool `cli:"name=color desc='force colored diff output'"`

	DefaultsFormat docFormat
	TargetFormat   docFormat
	OutFormat      docFormat

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) fmtFunc(fp *docFormat) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := parseDocFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = f
		return f, nil
	})
}
