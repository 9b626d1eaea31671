package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd())
}

// writeDiff prints a character diff of before/after. With color,
// insertions render green and deletions red; otherwise they are
// bracketed with +{} and -{} markers.
func writeDiff(w io.Writer, colorize bool, before, after string) {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(before, after, true)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			if colorize {
				fmt.Fprint(w, color.GreenString("%s", d.Text))
			} else {
				fmt.Fprintf(w, "+{%s}", d.Text)
			}
		case diffpatch.DiffDelete:
			if colorize {
				fmt.Fprint(w, color.RedString("%s", d.Text))
			} else {
				fmt.Fprintf(w, "-{%s}", d.Text)
			}
		case diffpatch.DiffEqual:
			fmt.Fprint(w, d.Text)
		}
	}
	fmt.Fprintln(w)
}
