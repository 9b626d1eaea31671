package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/treewrap/treewrap"
	"github.com/treewrap/treewrap/debug"
	"github.com/treewrap/treewrap/irtree"
	"github.com/treewrap/treewrap/jsontree"
	"github.com/treewrap/treewrap/yamltree"

	"github.com/scott-cotton/cli"
)

func docFill(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: docfill requires a defaults file and a target file", cli.ErrUsage)
	}
	defaults, err := loadDoc(cc, args[0], formatFor(cfg.DefaultsFormat, args[0]))
	if err != nil {
		return fmt.Errorf("error loading defaults %s: %w", args[0], err)
	}
	target, err := loadDoc(cc, args[1], formatFor(cfg.TargetFormat, args[1]))
	if err != nil {
		return fmt.Errorf("error loading target %s: %w", args[1], err)
	}

	// materialize the target into the native tree, whatever its
	// input representation was
	root := irtree.Null()
	if err := treewrap.Assign(irtree.WrapMutable(root), target); err != nil {
		return fmt.Errorf("error materializing target: %w", err)
	}
	before, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return fmt.Errorf("internal error: %w", err)
	}

	if err := fill(irtree.WrapMutable(root), defaults); err != nil {
		return fmt.Errorf("error filling defaults: %w", err)
	}

	if cfg.Diff {
		after, err := json.MarshalIndent(root, "", "  ")
		if err != nil {
			return fmt.Errorf("internal error: %w", err)
		}
		writeDiff(cc.Out, cfg.colorize(cc.Out), string(before), string(after))
		return nil
	}

	outFmt := cfg.OutFormat
	if outFmt == autoFormat {
		outFmt = formatFor(cfg.TargetFormat, args[1])
	}
	if err := encodeResult(cc.Out, root, outFmt); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

// fill inserts members of the defaults document that are absent from
// dst, descending where both sides hold objects. Existing values are
// never overwritten.
func fill(dst treewrap.Mutable, src treewrap.Adapter) error {
	srcObj, ok := src.GetObject()
	if !ok {
		// non-object defaults apply only to an empty target
		if dst.Kind() == treewrap.NullKind {
			return src.Freeze().SetInto(dst)
		}
		return nil
	}
	if dst.Kind() == treewrap.NullKind {
		dst.SetAsObject()
	}
	dstObj, ok := dst.GetMutObject()
	if !ok {
		// target holds a non-object here; leave it alone
		return nil
	}
	for name, defVal := range srcObj.Members() {
		existing, found := dstObj.Find(name)
		if !found {
			if debug.Fill() {
				debug.Logf("fill: inserting %q\n", name)
			}
			if err := defVal.Freeze().SetInto(dstObj.Create(name)); err != nil {
				return err
			}
			continue
		}
		if existing.Kind() == treewrap.ObjectKind && defVal.Kind() == treewrap.ObjectKind {
			if err := fill(dstObj.Create(name), defVal); err != nil {
				return err
			}
		}
	}
	return nil
}

func loadDoc(cc *cli.Context, path string, fmat docFormat) (treewrap.Adapter, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	switch fmat {
	case yamlFormat:
		v, err := yamltree.Decode(d)
		if err != nil {
			return nil, err
		}
		return yamltree.Wrap(v), nil
	default:
		v, err := jsontree.Decode(d)
		if err != nil {
			return nil, err
		}
		return jsontree.Wrap(&v), nil
	}
}

func encodeResult(w io.Writer, root *irtree.Node, fmat docFormat) error {
	switch fmat {
	case yamlFormat:
		return encodeYAML(w, root)
	default:
		d, err := json.MarshalIndent(root, "", "  ")
		if err != nil {
			return err
		}
		if _, err := w.Write(d); err != nil {
			return err
		}
		_, err = w.Write([]byte("\n"))
		return err
	}
}

func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isTerminal(f)
}
