package main

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/treewrap/treewrap"
	"github.com/treewrap/treewrap/irtree"
)

func encodeYAML(w io.Writer, root *irtree.Node) error {
	d, err := yaml.Marshal(toYAML(root))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// toYAML converts a native tree into goccy's ordered value form so
// object members encode in stored order.
func toYAML(n *irtree.Node) any {
	switch n.Kind {
	case treewrap.BoolKind:
		return n.Bool
	case treewrap.IntegerKind:
		return n.Int
	case treewrap.DoubleKind:
		return n.Float
	case treewrap.StringKind:
		return n.Str
	case treewrap.ArrayKind:
		res := make([]any, len(n.Elems))
		for i, e := range n.Elems {
			res[i] = toYAML(e)
		}
		return res
	case treewrap.ObjectKind:
		res := make(yaml.MapSlice, len(n.Keys))
		for i := range n.Keys {
			res[i] = yaml.MapItem{Key: n.Keys[i], Value: toYAML(n.Vals[i])}
		}
		return res
	default:
		return nil
	}
}
