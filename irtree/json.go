package irtree

import (
	"bytes"
	"encoding/json"

	"github.com/treewrap/treewrap"
)

// MarshalJSON encodes the node's document form, with object members
// in their stored order.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeJSON(&buf, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeJSON(buf *bytes.Buffer, n *Node) error {
	switch n.Kind {
	case treewrap.NullKind:
		buf.WriteString("null")
	case treewrap.BoolKind:
		if n.Bool {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case treewrap.IntegerKind, treewrap.DoubleKind, treewrap.StringKind:
		var v any
		switch n.Kind {
		case treewrap.IntegerKind:
			v = n.Int
		case treewrap.DoubleKind:
			v = n.Float
		default:
			v = n.Str
		}
		d, err := json.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(d)
	case treewrap.ArrayKind:
		buf.WriteByte('[')
		for i, e := range n.Elems {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeJSON(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case treewrap.ObjectKind:
		buf.WriteByte('{')
		for i := range n.Keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(n.Keys[i])
			if err != nil {
				return err
			}
			buf.Write(k)
			buf.WriteByte(':')
			if err := encodeJSON(buf, n.Vals[i]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}
