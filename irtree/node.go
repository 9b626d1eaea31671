// Package irtree is the native tree representation: an owned,
// pointer-based value tree with ordered object members. It supports
// both read-only and mutable wrapping.
package irtree

import (
	"maps"
	"slices"

	"github.com/treewrap/treewrap"
)

// Node holds one value. Objects keep members in Keys/Vals in
// insertion order; arrays keep elements in Elems. Scalar fields are
// meaningful only for the matching kind.
type Node struct {
	Kind  treewrap.Kind
	Bool  bool
	Int   int64
	Float float64
	Str   string

	Keys  []string
	Vals  []*Node
	Elems []*Node
}

func Null() *Node {
	return &Node{Kind: treewrap.NullKind}
}

func FromBool(v bool) *Node {
	return &Node{Kind: treewrap.BoolKind, Bool: v}
}

func FromInt(v int64) *Node {
	return &Node{Kind: treewrap.IntegerKind, Int: v}
}

func FromFloat(v float64) *Node {
	return &Node{Kind: treewrap.DoubleKind, Float: v}
}

func FromString(v string) *Node {
	return &Node{Kind: treewrap.StringKind, Str: v}
}

func FromSlice(elems []*Node) *Node {
	return &Node{Kind: treewrap.ArrayKind, Elems: elems}
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Kind: treewrap.ObjectKind}
	res.Keys = make([]string, len(kvs))
	res.Vals = make([]*Node, len(kvs))
	for i := range kvs {
		res.Keys[i] = kvs[i].Key
		res.Vals[i] = kvs[i].Val
	}
	return res
}

// FromMap builds an object with members in sorted key order, since a
// Go map has none of its own.
func FromMap(m map[string]*Node) *Node {
	res := &Node{Kind: treewrap.ObjectKind}
	keys := slices.Sorted(maps.Keys(m))
	res.Keys = make([]string, len(keys))
	res.Vals = make([]*Node, len(keys))
	for i, key := range keys {
		res.Keys[i] = key
		res.Vals[i] = m[key]
	}
	return res
}

// Get returns the member named field, or nil. Exact match, linear
// scan.
func (n *Node) Get(field string) *Node {
	for i := range n.Keys {
		if n.Keys[i] == field {
			return n.Vals[i]
		}
	}
	return nil
}

// Put sets the member named field, appending a new member when
// absent.
func (n *Node) Put(field string, v *Node) {
	for i := range n.Keys {
		if n.Keys[i] == field {
			n.Vals[i] = v
			return
		}
	}
	n.Keys = append(n.Keys, field)
	n.Vals = append(n.Vals, v)
}

func (n *Node) Append(v *Node) {
	n.Elems = append(n.Elems, v)
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

// CloneTo deep-copies n's value into dst, replacing whatever dst
// held.
func (n *Node) CloneTo(dst *Node) *Node {
	dst.Kind = n.Kind
	dst.Bool = n.Bool
	dst.Int = n.Int
	dst.Float = n.Float
	dst.Str = n.Str
	dst.Keys = slices.Clone(n.Keys)
	dst.Vals = make([]*Node, len(n.Vals))
	for i, v := range n.Vals {
		dst.Vals[i] = v.Clone()
	}
	dst.Elems = make([]*Node, len(n.Elems))
	for i, v := range n.Elems {
		dst.Elems[i] = v.Clone()
	}
	if len(dst.Vals) == 0 {
		dst.Vals = nil
	}
	if len(dst.Elems) == 0 {
		dst.Elems = nil
	}
	return dst
}

// Visit walks n pre- and post-order. Returning dive=false from the
// pre-order call skips children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, v := range n.Vals {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
		for _, v := range n.Elems {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
