package irtree

import (
	"fmt"
	"iter"

	"github.com/treewrap/treewrap"
)

// ArrayOf constructs an array view over n. A nil n yields an empty
// view; a bound n of any other kind fails with ErrTypeMismatch.
func ArrayOf(n *Node) (treewrap.Array, error) {
	if n != nil && n.Kind != treewrap.ArrayKind {
		return nil, fmt.Errorf("%w: %s is not an array", treewrap.ErrTypeMismatch, n.Kind)
	}
	return arrayView{n}, nil
}

// ObjectOf constructs an object view over n. A nil n yields an empty
// view; a bound n of any other kind fails with ErrTypeMismatch.
func ObjectOf(n *Node) (treewrap.Object, error) {
	if n != nil && n.Kind != treewrap.ObjectKind {
		return nil, fmt.Errorf("%w: %s is not an object", treewrap.ErrTypeMismatch, n.Kind)
	}
	return objectView{n}, nil
}

type arrayView struct {
	n *Node
}

func (a arrayView) Size() int {
	if a.n == nil {
		return 0
	}
	return len(a.n.Elems)
}

func (a arrayView) Elem(i int) treewrap.Adapter {
	return Wrap(a.n.Elems[i])
}

func (a arrayView) Elems() iter.Seq[treewrap.Adapter] {
	return func(yield func(treewrap.Adapter) bool) {
		if a.n == nil {
			return
		}
		for _, e := range a.n.Elems {
			if !yield(Wrap(e)) {
				return
			}
		}
	}
}

type mutArrayView struct {
	arrayView
}

func (a mutArrayView) Create() treewrap.Mutable {
	if a.n == nil {
		return WrapMutable(nil)
	}
	a.n.Append(Null())
	return WrapMutable(a.n.Elems[len(a.n.Elems)-1])
}

func (a mutArrayView) MutElem(i int) treewrap.Mutable {
	return WrapMutable(a.n.Elems[i])
}

type objectView struct {
	n *Node
}

func (o objectView) Size() int {
	if o.n == nil {
		return 0
	}
	return len(o.n.Keys)
}

func (o objectView) Member(i int) (string, treewrap.Adapter) {
	return o.n.Keys[i], Wrap(o.n.Vals[i])
}

func (o objectView) Members() iter.Seq2[string, treewrap.Adapter] {
	return func(yield func(string, treewrap.Adapter) bool) {
		if o.n == nil {
			return
		}
		for i := range o.n.Keys {
			if !yield(o.n.Keys[i], Wrap(o.n.Vals[i])) {
				return
			}
		}
	}
}

func (o objectView) Find(name string) (treewrap.Adapter, bool) {
	if o.n == nil {
		return nil, false
	}
	if v := o.n.Get(name); v != nil {
		return Wrap(v), true
	}
	return nil, false
}

type mutObjectView struct {
	objectView
}

func (o mutObjectView) Create(name string) treewrap.Mutable {
	if o.n == nil {
		return WrapMutable(nil)
	}
	if v := o.n.Get(name); v != nil {
		return WrapMutable(v)
	}
	v := Null()
	o.n.Keys = append(o.n.Keys, name)
	o.n.Vals = append(o.n.Vals, v)
	return WrapMutable(v)
}
