package irtree

import "github.com/treewrap/treewrap"

// Wrap returns a read-only handle over n. A nil n is an unbound
// handle.
func Wrap(n *Node) treewrap.Adapter {
	return value{n}
}

// WrapMutable returns a writable handle over n. A nil n is an
// unbound handle whose writes are no-ops.
func WrapMutable(n *Node) treewrap.Mutable {
	return mutValue{value{n}}
}

type value struct {
	n *Node
}

func (v value) Kind() treewrap.Kind {
	if v.n == nil {
		return treewrap.NullKind
	}
	return v.n.Kind
}

func (v value) GetBool() (bool, bool) {
	if v.Kind() != treewrap.BoolKind {
		return false, false
	}
	return v.n.Bool, true
}

func (v value) GetInteger() (int64, bool) {
	if v.Kind() != treewrap.IntegerKind {
		return 0, false
	}
	return v.n.Int, true
}

func (v value) GetDouble() (float64, bool) {
	if v.Kind() != treewrap.DoubleKind {
		return 0, false
	}
	return v.n.Float, true
}

func (v value) GetString() (string, bool) {
	if v.Kind() != treewrap.StringKind {
		return "", false
	}
	return v.n.Str, true
}

func (v value) GetArray() (treewrap.Array, bool) {
	if v.Kind() != treewrap.ArrayKind {
		return nil, false
	}
	return arrayView{v.n}, true
}

func (v value) GetObject() (treewrap.Object, bool) {
	if v.Kind() != treewrap.ObjectKind {
		return nil, false
	}
	return objectView{v.n}, true
}

func (v value) Freeze() treewrap.Frozen {
	if v.n == nil {
		return frozen{Null()}
	}
	return frozen{v.n.Clone()}
}

func (v value) HasStrictTypes() bool {
	return true
}

type mutValue struct {
	value
}

func (v mutValue) SetAsArray() {
	if v.n == nil || v.n.Kind == treewrap.ArrayKind {
		return
	}
	*v.n = Node{Kind: treewrap.ArrayKind}
}

func (v mutValue) SetAsObject() {
	if v.n == nil || v.n.Kind == treewrap.ObjectKind {
		return
	}
	*v.n = Node{Kind: treewrap.ObjectKind}
}

func (v mutValue) SetBool(b bool) {
	if v.n == nil {
		return
	}
	*v.n = Node{Kind: treewrap.BoolKind, Bool: b}
}

func (v mutValue) SetDouble(f float64) {
	if v.n == nil {
		return
	}
	*v.n = Node{Kind: treewrap.DoubleKind, Float: f}
}

func (v mutValue) SetInteger(i int64) {
	if v.n == nil {
		return
	}
	*v.n = Node{Kind: treewrap.IntegerKind, Int: i}
}

func (v mutValue) SetString(s string) {
	if v.n == nil {
		return
	}
	*v.n = Node{Kind: treewrap.StringKind, Str: s}
}

func (v mutValue) GetMutArray() (treewrap.MutableArray, bool) {
	if v.Kind() != treewrap.ArrayKind {
		return nil, false
	}
	return mutArrayView{arrayView{v.n}}, true
}

func (v mutValue) GetMutObject() (treewrap.MutableObject, bool) {
	if v.Kind() != treewrap.ObjectKind {
		return nil, false
	}
	return mutObjectView{objectView{v.n}}, true
}
