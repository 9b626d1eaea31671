// Package jsontree is an ordered, mutable JSON document
// representation. Values are one of nil, bool, int64, float64,
// string, *Array, or *Object; objects keep members in document order,
// which a Go map cannot provide.
package jsontree

// Object holds members as parallel key/value slices in document
// order. Keys are unique and compared by exact byte equality.
type Object struct {
	keys []string
	vals []any
}

func NewObject() *Object {
	return &Object{}
}

func (o *Object) Len() int {
	return len(o.keys)
}

func (o *Object) At(i int) (string, any) {
	return o.keys[i], o.vals[i]
}

func (o *Object) Get(name string) (any, bool) {
	for i := range o.keys {
		if o.keys[i] == name {
			return o.vals[i], true
		}
	}
	return nil, false
}

// Put sets the member named name, appending a new member when
// absent.
func (o *Object) Put(name string, v any) *Object {
	for i := range o.keys {
		if o.keys[i] == name {
			o.vals[i] = v
			return o
		}
	}
	o.keys = append(o.keys, name)
	o.vals = append(o.vals, v)
	return o
}

// Array is an ordered sequence of values.
type Array struct {
	elems []any
}

func NewArray(elems ...any) *Array {
	return &Array{elems: elems}
}

func (a *Array) Len() int {
	return len(a.elems)
}

func (a *Array) At(i int) any {
	return a.elems[i]
}

func (a *Array) Append(v any) *Array {
	a.elems = append(a.elems, v)
	return a
}

// Copy deep-copies a value tree.
func Copy(v any) any {
	switch t := v.(type) {
	case *Object:
		res := &Object{
			keys: make([]string, len(t.keys)),
			vals: make([]any, len(t.vals)),
		}
		copy(res.keys, t.keys)
		for i, e := range t.vals {
			res.vals[i] = Copy(e)
		}
		return res
	case *Array:
		res := &Array{elems: make([]any, len(t.elems))}
		for i, e := range t.elems {
			res.elems[i] = Copy(e)
		}
		return res
	default:
		return v
	}
}
