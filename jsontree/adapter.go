package jsontree

import (
	"fmt"
	"iter"

	"github.com/treewrap/treewrap"
)

// A node reference is a slot: the document root, an array element, or
// an object member. Element and member slots address their container
// by pointer and index, so handles stay valid while the container
// grows.
type slot interface {
	load() any
	store(v any)
}

type rootSlot struct {
	p *any
}

func (s rootSlot) load() any   { return *s.p }
func (s rootSlot) store(v any) { *s.p = v }

type elemSlot struct {
	a *Array
	i int
}

func (s elemSlot) load() any   { return s.a.elems[s.i] }
func (s elemSlot) store(v any) { s.a.elems[s.i] = v }

type memberSlot struct {
	o *Object
	i int
}

func (s memberSlot) load() any   { return s.o.vals[s.i] }
func (s memberSlot) store(v any) { s.o.vals[s.i] = v }

// Wrap returns a read-only handle over the value at p. A nil p is an
// unbound handle.
func Wrap(p *any) treewrap.Adapter {
	if p == nil {
		return value{}
	}
	return value{rootSlot{p}}
}

// WrapMutable returns a writable handle over the value at p. A nil p
// is an unbound handle whose writes are no-ops.
func WrapMutable(p *any) treewrap.Mutable {
	if p == nil {
		return mutValue{}
	}
	return mutValue{value{rootSlot{p}}}
}

func kindOf(v any) treewrap.Kind {
	switch v.(type) {
	case nil:
		return treewrap.NullKind
	case bool:
		return treewrap.BoolKind
	case int, int64:
		return treewrap.IntegerKind
	case float64:
		return treewrap.DoubleKind
	case string:
		return treewrap.StringKind
	case *Array:
		return treewrap.ArrayKind
	case *Object:
		return treewrap.ObjectKind
	}
	return treewrap.NullKind
}

type value struct {
	s slot
}

func (v value) Kind() treewrap.Kind {
	if v.s == nil {
		return treewrap.NullKind
	}
	return kindOf(v.s.load())
}

func (v value) GetBool() (bool, bool) {
	if v.s == nil {
		return false, false
	}
	b, ok := v.s.load().(bool)
	return b, ok
}

func (v value) GetInteger() (int64, bool) {
	if v.s == nil {
		return 0, false
	}
	switch t := v.s.load().(type) {
	case int64:
		return t, true
	case int:
		return int64(t), true
	}
	return 0, false
}

func (v value) GetDouble() (float64, bool) {
	if v.s == nil {
		return 0, false
	}
	f, ok := v.s.load().(float64)
	return f, ok
}

func (v value) GetString() (string, bool) {
	if v.s == nil {
		return "", false
	}
	s, ok := v.s.load().(string)
	return s, ok
}

func (v value) GetArray() (treewrap.Array, bool) {
	if v.s == nil {
		return nil, false
	}
	a, ok := v.s.load().(*Array)
	if !ok {
		return nil, false
	}
	return arrayView{a}, true
}

func (v value) GetObject() (treewrap.Object, bool) {
	if v.s == nil {
		return nil, false
	}
	o, ok := v.s.load().(*Object)
	if !ok {
		return nil, false
	}
	return objectView{o}, true
}

func (v value) Freeze() treewrap.Frozen {
	if v.s == nil {
		return frozen{nil}
	}
	return frozen{Copy(v.s.load())}
}

func (v value) HasStrictTypes() bool {
	return true
}

type mutValue struct {
	value
}

func (v mutValue) SetAsArray() {
	if v.s == nil {
		return
	}
	if _, ok := v.s.load().(*Array); ok {
		return
	}
	v.s.store(&Array{})
}

func (v mutValue) SetAsObject() {
	if v.s == nil {
		return
	}
	if _, ok := v.s.load().(*Object); ok {
		return
	}
	v.s.store(NewObject())
}

func (v mutValue) SetBool(b bool) {
	if v.s == nil {
		return
	}
	v.s.store(b)
}

func (v mutValue) SetDouble(f float64) {
	if v.s == nil {
		return
	}
	v.s.store(f)
}

func (v mutValue) SetInteger(i int64) {
	if v.s == nil {
		return
	}
	v.s.store(i)
}

func (v mutValue) SetString(s string) {
	if v.s == nil {
		return
	}
	v.s.store(s)
}

func (v mutValue) GetMutArray() (treewrap.MutableArray, bool) {
	if v.s == nil {
		return nil, false
	}
	a, ok := v.s.load().(*Array)
	if !ok {
		return nil, false
	}
	return mutArrayView{arrayView{a}}, true
}

func (v mutValue) GetMutObject() (treewrap.MutableObject, bool) {
	if v.s == nil {
		return nil, false
	}
	o, ok := v.s.load().(*Object)
	if !ok {
		return nil, false
	}
	return mutObjectView{objectView{o}}, true
}

// ArrayOf constructs an array view over v. A nil v yields an empty
// view; any other non-array value fails with ErrTypeMismatch.
func ArrayOf(v any) (treewrap.Array, error) {
	switch t := v.(type) {
	case nil:
		return arrayView{}, nil
	case *Array:
		return arrayView{t}, nil
	}
	return nil, fmt.Errorf("%w: %s is not an array", treewrap.ErrTypeMismatch, kindOf(v))
}

// ObjectOf constructs an object view over v. A nil v yields an empty
// view; any other non-object value fails with ErrTypeMismatch.
func ObjectOf(v any) (treewrap.Object, error) {
	switch t := v.(type) {
	case nil:
		return objectView{}, nil
	case *Object:
		return objectView{t}, nil
	}
	return nil, fmt.Errorf("%w: %s is not an object", treewrap.ErrTypeMismatch, kindOf(v))
}

type arrayView struct {
	a *Array
}

func (a arrayView) Size() int {
	if a.a == nil {
		return 0
	}
	return len(a.a.elems)
}

func (a arrayView) Elem(i int) treewrap.Adapter {
	return value{elemSlot{a.a, i}}
}

func (a arrayView) Elems() iter.Seq[treewrap.Adapter] {
	return func(yield func(treewrap.Adapter) bool) {
		if a.a == nil {
			return
		}
		for i := range a.a.elems {
			if !yield(value{elemSlot{a.a, i}}) {
				return
			}
		}
	}
}

type mutArrayView struct {
	arrayView
}

func (a mutArrayView) Create() treewrap.Mutable {
	if a.a == nil {
		return mutValue{}
	}
	a.a.elems = append(a.a.elems, nil)
	return mutValue{value{elemSlot{a.a, len(a.a.elems) - 1}}}
}

func (a mutArrayView) MutElem(i int) treewrap.Mutable {
	return mutValue{value{elemSlot{a.a, i}}}
}

type objectView struct {
	o *Object
}

func (o objectView) Size() int {
	if o.o == nil {
		return 0
	}
	return len(o.o.keys)
}

func (o objectView) Member(i int) (string, treewrap.Adapter) {
	return o.o.keys[i], value{memberSlot{o.o, i}}
}

func (o objectView) Members() iter.Seq2[string, treewrap.Adapter] {
	return func(yield func(string, treewrap.Adapter) bool) {
		if o.o == nil {
			return
		}
		for i := range o.o.keys {
			if !yield(o.o.keys[i], value{memberSlot{o.o, i}}) {
				return
			}
		}
	}
}

func (o objectView) Find(name string) (treewrap.Adapter, bool) {
	if o.o == nil {
		return nil, false
	}
	for i := range o.o.keys {
		if o.o.keys[i] == name {
			return value{memberSlot{o.o, i}}, true
		}
	}
	return nil, false
}

type mutObjectView struct {
	objectView
}

func (o mutObjectView) Create(name string) treewrap.Mutable {
	if o.o == nil {
		return mutValue{}
	}
	for i := range o.o.keys {
		if o.o.keys[i] == name {
			return mutValue{value{memberSlot{o.o, i}}}
		}
	}
	o.o.keys = append(o.o.keys, name)
	o.o.vals = append(o.o.vals, nil)
	return mutValue{value{memberSlot{o.o, len(o.o.vals) - 1}}}
}
