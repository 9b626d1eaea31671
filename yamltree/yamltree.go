// Package yamltree wraps the value trees produced by goccy/go-yaml's
// ordered decoding as a read-only representation. Objects arrive as
// yaml.MapSlice, which keeps member order; there is no mutable
// wrapper, so writes through the generic protocol are no-ops over
// this representation.
//
// Scalars outside the JSON value model (timestamps and such)
// classify as strings via their textual form; anything unrecognized
// classifies as null.
package yamltree

import (
	"fmt"
	"iter"
	"math"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/treewrap/treewrap"
)

// Decode parses a YAML document with member order preserved.
func Decode(d []byte) (any, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("yaml decode: %w", err)
	}
	return v, nil
}

// Wrap returns a read-only handle over v. YAML does not distinguish
// null from absence, so Wrap(nil) serves as the unbound handle.
func Wrap(v any) treewrap.Adapter {
	return value{v}
}

func kindOf(v any) treewrap.Kind {
	switch t := v.(type) {
	case nil:
		return treewrap.NullKind
	case bool:
		return treewrap.BoolKind
	case int, int64:
		return treewrap.IntegerKind
	case uint64:
		if t > math.MaxInt64 {
			return treewrap.DoubleKind
		}
		return treewrap.IntegerKind
	case float32, float64:
		return treewrap.DoubleKind
	case string, time.Time:
		return treewrap.StringKind
	case []any:
		return treewrap.ArrayKind
	case yaml.MapSlice:
		return treewrap.ObjectKind
	}
	return treewrap.NullKind
}

type value struct {
	v any
}

func (v value) Kind() treewrap.Kind {
	return kindOf(v.v)
}

func (v value) GetBool() (bool, bool) {
	b, ok := v.v.(bool)
	return b, ok
}

func (v value) GetInteger() (int64, bool) {
	switch t := v.v.(type) {
	case int:
		return int64(t), true
	case int64:
		return t, true
	case uint64:
		if t > math.MaxInt64 {
			return 0, false
		}
		return int64(t), true
	}
	return 0, false
}

func (v value) GetDouble() (float64, bool) {
	switch t := v.v.(type) {
	case float32:
		return float64(t), true
	case float64:
		return t, true
	case uint64:
		if t > math.MaxInt64 {
			return float64(t), true
		}
	}
	return 0, false
}

func (v value) GetString() (string, bool) {
	switch t := v.v.(type) {
	case string:
		return t, true
	case time.Time:
		return t.Format(time.RFC3339), true
	}
	return "", false
}

func (v value) GetArray() (treewrap.Array, bool) {
	elems, ok := v.v.([]any)
	if !ok {
		return nil, false
	}
	return arrayView{elems}, true
}

func (v value) GetObject() (treewrap.Object, bool) {
	ms, ok := v.v.(yaml.MapSlice)
	if !ok {
		return nil, false
	}
	return objectView{ms}, true
}

func (v value) Freeze() treewrap.Frozen {
	return frozen{copyValue(v.v)}
}

func (v value) HasStrictTypes() bool {
	return true
}

// ArrayOf constructs an array view over v. A nil v yields an empty
// view; any other non-sequence value fails with ErrTypeMismatch.
func ArrayOf(v any) (treewrap.Array, error) {
	switch t := v.(type) {
	case nil:
		return arrayView{}, nil
	case []any:
		return arrayView{t}, nil
	}
	return nil, fmt.Errorf("%w: %s is not an array", treewrap.ErrTypeMismatch, kindOf(v))
}

// ObjectOf constructs an object view over v. A nil v yields an empty
// view; any other non-mapping value fails with ErrTypeMismatch.
func ObjectOf(v any) (treewrap.Object, error) {
	switch t := v.(type) {
	case nil:
		return objectView{}, nil
	case yaml.MapSlice:
		return objectView{t}, nil
	}
	return nil, fmt.Errorf("%w: %s is not an object", treewrap.ErrTypeMismatch, kindOf(v))
}

type arrayView struct {
	elems []any
}

func (a arrayView) Size() int {
	return len(a.elems)
}

func (a arrayView) Elem(i int) treewrap.Adapter {
	return value{a.elems[i]}
}

func (a arrayView) Elems() iter.Seq[treewrap.Adapter] {
	return func(yield func(treewrap.Adapter) bool) {
		for _, e := range a.elems {
			if !yield(value{e}) {
				return
			}
		}
	}
}

type objectView struct {
	ms yaml.MapSlice
}

func (o objectView) Size() int {
	return len(o.ms)
}

func keyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}

func (o objectView) Member(i int) (string, treewrap.Adapter) {
	return keyString(o.ms[i].Key), value{o.ms[i].Value}
}

func (o objectView) Members() iter.Seq2[string, treewrap.Adapter] {
	return func(yield func(string, treewrap.Adapter) bool) {
		for _, item := range o.ms {
			if !yield(keyString(item.Key), value{item.Value}) {
				return
			}
		}
	}
}

func (o objectView) Find(name string) (treewrap.Adapter, bool) {
	for _, item := range o.ms {
		if keyString(item.Key) == name {
			return value{item.Value}, true
		}
	}
	return nil, false
}

func copyValue(v any) any {
	switch t := v.(type) {
	case yaml.MapSlice:
		res := make(yaml.MapSlice, len(t))
		for i, item := range t {
			res[i] = yaml.MapItem{Key: item.Key, Value: copyValue(item.Value)}
		}
		return res
	case []any:
		res := make([]any, len(t))
		for i, e := range t {
			res[i] = copyValue(e)
		}
		return res
	default:
		return v
	}
}

// frozen owns a deep copy of a decoded value. There is no mutable
// yamltree wrapper, so SetInto always goes through the generic
// protocol.
type frozen struct {
	v any
}

func (f frozen) Clone() treewrap.Frozen {
	return frozen{copyValue(f.v)}
}

func (f frozen) EqualTo(other treewrap.Adapter, strict bool) bool {
	return treewrap.Equal(Wrap(f.v), other, strict)
}

func (f frozen) SetInto(dst treewrap.Adapter) error {
	return treewrap.Assign(dst, Wrap(f.v))
}
