package treewrap

import (
	"fmt"

	"github.com/treewrap/treewrap/debug"
)

// DefaultMaxDepth bounds the recursion of Assign. Values nested
// deeper than this fail with ErrResourceExhausted.
const DefaultMaxDepth = 1000

// Assign materializes the value under src into dst.
//
// If dst does not implement Mutable the call is a defined no-op, not
// an error; the mutability decision is made exactly once here, never
// per node. Composite destinations merge additively: members or
// elements present in dst but absent from src survive. A null source
// writes nothing.
func Assign(dst, src Adapter) error {
	return AssignMaxDepth(dst, src, DefaultMaxDepth)
}

// AssignMaxDepth is Assign with an explicit recursion ceiling.
func AssignMaxDepth(dst, src Adapter, maxDepth int) error {
	m, ok := dst.(Mutable)
	if !ok {
		if debug.Assign() {
			debug.Logf("assign: destination not mutable, skipping %s source\n", src.Kind())
		}
		return nil
	}
	return assign(m, src, maxDepth)
}

func assign(dst Mutable, src Adapter, depth int) error {
	if depth <= 0 {
		return fmt.Errorf("%w: assign source nested deeper than limit", ErrResourceExhausted)
	}
	if debug.Assign() {
		debug.Logf("assign: %s at depth budget %d\n", src.Kind(), depth)
	}
	switch src.Kind() {
	case ObjectKind:
		dst.SetAsObject()
		obj, ok := dst.GetMutObject()
		if !ok {
			// unbound destination
			return nil
		}
		srcObj, ok := src.GetObject()
		if !ok {
			return nil
		}
		for name, member := range srcObj.Members() {
			if err := assign(obj.Create(name), member, depth-1); err != nil {
				return err
			}
		}
	case ArrayKind:
		dst.SetAsArray()
		arr, ok := dst.GetMutArray()
		if !ok {
			return nil
		}
		srcArr, ok := src.GetArray()
		if !ok {
			return nil
		}
		i := 0
		for elem := range srcArr.Elems() {
			for arr.Size() <= i {
				arr.Create()
			}
			if err := assign(arr.MutElem(i), elem, depth-1); err != nil {
				return err
			}
			i++
		}
	case StringKind:
		s, _ := src.GetString()
		dst.SetString(s)
	case BoolKind:
		b, _ := src.GetBool()
		dst.SetBool(b)
	case DoubleKind:
		f, _ := src.GetDouble()
		dst.SetDouble(f)
	case IntegerKind:
		n, _ := src.GetInteger()
		dst.SetInteger(n)
	}
	return nil
}

// CreateKey ensures a member named name exists under dst, creating a
// null-valued one if absent and never disturbing an existing value.
// No-op unless dst is a writable object.
func CreateKey(dst Adapter, name string) {
	m, ok := dst.(Mutable)
	if !ok {
		return
	}
	obj, ok := m.GetMutObject()
	if !ok {
		return
	}
	obj.Create(name)
}

// Resize appends null-valued slots to dst until its length exceeds
// index. No-op unless dst is a writable array.
func Resize(dst Adapter, index int) {
	m, ok := dst.(Mutable)
	if !ok {
		return
	}
	arr, ok := m.GetMutArray()
	if !ok {
		return
	}
	for arr.Size() <= index {
		arr.Create()
	}
}
