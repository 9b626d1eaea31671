package treewrap

import "iter"

// Adapter is a non-owning handle to one position in a document tree.
// Implementations wrap a concrete representation's value; the zero
// form of each implementation is unbound and classifies as NullKind.
//
// Typed getters report presence with an ok flag: the value is present
// iff the position's kind is exactly the requested kind. No coercion
// happens at this layer.
type Adapter interface {
	// Kind classifies the value at this position. Unbound handles
	// classify as NullKind.
	Kind() Kind

	GetBool() (bool, bool)
	GetInteger() (int64, bool)
	GetDouble() (float64, bool)
	GetString() (string, bool)

	// GetArray and GetObject are present iff the kind matches. A
	// position holding null is neither an array nor an object, even
	// in representations that conflate absence with null.
	GetArray() (Array, bool)
	GetObject() (Object, bool)

	// Freeze deep-copies the value at this position into an owned
	// snapshot with no reference to the source tree. Freezing an
	// unbound handle yields a null snapshot.
	Freeze() Frozen

	// HasStrictTypes reports whether the backing representation
	// distinguishes integers from floating-point values. It is a
	// static property of the representation, not of the value.
	HasStrictTypes() bool
}

// Mutable is the capability marker for writable positions. A
// representation that cannot be written does not implement Mutable;
// Assign checks for it exactly once at the dispatch boundary.
//
// All setters are no-ops on unbound handles. SetAsArray and
// SetAsObject ensure the composite kind: a position already holding
// that kind keeps its children, any other value is replaced by an
// empty composite. Scalar setters replace the value outright.
type Mutable interface {
	Adapter

	SetAsArray()
	SetAsObject()
	SetBool(v bool)
	SetDouble(v float64)
	SetInteger(v int64)
	SetString(v string)

	// GetMutArray and GetMutObject are present iff the kind matches,
	// mirroring GetArray and GetObject.
	GetMutArray() (MutableArray, bool)
	GetMutObject() (MutableObject, bool)
}

// Array is an iterable view over an array position. Views over
// unbound handles are empty.
type Array interface {
	Size() int

	// Elem returns a handle to the element at i, which must satisfy
	// 0 <= i < Size.
	Elem(i int) Adapter

	// Elems yields a fresh handle per element in storage order. The
	// sequence is restartable.
	Elems() iter.Seq[Adapter]
}

// Object is an iterable view over an object position. Member order is
// the backing representation's order, not sorted order. Keys compare
// by exact byte equality.
type Object interface {
	Size() int

	// Member returns the name and a value handle for the member at
	// position i, which must satisfy 0 <= i < Size.
	Member(i int) (string, Adapter)

	// Members yields each member in storage order. The sequence is
	// restartable.
	Members() iter.Seq2[string, Adapter]

	// Find locates a member by exact name via linear scan.
	Find(name string) (Adapter, bool)
}

// MutableArray extends Array with slot creation over writable
// positions.
type MutableArray interface {
	Array

	// Create appends a null-valued slot and returns a handle to it.
	// Over an unbound view it returns an unbound handle.
	Create() Mutable

	// MutElem is Elem with write capability.
	MutElem(i int) Mutable
}

// MutableObject extends Object with member creation over writable
// positions.
type MutableObject interface {
	Object

	// Create returns a handle to the member named name, inserting a
	// null-valued member first if none exists. It is idempotent:
	// repeated calls with one name reference one slot. Over an
	// unbound view it returns an unbound handle.
	Create(name string) Mutable
}

// Frozen is an owned, deep, representation-independent snapshot of a
// value. It aliases no live tree and outlives the tree it was copied
// from.
type Frozen interface {
	// Clone returns an independent deep copy.
	Clone() Frozen

	// EqualTo compares the snapshot structurally against a handle
	// from any representation. In strict mode kinds must match
	// exactly; otherwise numeric kinds compare by value.
	EqualTo(other Adapter, strict bool) bool

	// SetInto writes the snapshot's value into dst under Assign
	// semantics. Same-representation destinations take a direct
	// copy; everything else goes through the generic protocol.
	SetInto(dst Adapter) error
}

// ArraySize returns the element count iff a holds an array.
func ArraySize(a Adapter) (int, bool) {
	arr, ok := a.GetArray()
	if !ok {
		return 0, false
	}
	return arr.Size(), true
}

// ObjectSize returns the member count iff a holds an object.
func ObjectSize(a Adapter) (int, bool) {
	obj, ok := a.GetObject()
	if !ok {
		return 0, false
	}
	return obj.Size(), true
}
