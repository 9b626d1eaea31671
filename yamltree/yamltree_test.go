package yamltree

import (
	"errors"
	"testing"

	"github.com/treewrap/treewrap"
)

const doc = `
z: 1
a:
  m: [true, null, x]
  b: 2.5
s: hello
`

func mustDecode(t *testing.T, d string) any {
	t.Helper()
	v, err := Decode([]byte(d))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return v
}

func TestDecodeOrderPreserved(t *testing.T) {
	v := mustDecode(t, doc)
	obj, ok := Wrap(v).GetObject()
	if !ok {
		t.Fatal("not an object")
	}
	want := []string{"z", "a", "s"}
	i := 0
	for name := range obj.Members() {
		if name != want[i] {
			t.Errorf("member %d = %q, want %q", i, name, want[i])
		}
		i++
	}
}

func TestKinds(t *testing.T) {
	v := mustDecode(t, doc)
	obj, _ := Wrap(v).GetObject()
	z, _ := obj.Find("z")
	if z.Kind() != treewrap.IntegerKind {
		t.Errorf("z kind = %s", z.Kind())
	}
	if n, ok := z.GetInteger(); !ok || n != 1 {
		t.Errorf("z = %d, %v", n, ok)
	}
	a, _ := obj.Find("a")
	inner, ok := a.GetObject()
	if !ok {
		t.Fatalf("a kind = %s", a.Kind())
	}
	b, _ := inner.Find("b")
	if f, ok := b.GetDouble(); !ok || f != 2.5 {
		t.Errorf("a.b = %v, %v", f, ok)
	}
	m, _ := inner.Find("m")
	arr, ok := m.GetArray()
	if !ok || arr.Size() != 3 {
		t.Fatalf("a.m not a 3-array")
	}
	if arr.Elem(1).Kind() != treewrap.NullKind {
		t.Errorf("a.m[1] kind = %s", arr.Elem(1).Kind())
	}
	if s, ok := arr.Elem(2).GetString(); !ok || s != "x" {
		t.Errorf("a.m[2] = %q, %v", s, ok)
	}
}

func TestNotMutable(t *testing.T) {
	v := mustDecode(t, doc)
	if _, ok := Wrap(v).(treewrap.Mutable); ok {
		t.Fatalf("yaml adapter claims mutability")
	}
}

func TestContainerConstruction(t *testing.T) {
	v := mustDecode(t, `[1, 2]`)
	if _, err := ObjectOf(v); !errors.Is(err, treewrap.ErrTypeMismatch) {
		t.Errorf("ObjectOf(array) err = %v", err)
	}
	arr, err := ArrayOf(v)
	if err != nil {
		t.Fatal(err)
	}
	if arr.Size() != 2 {
		t.Errorf("size = %d", arr.Size())
	}
	empty, err := ArrayOf(nil)
	if err != nil || empty.Size() != 0 {
		t.Errorf("ArrayOf(nil) = %d, %v", empty.Size(), err)
	}
}

func TestFreezeClone(t *testing.T) {
	v := mustDecode(t, doc)
	f := Wrap(v).Freeze()
	if !f.Clone().EqualTo(Wrap(v), true) {
		t.Errorf("clone not equal to source document")
	}
}
