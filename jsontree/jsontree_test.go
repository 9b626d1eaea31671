package jsontree

import (
	"errors"
	"testing"

	"github.com/treewrap/treewrap"
)

func mustDecode(t *testing.T, d string) any {
	t.Helper()
	v, err := Decode([]byte(d))
	if err != nil {
		t.Fatalf("decode %q: %v", d, err)
	}
	return v
}

func TestDecodeKinds(t *testing.T) {
	tests := []struct {
		in   string
		kind treewrap.Kind
	}{
		{`null`, treewrap.NullKind},
		{`true`, treewrap.BoolKind},
		{`3`, treewrap.IntegerKind},
		{`-3`, treewrap.IntegerKind},
		{`3.5`, treewrap.DoubleKind},
		{`3e2`, treewrap.DoubleKind},
		{`"s"`, treewrap.StringKind},
		{`[1,2]`, treewrap.ArrayKind},
		{`{"a":1}`, treewrap.ObjectKind},
	}
	for _, tt := range tests {
		v := mustDecode(t, tt.in)
		if got := Wrap(&v).Kind(); got != tt.kind {
			t.Errorf("%s: kind = %s, want %s", tt.in, got, tt.kind)
		}
	}
}

func TestDecodeOrderPreserved(t *testing.T) {
	v := mustDecode(t, `{"z":1,"a":2,"m":3,"b":4}`)
	obj, ok := Wrap(&v).GetObject()
	if !ok {
		t.Fatal("not an object")
	}
	want := []string{"z", "a", "m", "b"}
	i := 0
	for name := range obj.Members() {
		if name != want[i] {
			t.Errorf("member %d = %q, want %q", i, name, want[i])
		}
		i++
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	in := `{"z":1,"a":{"m":[true,null,"x"],"b":2.5},"empty":{}}`
	v := mustDecode(t, in)
	d, err := Encode(v)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != in {
		t.Errorf("round trip = %s, want %s", d, in)
	}
}

func TestDecodeTrailing(t *testing.T) {
	if _, err := Decode([]byte(`{} {}`)); err == nil {
		t.Errorf("trailing data accepted")
	}
}

func TestContainerConstruction(t *testing.T) {
	v := mustDecode(t, `{"a":1}`)
	if _, err := ArrayOf(v); !errors.Is(err, treewrap.ErrTypeMismatch) {
		t.Errorf("ArrayOf(object) err = %v", err)
	}
	obj, err := ObjectOf(v)
	if err != nil {
		t.Fatal(err)
	}
	if obj.Size() != 1 {
		t.Errorf("size = %d", obj.Size())
	}
	if _, err := ObjectOf(nil); err != nil {
		t.Errorf("ObjectOf(nil) err = %v", err)
	}
}

func TestMemberHandleStability(t *testing.T) {
	v := mustDecode(t, `{"a":1}`)
	m := WrapMutable(&v)
	obj, _ := m.GetMutObject()
	ha := obj.Create("a")
	// growing the object must not invalidate the held handle
	for _, name := range []string{"b", "c", "d", "e", "f", "g", "h"} {
		obj.Create(name)
	}
	ha.SetInteger(42)
	got, ok := obj.Find("a")
	if !ok {
		t.Fatal("member a lost")
	}
	if n, _ := got.GetInteger(); n != 42 {
		t.Errorf("write through held handle lost: %d", n)
	}
}

func TestUnboundWrites(t *testing.T) {
	m := WrapMutable(nil)
	m.SetString("x")
	if m.Kind() != treewrap.NullKind {
		t.Errorf("unbound write took effect")
	}
}

func TestFreezeDetaches(t *testing.T) {
	v := mustDecode(t, `{"a":[1,2]}`)
	f := Wrap(&v).Freeze()
	obj, _ := WrapMutable(&v).GetMutObject()
	obj.Create("a").SetString("clobbered")
	fresh := mustDecode(t, `{"a":[1,2]}`)
	if !f.EqualTo(Wrap(&fresh), true) {
		t.Errorf("frozen value changed with the live document")
	}
}

func TestFrozenFastPath(t *testing.T) {
	src := mustDecode(t, `{"a":{"b":[1,2,3]}}`)
	f := Wrap(&src).Freeze()
	var dst any
	if err := f.SetInto(WrapMutable(&dst)); err != nil {
		t.Fatal(err)
	}
	if !f.EqualTo(Wrap(&dst), true) {
		t.Errorf("fast path copy mismatch")
	}
	d, err := Encode(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `{"a":{"b":[1,2,3]}}` {
		t.Errorf("materialized = %s", d)
	}
}
