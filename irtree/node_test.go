package irtree

import (
	"testing"

	"github.com/treewrap/treewrap"
)

func TestCloneIndependence(t *testing.T) {
	orig := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromInt(1)},
		{Key: "b", Val: FromSlice([]*Node{FromString("x"), FromBool(true)})},
	})
	cp := orig.Clone()
	if !treewrap.Equal(Wrap(orig), Wrap(cp), true) {
		t.Fatalf("clone not equal to original")
	}
	cp.Get("b").Elems[0].Str = "mutated"
	if orig.Get("b").Elems[0].Str != "x" {
		t.Errorf("mutating clone leaked into original")
	}
}

func TestPutGet(t *testing.T) {
	obj := FromKeyVals(nil)
	if got := obj.Get("missing"); got != nil {
		t.Errorf("Get on empty object = %v, want nil", got)
	}
	obj.Put("a", FromInt(1))
	obj.Put("b", FromInt(2))
	obj.Put("a", FromInt(3))
	if len(obj.Keys) != 2 {
		t.Fatalf("Put duplicated key: %v", obj.Keys)
	}
	if obj.Get("a").Int != 3 {
		t.Errorf("Put did not replace value")
	}
}

func TestFromMapSorted(t *testing.T) {
	obj := FromMap(map[string]*Node{
		"z": FromInt(1),
		"a": FromInt(2),
		"m": FromInt(3),
	})
	want := []string{"a", "m", "z"}
	for i, k := range want {
		if obj.Keys[i] != k {
			t.Errorf("Keys[%d] = %q, want %q", i, obj.Keys[i], k)
		}
	}
}

func TestVisit(t *testing.T) {
	root := FromKeyVals([]KeyVal{
		{Key: "xs", Val: FromSlice([]*Node{FromInt(1), FromInt(2)})},
		{Key: "s", Val: FromString("hi")},
	})
	pre, post := 0, 0
	err := root.Visit(func(n *Node, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	// root, xs, 1, 2, s
	if pre != 5 || post != 5 {
		t.Errorf("visit counts pre=%d post=%d, want 5/5", pre, post)
	}
}

func TestMarshalJSONOrdered(t *testing.T) {
	root := FromKeyVals([]KeyVal{
		{Key: "z", Val: FromInt(1)},
		{Key: "a", Val: FromKeyVals([]KeyVal{
			{Key: "y", Val: Null()},
			{Key: "b", Val: FromFloat(1.5)},
		})},
		{Key: "list", Val: FromSlice([]*Node{FromBool(false), FromString(`q"`)})},
	})
	d, err := root.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"z":1,"a":{"y":null,"b":1.5},"list":[false,"q\""]}`
	if string(d) != want {
		t.Errorf("MarshalJSON = %s, want %s", d, want)
	}
}
