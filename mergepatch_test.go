package treewrap_test

import (
	"encoding/json"
	"testing"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/google/go-cmp/cmp"

	"github.com/treewrap/treewrap"
	"github.com/treewrap/treewrap/jsontree"
)

// Over documents with no nulls and no arrays, assigning src into dst
// agrees with RFC 7386 merge patch. Nulls are excluded because merge
// patch deletes on null while assignment writes nothing; arrays are
// excluded because merge patch replaces them wholesale while
// assignment merges element-wise.
func TestAssignAgreesWithMergePatch(t *testing.T) {
	tests := []struct {
		name     string
		dst, src string
	}{
		{"disjoint", `{"a":1}`, `{"b":2}`},
		{"overwrite", `{"a":1}`, `{"a":"two"}`},
		{"nested insert", `{"a":{"x":1}}`, `{"a":{"y":2},"b":true}`},
		{"nested overwrite", `{"a":{"x":1,"y":2}}`, `{"a":{"x":{"deep":"er"}}}`},
		{"scalar becomes object", `{"a":5}`, `{"a":{"x":1}}`},
		{"object becomes scalar", `{"a":{"x":1}}`, `{"a":5}`},
		{"empty patch", `{"a":1,"b":{"c":2}}`, `{}`},
		{"into empty", `{}`, `{"a":{"b":{"c":3}},"d":"x"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := decodeJSON(t, tt.dst)
			src := decodeJSON(t, tt.src)
			if err := treewrap.Assign(jsontree.WrapMutable(&dst), jsontree.Wrap(&src)); err != nil {
				t.Fatal(err)
			}
			wantData, err := jsonpatch.MergePatch([]byte(tt.dst), []byte(tt.src))
			if err != nil {
				t.Fatal(err)
			}
			var want, got any
			if err := json.Unmarshal(wantData, &want); err != nil {
				t.Fatal(err)
			}
			if err := json.Unmarshal([]byte(encodeJSON(t, dst)), &got); err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(want, got); d != "" {
				t.Errorf("assign disagrees with merge patch (-want +got):\n%s", d)
			}
		})
	}
}
