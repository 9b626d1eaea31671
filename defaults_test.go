package treewrap_test

import (
	"testing"

	"github.com/treewrap/treewrap"
	"github.com/treewrap/treewrap/irtree"
	"github.com/treewrap/treewrap/jsontree"
	"github.com/treewrap/treewrap/yamltree"
)

// populateDefaults copies each default under "properties" into the
// document when the member is absent. This is the schema-defaults
// workflow the adapter layer exists to serve.
func populateDefaults(t *testing.T, doc treewrap.Adapter, schema treewrap.Adapter) {
	t.Helper()
	schemaObj, ok := schema.GetObject()
	if !ok {
		t.Fatal("schema is not an object")
	}
	props, ok := schemaObj.Find("properties")
	if !ok {
		return
	}
	propsObj, ok := props.GetObject()
	if !ok {
		t.Fatal("properties is not an object")
	}
	m, ok := doc.(treewrap.Mutable)
	if !ok {
		return
	}
	m.SetAsObject()
	docObj, ok := m.GetMutObject()
	if !ok {
		return
	}
	for name, sub := range propsObj.Members() {
		subObj, ok := sub.GetObject()
		if !ok {
			continue
		}
		def, ok := subObj.Find("default")
		if !ok {
			continue
		}
		if _, present := docObj.Find(name); present {
			continue
		}
		if err := def.Freeze().SetInto(docObj.Create(name)); err != nil {
			t.Fatal(err)
		}
	}
}

func TestDefaultsPopulateMutableDocument(t *testing.T) {
	schema := decodeJSON(t, `{"properties":{"A":{"default":5},"B":{"default":{"deep":[1,2]}},"C":{"type":"string"}}}`)
	doc := decodeJSON(t, `{"A":"keep"}`)
	populateDefaults(t, jsontree.WrapMutable(&doc), jsontree.Wrap(&schema))
	if got := encodeJSON(t, doc); got != `{"A":"keep","B":{"deep":[1,2]}}` {
		t.Errorf("result = %s", got)
	}
}

func TestDefaultsEmptyDocument(t *testing.T) {
	schema := decodeJSON(t, `{"properties":{"A":{"default":5}}}`)
	var doc any = jsontree.NewObject()
	populateDefaults(t, jsontree.WrapMutable(&doc), jsontree.Wrap(&schema))
	if got := encodeJSON(t, doc); got != `{"A":5}` {
		t.Errorf("result = %s", got)
	}
}

func TestDefaultsReadOnlyDocumentUntouched(t *testing.T) {
	schema := decodeJSON(t, `{"properties":{"A":{"default":5}}}`)
	doc, err := yamltree.Decode([]byte("{}\n"))
	if err != nil {
		t.Fatal(err)
	}
	populateDefaults(t, yamltree.Wrap(doc), jsontree.Wrap(&schema))
	obj, ok := yamltree.Wrap(doc).GetObject()
	if !ok {
		t.Fatal("document lost its object kind")
	}
	if obj.Size() != 0 {
		t.Errorf("read-only document grew to %d members", obj.Size())
	}
}

func TestDefaultsCrossRepresentation(t *testing.T) {
	// a schema decoded from YAML must populate a document held in
	// another representation exactly as a same-representation schema
	yschema, err := yamltree.Decode([]byte("properties:\n  A:\n    default: 5\n  B:\n    default:\n      deep: [1, 2]\n"))
	if err != nil {
		t.Fatal(err)
	}
	jschema := decodeJSON(t, `{"properties":{"A":{"default":5},"B":{"default":{"deep":[1,2]}}}}`)

	fromYAML := irtree.Null()
	populateDefaults(t, irtree.WrapMutable(fromYAML), yamltree.Wrap(yschema))
	fromJSON := irtree.Null()
	populateDefaults(t, irtree.WrapMutable(fromJSON), jsontree.Wrap(&jschema))

	if !treewrap.Equal(irtree.Wrap(fromYAML), irtree.Wrap(fromJSON), true) {
		t.Errorf("YAML-sourced defaults differ from JSON-sourced defaults")
	}
	if got := encodeJSON(t, mustMaterialize(t, irtree.Wrap(fromYAML))); got != `{"A":5,"B":{"deep":[1,2]}}` {
		t.Errorf("result = %s", got)
	}
}

func mustMaterialize(t *testing.T, src treewrap.Adapter) any {
	t.Helper()
	var v any
	if err := treewrap.Assign(jsontree.WrapMutable(&v), src); err != nil {
		t.Fatal(err)
	}
	return v
}
