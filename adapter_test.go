package streamkit_test

import (
	"testing"

	streamkit "github.com/flowtrace/streamkit"
	js "github.com/flowtrace/streamkit/jsonschema"
)

func TestFromExternalSchema_ObjectPreservesPropertyOrder(t *testing.T) {
	ext := &js.Schema{
		Type: "object",
		Properties: map[string]*js.Schema{
			"b": {Type: "string"},
			"a": {Type: "string"},
		},
		PropertyOrder: []string{"b", "a"},
	}
	d, err := streamkit.FromExternalSchema(ext)
	if err != nil {
		t.Fatalf("FromExternalSchema: %v", err)
	}
	obj, ok := d.(*streamkit.ObjectDescriptor)
	if !ok {
		t.Fatalf("expected *ObjectDescriptor, got %T", d)
	}
	node, err := obj.Create("")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	on := node.(*streamkit.ObjectNode)
	if on.Field("b") == nil || on.Field("a") == nil {
		t.Fatalf("expected both fields present")
	}
	back, err := obj.ToExternalSchema()
	if err != nil {
		t.Fatalf("ToExternalSchema: %v", err)
	}
	if len(back.PropertyOrder) != 2 || back.PropertyOrder[0] != "b" || back.PropertyOrder[1] != "a" {
		t.Fatalf("expected declaration order [b a], got %v", back.PropertyOrder)
	}
}

func TestFromExternalSchema_ArrayOfObject(t *testing.T) {
	ext := &js.Schema{
		Type: "array",
		Items: &js.Schema{
			Type:          "object",
			Properties:    map[string]*js.Schema{"id": {Type: "string"}},
			PropertyOrder: []string{"id"},
		},
	}
	d, err := streamkit.FromExternalSchema(ext)
	if err != nil {
		t.Fatalf("FromExternalSchema: %v", err)
	}
	arr, ok := d.(*streamkit.ArrayDescriptor)
	if !ok {
		t.Fatalf("expected *ArrayDescriptor, got %T", d)
	}
	node, err := arr.Create("items")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	an := node.(*streamkit.ArrayNode)

	p := streamkit.NewParser(an)
	if err := p.Push(`[{"id":"a"},{"id":"b"}]`); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if err := p.Complete(); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if an.Len() != 2 {
		t.Fatalf("expected 2 elements, got %d", an.Len())
	}
	if _, ok := an.Item(0).(*streamkit.ObjectNode); !ok {
		t.Fatalf("expected array elements to be ObjectNode, got %T", an.Item(0))
	}
}

func TestObjectDescriptor_ToExternalSchema_RoundTripsOrder(t *testing.T) {
	d := streamkit.Object().
		Field("role", streamkit.String()).
		Field("content", streamkit.String())
	ext, err := d.ToExternalSchema()
	if err != nil {
		t.Fatalf("ToExternalSchema: %v", err)
	}
	if ext.Type != "object" || len(ext.PropertyOrder) != 2 {
		t.Fatalf("got %+v", ext)
	}
	if ext.PropertyOrder[0] != "role" || ext.PropertyOrder[1] != "content" {
		t.Fatalf("expected declaration order preserved, got %v", ext.PropertyOrder)
	}
	back, err := streamkit.FromExternalSchema(ext)
	if err != nil {
		t.Fatalf("FromExternalSchema: %v", err)
	}
	if _, ok := back.(*streamkit.ObjectDescriptor); !ok {
		t.Fatalf("expected *ObjectDescriptor, got %T", back)
	}
}

func TestAtomDescriptor_SchemaConfigConflict(t *testing.T) {
	d := streamkit.Atom(nil).WithExternalSchema(&js.Schema{Type: "number"}).Describe("oops")
	if _, err := d.Create("x"); err == nil {
		t.Fatalf("expected a schema-config error for conflicting metadata")
	}
}
