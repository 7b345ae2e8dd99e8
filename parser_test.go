package streamkit_test

import (
	"errors"
	"testing"

	streamkit "github.com/flowtrace/streamkit"
)

func TestStringNode_StreamsAppendsInOrder(t *testing.T) {
	root := streamkit.String()
	node, err := root.Create("msg")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	sn := node.(*streamkit.StringNode)

	var chunks []string
	sn.OnAppend(func(c string) { chunks = append(chunks, c) })

	p := streamkit.NewParser(sn)
	for _, c := range []string{`"hel`, `lo wor`, `ld"`} {
		if err := p.Push(c); err != nil {
			t.Fatalf("Push(%q): %v", c, err)
		}
	}
	if err := p.Complete(); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got := *sn.Value(); got != "hello world" {
		t.Fatalf("got %q", got)
	}
	joined := ""
	for _, c := range chunks {
		joined += c
	}
	if joined != "hello world" {
		t.Fatalf("appended chunks do not reconstruct the value: %q", joined)
	}
	if !sn.Completed() {
		t.Fatalf("expected node completed")
	}
}

func TestStringNode_NullNeverStarts(t *testing.T) {
	root := streamkit.String()
	node, _ := root.Create("x")
	sn := node.(*streamkit.StringNode)
	started := false
	sn.OnStart(func() { started = true })

	p := streamkit.NewParser(sn)
	if err := p.Push(`null`); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if err := p.Complete(); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if started {
		t.Fatalf("expected OnStart to never fire for a null value")
	}
	if sn.Value() != nil {
		t.Fatalf("expected nil value")
	}
}

func TestStringNode_OnCompleteReceivesValue(t *testing.T) {
	root := streamkit.String()
	node, _ := root.Create("msg")
	sn := node.(*streamkit.StringNode)

	var got any
	sn.OnComplete(func(v any) { got = v })

	p := streamkit.NewParser(sn)
	if err := p.Push(`"Hello"`); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if err := p.Complete(); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got != "Hello" {
		t.Fatalf("expected OnComplete to receive %q, got %v", "Hello", got)
	}
}

func TestArrayNode_OnCompleteReceivesValue(t *testing.T) {
	schema := streamkit.Array(streamkit.String())
	node, _ := schema.Create("items")
	arr := node.(*streamkit.ArrayNode)

	var got any
	arr.OnComplete(func(v any) { got = v })

	p := streamkit.NewParser(arr)
	if err := p.Push(`[]`); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if err := p.Complete(); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	items, ok := got.([]any)
	if !ok || len(items) != 0 {
		t.Fatalf("expected OnComplete to receive an empty slice, got %#v", got)
	}
}

func TestObjectNode_FinalityRule(t *testing.T) {
	schema := streamkit.Object().
		Field("a", streamkit.String()).
		Field("b", streamkit.String())
	node, err := schema.Create("")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	obj := node.(*streamkit.ObjectNode)

	aCompleted := false
	obj.Field("a").OnComplete(func(any) { aCompleted = true })

	p := streamkit.NewParser(obj)
	if err := p.Push(`{"a":"first"`); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if aCompleted {
		t.Fatalf("field a should not complete while it is the current field")
	}
	if err := p.Push(`,"b":"seco`); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if !aCompleted {
		t.Fatalf("field a should complete once b is observed")
	}
	if err := p.Push(`nd"}`); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if err := p.Complete(); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	bVal := *obj.Field("b").(*streamkit.StringNode).Value()
	if bVal != "second" {
		t.Fatalf("got %q", bVal)
	}
}

func TestObjectNode_SkippedFieldNeverCompletes(t *testing.T) {
	schema := streamkit.Object().
		Field("a", streamkit.String()).
		Field("b", streamkit.String()).
		Field("c", streamkit.String())
	node, err := schema.Create("")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	obj := node.(*streamkit.ObjectNode)

	bCompleted := false
	obj.Field("b").OnComplete(func(any) { bCompleted = true })
	aCompleted := false
	obj.Field("a").OnComplete(func(any) { aCompleted = true })

	p := streamkit.NewParser(obj)
	// "b" is declared but never present in the input: it arrives in
	// declaration order behind "a" and ahead of "c", but the input
	// jumps straight from "a" to "c".
	if err := p.Push(`{"a":"x","c":"y"}`); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if err := p.Complete(); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if !aCompleted {
		t.Fatalf("expected field a to complete once a later field is observed")
	}
	if bCompleted {
		t.Fatalf("expected field b, never observed, to never complete")
	}
	if !obj.Field("a").Completed() {
		t.Fatalf("expected a.Completed() true")
	}
	if obj.Field("b").Completed() {
		t.Fatalf("expected b.Completed() false, it was never observed")
	}
	if !obj.Field("c").Completed() {
		t.Fatalf("expected c.Completed() true after root Complete")
	}
}

func TestObjectNode_OutOfOrderKeyRejected(t *testing.T) {
	schema := streamkit.Object().
		Field("a", streamkit.String()).
		Field("b", streamkit.String())
	node, _ := schema.Create("")
	obj := node.(*streamkit.ObjectNode)

	p := streamkit.NewParser(obj)
	if err := p.Push(`{"b":"x","a":"y"}`); err == nil {
		t.Fatalf("expected an out-of-order-key error")
	}
}

func TestArrayNode_GrowthFinalizesIntermediateChildren(t *testing.T) {
	schema := streamkit.Array(streamkit.String())
	node, err := schema.Create("items")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	arr := node.(*streamkit.ArrayNode)

	var appended []int
	arr.OnAppend(func(child streamkit.Node, index int) { appended = append(appended, index) })

	p := streamkit.NewParser(arr)
	if err := p.Push(`["a","b","c"]`); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if err := p.Complete(); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if arr.Len() != 3 {
		t.Fatalf("expected 3 children, got %d", arr.Len())
	}
	if len(appended) != 3 || appended[0] != 0 || appended[2] != 2 {
		t.Fatalf("expected OnAppend fired once per index in order, got %v", appended)
	}
	for i := 0; i < 3; i++ {
		if !arr.Item(i).Completed() {
			t.Fatalf("expected item %d completed after root Complete", i)
		}
	}
}

func TestParser_Scoped_CompletesOnError(t *testing.T) {
	schema := streamkit.Object().Field("a", streamkit.String())
	node, _ := schema.Create("")
	obj := node.(*streamkit.ObjectNode)
	p := streamkit.NewParser(obj)

	err := p.Scoped(func(p *streamkit.Parser) error {
		return p.Push(`{"a":"x"}{`)
	})
	if err == nil {
		t.Fatalf("expected trailing-input error to surface")
	}
	var tie *streamkit.TrailingInputError
	if !errors.As(err, &tie) {
		t.Fatalf("expected a *streamkit.TrailingInputError, got %T", err)
	}
	if !obj.Completed() {
		t.Fatalf("expected Scoped to complete the root node after fn returned an error")
	}
}
