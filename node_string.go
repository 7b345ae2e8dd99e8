package streamkit

import (
	"strings"

	"github.com/flowtrace/streamkit/internal/charstream"
)

// StringNode streams a JSON string leaf character-by-character.
type StringNode struct {
	lifecycle
	value    *string
	onAppend []func(chunk string)
}

func newStringNode(path string) *StringNode {
	return &StringNode{lifecycle: lifecycle{path: path}}
}

// OnAppend registers a callback fired once per chunk of newly observed
// string content, in document order.
func (n *StringNode) OnAppend(cb func(chunk string)) {
	n.onAppend = append(n.onAppend, cb)
}

// Value returns the accumulated value, or nil if the node never observed
// a non-null value.
func (n *StringNode) Value() *string { return n.value }

// Update feeds the node's next observed value. v is nil when the
// tokeniser observed a JSON null at this node's position.
func (n *StringNode) Update(v *string) error {
	if v == nil {
		if n.value == nil && !n.started {
			// null on first observation: record null, never start.
			return nil
		}
		return nil
	}
	if n.value == nil {
		n.fireStart()
		n.value = v
		n.fireAppend(*v)
		return nil
	}
	if *v == *n.value {
		return nil
	}
	if !strings.HasPrefix(*v, *n.value) {
		return newContinuity(n.path, "string value at "+n.path+" is not a prefix-extension of its current value")
	}
	delta := (*v)[len(*n.value):]
	n.value = v
	n.fireAppend(delta)
	return nil
}

func (n *StringNode) fireAppend(chunk string) {
	for _, cb := range n.onAppend {
		cb(chunk)
	}
}

func (n *StringNode) complete() error {
	n.fireComplete(n.plainValue())
	return nil
}

func (n *StringNode) plainValue() any {
	if n.value == nil {
		return nil
	}
	return *n.value
}

// Complete finalises the node explicitly. Idempotent.
func (n *StringNode) Complete() error { return n.complete() }

func (n *StringNode) applyObservation(obs charstream.Observation) error {
	switch obs.Kind {
	case charstream.KindNull:
		return n.Update(nil)
	case charstream.KindString:
		return n.Update(obs.Str)
	default:
		return newContinuity(n.path, "expected a string or null at "+n.path)
	}
}
