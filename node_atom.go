package streamkit

import "github.com/flowtrace/streamkit/internal/charstream"

// Validator validates a raw decoded JSON value as a whole. It is the
// injected third-party validator referenced by an Atom descriptor.
type Validator interface {
	Validate(raw any) error
}

// AtomNode holds a value validated as a whole at completion time, never
// streamed incrementally.
type AtomNode struct {
	lifecycle
	validator Validator
	raw       any
	validated any
	hasRaw    bool
}

func newAtomNode(path string, v Validator) *AtomNode {
	return &AtomNode{lifecycle: lifecycle{path: path}, validator: v}
}

// Update records the node's current raw value. Fires start on first call.
func (n *AtomNode) Update(raw any) error {
	n.fireStart()
	n.raw = raw
	n.hasRaw = true
	return nil
}

// Validated returns the value produced by validation at complete(), or
// nil before completion.
func (n *AtomNode) Validated() any { return n.validated }

func (n *AtomNode) complete() error {
	if n.completed {
		return nil
	}
	if n.hasRaw && n.validator != nil {
		if err := n.validator.Validate(n.raw); err != nil {
			return newValidationError(n.path, "atom validation failed at "+n.path, err)
		}
	}
	n.validated = n.raw
	n.fireComplete(n.validated)
	return nil
}

// Complete finalises the node, running validation exactly once.
func (n *AtomNode) Complete() error { return n.complete() }

func (n *AtomNode) applyObservation(obs charstream.Observation) error {
	return n.Update(obs.ToAny())
}

func (n *AtomNode) plainValue() any { return n.raw }
