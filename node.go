package streamkit

import "github.com/flowtrace/streamkit/internal/charstream"

// Node is the sealed interface implemented by every streaming node
// variant (StringNode, ArrayNode, AtomNode, ObjectNode). All variants
// share Start/Complete lifecycle semantics; variant-specific update
// methods are declared on the concrete types.
type Node interface {
	// Path is the node's position in the document, rendered as a
	// human-readable breadcrumb (e.g. "items[2].name"), used only in
	// error messages.
	Path() string
	// Started reports whether the node has fired its start callbacks.
	Started() bool
	// Completed reports whether the node has fired its complete callbacks.
	Completed() bool
	// OnStart registers a callback fired exactly once, on first update.
	OnStart(cb func())
	// OnComplete registers a callback fired exactly once, on completion,
	// with the node's final plain value (string/float64/bool/nil/[]any/
	// map[string]any, the same shape Observation.ToAny produces).
	OnComplete(cb func(value any))

	// complete finalises the node; called by the parent node's own
	// completion logic or by the root Parser.
	complete() error
	// applyObservation routes a C3 tokeniser snapshot onto the node,
	// translating it into the variant's own typed Update call. This is
	// the C4-to-C2 wiring point; it is not part of the public surface a
	// caller composing nodes by hand needs to use.
	applyObservation(obs charstream.Observation) error
	// plainValue renders the node's current value in the same plain
	// shape Observation.ToAny produces, used to build the value handed
	// to OnComplete callbacks without re-threading the original
	// Observation through complete().
	plainValue() any
}

// lifecycle holds the state and callback lists shared by every node
// variant. Embed it and call its helpers from the variant's own
// update/complete methods.
type lifecycle struct {
	path       string
	started    bool
	completed  bool
	onStart    []func()
	onComplete []func(value any)
}

func (l *lifecycle) Path() string    { return l.path }
func (l *lifecycle) Started() bool   { return l.started }
func (l *lifecycle) Completed() bool { return l.completed }

func (l *lifecycle) OnStart(cb func()) {
	if l.started {
		return
	}
	l.onStart = append(l.onStart, cb)
}

func (l *lifecycle) OnComplete(cb func(value any)) {
	if l.completed {
		return
	}
	l.onComplete = append(l.onComplete, cb)
}

// fireStart marks the node started and fires every registered start
// callback, exactly once. A no-op if already started.
func (l *lifecycle) fireStart() {
	if l.started {
		return
	}
	l.started = true
	cbs := l.onStart
	l.onStart = nil
	for _, cb := range cbs {
		cb()
	}
}

// fireComplete marks the node completed and fires every registered
// complete callback with value, exactly once. A no-op if already
// completed.
func (l *lifecycle) fireComplete(value any) {
	if l.completed {
		return
	}
	l.completed = true
	cbs := l.onComplete
	l.onComplete = nil
	for _, cb := range cbs {
		cb(value)
	}
}
