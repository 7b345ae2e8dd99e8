// Package charstream implements the partial JSON tokeniser: a stateful
// consumer of character chunks that yields, after each chunk, a snapshot
// of the document observed so far in a shape isomorphic to the final
// JSON tree.
package charstream

import "strconv"

// Kind tags the variant of an Observation.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindNull
	KindArray
	KindObject
)

// KV is one field of a partially observed JSON object, in arrival order.
type KV struct {
	Key string
	Val Observation
}

// Observation is an immutable snapshot of a JSON value as known so far.
// A String observation whose Str is non-nil has had its opening quote
// seen (possibly with zero characters of content yet); a Number/Bool
// observation only ever appears once its value is fully, unambiguously
// known (the tokeniser withholds partial numbers and partial keyword
// literals entirely). Array and Object observations appear as soon as
// their opening bracket is seen, with Items/Fields reflecting only the
// currently known elements.
type Observation struct {
	Kind Kind

	Str *string // KindString: decoded content observed so far.

	Num string // KindNumber: raw number text (only once unambiguous).

	Bool bool // KindBool: the resolved true/false value.

	Items []Observation // KindArray: currently known elements, in order.

	Fields []KV // KindObject: currently known fields, in arrival order.
}

// IndexOf returns the position of key within Fields, or -1.
func (o Observation) IndexOf(key string) int {
	for i, kv := range o.Fields {
		if kv.Key == key {
			return i
		}
	}
	return -1
}

// ToAny materialises the observation as a plain Go value
// (string/float64, or the raw number text if it does not parse as a
// float64/bool/nil/[]any/map[string]any),
// for callers (Atom nodes, Object.onUpdate) that need a whole-value
// snapshot rather than a typed extraction.
func (o Observation) ToAny() any {
	switch o.Kind {
	case KindString:
		if o.Str == nil {
			return nil
		}
		return *o.Str
	case KindNumber:
		f, err := strconv.ParseFloat(o.Num, 64)
		if err != nil {
			return o.Num
		}
		return f
	case KindBool:
		return o.Bool
	case KindNull:
		return nil
	case KindArray:
		out := make([]any, len(o.Items))
		for i, it := range o.Items {
			out[i] = it.ToAny()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(o.Fields))
		for _, kv := range o.Fields {
			out[kv.Key] = kv.Val.ToAny()
		}
		return out
	}
	return nil
}
