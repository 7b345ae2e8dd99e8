// Package dsl provides builder sugar over the root package's
// descriptor factories: short constructors delegating straight to the
// root-level primitives.
package dsl

import (
	"github.com/flowtrace/streamkit"
	js "github.com/flowtrace/streamkit/jsonschema"
)

// String returns a new string descriptor.
func String() *streamkit.StringDescriptor { return streamkit.String() }

// Object returns a new, empty object descriptor builder.
func Object() *streamkit.ObjectDescriptor { return streamkit.Object() }

// Array returns a new array descriptor with the given element
// descriptor.
func Array(elem streamkit.Descriptor) *streamkit.ArrayDescriptor {
	return streamkit.Array(elem)
}

// Atom returns a new atom descriptor backed by the given validator.
func Atom(v streamkit.Validator) *streamkit.AtomDescriptor {
	return streamkit.Atom(v)
}

// Number returns an atom descriptor whose validator constrains the
// value to a JSON number. No external schema is set on the descriptor.
func Number() *streamkit.AtomDescriptor {
	v, _ := js.Compile(&js.Schema{Type: "number"})
	return streamkit.Atom(v)
}

// Boolean returns an atom descriptor whose validator constrains the
// value to a JSON boolean. No external schema is set on the descriptor.
func Boolean() *streamkit.AtomDescriptor {
	v, _ := js.Compile(&js.Schema{Type: "boolean"})
	return streamkit.Atom(v)
}

// Enum returns an atom descriptor whose validator constrains the value
// to one of values. No external schema is set on the descriptor.
func Enum(values ...any) *streamkit.AtomDescriptor {
	v, _ := js.Compile(&js.Schema{Enum: values})
	return streamkit.Atom(v)
}
