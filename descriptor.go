package streamkit

import "github.com/flowtrace/streamkit/jsonschema"

// Descriptor is the sealed interface implemented by every schema
// descriptor variant. Descriptors are immutable once built; Create
// materialises a fresh streaming Node for one parse.
type Descriptor interface {
	// Create materialises a new streaming node at the given breadcrumb
	// path (used only for error messages).
	Create(path string) (Node, error)
}

// StringDescriptor declares a streaming string leaf.
type StringDescriptor struct {
	description string
	defaultVal  *string
}

// String returns a new string descriptor.
func String() *StringDescriptor { return &StringDescriptor{} }

// Describe attaches a human description. Mutually exclusive with
// WithExternalSchema on descriptors that support both.
func (d *StringDescriptor) Describe(text string) *StringDescriptor {
	d.description = text
	return d
}

// Default attaches a default value.
func (d *StringDescriptor) Default(v string) *StringDescriptor {
	d.defaultVal = &v
	return d
}

func (d *StringDescriptor) Create(path string) (Node, error) {
	return newStringNode(path), nil
}

// AtomDescriptor declares a value validated as a whole by an injected
// Validator, never streamed incrementally.
type AtomDescriptor struct {
	description    string
	defaultVal     any
	validator      Validator
	externalSchema *jsonschema.Schema
}

// Atom returns a new atom descriptor backed by the given validator
// (nil means "accept any value").
func Atom(v Validator) *AtomDescriptor { return &AtomDescriptor{validator: v} }

func (d *AtomDescriptor) Describe(text string) *AtomDescriptor {
	d.description = text
	return d
}

func (d *AtomDescriptor) Default(v any) *AtomDescriptor {
	d.defaultVal = v
	return d
}

// WithExternalSchema sets the descriptor's external validation schema,
// mutually exclusive with Describe/Default.
func (d *AtomDescriptor) WithExternalSchema(s *jsonschema.Schema) *AtomDescriptor {
	d.externalSchema = s
	return d
}

func (d *AtomDescriptor) Create(path string) (Node, error) {
	if d.externalSchema != nil && (d.description != "" || d.defaultVal != nil) {
		return nil, newSchemaConfig(path, "atom descriptor at "+path+" sets both describe/default and an external schema")
	}
	return newAtomNode(path, d.validator), nil
}

// ArrayDescriptor declares a streaming array of a single element
// descriptor.
type ArrayDescriptor struct {
	elem           Descriptor
	description    string
	defaultVal     []any
	externalSchema *jsonschema.Schema
}

// Array returns a new array descriptor with the given element
// descriptor.
func Array(elem Descriptor) *ArrayDescriptor { return &ArrayDescriptor{elem: elem} }

func (d *ArrayDescriptor) Describe(text string) *ArrayDescriptor {
	d.description = text
	return d
}

// Default attaches a default value. ToExternalSchema exports it; the
// streaming node does not substitute it for an absent array.
func (d *ArrayDescriptor) Default(v []any) *ArrayDescriptor {
	d.defaultVal = v
	return d
}

// WithExternalSchema sets the descriptor's external validation schema,
// mutually exclusive with Describe/Default.
func (d *ArrayDescriptor) WithExternalSchema(s *jsonschema.Schema) *ArrayDescriptor {
	d.externalSchema = s
	return d
}

func (d *ArrayDescriptor) Create(path string) (Node, error) {
	if d.externalSchema != nil && (d.description != "" || d.defaultVal != nil) {
		return nil, newSchemaConfig(path, "array descriptor at "+path+" sets both describe/default and an external schema")
	}
	return newArrayNode(path, d.elem), nil
}

// objectField is one entry of an ObjectDescriptor's declaration-ordered
// field list.
type objectField struct {
	key  string
	desc Descriptor
}

// ObjectDescriptor declares a streaming object with an explicit,
// load-bearing field declaration order (Go map iteration order is
// undefined, so order is tracked as a slice built by Field).
type ObjectDescriptor struct {
	fields      []objectField
	description string
	defaultVal  map[string]any
}

// Object returns a new, empty object descriptor builder.
func Object() *ObjectDescriptor { return &ObjectDescriptor{} }

// Field appends a field in declaration order.
func (d *ObjectDescriptor) Field(key string, desc Descriptor) *ObjectDescriptor {
	d.fields = append(d.fields, objectField{key: key, desc: desc})
	return d
}

func (d *ObjectDescriptor) Describe(text string) *ObjectDescriptor {
	d.description = text
	return d
}

// Default records a default value on the descriptor. The streaming node
// does not substitute it for an absent object, and ToExternalSchema does
// not export it.
func (d *ObjectDescriptor) Default(v map[string]any) *ObjectDescriptor {
	d.defaultVal = v
	return d
}

func (d *ObjectDescriptor) Create(path string) (Node, error) {
	n := newObjectNode(path)
	for _, f := range d.fields {
		childPath := path + "." + f.key
		if path == "" {
			childPath = f.key
		}
		child, err := f.desc.Create(childPath)
		if err != nil {
			return nil, err
		}
		n.appendField(f.key, child)
	}
	return n, nil
}
