package streamkit

import (
	"fmt"

	"github.com/flowtrace/streamkit/jsonschema"
)

// FromExternalSchema rebuilds a Descriptor tree from an external
// validation schema: a string validator maps to String; a
// numeric/boolean/enum validator maps to
// Atom; array(string) maps to Array<String>, array(object) maps to
// Array<Object{...}>, array of any other leaf maps to an atom-array
// (whole-item validated, not streamed); object{...} recurses; an
// optional/nullable wrapper is unwrapped before mapping the inner type.
func FromExternalSchema(s *jsonschema.Schema) (Descriptor, error) {
	if s == nil {
		return nil, fmt.Errorf("streamkit: nil external schema")
	}
	switch s.Type {
	case "string":
		d := String()
		if s.Default != nil {
			if dv, ok := s.Default.(string); ok {
				d.Default(dv)
			}
		}
		return d, nil
	case "number", "integer", "boolean":
		v, err := jsonschema.Compile(s)
		if err != nil {
			return nil, err
		}
		return Atom(v), nil
	case "array":
		if s.Items == nil {
			return nil, fmt.Errorf("streamkit: array schema without items")
		}
		switch s.Items.Type {
		case "string":
			return Array(String()), nil
		case "object":
			elem, err := FromExternalSchema(s.Items)
			if err != nil {
				return nil, err
			}
			return Array(elem), nil
		default:
			v, err := jsonschema.Compile(s.Items)
			if err != nil {
				return nil, err
			}
			return Array(Atom(v)), nil
		}
	case "object":
		obj := Object()
		order := s.PropertyOrder
		if len(order) == 0 {
			for k := range s.Properties {
				order = append(order, k)
			}
		}
		for _, k := range order {
			child, ok := s.Properties[k]
			if !ok {
				continue
			}
			cd, err := FromExternalSchema(unwrapOptional(child))
			if err != nil {
				return nil, fmt.Errorf("streamkit: field %q: %w", k, err)
			}
			obj.Field(k, cd)
		}
		return obj, nil
	}
	if len(s.OneOf) > 0 || len(s.Enum) > 0 {
		v, err := jsonschema.Compile(s)
		if err != nil {
			return nil, err
		}
		return Atom(v), nil
	}
	return nil, fmt.Errorf("streamkit: unsupported external schema type %q", s.Type)
}

// unwrapOptional strips an optional/nullable wrapper, mapping straight
// through to the inner type it wraps.
func unwrapOptional(s *jsonschema.Schema) *jsonschema.Schema {
	if s.Nullable {
		inner := *s
		inner.Nullable = false
		return &inner
	}
	return s
}

// ToExternalSchema exports d as an external validation schema, the
// inverse of FromExternalSchema, so callers can hand the shape to an
// LLM SDK for constrained generation.
func (d *ObjectDescriptor) ToExternalSchema() (*jsonschema.Schema, error) {
	props := make(map[string]*jsonschema.Schema, len(d.fields))
	order := make([]string, 0, len(d.fields))
	for _, f := range d.fields {
		fs, err := toExternalSchema(f.desc)
		if err != nil {
			return nil, err
		}
		props[f.key] = fs
		order = append(order, f.key)
	}
	return &jsonschema.Schema{
		Type:                 "object",
		Properties:           props,
		PropertyOrder:        order,
		AdditionalProperties: false,
	}, nil
}

func toExternalSchema(d Descriptor) (*jsonschema.Schema, error) {
	switch v := d.(type) {
	case *StringDescriptor:
		s := &jsonschema.Schema{Type: "string"}
		if v.defaultVal != nil {
			s.Default = *v.defaultVal
		}
		return s, nil
	case *AtomDescriptor:
		if v.externalSchema != nil {
			return v.externalSchema, nil
		}
		return &jsonschema.Schema{}, nil
	case *ArrayDescriptor:
		return v.ToExternalSchema()
	case *ObjectDescriptor:
		return v.ToExternalSchema()
	default:
		return nil, fmt.Errorf("streamkit: unsupported descriptor type %T", d)
	}
}

// ToExternalSchema exports d as an external validation schema, the
// array-side counterpart of ObjectDescriptor.ToExternalSchema. An
// explicitly set WithExternalSchema takes priority over deriving the
// shape from the element descriptor.
func (d *ArrayDescriptor) ToExternalSchema() (*jsonschema.Schema, error) {
	if d.externalSchema != nil {
		return d.externalSchema, nil
	}
	elem, err := toExternalSchema(d.elem)
	if err != nil {
		return nil, err
	}
	s := &jsonschema.Schema{Type: "array", Items: elem}
	if d.defaultVal != nil {
		s.Default = d.defaultVal
	}
	return s, nil
}
