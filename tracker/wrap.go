package tracker

import "fmt"

// Wrapped is implemented by *Map and *Slice, the two container
// builder-wrapper types a tracked document is made of.
type Wrapped interface {
	// Path is the container's JSON Pointer, fixed at wrap time.
	Path() string
}

// TrackChange wraps root (built from nested map[string]any/[]any/scalar
// values, as encoding/json would decode a JSON document) so that every
// subsequent mutation through the returned Wrapped is intercepted and
// recorded into the returned DiffBuffer.
func TrackChange(root any, strategy Strategy) (Wrapped, *DiffBuffer, error) {
	buf := &DiffBuffer{}
	w, err := wrapValue(root, "", buf, strategy)
	if err != nil {
		return nil, nil, err
	}
	wrapped, ok := w.(Wrapped)
	if !ok {
		return nil, nil, fmt.Errorf("tracker: root value must be a map or a slice, got %T", root)
	}
	return wrapped, buf, nil
}

// wrapValue recursively interposes nested containers at wrap time.
// Scalars, and values already wrapped by a prior TrackChange/Set call,
// pass through unchanged: re-assigning an already-wrapped container
// keeps its original, fixed path rather than adopting the path of its
// new parent.
func wrapValue(v any, path string, buf *DiffBuffer, strategy Strategy) (any, error) {
	switch vv := v.(type) {
	case map[string]any:
		m := &Map{path: path, buf: buf, strategy: strategy, data: map[string]any{}}
		for k, val := range vv {
			child, err := wrapValue(val, joinPointer(path, k), buf, strategy)
			if err != nil {
				return nil, err
			}
			m.data[k] = child
		}
		return m, nil
	case []any:
		s := &Slice{path: path, buf: buf, strategy: strategy, data: make([]any, 0, len(vv))}
		for i, val := range vv {
			child, err := wrapValue(val, joinPointerIndex(path, i), buf, strategy)
			if err != nil {
				return nil, err
			}
			s.data = append(s.data, child)
		}
		return s, nil
	default:
		return v, nil
	}
}

// plain converts a (possibly wrapped) value back into a plain
// map[string]any/[]any/scalar tree, suitable for an Operation's Value
// field or for ApplyChange's input document.
func plain(v any) any {
	switch vv := v.(type) {
	case *Map:
		out := make(map[string]any, len(vv.data))
		for k, val := range vv.data {
			out[k] = plain(val)
		}
		return out
	case *Slice:
		out := make([]any, len(vv.data))
		for i, val := range vv.data {
			out[i] = plain(val)
		}
		return out
	default:
		return v
	}
}

// scalarEqual reports whether a and b are equal comparable scalars; it
// never considers two containers equal, so a container overwrite is
// never suppressed, only an identical-scalar overwrite is.
func scalarEqual(a, b any) (eq bool) {
	switch a.(type) {
	case *Map, *Slice:
		return false
	}
	switch b.(type) {
	case *Map, *Slice:
		return false
	}
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}
