package tracker

import "strings"

// Map is a tracked object. Mutations are intercepted and recorded onto
// the DiffBuffer returned alongside it from TrackChange.
type Map struct {
	path     string
	buf      *DiffBuffer
	strategy Strategy
	data     map[string]any
}

func (m *Map) Path() string { return m.path }

// Get returns the value at key, which may itself be a *Map/*Slice for a
// nested container, or nil if key is absent.
func (m *Map) Get(key string) any { return m.data[key] }

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.data[key]
	return ok
}

// Keys returns the map's current keys, in no particular order.
func (m *Map) Keys() []string {
	out := make([]string, 0, len(m.data))
	for k := range m.data {
		out = append(out, k)
	}
	return out
}

// Set assigns key, emitting add for a previously absent key or
// replace/append for an existing one per the active Strategy.
func (m *Map) Set(key string, v any) error {
	path := joinPointer(m.path, key)
	wrapped, err := wrapValue(v, path, m.buf, m.strategy)
	if err != nil {
		return err
	}
	old, existed := m.data[key]
	if !existed {
		m.data[key] = wrapped
		m.buf.record(Operation{Op: "add", Path: path, Value: plain(wrapped)})
		return nil
	}
	if op := synthesizeOverwrite(path, old, wrapped, m.strategy); op != nil {
		m.buf.record(*op)
	}
	m.data[key] = wrapped
	return nil
}

// Delete removes key, emitting remove if it was present.
func (m *Map) Delete(key string) error {
	if _, ok := m.data[key]; !ok {
		return nil
	}
	delete(m.data, key)
	m.buf.record(Operation{Op: "remove", Path: joinPointer(m.path, key)})
	return nil
}

// synthesizeOverwrite classifies an overwrite of an existing object key
// or in-range array index: suppress it if nothing changed, prefer a
// string-append delta under Efficient, else emit a plain replace.
func synthesizeOverwrite(path string, old, new any, strategy Strategy) *Operation {
	if strategy == Efficient {
		if oldStr, ok := old.(string); ok {
			if newStr, ok2 := new.(string); ok2 {
				if strings.HasPrefix(newStr, oldStr) && len(newStr) > len(oldStr) {
					delta := newStr[len(oldStr):]
					if delta == "" {
						return nil
					}
					return &Operation{Op: "append", Path: path, Value: delta}
				}
			}
		}
	}
	if scalarEqual(old, new) {
		return nil
	}
	return &Operation{Op: "replace", Path: path, Value: plain(new)}
}
