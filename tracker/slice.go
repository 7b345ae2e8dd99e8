package tracker

import "fmt"

// Slice is a tracked array. Mutations are intercepted and recorded onto
// the DiffBuffer returned alongside it from TrackChange.
type Slice struct {
	path     string
	buf      *DiffBuffer
	strategy Strategy
	data     []any
}

func (s *Slice) Path() string { return s.path }

// Len returns the current length.
func (s *Slice) Len() int { return len(s.data) }

// Get returns the element at i, which may itself be a *Map/*Slice.
func (s *Slice) Get(i int) any { return s.data[i] }

// Set assigns the element at index i. i == Len() is equivalent to a
// single-item Push (emits add at the trailing "-" position); i < Len()
// overwrites per the active Strategy; i > Len() is out of range.
func (s *Slice) Set(i int, v any) error {
	if i == len(s.data) {
		return s.Push(v)
	}
	if i < 0 || i > len(s.data) {
		return fmt.Errorf("tracker: index %d out of range for %s (len %d)", i, s.path, len(s.data))
	}
	path := joinPointerIndex(s.path, i)
	wrapped, err := wrapValue(v, path, s.buf, s.strategy)
	if err != nil {
		return err
	}
	old := s.data[i]
	if op := synthesizeOverwrite(path, old, wrapped, s.strategy); op != nil {
		s.buf.record(*op)
	}
	s.data[i] = wrapped
	return nil
}

// Push appends one or more items, each emitting add at the trailing
// "-" position in order.
func (s *Slice) Push(items ...any) error {
	for _, v := range items {
		idx := len(s.data)
		path := joinPointerIndex(s.path, idx)
		wrapped, err := wrapValue(v, path, s.buf, s.strategy)
		if err != nil {
			return err
		}
		s.data = append(s.data, wrapped)
		s.buf.record(Operation{Op: "add", Path: joinPointer(s.path, "-"), Value: plain(wrapped)})
	}
	return nil
}

// Pop removes and returns the last element.
func (s *Slice) Pop() (any, error) {
	n := len(s.data)
	if n == 0 {
		return nil, fmt.Errorf("tracker: pop on empty array at %s", s.path)
	}
	v := s.data[n-1]
	s.data = s.data[:n-1]
	s.buf.record(Operation{Op: "remove", Path: joinPointerIndex(s.path, n-1)})
	return v, nil
}

// Splice removes del elements starting at start and inserts ins in
// their place, emitting one remove per deleted element (each targeting
// the now-stable index start, since prior removals shift the remainder
// down) followed by one add per inserted element.
func (s *Slice) Splice(start, del int, ins ...any) error {
	if start < 0 || start > len(s.data) || del < 0 || start+del > len(s.data) {
		return fmt.Errorf("tracker: splice(%d,%d) out of range for %s (len %d)", start, del, s.path, len(s.data))
	}
	for i := 0; i < del; i++ {
		s.buf.record(Operation{Op: "remove", Path: joinPointerIndex(s.path, start)})
	}
	wrappedIns := make([]any, len(ins))
	for i, v := range ins {
		path := joinPointerIndex(s.path, start+i)
		wrapped, err := wrapValue(v, path, s.buf, s.strategy)
		if err != nil {
			return err
		}
		wrappedIns[i] = wrapped
	}
	tail := append([]any{}, s.data[start+del:]...)
	s.data = append(s.data[:start], wrappedIns...)
	s.data = append(s.data, tail...)
	for i, v := range wrappedIns {
		s.buf.record(Operation{Op: "add", Path: joinPointerIndex(s.path, start+i), Value: plain(v)})
	}
	return nil
}
