package streamkit

import "github.com/flowtrace/streamkit/internal/charstream"

// ArrayNode streams an array of a single element descriptor. Whether
// elements stream incrementally or are validated whole follows from the
// element descriptor's own node type: an Atom element never exposes a
// partial value, so an "array of atoms" needs no separate handling; it
// falls out of this uniformly.
type ArrayNode struct {
	lifecycle
	elem     Descriptor
	children []Node

	onAppend []func(child Node, index int)

	isNull bool
}

func newArrayNode(path string, elem Descriptor) *ArrayNode {
	return &ArrayNode{lifecycle: lifecycle{path: path}, elem: elem}
}

// OnAppend registers a callback fired once per newly created child, in
// increasing index order.
func (n *ArrayNode) OnAppend(cb func(child Node, index int)) {
	n.onAppend = append(n.onAppend, cb)
}

// Len returns the number of children created so far.
func (n *ArrayNode) Len() int { return len(n.children) }

// Item returns the child node at index i.
func (n *ArrayNode) Item(i int) Node { return n.children[i] }

func (n *ArrayNode) childPath(i int) string {
	if n.path == "" {
		return ""
	}
	return n.path + "[" + itoa(i) + "]"
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}

// Update advances the node with the array's currently known elements.
func (n *ArrayNode) Update(obs charstream.Observation) error {
	if obs.Kind == charstream.KindNull {
		n.isNull = true
		return nil
	}
	if obs.Kind != charstream.KindArray {
		return newContinuity(n.path, "expected an array at "+n.path)
	}
	n.fireStart()

	prevLen := len(n.children)
	newLen := len(obs.Items)

	switch {
	case newLen > prevLen:
		if prevLen > 0 {
			last := n.children[prevLen-1]
			if err := last.applyObservation(obs.Items[prevLen-1]); err != nil {
				return err
			}
			if err := last.complete(); err != nil {
				return err
			}
		}
		for i := prevLen; i < newLen-1; i++ {
			child, err := n.elem.Create(n.childPath(i))
			if err != nil {
				return err
			}
			n.children = append(n.children, child)
			n.fireAppendCb(child, i)
			if err := child.applyObservation(obs.Items[i]); err != nil {
				return err
			}
			if err := child.complete(); err != nil {
				return err
			}
		}
		last := newLen - 1
		child, err := n.elem.Create(n.childPath(last))
		if err != nil {
			return err
		}
		n.children = append(n.children, child)
		n.fireAppendCb(child, last)
		if err := child.applyObservation(obs.Items[last]); err != nil {
			return err
		}
	case newLen == prevLen && newLen > 0:
		last := n.children[newLen-1]
		if err := last.applyObservation(obs.Items[newLen-1]); err != nil {
			return err
		}
	}
	return nil
}

func (n *ArrayNode) fireAppendCb(child Node, index int) {
	for _, cb := range n.onAppend {
		cb(child, index)
	}
}

func (n *ArrayNode) complete() error {
	if n.completed {
		return nil
	}
	if len(n.children) > 0 {
		if err := n.children[len(n.children)-1].complete(); err != nil {
			return err
		}
	}
	n.fireComplete(n.plainValue())
	return nil
}

// Complete finalises the node, completing the last child if any.
func (n *ArrayNode) Complete() error { return n.complete() }

func (n *ArrayNode) applyObservation(obs charstream.Observation) error {
	return n.Update(obs)
}

func (n *ArrayNode) plainValue() any {
	if n.isNull {
		return []any{}
	}
	out := make([]any, len(n.children))
	for i, c := range n.children {
		out[i] = c.plainValue()
	}
	return out
}
