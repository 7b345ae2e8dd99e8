package streamkit

import "github.com/flowtrace/streamkit/internal/charstream"

// ObjectNode streams an object whose fields arrive in the descriptor's
// declaration order. Observing a later field finalises every earlier
// field that has been observed.
type ObjectNode struct {
	lifecycle
	keys         []string
	keyIndex     map[string]int
	children     []Node
	observedIdx  []bool
	completedIdx []bool
	lastKeyIndex int // -1 means no field observed yet

	onUpdate []func(raw any)
}

func newObjectNode(path string) *ObjectNode {
	return &ObjectNode{
		lifecycle:    lifecycle{path: path},
		keyIndex:     map[string]int{},
		lastKeyIndex: -1,
	}
}

func (n *ObjectNode) appendField(key string, child Node) {
	n.keyIndex[key] = len(n.keys)
	n.keys = append(n.keys, key)
	n.children = append(n.children, child)
	n.observedIdx = append(n.observedIdx, false)
	n.completedIdx = append(n.completedIdx, false)
}

// Field returns the child node declared under key, or nil.
func (n *ObjectNode) Field(key string) Node {
	if idx, ok := n.keyIndex[key]; ok {
		return n.children[idx]
	}
	return nil
}

// OnUpdate registers a callback fired on every Update call with a raw
// plain-value snapshot of the fields observed so far.
func (n *ObjectNode) OnUpdate(cb func(raw map[string]any)) {
	n.onUpdate = append(n.onUpdate, func(raw any) {
		if m, ok := raw.(map[string]any); ok {
			cb(m)
		}
	})
}

// Update advances the node with the object's currently known fields, in
// arrival order.
func (n *ObjectNode) Update(obs charstream.Observation) error {
	if obs.Kind == charstream.KindNull {
		return nil
	}
	if obs.Kind != charstream.KindObject {
		return newOutOfOrderKey(n.path, "expected an object at "+n.path)
	}
	n.fireStart()

	var newIdx []int
	for _, kv := range obs.Fields {
		idx, ok := n.keyIndex[kv.Key]
		if !ok {
			continue // unknown key: tolerated, not tracked (schema-bound parser, no unknown-key policy specified)
		}
		if n.observedIdx[idx] {
			continue // already the current or an already-finalised field
		}
		if idx < n.lastKeyIndex {
			return newOutOfOrderKey(n.path, "field \""+kv.Key+"\" observed after a later declared field at "+n.path)
		}
		n.observedIdx[idx] = true
		newIdx = append(newIdx, idx)
	}

	if len(newIdx) > 0 {
		for i := 1; i < len(newIdx); i++ {
			if newIdx[i] <= newIdx[i-1] {
				return newOutOfOrderKey(n.path, "field observed out of declaration order at "+n.path)
			}
		}
		maxIdx := newIdx[len(newIdx)-1]
		completeFrom := 0
		if n.lastKeyIndex >= 0 {
			completeFrom = n.lastKeyIndex
		}
		for idx := completeFrom; idx < maxIdx; idx++ {
			if n.completedIdx[idx] || !n.observedIdx[idx] {
				continue // never observed: stays uncompleted, its complete callbacks never fire
			}
			if fi := obs.IndexOf(n.keys[idx]); fi >= 0 {
				if err := n.children[idx].applyObservation(obs.Fields[fi].Val); err != nil {
					return err
				}
			}
			if err := n.children[idx].complete(); err != nil {
				return err
			}
			n.completedIdx[idx] = true
		}
		if fi := obs.IndexOf(n.keys[maxIdx]); fi >= 0 {
			if err := n.children[maxIdx].applyObservation(obs.Fields[fi].Val); err != nil {
				return err
			}
		}
		n.lastKeyIndex = maxIdx
	} else if n.lastKeyIndex >= 0 {
		if fi := obs.IndexOf(n.keys[n.lastKeyIndex]); fi >= 0 {
			if err := n.children[n.lastKeyIndex].applyObservation(obs.Fields[fi].Val); err != nil {
				return err
			}
		}
	}

	raw := obs.ToAny()
	for _, cb := range n.onUpdate {
		cb(raw)
	}
	return nil
}

func (n *ObjectNode) complete() error {
	if n.completed {
		return nil
	}
	if n.lastKeyIndex >= 0 && !n.completedIdx[n.lastKeyIndex] {
		if err := n.children[n.lastKeyIndex].complete(); err != nil {
			return err
		}
		n.completedIdx[n.lastKeyIndex] = true
	}
	n.fireComplete(n.plainValue())
	return nil
}

// Complete finalises the node explicitly. Idempotent.
func (n *ObjectNode) Complete() error { return n.complete() }

func (n *ObjectNode) applyObservation(obs charstream.Observation) error {
	return n.Update(obs)
}

// plainValue includes only fields that were actually observed: a field
// never present in the input has no value to report.
func (n *ObjectNode) plainValue() any {
	out := make(map[string]any, len(n.keys))
	for i, k := range n.keys {
		if n.observedIdx[i] {
			out[k] = n.children[i].plainValue()
		}
	}
	return out
}
