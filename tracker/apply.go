package tracker

import "fmt"

// ApplyError reports a failure to replay an Operation against a
// document, identifying the operation and the point of failure.
type ApplyError struct {
	Op      Operation
	Message string
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("tracker: apply %s %s: %s", e.Op.Op, e.Op.Path, e.Message)
}

func newApplyError(op Operation, format string, args ...any) *ApplyError {
	return &ApplyError{Op: op, Message: fmt.Sprintf(format, args...)}
}

// ApplyChange replays ops against doc in order and returns the
// resulting document. doc must be built from nested map[string]any,
// []any and scalar values (the same shape TrackChange accepts, or the
// plain tree a Wrapped root converts back to). Maps and slices inside
// doc are modified in place where possible, but an insertion into or a
// removal from a slice, or an operation on the root, produces a new
// container, so the returned document is the one to use.
func ApplyChange(doc any, ops []Operation) (any, error) {
	for _, op := range ops {
		var err error
		switch op.Op {
		case "add":
			doc, err = applyWrite(doc, splitPointer(op.Path), op.Value, op, false)
		case "replace":
			doc, err = applyWrite(doc, splitPointer(op.Path), op.Value, op, true)
		case "remove":
			doc, err = applyRemove(doc, splitPointer(op.Path), op)
		case "append":
			doc, err = applyAppend(doc, splitPointer(op.Path), op)
		case "move":
			var v any
			v, doc, err = applyRemoveGet(doc, splitPointer(op.From), op)
			if err == nil {
				doc, err = applyWrite(doc, splitPointer(op.Path), v, op, false)
			}
		case "copy":
			var v any
			v, err = applyGet(doc, splitPointer(op.From), op)
			if err == nil {
				doc, err = applyWrite(doc, splitPointer(op.Path), v, op, false)
			}
		case "test":
			err = applyTest(doc, splitPointer(op.Path), op)
		default:
			err = newApplyError(op, "unknown op %q", op.Op)
		}
		if err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func applyGet(doc any, tokens []string, op Operation) (any, error) {
	if len(tokens) == 0 {
		return doc, nil
	}
	switch c := doc.(type) {
	case map[string]any:
		v, ok := c[tokens[0]]
		if !ok {
			return nil, newApplyError(op, "key %q not found", tokens[0])
		}
		return applyGet(v, tokens[1:], op)
	case []any:
		idx, err := sliceIndex(c, tokens[0], op)
		if err != nil {
			return nil, err
		}
		return applyGet(c[idx], tokens[1:], op)
	default:
		return nil, newApplyError(op, "cannot descend into scalar at %q", tokens[0])
	}
}

// applyWrite places value at tokens within doc. For a map, a leaf token
// always overwrites the named key (add and replace agree there). For a
// slice, overwrite distinguishes the two: false (add) inserts value as
// a new element, shifting everything at or after the index right; true
// (replace, and append's post-concatenation write-back) overwrites the
// element already at that index in place.
func applyWrite(doc any, tokens []string, value any, op Operation, overwrite bool) (any, error) {
	if len(tokens) == 0 {
		return value, nil
	}
	switch c := doc.(type) {
	case map[string]any:
		if len(tokens) == 1 {
			c[tokens[0]] = value
			return c, nil
		}
		child, ok := c[tokens[0]]
		if !ok {
			return nil, newApplyError(op, "key %q not found", tokens[0])
		}
		newChild, err := applyWrite(child, tokens[1:], value, op, overwrite)
		if err != nil {
			return nil, err
		}
		c[tokens[0]] = newChild
		return c, nil
	case []any:
		if len(tokens) == 1 {
			if tokens[0] == "-" {
				return append(c, value), nil
			}
			if overwrite {
				idx, err := sliceIndex(c, tokens[0], op)
				if err != nil {
					return nil, err
				}
				c[idx] = value
				return c, nil
			}
			idx, err := sliceInsertIndex(c, tokens[0], op)
			if err != nil {
				return nil, err
			}
			out := make([]any, 0, len(c)+1)
			out = append(out, c[:idx]...)
			out = append(out, value)
			out = append(out, c[idx:]...)
			return out, nil
		}
		idx, err := sliceIndex(c, tokens[0], op)
		if err != nil {
			return nil, err
		}
		newChild, err := applyWrite(c[idx], tokens[1:], value, op, overwrite)
		if err != nil {
			return nil, err
		}
		c[idx] = newChild
		return c, nil
	default:
		return nil, newApplyError(op, "cannot descend into scalar at %q", tokens[0])
	}
}

func applyRemove(doc any, tokens []string, op Operation) (any, error) {
	v, newDoc, err := applyRemoveGet(doc, tokens, op)
	_ = v
	return newDoc, err
}

func applyRemoveGet(doc any, tokens []string, op Operation) (any, any, error) {
	if len(tokens) == 0 {
		return doc, nil, nil
	}
	switch c := doc.(type) {
	case map[string]any:
		if len(tokens) == 1 {
			v, ok := c[tokens[0]]
			if !ok {
				return nil, nil, newApplyError(op, "key %q not found", tokens[0])
			}
			delete(c, tokens[0])
			return v, c, nil
		}
		child, ok := c[tokens[0]]
		if !ok {
			return nil, nil, newApplyError(op, "key %q not found", tokens[0])
		}
		v, newChild, err := applyRemoveGet(child, tokens[1:], op)
		if err != nil {
			return nil, nil, err
		}
		c[tokens[0]] = newChild
		return v, c, nil
	case []any:
		idx, err := sliceIndex(c, tokens[0], op)
		if err != nil {
			return nil, nil, err
		}
		if len(tokens) == 1 {
			v := c[idx]
			out := append(c[:idx:idx], c[idx+1:]...)
			return v, out, nil
		}
		v, newChild, err := applyRemoveGet(c[idx], tokens[1:], op)
		if err != nil {
			return nil, nil, err
		}
		c[idx] = newChild
		return v, c, nil
	default:
		return nil, nil, newApplyError(op, "cannot descend into scalar at %q", tokens[0])
	}
}

func applyAppend(doc any, tokens []string, op Operation) (any, error) {
	v, err := applyGet(doc, tokens, op)
	if err != nil {
		return nil, err
	}
	s, ok := v.(string)
	if !ok {
		return nil, newApplyError(op, "append target is not a string")
	}
	delta, ok := op.Value.(string)
	if !ok {
		return nil, newApplyError(op, "append value is not a string")
	}
	return applyWrite(doc, tokens, s+delta, op, true)
}

func applyTest(doc any, tokens []string, op Operation) error {
	v, err := applyGet(doc, tokens, op)
	if err != nil {
		return err
	}
	if !deepEqual(v, op.Value) {
		return newApplyError(op, "test failed: value mismatch")
	}
	return nil
}

func sliceIndex(c []any, token string, op Operation) (int, error) {
	idx, err := parseIndex(token)
	if err != nil || idx < 0 || idx >= len(c) {
		return 0, newApplyError(op, "index %q out of range for length %d", token, len(c))
	}
	return idx, nil
}

func sliceInsertIndex(c []any, token string, op Operation) (int, error) {
	idx, err := parseIndex(token)
	if err != nil || idx < 0 || idx > len(c) {
		return 0, newApplyError(op, "insertion index %q out of range for length %d", token, len(c))
	}
	return idx, nil
}

func parseIndex(token string) (int, error) {
	n := 0
	if token == "" {
		return 0, fmt.Errorf("empty index")
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("not a decimal index")
		}
		n = n*10 + int(r-'0')
	}
	return n, nil
}

func deepEqual(a, b any) bool {
	switch av := a.(type) {
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			if !deepEqual(v, bv[k]) {
				return false
			}
		}
		return true
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i, v := range av {
			if !deepEqual(v, bv[i]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
