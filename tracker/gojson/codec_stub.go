//go:build !gojson

package gojson

import (
	"encoding/json"

	"github.com/flowtrace/streamkit/tracker"
)

// Codec returns the encoding/json-backed codec used when the gojson
// build tag is not enabled, so this package always has a usable
// implementation.
func Codec() tracker.Codec { return stub{} }

type stub struct{}

func (stub) MarshalOps(ops []tracker.Operation) ([]byte, error) { return json.Marshal(ops) }

func (stub) UnmarshalOps(b []byte) ([]tracker.Operation, error) {
	var ops []tracker.Operation
	if err := json.Unmarshal(b, &ops); err != nil {
		return nil, err
	}
	return ops, nil
}

func (stub) UnmarshalDocument(b []byte) (any, error) {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func (stub) MarshalDocument(v any) ([]byte, error) { return json.Marshal(v) }

func (stub) Name() string { return "encoding/json (gojson stub)" }
