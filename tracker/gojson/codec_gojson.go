//go:build gojson

// Package gojson swaps the tracker's JSON codec for operations and
// documents between encoding/json and goccy/go-json, selected at build
// time with the gojson tag.
package gojson

import (
	j "github.com/goccy/go-json"

	"github.com/flowtrace/streamkit/tracker"
)

// Codec returns a codec backed by goccy/go-json.
func Codec() tracker.Codec { return codecGoJSON{} }

type codecGoJSON struct{}

func (codecGoJSON) MarshalOps(ops []tracker.Operation) ([]byte, error) { return j.Marshal(ops) }

func (codecGoJSON) UnmarshalOps(b []byte) ([]tracker.Operation, error) {
	var ops []tracker.Operation
	if err := j.Unmarshal(b, &ops); err != nil {
		return nil, err
	}
	return ops, nil
}

func (codecGoJSON) UnmarshalDocument(b []byte) (any, error) {
	var v any
	if err := j.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func (codecGoJSON) MarshalDocument(v any) ([]byte, error) { return j.Marshal(v) }

func (codecGoJSON) Name() string { return "go-json" }
