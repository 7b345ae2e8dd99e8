package streamkit

import (
	"errors"

	"github.com/flowtrace/streamkit/internal/charstream"
)

// ParseOption configures a Parser's resource limits.
type ParseOption func(*charstream.Options)

// WithMaxDepth caps nesting depth; 0 (the default) means unlimited.
func WithMaxDepth(n int) ParseOption {
	return func(o *charstream.Options) { o.MaxDepth = n }
}

// WithMaxBytes caps the total number of bytes a Parser will accept
// across all Push calls; 0 (the default) means unlimited.
func WithMaxBytes(n int64) ParseOption {
	return func(o *charstream.Options) { o.MaxBytes = n }
}

// DuplicateKeyPolicy controls how a Parser reacts to a repeated object
// key within one object.
type DuplicateKeyPolicy = charstream.DuplicateStrictness

const (
	DuplicateKeyIgnore DuplicateKeyPolicy = charstream.DupIgnore
	DuplicateKeyWarn   DuplicateKeyPolicy = charstream.DupWarn
	DuplicateKeyError  DuplicateKeyPolicy = charstream.DupError
)

// WithDuplicateKeyPolicy sets the duplicate-key policy; the default is
// DuplicateKeyWarn.
func WithDuplicateKeyPolicy(p DuplicateKeyPolicy) ParseOption {
	return func(o *charstream.Options) { o.OnDuplicateKey = p }
}

// Parser drives a character chunk stream onto a root streaming node
// (C4). The zero value is not usable; construct with NewParser.
type Parser struct {
	root      Node
	tok       *charstream.Tokenizer
	completed bool
}

// NewParser returns a Parser that routes tokeniser observations onto
// root.
func NewParser(root Node, opts ...ParseOption) *Parser {
	var o charstream.Options
	o.OnDuplicateKey = charstream.DupWarn
	for _, opt := range opts {
		opt(&o)
	}
	return &Parser{root: root, tok: charstream.New(o)}
}

// Push feeds the next chunk of characters. An empty chunk is a no-op.
// Errors from the tokeniser or from the node tree (including user
// callback errors) propagate unwrapped, except that the tokeniser's
// trailing-input error is returned as a *TrailingInputError; after an
// error the Parser is no longer usable.
func (p *Parser) Push(chunk string) error {
	if chunk == "" {
		return nil
	}
	obs, err := p.tok.Push(chunk)
	if err != nil {
		if errors.Is(err, charstream.ErrTrailingInput) {
			return newTrailingInput(p.root.Path(), chunk)
		}
		return err
	}
	return p.root.applyObservation(obs)
}

// Complete finalises the root node. Idempotent: a second call is a
// silent no-op.
func (p *Parser) Complete() error {
	if p.completed {
		return nil
	}
	p.completed = true
	return p.root.complete()
}

// Warnings returns any non-fatal issues the tokeniser recorded (for
// example a duplicate key observed under DuplicateKeyWarn).
func (p *Parser) Warnings() []string { return p.tok.Warnings }

// Scoped calls fn, then unconditionally calls Complete, guaranteeing
// completion on normal or abnormal exit. fn's error takes priority over
// a subsequent Complete error.
func (p *Parser) Scoped(fn func(*Parser) error) error {
	fnErr := fn(p)
	compErr := p.Complete()
	if fnErr != nil {
		return fnErr
	}
	return compErr
}
