package streamkit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/flowtrace/streamkit/i18n"
)

// Issue codes raised by the core, one per error kind named in the error
// taxonomy.
const (
	CodeContinuity    = "continuity"
	CodeOutOfOrderKey = "out_of_order_key"
	CodeValidationErr = "validation_error"
	CodeSchemaConfig  = "schema_config"
	CodeTrailingInput = "trailing_input"
)

// Issue represents a single error entry raised by the core. Message is
// the localized text for Code; Hint carries the situational detail
// (the offending value, the conflicting field) that a translation
// can't express.
type Issue struct {
	Path    string // Breadcrumb path of the node that raised the issue (see Node.Path).
	Code    string
	Message string
	Hint    string
	Cause   error
}

// Issues is a collection of Issue values that implements error.
type Issues []Issue

func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

func (iss Issue) fullMessage() string {
	if iss.Hint == "" {
		return iss.Message
	}
	return iss.Message + ": " + iss.Hint
}

// ContinuityError is raised when a streaming string value is not a
// prefix-extension of its current accumulated value.
type ContinuityError struct{ Issue }

func (e *ContinuityError) Error() string { return e.fullMessage() }
func (e *ContinuityError) Unwrap() error { return e.Cause }

// OutOfOrderKeyError is raised when an object field arrives earlier than a
// previously observed field in declaration order.
type OutOfOrderKeyError struct{ Issue }

func (e *OutOfOrderKeyError) Error() string { return e.fullMessage() }
func (e *OutOfOrderKeyError) Unwrap() error { return e.Cause }

// ValidationError is raised when an Atom node fails validation at complete().
type ValidationError struct{ Issue }

func (e *ValidationError) Error() string { return e.fullMessage() }
func (e *ValidationError) Unwrap() error { return e.Cause }

// SchemaConfigError is raised on conflicting descriptor metadata.
type SchemaConfigError struct{ Issue }

func (e *SchemaConfigError) Error() string { return e.fullMessage() }
func (e *SchemaConfigError) Unwrap() error { return e.Cause }

// TrailingInputError is raised when characters arrive after root
// completion.
type TrailingInputError struct{ Issue }

func (e *TrailingInputError) Error() string { return e.fullMessage() }
func (e *TrailingInputError) Unwrap() error { return e.Cause }

func newContinuity(path, hint string) error {
	return &ContinuityError{Issue{Path: path, Code: CodeContinuity, Message: i18n.T(CodeContinuity, nil), Hint: hint}}
}

func newOutOfOrderKey(path, hint string) error {
	return &OutOfOrderKeyError{Issue{Path: path, Code: CodeOutOfOrderKey, Message: i18n.T(CodeOutOfOrderKey, nil), Hint: hint}}
}

func newValidationError(path, hint string, cause error) error {
	return &ValidationError{Issue{Path: path, Code: CodeValidationErr, Message: i18n.T(CodeValidationErr, nil), Hint: hint, Cause: cause}}
}

func newSchemaConfig(path, hint string) error {
	return &SchemaConfigError{Issue{Path: path, Code: CodeSchemaConfig, Message: i18n.T(CodeSchemaConfig, nil), Hint: hint}}
}

func newTrailingInput(path, hint string) error {
	return &TrailingInputError{Issue{Path: path, Code: CodeTrailingInput, Message: i18n.T(CodeTrailingInput, nil), Hint: hint}}
}

// AsIssue extracts the underlying Issue from any of the core's typed
// errors using errors.As.
func AsIssue(err error) (Issue, bool) {
	if err == nil {
		return Issue{}, false
	}
	var c *ContinuityError
	if errors.As(err, &c) {
		return c.Issue, true
	}
	var o *OutOfOrderKeyError
	if errors.As(err, &o) {
		return o.Issue, true
	}
	var v *ValidationError
	if errors.As(err, &v) {
		return v.Issue, true
	}
	var s *SchemaConfigError
	if errors.As(err, &s) {
		return s.Issue, true
	}
	var t *TrailingInputError
	if errors.As(err, &t) {
		return t.Issue, true
	}
	return Issue{}, false
}
