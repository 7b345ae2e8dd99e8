package tracker

// Codec (de)serialises Operation batches and plain documents. The
// default caller uses encoding/json directly; Codec exists so the
// tracker/gojson subpackage can swap in a goccy/go-json-backed
// implementation behind a build tag without the tracker package
// itself depending on it.
type Codec interface {
	MarshalOps(ops []Operation) ([]byte, error)
	UnmarshalOps(b []byte) ([]Operation, error)
	MarshalDocument(v any) ([]byte, error)
	UnmarshalDocument(b []byte) (any, error)
	Name() string
}
