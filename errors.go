package export

import "github.com/cockroachdb/errors"

// Error is returned by every exported operation in this package. All error
// types are terminal: a run that fails is not retried and the partially
// written file is left in place.
type Error struct {
	Type    ErrorType
	Message string
	Base    error
}

func (e Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Base != nil {
		return e.Base.Error()
	}
	return "export - no error message"
}

func (e Error) Unwrap() error { return e.Base }

// Is matches another Error by Type, so callers can test
// errors.Is(err, export.Error{Type: export.ErrOpen}).
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.Type == e.Type && t.Message == "" && t.Base == nil
}

type ErrorType byte

const (
	ErrUnknown ErrorType = iota
	// ErrInvalidCount means a negative record count was requested.
	ErrInvalidCount
	// ErrInvalidTables means the configured source tables cannot be written.
	ErrInvalidTables
	// ErrAllocate means the record buffer for the requested count cannot be
	// sized.
	ErrAllocate
	// ErrOpen means the sink could not be opened. Nothing was written.
	ErrOpen
	// ErrWrite means the sink rejected or truncated a write, or failed to
	// sync or close.
	ErrWrite
	// ErrCatalog means the run could not be registered in the catalog.
	ErrCatalog
	// ErrCorrupt means a file does not match the layout or its catalog entry.
	ErrCorrupt
)

func (t ErrorType) String() string {
	switch t {
	case ErrInvalidCount:
		return "invalid count"
	case ErrInvalidTables:
		return "invalid tables"
	case ErrAllocate:
		return "allocate"
	case ErrOpen:
		return "open"
	case ErrWrite:
		return "write"
	case ErrCatalog:
		return "catalog"
	case ErrCorrupt:
		return "corrupt"
	default:
		return "unknown"
	}
}

func newDerivedError(t ErrorType, base error) error {
	return Error{Type: t, Message: base.Error(), Base: base}
}

func newWrappedError(t ErrorType, base error, format string, args ...interface{}) error {
	return newDerivedError(t, errors.Wrapf(base, format, args...))
}

func newSimpleError(t ErrorType, format string, args ...interface{}) error {
	return newDerivedError(t, errors.Newf(format, args...))
}
