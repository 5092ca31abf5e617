package spendtrack

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound reports an update or delete referencing an unknown record id.
var ErrNotFound = errors.New("record not found")

// ValidationError carries the per-field failures of a record validation so
// callers can render feedback next to each field. Warnings are advisory
// findings that never block persistence; a ValidationError with only warnings
// is never returned as an error.
type ValidationError struct {
	Fields   map[string]string
	Warnings map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "invalid record: " + strings.Join(parts, "; ")
}

// PersistenceError reports a failure of the underlying key-value store.
//
// When it wraps a write, the in-memory mutation has already been applied:
// the condition is non-fatal and the caller must tell the user the change may
// not have been saved.
type PersistenceError struct {
	Op  string // store operation that failed, e.g. "write"
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// ImportError reports a document that could not be imported. Existing data is
// left completely untouched when it is returned.
type ImportError struct {
	Reason string
	Err    error
}

func (e *ImportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("import rejected: %s: %v", e.Reason, e.Err)
	}
	return "import rejected: " + e.Reason
}

func (e *ImportError) Unwrap() error { return e.Err }
