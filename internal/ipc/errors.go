package ipc

import (
	"errors"
	"fmt"
)

// ErrStopRequested is returned by a blocking wait when it unblocked
// because the process's stop flag was tripped (signal delivered), rather
// than because the semaphore was posted. The shared stop_generators flag
// is not consulted by the wait; callers check it at their loop heads. Callers treat it as a distinct "stop requested" outcome,
// separate from a normal successful wait.
var ErrStopRequested = errors.New("ipc: stop requested")

// ErrResourceExists is returned when a supervisor tries to create a
// named resource (shared memory segment or semaphore) that already
// exists, typically because a prior supervisor run crashed without
// running its shutdown path.
var ErrResourceExists = errors.New("ipc: named resource already exists")

// ErrResourceAbsent is returned when a generator tries to attach to a
// named resource that does not exist, i.e. no supervisor has created it.
var ErrResourceAbsent = errors.New("ipc: named resource does not exist")

// InitError wraps a failure during resource creation or attachment with
// the name of the resource and the operation that failed, so a single
// diagnostic line can name both.
type InitError struct {
	Resource  string
	Operation string
	Cause     error
}

// Error implements the error interface.
func (e *InitError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Operation, e.Resource, e.Cause)
}

// Unwrap returns the underlying cause for errors.Is/errors.As matching,
// e.g. errors.Is(err, ipc.ErrResourceExists).
func (e *InitError) Unwrap() error {
	return e.Cause
}

// wrapInit builds an *InitError, or returns nil if cause is nil.
func wrapInit(resource, operation string, cause error) error {
	if cause == nil {
		return nil
	}
	return &InitError{Resource: resource, Operation: operation, Cause: cause}
}
