package fallible

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrMissingCause stands in for a nil cause so an ExecutionError always has one.
var ErrMissingCause = errors.New("missing cause")

// ExecutionError is raised when an adapted operation fails under the rethrow
// policy. It owns exactly one cause, reachable through Unwrap.
type ExecutionError struct {
	id        uuid.UUID
	createdAt time.Time
	element   any
	cause     error
}

// NewExecutionError wraps cause, the failure of an operation on element.
// Only a nil interface is replaced by ErrMissingCause; any other cause is kept as is.
func NewExecutionError(element any, cause error) *ExecutionError {
	if cause == nil {
		cause = ErrMissingCause
	}
	return &ExecutionError{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		element:   element,
		cause:     cause,
	}
}

// Error message derived from the cause
func (e *ExecutionError) Error() string {
	return fmt.Sprintf("function execution failed: %v", e.cause)
}

// Unwrap returns the cause unchanged
func (e *ExecutionError) Unwrap() error {
	return e.cause
}

// Cause the original failure
func (e *ExecutionError) Cause() error {
	return e.cause
}

// Element returns the element the operation failed on.
func (e *ExecutionError) Element() any {
	return e.element
}

// ID unique per raised failure
func (e *ExecutionError) ID() uuid.UUID {
	return e.id
}

// CreatedAt time creation (UTC)
func (e *ExecutionError) CreatedAt() time.Time {
	return e.createdAt
}

// AsExecutionError finds the first ExecutionError in err's chain.
func AsExecutionError(err error) (*ExecutionError, bool) {
	var ee *ExecutionError
	if errors.As(err, &ee) {
		return ee, true
	}
	return nil, false
}

// CauseOf returns the cause carried by the outermost ExecutionError in err's
// chain, or err itself when there is none.
func CauseOf(err error) error {
	if ee, ok := AsExecutionError(err); ok {
		return ee.cause
	}
	return err
}
