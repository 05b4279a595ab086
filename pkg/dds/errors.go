package dds

import (
	"errors"
	"fmt"

	"github.com/ddsbridge/dds-go/internal/bindings"
	"github.com/ddsbridge/dds-go/pkg/dds/internal/backend"
	"github.com/ddsbridge/dds-go/pkg/dds/slots"
)

var (
	// ErrNotBuilt indicates the binary was built without the native engine.
	ErrNotBuilt = bindings.ErrNotBuilt

	// ErrClosed indicates the solver has been closed
	ErrClosed = errors.New("dds: solver closed")

	// ErrInvalidArgument indicates the caller passed a malformed position or
	// parameter that was rejected before reaching the engine
	ErrInvalidArgument = errors.New("dds: invalid argument")

	// ErrResourceExhausted indicates every engine slot was in use under the
	// fail-fast policy.
	ErrResourceExhausted = slots.ErrExhausted

	// ErrEngine matches every *EngineError.
	ErrEngine = errors.New("dds: engine fault")
)

// Error wraps an underlying error with the failing operation.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("dds.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func invalidf(op string, format string, args ...any) error {
	return &Error{
		Op:  op,
		Err: fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...)),
	}
}

// EngineError is a non-success status code returned by the native engine.
type EngineError struct {
	Op      string
	Code    int
	Message string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("dds.%s: engine error %d: %s", e.Op, e.Code, e.Message)
}

// Is reports whether target is ErrEngine.
func (e *EngineError) Is(target error) bool {
	return target == ErrEngine
}

// Fatal reports whether the fault means the slot bookkeeping itself is
// broken. The engine only returns this when given a thread index outside
// its configured range.
func (e *EngineError) Fatal() bool {
	return e.Code == backend.CodeThreadIndex
}

// InputFault reports whether the engine rejected the position or parameters
// rather than failing internally.
func (e *EngineError) InputFault() bool {
	return backend.IsInputFault(e.Code)
}
