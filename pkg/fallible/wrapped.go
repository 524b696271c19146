package fallible

import (
	"time"

	"github.com/google/uuid"
)

// WrappedError carries a failure moved onto the panic channel by the
// Unchecked strategy. Its message is the cause's message, unchanged.
type WrappedError struct {
	id        uuid.UUID
	createdAt time.Time
	cause     error
}

var _ Wrapper = (*WrappedError)(nil)

// Wrap returns a new WrappedError around err, or nil if err is nil.
// Every call allocates a new value with its own ID.
func Wrap(err error) *WrappedError {
	if err == nil {
		return nil
	}
	return &WrappedError{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		cause:     err,
	}
}

func (w *WrappedError) Error() string {
	if w == nil || w.cause == nil {
		return "<nil>"
	}
	return w.cause.Error()
}

func (w *WrappedError) Unwrap() error {
	if w == nil {
		return nil
	}
	return w.cause
}

func (w *WrappedError) ID() uuid.UUID {
	return w.id
}

// CreatedAt time creation (UTC)
func (w *WrappedError) CreatedAt() time.Time {
	return w.createdAt
}
