package fallible

import (
	"time"

	"github.com/google/uuid"
)

// ValueProvider defines an interface for types that may or may not hold a value
type ValueProvider[T any] interface {
	// Get returns the value and whether it is present
	Get() (T, bool)
	// IsPresent returns true if a value is held
	IsPresent() bool
}

// Wrapper is an error that carries another error as its cause
type Wrapper interface {
	error
	// Unwrap returns the wrapped cause
	Unwrap() error
	// ID is unique per wrapped failure
	ID() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}
