package fallible

import (
	"errors"
	"fmt"
)

// ErrNilArgument is matched (errors.Is) by the panic value raised when a
// required callable argument is nil.
var ErrNilArgument = errors.New("fallible: nil argument")

// RequireNonNil panics with an error wrapping ErrNilArgument if v is nil.
func RequireNonNil(v any, name string) {
	if IsNil(v) {
		panic(fmt.Errorf("%w: %s", ErrNilArgument, name))
	}
}
