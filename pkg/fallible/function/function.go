package function

import (
	"github.com/ib-77/fallible/pkg/fallible"
	"github.com/ib-77/fallible/pkg/fallible/internal/adapt"
)

// Func is a function of one argument that may fail
type Func[T, R any] func(T) (R, error)

// From turns a function that cannot fail into a Func that always succeeds
func From[T, R any](fn func(T) R) Func[T, R] {
	fallible.RequireNonNil(fn, "fn")
	return func(t T) (R, error) {
		return fn(t), nil
	}
}

func (f Func[T, R]) Apply(t T) (R, error) {
	return f(t)
}

// Lift returns a function that reports failure as an empty Optional.
// The error itself is discarded.
func (f Func[T, R]) Lift() func(T) fallible.Optional[R] {
	fallible.RequireNonNil(f, "f")
	return func(t T) fallible.Optional[R] {
		return adapt.Lift(f(t))
	}
}

// Unchecked returns a function that panics with a *fallible.WrappedError
// holding the original error as its cause.
func (f Func[T, R]) Unchecked() func(T) R {
	fallible.RequireNonNil(f, "f")
	return func(t T) R {
		return adapt.Must(f(t))
	}
}

// Sneaky returns a function that panics with the original error unchanged.
func (f Func[T, R]) Sneaky() func(T) R {
	fallible.RequireNonNil(f, "f")
	return func(t T) R {
		return adapt.Sneak(f(t))
	}
}

func Lifted[T, R any](f Func[T, R]) func(T) fallible.Optional[R] {
	fallible.RequireNonNil(f, "f")
	return f.Lift()
}

func Unchecked[T, R any](f Func[T, R]) func(T) R {
	fallible.RequireNonNil(f, "f")
	return f.Unchecked()
}

func Sneaked[T, R any](f Func[T, R]) func(T) R {
	fallible.RequireNonNil(f, "f")
	return f.Sneaky()
}
