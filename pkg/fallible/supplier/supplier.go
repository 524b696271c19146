package supplier

import (
	"github.com/ib-77/fallible/pkg/fallible"
	"github.com/ib-77/fallible/pkg/fallible/function"
	"github.com/ib-77/fallible/pkg/fallible/internal/adapt"
)

// Func produces a value or fails
type Func[T any] func() (T, error)

func From[T any](fn func() T) Func[T] {
	fallible.RequireNonNil(fn, "fn")
	return func() (T, error) {
		return fn(), nil
	}
}

func (s Func[T]) Get() (T, error) {
	return s()
}

// AsFunction returns a function.Func that ignores its input and calls s
func (s Func[T]) AsFunction() function.Func[struct{}, T] {
	fallible.RequireNonNil(s, "s")
	return func(struct{}) (T, error) {
		return s()
	}
}

func (s Func[T]) Lift() func() fallible.Optional[T] {
	fallible.RequireNonNil(s, "s")
	return func() fallible.Optional[T] {
		return adapt.Lift(s())
	}
}

// Unchecked returns a supplier that panics with a *fallible.WrappedError on failure
func (s Func[T]) Unchecked() func() T {
	fallible.RequireNonNil(s, "s")
	return func() T {
		return adapt.Must(s())
	}
}

// Sneaky returns a supplier that panics with the original error on failure
func (s Func[T]) Sneaky() func() T {
	fallible.RequireNonNil(s, "s")
	return func() T {
		return adapt.Sneak(s())
	}
}

func Lifted[T any](s Func[T]) func() fallible.Optional[T] {
	fallible.RequireNonNil(s, "s")
	return s.Lift()
}

func Unchecked[T any](s Func[T]) func() T {
	fallible.RequireNonNil(s, "s")
	return s.Unchecked()
}

func Sneaked[T any](s Func[T]) func() T {
	fallible.RequireNonNil(s, "s")
	return s.Sneaky()
}

// AndThen returns a supplier that passes the value of s to after.
// after is not called when s fails.
func AndThen[T, V any](s Func[T], after function.Func[T, V]) Func[V] {
	fallible.RequireNonNil(s, "s")
	fallible.RequireNonNil(after, "after")

	f := function.AndThen(s.AsFunction(), after)
	return func() (V, error) {
		return f(struct{}{})
	}
}
