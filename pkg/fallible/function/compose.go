package function

import "github.com/ib-77/fallible/pkg/fallible"

// Compose returns a Func that applies before, then f.
// If before fails, f is not called and the error is returned as is.
func Compose[V, T, R any](f Func[T, R], before Func[V, T]) Func[V, R] {
	fallible.RequireNonNil(f, "f")
	fallible.RequireNonNil(before, "before")

	return func(v V) (R, error) {
		t, err := before(v)
		if err != nil {
			var zero R
			return zero, err
		}
		return f(t)
	}
}

// AndThen returns a Func that applies f, then after.
// If f fails, after is not called and the error is returned as is.
func AndThen[T, R, V any](f Func[T, R], after Func[R, V]) Func[T, V] {
	fallible.RequireNonNil(f, "f")
	fallible.RequireNonNil(after, "after")

	return func(t T) (V, error) {
		r, err := f(t)
		if err != nil {
			var zero V
			return zero, err
		}
		return after(r)
	}
}

// Map applies f to every element of in, stopping at the first failure.
func Map[T, R any](f Func[T, R], in []T) ([]R, error) {
	fallible.RequireNonNil(f, "f")

	out := make([]R, 0, len(in))
	for _, t := range in {
		r, err := f(t)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
