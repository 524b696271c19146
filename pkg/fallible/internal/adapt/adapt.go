// Package adapt holds the strategy bodies shared by every callable shape.
package adapt

import "github.com/ib-77/fallible/pkg/fallible"

func Lift[R any](r R, err error) fallible.Optional[R] {
	if err != nil {
		return fallible.Empty[R]()
	}
	return fallible.Of(r)
}

// Check panics with a fresh *fallible.WrappedError when err is non-nil.
func Check(err error) {
	if err != nil {
		panic(fallible.Wrap(err))
	}
}

func Must[R any](r R, err error) R {
	Check(err)
	return r
}

func Sneak[R any](r R, err error) R {
	fallible.Sneak(err)
	return r
}
