package action

import (
	"github.com/ib-77/fallible/pkg/fallible"
	"github.com/ib-77/fallible/pkg/fallible/internal/adapt"
)

type Func func() error

func From(fn func()) Func {
	fallible.RequireNonNil(fn, "fn")
	return func() error {
		fn()
		return nil
	}
}

func (a Func) Run() error {
	return a()
}

func (a Func) Unchecked() func() {
	fallible.RequireNonNil(a, "a")
	return func() {
		adapt.Check(a())
	}
}

func (a Func) Sneaky() func() {
	fallible.RequireNonNil(a, "a")
	return func() {
		fallible.Sneak(a())
	}
}

func Unchecked(a Func) func() {
	fallible.RequireNonNil(a, "a")
	return a.Unchecked()
}

func Sneaked(a Func) func() {
	fallible.RequireNonNil(a, "a")
	return a.Sneaky()
}

// AndThen runs a, then next if a succeeded
func AndThen(a Func, next Func) Func {
	fallible.RequireNonNil(a, "a")
	fallible.RequireNonNil(next, "next")

	return func() error {
		if err := a(); err != nil {
			return err
		}
		return next()
	}
}
