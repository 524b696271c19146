package action

import (
	"testing"

	"github.com/ib-77/fallible/pkg/fallible"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type toBeThrown struct{ msg string }

func (e *toBeThrown) Error() string { return e.msg }

func givenFailing(msg string) (Func, error) {
	err := &toBeThrown{msg: msg}
	return func() error { return err }, err
}

func TestRun(t *testing.T) {
	t.Parallel()

	ran := false
	require.NoError(t, From(func() { ran = true }).Run())
	assert.True(t, ran)

	a, cause := givenFailing("x")
	assert.Same(t, cause, a.Run())
}

func TestUnchecked_Success(t *testing.T) {
	t.Parallel()

	ran := false
	a := Func(func() error {
		ran = true
		return nil
	})

	assert.NotPanics(t, Unchecked(a))
	assert.True(t, ran)
}

func TestUnchecked_Failure(t *testing.T) {
	t.Parallel()

	a, cause := givenFailing("custom exception message")
	err := fallible.Catch(a.Unchecked())

	var w *fallible.WrappedError
	require.ErrorAs(t, err, &w)
	assert.EqualError(t, w, "custom exception message")
	assert.Same(t, cause, w.Unwrap())
}

func TestSneaky_Success(t *testing.T) {
	t.Parallel()

	ran := false
	assert.NotPanics(t, Sneaked(From(func() { ran = true })))
	assert.True(t, ran)
}

func TestSneaky_Failure(t *testing.T) {
	t.Parallel()

	a, cause := givenFailing("custom exception message")
	err := fallible.Catch(Sneaked(a))

	assert.Same(t, cause, err)
	assert.IsType(t, &toBeThrown{}, err)
	assert.EqualError(t, err, "custom exception message")
}

func TestNilArgument(t *testing.T) {
	t.Parallel()

	var a Func
	ok := From(func() {})

	for name, call := range map[string]func(){
		"Unchecked": func() { Unchecked(a) },
		"Sneaked":   func() { Sneaked(a) },
		"Uncheck":   func() { a.Unchecked() },
		"Sneaky":    func() { a.Sneaky() },
		"From":      func() { From(nil) },
		"AndThen":   func() { AndThen(a, ok) },
		"AndThen2":  func() { AndThen(ok, a) },
	} {
		assert.ErrorIs(t, fallible.Catch(call), fallible.ErrNilArgument, name)
	}
}

func TestAndThen(t *testing.T) {
	t.Parallel()

	var order []string
	first := From(func() { order = append(order, "first") })
	second := From(func() { order = append(order, "second") })

	require.NoError(t, AndThen(first, second).Run())
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestAndThen_FailFast(t *testing.T) {
	t.Parallel()

	a, cause := givenFailing("x")
	called := false
	next := From(func() { called = true })

	assert.Same(t, cause, AndThen(a, next).Run())
	assert.False(t, called)
}

func TestIdempotent(t *testing.T) {
	t.Parallel()

	count := 0
	once := Unchecked(From(func() { count++ }))
	twice := Unchecked(From(once))

	twice()
	assert.Equal(t, 1, count)
}
