package fallible

// Sneak panics with err exactly as given: same value, same type, same
// Unwrap chain. A nil err is a no-op.
//
// This is the one place where an error result is re-raised on the panic
// channel without a wrapper. Nothing about err is checked here; the caller
// asserts it is fine to propagate it unannounced.
func Sneak(err error) {
	if err == nil {
		return
	}
	panic(err)
}

// Catch runs fn and returns the error value it panicked with, or nil if it
// returned normally. A panic whose value is not an error is re-panicked.
func Catch(fn func()) (err error) {
	RequireNonNil(fn, "fn")

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, ok := r.(error)
		if !ok {
			panic(r)
		}
		err = e
	}()

	fn()
	return nil
}
