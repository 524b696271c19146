// Package function adapts one-argument functions that return an error.
//
// A Func[T, R] is any func(T) (R, error). It can be turned into a plain
// func(T) R or func(T) fallible.Optional[R]:
// - Lift/Lifted: failure becomes an empty Optional, the error is dropped
// - Unchecked: failure panics with a new *fallible.WrappedError
// - Sneaky/Sneaked: failure panics with the original error
// - Compose/AndThen: chain two Funcs, stopping at the first error
//
// Every entry point panics with fallible.ErrNilArgument when handed a nil
// callable, before anything is invoked.
package function
