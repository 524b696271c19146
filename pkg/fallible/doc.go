// Package fallible holds the types shared by the callable adapters in the
// function, supplier and action packages.
//
// A fallible callable reports failure through its error result. The adapters
// turn it into a plain Go func that reports failure another way:
// - Lift: failure becomes an empty Optional and the error is dropped
// - Unchecked: failure panics with a fresh *WrappedError around the error
// - Sneaky: failure panics with the original error itself (see Sneak)
//
// Catch recovers an error panic at the boundary where the caller wants a
// returned error back.
package fallible
