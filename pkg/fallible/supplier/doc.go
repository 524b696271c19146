// Package supplier adapts zero-argument functions that return a value or an
// error. AsFunction views a supplier as a function.Func so it can take part in
// function.Compose and function.AndThen.
package supplier
