// Package action adapts funcs that return only an error.
//
// There is no Lift: an action has no value to hold in an Optional.
package action
