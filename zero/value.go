// Package zero provides the zero value of a generic type parameter.
package zero

// Value returns the zero value for type T. Generic containers use it to
// produce a value for lookups that found nothing, and to blank the value of
// a deleted slot so it no longer pins memory.
//
// Example:
//
//	var missing = zero.Value[string]()  // returns ""
//	var noPtr = zero.Value[*Payload]()  // returns nil
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}
