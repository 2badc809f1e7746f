// Package compare provides the capability interfaces for equality and
// ordering, together with generic operators over types that implement them.
package compare

// Comparable is a generic interface for types that can compare themselves for
// equality. Types implementing this interface must provide their own Equals
// method that determines whether two values are equal according to the type's
// semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Orderable is the capability of types with a total order. It extends
// Comparable with LessThan; all relational operators in this package are
// derived from these two methods, so implementing them is all a type needs
// to do to opt into ordering.
type Orderable[T any] interface {
	Comparable[T]

	LessThan(other T) bool
}

// Equal reports whether a and b are equal. Both operands have the same
// concrete type; comparing values of two different types does not compile.
func Equal[T Comparable[T]](a, b T) bool {
	return a.Equals(b)
}

// NotEqual reports whether a and b are not equal.
func NotEqual[T Comparable[T]](a, b T) bool {
	return !a.Equals(b)
}

// Less reports whether a orders strictly before b.
func Less[T Orderable[T]](a, b T) bool {
	return a.LessThan(b)
}

// LessOrEqual reports whether a orders before b or equals it.
func LessOrEqual[T Orderable[T]](a, b T) bool {
	return !b.LessThan(a)
}

// Greater reports whether a orders strictly after b.
func Greater[T Orderable[T]](a, b T) bool {
	return b.LessThan(a)
}

// GreaterOrEqual reports whether a orders after b or equals it.
func GreaterOrEqual[T Orderable[T]](a, b T) bool {
	return !a.LessThan(b)
}

// Compare returns -1 if a orders before b, +1 if a orders after b, and 0 if
// the two are equal. The signature matches what slices.SortFunc and
// slices.BinarySearchFunc expect:
//
//	slices.SortFunc(handles, compare.Compare)
func Compare[T Orderable[T]](a, b T) int {
	switch {
	case a.LessThan(b):
		return -1
	case b.LessThan(a):
		return 1
	default:
		return 0
	}
}
