// Package compare defines the three-way comparison capability
// that element types implement to participate in equality and ordering operations.
package compare

import (
	"strings"

	"go.llib.dev/querykit/internal/constraints"
)

// Interface is the comparison capability of an element type.
//
// Types implementing Interface supply a Compare method which defines
// both the ordering and the value-equality relation of the type.
// Operators that work with equality by value or with natural ordering
// require their element type to implement Interface.
//
// Example:
//
//	type MyNumber int
//
//	func (m MyNumber) Compare(oth MyNumber) int {
//		if m < oth {
//			return -1
//		}
//		if oth < m {
//			return +1
//		}
//		return 0
//	}
type Interface[T any] interface {
	// Compare returns:
	//   -1 if receiver is less than the argument,
	//    0 if they're equal, and
	//   +1 if receiver is greater.
	//
	// Implementors must ensure consistent ordering semantics.
	Compare(T) int
}

// Func is a three-way comparator function over T.
// It returns a negative value when a sorts before b,
// zero when they are equal, and a positive value when a sorts after b.
type Func[T any] func(a, b T) int

// By returns the comparator of a type that implements Interface.
func By[T Interface[T]]() Func[T] {
	return func(a, b T) int { return a.Compare(b) }
}

// IsEqual reports whether two values are equal based on their comparison result.
func IsEqual(cmp int) bool {
	return cmp == 0
}

// IsLess reports whether the receiver is less than the argument.
func IsLess(cmp int) bool {
	return cmp < 0
}

// IsLessOrEqual reports whether the receiver is less than or equal to the argument.
func IsLessOrEqual(cmp int) bool {
	return cmp <= 0
}

// IsMore reports whether the receiver is greater than the argument.
func IsMore(cmp int) bool {
	return 0 < cmp
}

// IsMoreOrEqual reports whether the receiver is greater than or equal to the argument.
func IsMoreOrEqual(cmp int) bool {
	return 0 <= cmp
}

func Numbers[T constraints.Number](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func Strings[S ~string](a, b S) int {
	return strings.Compare(string(a), string(b))
}
