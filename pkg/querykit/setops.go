package querykit

import "go.llib.dev/querykit/pkg/compare"

// The set algebra operators use compare.IsEqual of the element type's
// Compare method as their value-equality relation.
// The capability requirement is enforced by the type constraint.

// Contains reports whether some element of the sequence compares equal to the given value.
func Contains[T compare.Interface[T]](q Query[T], v T) bool {
	return containsEqual(q.backing, v)
}

// Distinct returns the sequence's elements in their original order,
// retaining only the first occurrence of each comparison-equal group.
func Distinct[T compare.Interface[T]](q Query[T]) Query[T] {
	out := make([]T, 0, len(q.backing))
	for _, v := range q.backing {
		if !containsEqual(out, v) {
			out = append(out, v)
		}
	}
	return wrap(out)
}

// Except returns this sequence's elements without every occurrence
// that compares equal to any element of the other sequence.
func Except[T compare.Interface[T]](q, oth Query[T]) Query[T] {
	out := make([]T, 0, len(q.backing))
	for _, v := range q.backing {
		if !containsEqual(oth.backing, v) {
			out = append(out, v)
		}
	}
	return wrap(out)
}

// Intersect returns the elements of the other sequence that compare equal
// to at least one element of this sequence.
// The result order follows the other sequence's order.
func Intersect[T compare.Interface[T]](q, oth Query[T]) Query[T] {
	out := make([]T, 0, min(len(q.backing), len(oth.backing)))
	for _, v := range oth.backing {
		if containsEqual(q.backing, v) {
			out = append(out, v)
		}
	}
	return wrap(out)
}

// Union returns every element of this sequence, followed by the elements
// of the other sequence that have no comparison-equal counterpart
// in the result built so far.
func Union[T compare.Interface[T]](q, oth Query[T]) Query[T] {
	out := make([]T, 0, len(q.backing)+len(oth.backing))
	out = append(out, q.backing...)
	for _, v := range oth.backing {
		if !containsEqual(out, v) {
			out = append(out, v)
		}
	}
	return wrap(out)
}

func containsEqual[T compare.Interface[T]](vs []T, v T) bool {
	for _, e := range vs {
		if compare.IsEqual(e.Compare(v)) {
			return true
		}
	}
	return false
}
