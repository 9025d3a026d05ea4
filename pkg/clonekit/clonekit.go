// Package clonekit defines the value-replication capability
// that element types implement to support copy-based operations.
package clonekit

// Cloner is the replication capability of an element type.
//
// Clone must return an independent deep copy of the receiver:
// mutating the copy afterwards may not affect the original, and vice versa.
// Value types without reference fields satisfy this by returning the receiver.
type Cloner[T any] interface {
	Clone() T
}

// Clone returns an independent copy of the given value.
func Clone[T Cloner[T]](v T) T {
	return v.Clone()
}

// Slice returns a new slice where each element is an independent copy
// of the corresponding element of the input slice.
func Slice[T Cloner[T]](vs []T) []T {
	if vs == nil {
		return nil
	}
	out := make([]T, len(vs))
	for i, v := range vs {
		out[i] = v.Clone()
	}
	return out
}
