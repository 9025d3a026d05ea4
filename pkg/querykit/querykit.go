// Package querykit provides an eager, copy-on-operate query type over in-memory ordered sequences.
//
// # Summary
//
// A Query wraps a finite ordered collection and exposes operators
// for filtering, projection, ordering, set algebra, aggregation,
// partitioning and element access, which compose into pipelines:
//
//	evens := querykit.From(ns).
//		Filter(func(n int) bool { return n%2 == 0 }).
//		SortBy(compare.Numbers).
//		Take(3)
//
// Every transforming operator materialises its full result
// before returning a new Query around it, so an already returned Query
// never observes the effect of a later operator call.
// Evaluation is synchronous and single pass; there is no lazy iteration,
// no open cursor and no shared mutable state between instances.
//
// Operators that change the element type, or that require the
// compare.Interface / clonekit.Cloner capability of the element type,
// are package level functions, since Go methods cannot introduce
// type parameters or tighten type constraints.
package querykit

import (
	"iter"
	"slices"

	"go.llib.dev/querykit/pkg/clonekit"
	"go.llib.dev/querykit/pkg/compare"
)

// Query is an immutable view over a privately owned ordered sequence of T.
//
// The zero Query is a valid query over an empty sequence.
// A Query constructed from a nil source behaves as empty for every operator,
// except the ones that are documented to report ErrNullSource.
type Query[T any] struct {
	backing []T
	absent  bool
}

// From returns a Query over a private copy of the given slice.
// Mutating the input slice afterwards does not affect the returned Query.
//
// A nil slice marks the Query as source absent.
func From[T any](src []T) Query[T] {
	if src == nil {
		return Query[T]{absent: true}
	}
	backing := make([]T, len(src))
	copy(backing, src)
	return Query[T]{backing: backing}
}

// FromSeq returns a Query over the fully collected content of the given sequence.
//
// A nil sequence marks the Query as source absent.
func FromSeq[T any](src iter.Seq[T]) Query[T] {
	if src == nil {
		return Query[T]{absent: true}
	}
	var backing []T
	for v := range src {
		backing = append(backing, v)
	}
	return Query[T]{backing: backing}
}

// wrap takes ownership of the given slice without copying.
// The caller must not retain a reference to it.
func wrap[T any](vs []T) Query[T] {
	return Query[T]{backing: vs}
}

// ToSlice returns a new materialised snapshot of the sequence in its current order.
// The result is never nil and is owned by the caller.
func (q Query[T]) ToSlice() []T {
	out := make([]T, len(q.backing))
	copy(out, q.backing)
	return out
}

// Seq returns the sequence in Go's native iteration shape,
// for interop with range loops and other iterator consuming code.
func (q Query[T]) Seq() iter.Seq[T] {
	return slices.Values(q.backing)
}

// ForEach invokes the given function once per element, left to right, for its side effects.
func (q Query[T]) ForEach(fn func(T)) {
	for _, v := range q.backing {
		fn(v)
	}
}

// Filter returns a Query over exactly the elements for which the predicate is true,
// keeping their original relative order.
// The predicate is invoked exactly once per element, left to right.
func (q Query[T]) Filter(pred func(T) bool) Query[T] {
	out := make([]T, 0, len(q.backing))
	for _, v := range q.backing {
		if pred(v) {
			out = append(out, v)
		}
	}
	return wrap(out)
}

// Map returns a Query over the projection of each element, order preserving.
// The transform function is invoked exactly once per element, left to right.
func Map[To, From any](q Query[From], transform func(From) To) Query[To] {
	out := make([]To, len(q.backing))
	for i, v := range q.backing {
		out[i] = transform(v)
	}
	return wrap(out)
}

// All reports whether every element satisfies the predicate.
// On an empty sequence it reports true.
func (q Query[T]) All(pred func(T) bool) bool {
	for _, v := range q.backing {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Any reports whether the sequence has at least one element,
// or at least one element satisfying the predicate when one is given.
func (q Query[T]) Any(preds ...func(T) bool) bool {
	if q.absent {
		return false
	}
	pred, ok := headPred(preds)
	if !ok {
		return 0 < len(q.backing)
	}
	for _, v := range q.backing {
		if pred(v) {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the sequence has no elements.
func (q Query[T]) IsEmpty() bool {
	return q.absent || len(q.backing) == 0
}

// Count returns the number of elements,
// or the number of elements satisfying the predicate when one is given.
func (q Query[T]) Count(preds ...func(T) bool) int {
	pred, ok := headPred(preds)
	if !ok {
		return len(q.backing)
	}
	var n int
	for _, v := range q.backing {
		if pred(v) {
			n++
		}
	}
	return n
}

// First returns the first element,
// or the first element satisfying the predicate when one is given.
// It returns ErrEmpty when no element qualifies.
func (q Query[T]) First(preds ...func(T) bool) (T, error) {
	pred, filtered := headPred(preds)
	for _, v := range q.backing {
		if !filtered || pred(v) {
			return v, nil
		}
	}
	var zero T
	return zero, ErrEmpty
}

// FirstOr is like First, but returns the given default instead of failing.
func (q Query[T]) FirstOr(def T, preds ...func(T) bool) T {
	v, err := q.First(preds...)
	if err != nil {
		return def
	}
	return v
}

// Last returns the last element,
// or the last element satisfying the predicate when one is given.
// It returns ErrEmpty when no element qualifies.
func (q Query[T]) Last(preds ...func(T) bool) (T, error) {
	pred, filtered := headPred(preds)
	for i := len(q.backing) - 1; 0 <= i; i-- {
		if v := q.backing[i]; !filtered || pred(v) {
			return v, nil
		}
	}
	var zero T
	return zero, ErrEmpty
}

// LastOr is like Last, but returns the given default instead of failing.
func (q Query[T]) LastOr(def T, preds ...func(T) bool) T {
	v, err := q.Last(preds...)
	if err != nil {
		return def
	}
	return v
}

// At returns the element at the given zero based index.
// It returns ErrOutOfRange when the index is negative
// or not less than the length of the sequence.
func (q Query[T]) At(index int) (T, error) {
	if index < 0 || len(q.backing) <= index {
		var zero T
		return zero, ErrOutOfRange.F("index %d with sequence length %d", index, len(q.backing))
	}
	return q.backing[index], nil
}

// AtOr is like At, but returns the given default instead of failing.
func (q Query[T]) AtOr(index int, def T) T {
	v, err := q.At(index)
	if err != nil {
		return def
	}
	return v
}

// Single returns the sole element of the sequence,
// or the sole element satisfying the predicate when one is given.
// It returns ErrEmpty on zero qualifying elements
// and ErrMultiple on more than one.
func (q Query[T]) Single(preds ...func(T) bool) (T, error) {
	var (
		pred, filtered = headPred(preds)
		match          T
		found          bool
	)
	for _, v := range q.backing {
		if filtered && !pred(v) {
			continue
		}
		if found {
			var zero T
			return zero, ErrMultiple
		}
		match, found = v, true
	}
	if !found {
		var zero T
		return zero, ErrEmpty
	}
	return match, nil
}

// SingleOr is like Single, but returns the given default instead of failing.
// It does not distinguish the zero match case from the multiple match case.
func (q Query[T]) SingleOr(def T, preds ...func(T) bool) T {
	v, err := q.Single(preds...)
	if err != nil {
		return def
	}
	return v
}

// Skip returns a Query without the first n elements.
// A non-positive n returns the sequence unchanged,
// while n greater or equal to the length returns an empty sequence.
func (q Query[T]) Skip(n int) Query[T] {
	if n <= 0 {
		return q
	}
	if len(q.backing) <= n {
		return wrap(make([]T, 0))
	}
	out := make([]T, len(q.backing)-n)
	copy(out, q.backing[n:])
	return wrap(out)
}

// SkipWhile returns a Query without the leading run of elements satisfying the predicate.
// The predicate is evaluated once per dropped element plus the element that ends the run,
// and never on the retained remainder.
func (q Query[T]) SkipWhile(pred func(T) bool) Query[T] {
	var i int
	for ; i < len(q.backing); i++ {
		if !pred(q.backing[i]) {
			break
		}
	}
	out := make([]T, len(q.backing)-i)
	copy(out, q.backing[i:])
	return wrap(out)
}

// Take returns a Query over the first n elements,
// or over all of them when n exceeds the length.
// A non-positive n returns an empty sequence.
func (q Query[T]) Take(n int) Query[T] {
	if n <= 0 {
		return wrap(make([]T, 0))
	}
	n = min(n, len(q.backing))
	out := make([]T, n)
	copy(out, q.backing[:n])
	return wrap(out)
}

// TakeWhile returns a Query over the leading run of elements satisfying the predicate,
// stopping permanently at the first element that fails it.
func (q Query[T]) TakeWhile(pred func(T) bool) Query[T] {
	var n int
	for ; n < len(q.backing); n++ {
		if !pred(q.backing[n]) {
			break
		}
	}
	out := make([]T, n)
	copy(out, q.backing[:n])
	return wrap(out)
}

// SortBy returns a Query sorted by the given comparator.
// The sort is stable: comparison-equal elements keep their original relative order.
func (q Query[T]) SortBy(cmp compare.Func[T]) Query[T] {
	out := q.ToSlice()
	slices.SortStableFunc(out, cmp)
	return wrap(out)
}

// SortByDesc is equivalent to SortBy followed by Reverse.
// It is intentionally not a negated-comparator sort:
// comparison-equal elements end up in reverse of their original relative order.
func (q Query[T]) SortByDesc(cmp compare.Func[T]) Query[T] {
	return q.SortBy(cmp).Reverse()
}

// Sort returns a Query sorted by the natural order of the element type.
// The sort is stable.
func Sort[T compare.Interface[T]](q Query[T]) Query[T] {
	return q.SortBy(compare.By[T]())
}

// Reverse returns a Query with the element order fully inverted.
func (q Query[T]) Reverse() Query[T] {
	out := q.ToSlice()
	slices.Reverse(out)
	return wrap(out)
}

// Concat returns a Query over this sequence's elements followed by the other's,
// in order, without deduplication.
func (q Query[T]) Concat(oth Query[T]) Query[T] {
	out := make([]T, 0, len(q.backing)+len(oth.backing))
	out = append(out, q.backing...)
	out = append(out, oth.backing...)
	return wrap(out)
}

// Zip pairwise combines the two sequences position by position.
// Trailing unmatched elements of the longer sequence are discarded.
// It returns ErrNullSource when either source is absent.
func Zip[R, A, B any](a Query[A], b Query[B], combine func(A, B) R) (Query[R], error) {
	if a.absent || b.absent {
		return Query[R]{}, ErrNullSource
	}
	n := min(len(a.backing), len(b.backing))
	out := make([]R, n)
	for i := 0; i < n; i++ {
		out[i] = combine(a.backing[i], b.backing[i])
	}
	return wrap(out), nil
}

// DefaultIfEmpty returns the sequence unchanged when it has elements.
// Otherwise it returns a one element sequence of the given default,
// or a zero element sequence when no default is given.
func (q Query[T]) DefaultIfEmpty(defaults ...T) Query[T] {
	if !q.IsEmpty() {
		return q
	}
	if len(defaults) == 0 {
		return wrap(make([]T, 0))
	}
	return wrap([]T{defaults[0]})
}

// Repeat returns a Query of n elements, each an independent clone of the given value.
// Mutating one output element never affects another.
// A non-positive n returns an empty sequence.
func Repeat[T clonekit.Cloner[T]](v T, n int) Query[T] {
	out := make([]T, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, v.Clone())
	}
	return wrap(out)
}

// headPred returns the optional predicate of a variadic predicate parameter.
func headPred[T any](preds []func(T) bool) (func(T) bool, bool) {
	if len(preds) == 0 || preds[0] == nil {
		return nil, false
	}
	return preds[0], true
}
