package querykit

import "go.llib.dev/querykit/internal/constraints"

// Sum folds the selected numeric value of each element, left to right, with addition.
// An empty sequence sums to zero,
// while an absent source returns ErrNullSource.
func Sum[N constraints.Number, T any](q Query[T], sel func(T) N) (N, error) {
	var total N
	if q.absent {
		return total, ErrNullSource
	}
	for _, v := range q.backing {
		total += sel(v)
	}
	return total, nil
}

// SumOf is Sum over a sequence whose elements are themselves the numeric values.
func SumOf[N constraints.Number](q Query[N]) (N, error) {
	return Sum(q, identity[N])
}

// Avg returns the arithmetic mean of the selected numeric value of each element.
// It returns ErrNullSource on an absent source and ErrEmpty on an empty sequence.
func Avg[N constraints.Number, T any](q Query[T], sel func(T) N) (float64, error) {
	if q.absent {
		return 0, ErrNullSource
	}
	if len(q.backing) == 0 {
		return 0, ErrEmpty
	}
	var total float64
	for _, v := range q.backing {
		total += float64(sel(v))
	}
	return total / float64(len(q.backing)), nil
}

// AvgOf is Avg over a sequence whose elements are themselves the numeric values.
func AvgOf[N constraints.Number](q Query[N]) (float64, error) {
	return Avg(q, identity[N])
}

// Max returns the greatest selected numeric value in a single pass,
// seeding the accumulator with the first element.
// It returns ErrEmpty when the sequence has no elements.
func Max[N constraints.Number, T any](q Query[T], sel func(T) N) (N, error) {
	if len(q.backing) == 0 {
		var zero N
		return zero, ErrEmpty
	}
	acc := sel(q.backing[0])
	for _, v := range q.backing[1:] {
		if n := sel(v); acc < n {
			acc = n
		}
	}
	return acc, nil
}

// MaxOf is Max over a sequence whose elements are themselves the numeric values.
func MaxOf[N constraints.Number](q Query[N]) (N, error) {
	return Max(q, identity[N])
}

// Min returns the smallest selected numeric value in a single pass,
// seeding the accumulator with the first element.
// It returns ErrEmpty when the sequence has no elements.
func Min[N constraints.Number, T any](q Query[T], sel func(T) N) (N, error) {
	if len(q.backing) == 0 {
		var zero N
		return zero, ErrEmpty
	}
	acc := sel(q.backing[0])
	for _, v := range q.backing[1:] {
		if n := sel(v); n < acc {
			acc = n
		}
	}
	return acc, nil
}

// MinOf is Min over a sequence whose elements are themselves the numeric values.
func MinOf[N constraints.Number](q Query[N]) (N, error) {
	return Min(q, identity[N])
}

func identity[T any](v T) T { return v }
