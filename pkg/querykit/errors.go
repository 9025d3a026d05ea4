package querykit

import "go.llib.dev/querykit/pkg/errorkit"

const (
	// ErrEmpty is returned when an operation requires at least one element,
	// but the sequence it operates on has none.
	ErrEmpty errorkit.Error = "querykit: sequence contains no matching element"
	// ErrMultiple is returned when an operation requires exactly one element,
	// but the sequence it operates on has more.
	ErrMultiple errorkit.Error = "querykit: sequence contains more than one matching element"
	// ErrOutOfRange is returned on element access with an index
	// outside the boundaries of the sequence.
	ErrOutOfRange errorkit.Error = "querykit: index out of range"
	// ErrNullSource is returned when an operation requires a present source sequence,
	// but the query was constructed without one.
	ErrNullSource errorkit.Error = "querykit: source sequence is absent"
)
