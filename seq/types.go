package seq

import "golang.org/x/exp/constraints"

// Seq is a lazy, pull-based sequence of T.
//
// Next computes and returns the next element. The boolean result is false
// once the sequence is exhausted; from then on every call returns the zero
// value and false.
type Seq[T any] interface {
	Next() (T, bool)
}

// Func adapts an ordinary function to the Seq interface.
// The function itself is responsible for sticky exhaustion.
type Func[T any] func() (T, bool)

// Next calls f.
func (f Func[T]) Next() (T, bool) { return f() }

// Number is the set of numeric element types accepted by the arithmetic
// generators and combinators.
type Number interface {
	constraints.Integer | constraints.Float
}

// Indexed pairs an element with its zero-based position in the sequence
// that produced it.
type Indexed[T any] struct {
	Index int // zero-based position
	Value T   // element at that position
}
