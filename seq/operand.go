package seq

// Operand is a tagged variant holding either a scalar or a sequence.
//
// Arithmetic combinators accept Operands so that each argument can
// independently be a constant or a lazy sequence. The tag is resolved once
// when the combinator is constructed; algorithm bodies only ever see a Seq.
//
// The zero Operand is the scalar zero.
type Operand[N Number] struct {
	scalar N
	seq    Seq[N]
}

// Scalar wraps a constant.
func Scalar[N Number](v N) Operand[N] {
	return Operand[N]{scalar: v}
}

// Sequence wraps a lazy sequence. A nil s is treated as an empty sequence.
func Sequence[N Number](s Seq[N]) Operand[N] {
	if s == nil {
		s = Empty[N]()
	}

	return Operand[N]{seq: s}
}

// IsScalar reports whether o holds a constant.
func (o Operand[N]) IsScalar() bool { return o.seq == nil }

// Value returns the constant held by o and true, or zero and false when o
// holds a sequence.
func (o Operand[N]) Value() (N, bool) {
	if o.seq != nil {
		var zero N
		return zero, false
	}

	return o.scalar, true
}

// Seq returns the sequence view of o: the wrapped sequence, or an infinite
// repetition of the constant.
func (o Operand[N]) Seq() Seq[N] {
	if o.seq == nil {
		return Repeat(o.scalar)
	}

	return o.seq
}
