package combinator

import "github.com/katalvlaran/lvseq/seq"

// mulAddSeq zips three operand sequences elementwise.
type mulAddSeq[N seq.Number] struct {
	s, mul, add seq.Seq[N]
	done        bool
}

// Next pulls s, mul and add in that order and stops at the first exhausted
// operand. Scalar operands are infinite repetitions and never stop it.
func (m *mulAddSeq[N]) Next() (N, bool) {
	var zero N
	if m.done {
		return zero, false
	}
	v, ok := m.s.Next()
	if !ok {
		m.done = true
		return zero, false
	}
	k, ok := m.mul.Next()
	if !ok {
		m.done = true
		return zero, false
	}
	a, ok := m.add.Next()
	if !ok {
		m.done = true
		return zero, false
	}

	return a + k*v, true
}

// MulAdd computes add + mul·s.
//
// When s, mul and add are all scalars the result is a scalar Operand:
//
//	MulAdd(Scalar(2), Scalar(2), Scalar(1)) → Scalar(5)
//
// When any operand is a sequence the result is a sequence Operand whose
// length is the shortest sequence operand:
//
//	MulAdd(Sequence(Of(2, 2)), Sequence(Of(2, 4, 6)), Scalar(1)) → 5 9
//
// Complexity: O(1) per element.
func MulAdd[N seq.Number](s, mul, add seq.Operand[N]) seq.Operand[N] {
	sv, sOK := s.Value()
	kv, kOK := mul.Value()
	av, aOK := add.Value()
	if sOK && kOK && aOK {
		return seq.Scalar(av + kv*sv)
	}

	return seq.Sequence[N](&mulAddSeq[N]{s: s.Seq(), mul: mul.Seq(), add: add.Seq()})
}

// MulAddSeq is MulAdd for a sequence input with constant factors; it always
// returns a sequence.
func MulAddSeq[N seq.Number](s seq.Seq[N], mul, add N) seq.Seq[N] {
	return MulAdd(seq.Sequence(s), seq.Scalar(mul), seq.Scalar(add)).Seq()
}
