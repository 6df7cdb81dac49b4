package oscillate

import "github.com/katalvlaran/lvseq/seq"

// stepsSeq accumulates consecutive step values onto a running position.
type stepsSeq[N seq.Number] struct {
	pos     N
	step    seq.Seq[N]
	started bool
	done    bool
}

func (s *stepsSeq[N]) Next() (N, bool) {
	if s.done {
		var zero N
		return zero, false
	}
	if !s.started {
		s.started = true
		return s.pos, true
	}
	d, ok := s.step.Next()
	if !ok {
		s.done = true
		var zero N
		return zero, false
	}
	s.pos += d

	return s.pos, true
}

// Steps returns start, start+step₁, start+step₁+step₂, …
//
// With a scalar step the sequence is infinite. With a sequence step each
// output after the first consumes one step element, so the result is one
// element longer than the step sequence:
//
//	Steps(0, seq.Sequence(seq.Of(1, 2))) → 0 1 3
//
// Complexity: O(1) per element.
func Steps[N seq.Number](start N, step seq.Operand[N]) seq.Seq[N] {
	return &stepsSeq[N]{pos: start, step: step.Seq()}
}

// StepsBy is Steps with a constant step.
func StepsBy[N seq.Number](start, step N) seq.Seq[N] {
	return Steps(start, seq.Scalar(step))
}
