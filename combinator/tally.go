package combinator

import "github.com/katalvlaran/lvseq/seq"

// tallySeq is the Tally Accumulator.
type tallySeq[N seq.Number] struct {
	src seq.Seq[N]
	sum N
}

func (t *tallySeq[N]) Next() (N, bool) {
	v, ok := t.src.Next()
	if !ok {
		var zero N
		return zero, false
	}
	t.sum += v

	return t.sum, true
}

// Tally returns the running sums of s offset by amount: the n-th output is
// amount plus the sum of the first n inputs. Length equals the length of s;
// infinite inputs give infinite tallies.
//
//	Tally(Of(1, 1, 1), 10) → 11 12 13
func Tally[N seq.Number](s seq.Seq[N], amount N) seq.Seq[N] {
	return &tallySeq[N]{src: s, sum: amount}
}
