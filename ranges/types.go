package ranges

import "github.com/katalvlaran/lvseq/seq"

// BatchSize is the maximum number of values a range materializes per refill.
// Batching is an internal throughput optimization; it never changes output.
const BatchSize = 32

// Spec describes a range: first value, bound and increment.
//
//   - Start      - first emitted value.
//   - End        - bound checked before each emission (ignored when Unbounded).
//   - Step       - increment; 0 repeats Start forever.
//   - Inclusive  - compare with <=/>= rather than </> against End.
//   - Unbounded  - never compare against End ("end = +∞").
//   - Descending - Step moves towards smaller values. Required for unsigned
//     types, where a negative Step wraps around and has no sign.
type Spec[N seq.Number] struct {
	Start      N
	End        N
	Step       N
	Inclusive  bool
	Unbounded  bool
	Descending bool
}

// Seq returns a fresh lazy sequence described by sp.
func (sp Spec[N]) Seq() seq.Seq[N] {
	return &rangeSeq[N]{spec: sp, next: sp.Start}
}
