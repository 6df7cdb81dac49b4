package ranges

import "github.com/katalvlaran/lvseq/seq"

// indexedSeq pairs each element of src with its position.
type indexedSeq[T any] struct {
	src seq.Seq[T]
	idx int
}

func (s *indexedSeq[T]) Next() (seq.Indexed[T], bool) {
	v, ok := s.src.Next()
	if !ok {
		return seq.Indexed[T]{}, false
	}
	out := seq.Indexed[T]{Index: s.idx, Value: v}
	s.idx++

	return out, true
}

// WithIndex pairs every element of s with its zero-based position.
func WithIndex[T any](s seq.Seq[T]) seq.Seq[seq.Indexed[T]] {
	return &indexedSeq[T]{src: s}
}

// IndexedRangeIncl is RangeIncl paired with positions:
// IndexedRangeIncl(0, 3) → (0,0) (1,1) (2,2) (3,3).
func IndexedRangeIncl[N seq.Number](start, end N) seq.Seq[seq.Indexed[N]] {
	return WithIndex(RangeIncl(start, end))
}

// IndexedRangeInclStep is RangeInclStep paired with positions.
func IndexedRangeInclStep[N seq.Number](start, end, step N) seq.Seq[seq.Indexed[N]] {
	return WithIndex(RangeInclStep(start, end, step))
}

// IndexedRange is Range paired with positions.
func IndexedRange[N seq.Number](start, end N) seq.Seq[seq.Indexed[N]] {
	return WithIndex(Range(start, end))
}

// IndexedRangeStep is RangeStep paired with positions.
func IndexedRangeStep[N seq.Number](start, end, step N) seq.Seq[seq.Indexed[N]] {
	return WithIndex(RangeStep(start, end, step))
}
