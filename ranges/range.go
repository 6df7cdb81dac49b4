package ranges

import "github.com/katalvlaran/lvseq/seq"

// rangeSeq walks a Spec, materializing up to BatchSize values per refill.
type rangeSeq[N seq.Number] struct {
	spec Spec[N]
	next N    // next candidate value
	done bool // no further refill will produce values

	buf        [BatchSize]N
	head, tail int
}

// Next implements seq.Seq.
func (r *rangeSeq[N]) Next() (N, bool) {
	if r.head == r.tail {
		if r.done {
			var zero N
			return zero, false
		}
		r.refill()
		if r.head == r.tail {
			var zero N
			return zero, false
		}
	}
	v := r.buf[r.head]
	r.head++

	return v, true
}

// refill computes the next batch. It stops early at the bound or when the
// element type would overflow on the following step.
func (r *rangeSeq[N]) refill() {
	r.head, r.tail = 0, 0
	for r.tail < BatchSize {
		if !r.within(r.next) {
			r.done = true
			return
		}
		r.buf[r.tail] = r.next
		r.tail++

		advanced := r.next + r.spec.Step
		if r.spec.Step != 0 && (r.spec.Descending && advanced > r.next || !r.spec.Descending && advanced < r.next) {
			// integer wrap-around: the current value was the last representable one
			r.done = true
			return
		}
		r.next = advanced
	}
}

// within is the termination test: <=/>= for inclusive ranges, </> otherwise.
func (r *rangeSeq[N]) within(v N) bool {
	sp := r.spec
	switch {
	case sp.Unbounded, sp.Step == 0:
		return true
	case sp.Descending && sp.Inclusive:
		return v >= sp.End
	case sp.Descending:
		return v > sp.End
	case sp.Inclusive:
		return v <= sp.End
	default:
		return v < sp.End
	}
}

// autoSpec fills Step and Descending from the direction start → end.
func autoSpec[N seq.Number](start, end N, inclusive bool) Spec[N] {
	sp := Spec[N]{Start: start, End: end, Step: 1, Inclusive: inclusive}
	if !(start < end) {
		sp.Descending = true
		sp.Step = zeroOf[N]() - 1
	}

	return sp
}

// stepSpec uses an explicit step; its sign decides the direction.
func stepSpec[N seq.Number](start, end, step N, inclusive bool) Spec[N] {
	return Spec[N]{Start: start, End: end, Step: step, Inclusive: inclusive, Descending: step < 0}
}

func zeroOf[N seq.Number]() N {
	var zero N
	return zero
}

// RangeIncl returns start, start±1, … up to and including end.
// The step is +1 when start < end and −1 otherwise.
//
// Example: RangeIncl(0, 5) → 0 1 2 3 4 5; RangeIncl(5, 0) → 5 4 3 2 1 0.
func RangeIncl[N seq.Number](start, end N) seq.Seq[N] {
	return autoSpec(start, end, true).Seq()
}

// RangeInclStep returns start, start+step, … while the value has not passed
// end (<= for positive step, >= for negative step).
// Precondition: step != 0, otherwise start repeats forever.
func RangeInclStep[N seq.Number](start, end, step N) seq.Seq[N] {
	return stepSpec(start, end, step, true).Seq()
}

// Range is the end-exclusive form of RangeIncl.
func Range[N seq.Number](start, end N) seq.Seq[N] {
	return autoSpec(start, end, false).Seq()
}

// RangeStep is the end-exclusive form of RangeInclStep.
func RangeStep[N seq.Number](start, end, step N) seq.Seq[N] {
	return stepSpec(start, end, step, false).Seq()
}

// RangeFrom counts from start by step without bound.
func RangeFrom[N seq.Number](start, step N) seq.Seq[N] {
	return Spec[N]{Start: start, Step: step, Unbounded: true, Descending: step < 0}.Seq()
}
