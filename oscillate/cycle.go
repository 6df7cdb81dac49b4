package oscillate

import "github.com/katalvlaran/lvseq/seq"

// cycleSeq is the Cycle State: position, bounds, step sources and heading.
type cycleSeq[N seq.Number] struct {
	pos      N
	min, max N
	inc, dec seq.Seq[N]
	dir      Direction
	started  bool
	done     bool
}

// Next implements the bounce rule. Going up, the candidate is pos+inc; when
// it would pass max the cycle emits pos−dec instead and turns down. Going
// down is symmetric against min.
func (c *cycleSeq[N]) Next() (N, bool) {
	var zero N
	if c.done {
		return zero, false
	}
	if !c.started {
		c.started = true
		return c.pos, true
	}

	switch c.dir {
	case Up:
		inc, ok := c.pull(c.inc)
		if !ok {
			return zero, false
		}
		// inc > max-pos  ⇔  pos+inc > max, without overflowing unsigned types
		if inc > c.max-c.pos {
			dec, ok := c.pull(c.dec)
			if !ok {
				return zero, false
			}
			c.pos -= dec
			c.dir = Down
		} else {
			c.pos += inc
		}
	default:
		dec, ok := c.pull(c.dec)
		if !ok {
			return zero, false
		}
		if dec > c.pos-c.min {
			inc, ok := c.pull(c.inc)
			if !ok {
				return zero, false
			}
			c.pos += inc
			c.dir = Up
		} else {
			c.pos -= dec
		}
	}

	return c.pos, true
}

// pull reads the next step magnitude, marking the cycle done on exhaustion.
func (c *cycleSeq[N]) pull(s seq.Seq[N]) (N, bool) {
	v, ok := s.Next()
	if !ok {
		c.done = true
		return v, false
	}

	return abs(v), true
}

func abs[N seq.Number](v N) N {
	if v < 0 {
		return -v
	}

	return v
}

// NewCycle returns the oscillating sequence described by o.
// Scalar steps are coerced to their absolute value once, up front.
func NewCycle[N seq.Number](o CycleOptions[N]) seq.Seq[N] {
	return &cycleSeq[N]{
		pos: o.Start,
		min: o.Min,
		max: o.Max,
		inc: absOperand(o.Inc).Seq(),
		dec: absOperand(o.Dec).Seq(),
		dir: o.Direction,
	}
}

func absOperand[N seq.Number](o seq.Operand[N]) seq.Operand[N] {
	if v, ok := o.Value(); ok {
		return seq.Scalar(abs(v))
	}

	return o
}

// CycleBetween oscillates between min and max with step DefaultCycleStep,
// starting at min and heading up.
//
//	CycleBetween(0, 3) → 0 1 2 3 2 1 0 1 2 3 …
func CycleBetween[N seq.Number](min, max N) seq.Seq[N] {
	return CycleBetweenStep(min, max, N(DefaultCycleStep))
}

// CycleBetweenStep oscillates between min and max using step for both
// directions, starting at min and heading up.
func CycleBetweenStep[N seq.Number](min, max, step N) seq.Seq[N] {
	return CycleFrom(min, min, max, step, step, Up)
}

// CycleBetweenSteps oscillates with independent increment and decrement
// steps, starting at min.
func CycleBetweenSteps[N seq.Number](min, max, inc, dec N, dir Direction) seq.Seq[N] {
	return CycleFrom(min, min, max, inc, dec, dir)
}

// CycleFrom is the fully explicit form: start position, bounds, both step
// magnitudes and the initial heading.
func CycleFrom[N seq.Number](start, min, max, inc, dec N, dir Direction) seq.Seq[N] {
	return NewCycle(CycleOptions[N]{
		Start:     start,
		Min:       min,
		Max:       max,
		Inc:       seq.Scalar(inc),
		Dec:       seq.Scalar(dec),
		Direction: dir,
	})
}
