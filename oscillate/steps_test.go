package oscillate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvseq/oscillate"
	"github.com/katalvlaran/lvseq/seq"
)

// TestSteps_ScalarInfinite checks the constant-step form.
func TestSteps_ScalarInfinite(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3, 4}, seq.CollectN(oscillate.StepsBy(0, 1), 5))
	assert.Equal(t, []float64{10, 7.5, 5}, seq.CollectN(oscillate.Steps(10.0, seq.Scalar(-2.5)), 3))
	assert.Len(t, seq.CollectN(oscillate.StepsBy(0, 1), 10_000), 10_000, "scalar step never ends")
}

// TestSteps_SequenceStep emits one more element than the step sequence.
func TestSteps_SequenceStep(t *testing.T) {
	got := seq.Collect(oscillate.Steps(0, seq.Sequence(seq.Of(1, 2, 3))))
	assert.Equal(t, []int{0, 1, 3, 6}, got)

	assert.Equal(t, []int{5}, seq.Collect(oscillate.Steps(5, seq.Sequence(seq.Empty[int]()))))
}

// TestSteps_StickyEnd keeps reporting exhaustion after the step source ends.
func TestSteps_StickyEnd(t *testing.T) {
	s := oscillate.Steps(1, seq.Sequence(seq.Of(1)))
	assert.Equal(t, []int{1, 2}, seq.Collect(s))
	_, ok := s.Next()
	assert.False(t, ok)
}
