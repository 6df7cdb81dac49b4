package ranges_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvseq/ranges"
	"github.com/katalvlaran/lvseq/seq"
)

// TestRangeIncl_AutoStep covers the auto-derived step sign.
func TestRangeIncl_AutoStep(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, seq.Collect(ranges.RangeIncl(0, 5)))
	assert.Equal(t, []int{5, 4, 3, 2, 1, 0}, seq.Collect(ranges.RangeIncl(5, 0)))
	assert.Equal(t, []int{7}, seq.Collect(ranges.RangeIncl(7, 7)), "start == end emits start once")
}

// TestRangeInclStep covers explicit steps, including fractional ones.
func TestRangeInclStep(t *testing.T) {
	tests := []struct {
		name             string
		start, end, step float64
		want             []float64
	}{
		{"positive", 0, 2, 0.5, []float64{0, 0.5, 1, 1.5, 2}},
		{"negative", 1, 0, -0.25, []float64{1, 0.75, 0.5, 0.25, 0}},
		{"overshoot", 0, 1, 0.75, []float64{0, 0.75}},
		{"wrong sign positive", 5, 0, 1, nil},
		{"wrong sign negative", 0, 5, -1, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, seq.Collect(ranges.RangeInclStep(tc.start, tc.end, tc.step)))
		})
	}
}

// TestRange_Exclusive checks the end-exclusive variants.
func TestRange_Exclusive(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3, 4}, seq.Collect(ranges.Range(0, 5)))
	assert.Equal(t, []int{5, 4, 3, 2, 1}, seq.Collect(ranges.Range(5, 0)))
	assert.Equal(t, []int{0, 3, 6, 9}, seq.Collect(ranges.RangeStep(0, 10, 3)))
	assert.Nil(t, seq.Collect(ranges.Range(3, 3)))
}

// TestRangeFrom_Unbounded pulls a prefix of an infinite counter.
func TestRangeFrom_Unbounded(t *testing.T) {
	got := seq.CollectN(ranges.RangeFrom(10, -2), 5)
	assert.Equal(t, []int{10, 8, 6, 4, 2}, got)

	long := seq.CollectN(ranges.RangeFrom(0, 1), 1000)
	require.Len(t, long, 1000)
	assert.Equal(t, 999, long[999])
}

// TestRange_ZeroStepRepeats documents the degenerate step = 0 case.
func TestRange_ZeroStepRepeats(t *testing.T) {
	got := seq.CollectN(ranges.RangeInclStep(1, 5, 0), 100)
	require.Len(t, got, 100, "step 0 never terminates")
	for _, v := range got {
		assert.Equal(t, 1, v)
	}
}

// TestRange_BatchBoundaries compares against a plain loop around multiples
// of BatchSize so that batching is observably transparent.
func TestRange_BatchBoundaries(t *testing.T) {
	for _, n := range []int{1, ranges.BatchSize - 1, ranges.BatchSize, ranges.BatchSize + 1, 2 * ranges.BatchSize, 2*ranges.BatchSize + 1, 1000} {
		want := make([]int, 0, n)
		for i := 0; i < n; i++ {
			want = append(want, i)
		}
		assert.Equal(t, want, seq.Collect(ranges.RangeIncl(0, n-1)), "n=%d", n)
	}
}

// TestRange_UnsignedWrap stops at the representable bounds of the type.
func TestRange_UnsignedWrap(t *testing.T) {
	assert.Equal(t, []uint8{3, 2, 1, 0}, seq.Collect(ranges.RangeIncl[uint8](3, 0)))
	assert.Equal(t, []uint8{253, 254, 255}, seq.Collect(ranges.RangeIncl[uint8](253, 255)))
	assert.Equal(t, []int8{126, 127}, seq.Collect(ranges.RangeInclStep[int8](126, 127, 1)))
}

// TestSpec_Seq_Fresh verifies every Seq call yields an independent sequence.
func TestSpec_Seq_Fresh(t *testing.T) {
	sp := ranges.Spec[int]{Start: 1, End: 3, Step: 1, Inclusive: true}
	a, b := sp.Seq(), sp.Seq()
	_, _ = a.Next()
	assert.Equal(t, []int{2, 3}, seq.Collect(a))
	assert.Equal(t, []int{1, 2, 3}, seq.Collect(b))
}

// TestIndexedRanges pairs values with zero-based positions.
func TestIndexedRanges(t *testing.T) {
	want := []seq.Indexed[int]{{Index: 0, Value: 0}, {Index: 1, Value: 1}, {Index: 2, Value: 2}, {Index: 3, Value: 3}}
	assert.Equal(t, want, seq.Collect(ranges.IndexedRangeIncl(0, 3)))

	assert.Equal(t,
		[]seq.Indexed[int]{{Index: 0, Value: 3}, {Index: 1, Value: 2}, {Index: 2, Value: 1}},
		seq.Collect(ranges.IndexedRange(3, 0)))

	assert.Equal(t,
		[]seq.Indexed[float64]{{Index: 0, Value: 0}, {Index: 1, Value: 0.5}, {Index: 2, Value: 1}},
		seq.Collect(ranges.IndexedRangeInclStep(0.0, 1.0, 0.5)))

	assert.Equal(t,
		[]seq.Indexed[int]{{Index: 0, Value: 0}, {Index: 1, Value: 5}},
		seq.Collect(ranges.IndexedRangeStep(0, 10, 5)))
}
