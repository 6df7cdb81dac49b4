package seq_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvseq/seq"
)

// TestFromSlice_StickyExhaustion verifies that a drained sequence keeps
// reporting exhaustion.
func TestFromSlice_StickyExhaustion(t *testing.T) {
	s := seq.Of(1, 2)

	v, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	v, ok = s.Next()
	require.True(t, ok)
	assert.Equal(t, 2, v)

	for i := 0; i < 3; i++ {
		v, ok = s.Next()
		assert.False(t, ok, "exhaustion must be permanent")
		assert.Zero(t, v)
	}
}

// TestTake_DoesNotOverPull ensures Take stops pulling its source at n.
func TestTake_DoesNotOverPull(t *testing.T) {
	pulls := 0
	src := seq.Func[int](func() (int, bool) {
		pulls++
		return pulls, true
	})

	got := seq.Collect(seq.Take[int](src, 4))
	assert.Equal(t, []int{1, 2, 3, 4}, got)
	assert.Equal(t, 4, pulls, "Take must not demand element n+1")
}

// TestTake_ShortSource checks Take on a source shorter than n.
func TestTake_ShortSource(t *testing.T) {
	assert.Equal(t, []string{"a"}, seq.Collect(seq.Take(seq.Of("a"), 5)))
	assert.Nil(t, seq.Collect(seq.Take(seq.Of("a"), 0)))
}

// TestCollectN covers the bounded collector.
func TestCollectN(t *testing.T) {
	assert.Equal(t, []float64{2, 2, 2}, seq.CollectN(seq.Repeat(2.0), 3))
	assert.Equal(t, []int{1}, seq.CollectN(seq.Of(1), 3))
	assert.Nil(t, seq.CollectN(seq.Of(1), 0))
}

// TestMap applies a function lazily.
func TestMap(t *testing.T) {
	sq := seq.Map(seq.Of(1, 2, 3), func(v int) int { return v * v })
	assert.Equal(t, []int{1, 4, 9}, seq.Collect(sq))
}

// TestAll_Break leaves the tail of the source intact after break.
func TestAll_Break(t *testing.T) {
	s := seq.Of(1, 2, 3, 4)
	for v := range seq.All(s) {
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []int{3, 4}, seq.Collect(s))
}

// TestFromIter round-trips through iter.Pull and supports early stop.
func TestFromIter(t *testing.T) {
	s, stop := seq.FromIter(slices.Values([]int{5, 6, 7}))
	defer stop()
	assert.Equal(t, []int{5, 6, 7}, seq.Collect(s))
	_, ok := s.Next()
	assert.False(t, ok)

	s2, stop2 := seq.FromIter(slices.Values([]int{1, 2, 3}))
	v, ok := s2.Next()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	stop2()
	stop2()
	_, ok = s2.Next()
	assert.False(t, ok, "stopped iterator must report exhaustion")
}

// TestOperand checks both arms of the scalar/sequence variant.
func TestOperand(t *testing.T) {
	sc := seq.Scalar(3.5)
	require.True(t, sc.IsScalar())
	v, ok := sc.Value()
	require.True(t, ok)
	assert.Equal(t, 3.5, v)
	assert.Equal(t, []float64{3.5, 3.5}, seq.CollectN(sc.Seq(), 2))

	sq := seq.Sequence(seq.Of(1.0, 2.0))
	require.False(t, sq.IsScalar())
	_, ok = sq.Value()
	assert.False(t, ok)
	assert.Equal(t, []float64{1, 2}, seq.Collect(sq.Seq()))

	var zero seq.Operand[int]
	assert.True(t, zero.IsScalar(), "zero Operand is scalar zero")

	assert.False(t, seq.Sequence[int](nil).IsScalar())
	assert.Nil(t, seq.Collect(seq.Sequence[int](nil).Seq()))
}

// TestMustValue panics on a sequence operand.
func TestMustValue(t *testing.T) {
	assert.Equal(t, 4, seq.MustValue(seq.Scalar(4)))
	assert.Panics(t, func() { seq.MustValue(seq.Sequence(seq.Of(1))) })
}
