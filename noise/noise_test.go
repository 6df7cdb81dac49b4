package noise_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/katalvlaran/lvseq/noise"
	"github.com/katalvlaran/lvseq/noise/mocks"
	"github.com/katalvlaran/lvseq/seq"
)

// TestPerlinNoiseSeq_AdvancesSeed checks sampling positions and order.
func TestPerlinNoiseSeq_AdvancesSeed(t *testing.T) {
	ctrl := gomock.NewController(t)
	sampler := mocks.NewMockSampler(ctrl)

	gomock.InOrder(
		sampler.EXPECT().Noise1(1.0).Return(0.1),
		sampler.EXPECT().Noise1(1.5).Return(0.2),
		sampler.EXPECT().Noise1(2.0).Return(0.3),
	)

	got := seq.CollectN(noise.PerlinNoiseSeq(sampler, 1, 0.5), 3)
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, got)
}

// TestPerlinNoiseSeq_Lazy ensures nothing is sampled before it is demanded.
func TestPerlinNoiseSeq_Lazy(t *testing.T) {
	ctrl := gomock.NewController(t)
	sampler := mocks.NewMockSampler(ctrl)

	s := noise.PerlinNoiseSeq(sampler, 0, 1)

	sampler.EXPECT().Noise1(0.0).Return(0.5).Times(1)
	v, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, 0.5, v)
}

// TestWalk2D advances both coordinates.
func TestWalk2D(t *testing.T) {
	ctrl := gomock.NewController(t)
	sampler := mocks.NewMockSampler(ctrl)

	gomock.InOrder(
		sampler.EXPECT().Noise2(0.0, 10.0).Return(0.25),
		sampler.EXPECT().Noise2(0.25, 9.5).Return(0.75),
	)

	assert.Equal(t, []float64{0.25, 0.75}, seq.CollectN(noise.Walk2D(sampler, 0, 10, 0.25, -0.5), 2))
}

// TestPerlin_UnitRangeDeterministic samples the go-perlin backed sampler.
func TestPerlin_UnitRangeDeterministic(t *testing.T) {
	a := seq.CollectN(noise.PerlinNoiseSeq(noise.NewPerlin(42), 0.3, 0.07), 500)
	b := seq.CollectN(noise.PerlinNoiseSeq(noise.NewPerlin(42), 0.3, 0.07), 500)
	require.Len(t, a, 500)
	assert.Equal(t, a, b, "same seed must give the same samples")
	for i, v := range a {
		assert.GreaterOrEqual(t, v, 0.0, "sample %d", i)
		assert.LessOrEqual(t, v, 1.0, "sample %d", i)
	}

	p := noise.NewPerlin(7, noise.WithOctaves(4), noise.WithAlpha(1.5), noise.WithBeta(2.5))
	for _, xy := range [][2]float64{{0.1, 0.2}, {3.7, -1.4}, {100.5, 20.25}} {
		v := p.Noise2(xy[0], xy[1])
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

// TestPerlinOptionPanics verifies fail-fast option constructors.
func TestPerlinOptionPanics(t *testing.T) {
	assert.Panics(t, func() { noise.WithAlpha(0) })
	assert.Panics(t, func() { noise.WithBeta(-1) })
	assert.Panics(t, func() { noise.WithOctaves(0) })
}
