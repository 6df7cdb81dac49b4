package noise

import (
	"github.com/aquilax/go-perlin"
)

// Deterministic Perlin defaults.
const (
	DefaultAlpha   = 2.0 // weight divisor between successive octaves
	DefaultBeta    = 2.0 // frequency multiplier between successive octaves
	DefaultOctaves = 3   // number of summed octaves
)

// PerlinOption customizes NewPerlin. Option constructors panic on
// meaningless values.
type PerlinOption func(*perlinConfig)

type perlinConfig struct {
	alpha   float64
	beta    float64
	octaves int32
}

// WithAlpha sets the octave weight divisor (>0).
func WithAlpha(alpha float64) PerlinOption {
	if alpha <= 0 {
		panic("noise: WithAlpha(alpha<=0)")
	}
	return func(c *perlinConfig) {
		c.alpha = alpha
	}
}

// WithBeta sets the octave frequency multiplier (>0).
func WithBeta(beta float64) PerlinOption {
	if beta <= 0 {
		panic("noise: WithBeta(beta<=0)")
	}
	return func(c *perlinConfig) {
		c.beta = beta
	}
}

// WithOctaves sets the number of summed octaves (>=1).
func WithOctaves(n int) PerlinOption {
	if n < 1 {
		panic("noise: WithOctaves(n<1)")
	}
	return func(c *perlinConfig) {
		c.octaves = int32(n)
	}
}

// Perlin is a Sampler backed by go-perlin. Raw output in roughly [-1,1] is
// mapped into [0,1] and clamped.
//
// Perlin is safe for concurrent reads once constructed.
type Perlin struct {
	gen *perlin.Perlin
}

var _ Sampler = (*Perlin)(nil)

// NewPerlin builds a deterministic Perlin sampler for seed.
func NewPerlin(seed int64, opts ...PerlinOption) *Perlin {
	cfg := perlinConfig{alpha: DefaultAlpha, beta: DefaultBeta, octaves: DefaultOctaves}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Perlin{gen: perlin.NewPerlin(cfg.alpha, cfg.beta, cfg.octaves, seed)}
}

// Noise1 implements Sampler.
func (p *Perlin) Noise1(x float64) float64 {
	return unit(p.gen.Noise1D(x))
}

// Noise2 implements Sampler.
func (p *Perlin) Noise2(x, y float64) float64 {
	return unit(p.gen.Noise2D(x, y))
}

// unit maps [-1,1] onto [0,1].
func unit(v float64) float64 {
	v = (v + 1) / 2
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
