// SPDX-License-Identifier: MIT
// Package: lvseq/oscillate
//
// options.go - functional options for the wave generators.
//
// Contract (strict):
//   • Options are functional (type WaveOption func(*waveConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: noise needs WithSeed or WithRand.

package oscillate

import "math/rand"

// WaveOption customizes Pulse and Chirp by mutating a waveConfig before the
// sequence is created.
type WaveOption func(*waveConfig)

// WithAmplitude sets the wave amplitude A (>0). Panics if A <= 0.
func WithAmplitude(a float64) WaveOption {
	if a <= 0 {
		panic("oscillate: WithAmplitude(A<=0)")
	}
	return func(c *waveConfig) {
		c.amplitude = a
	}
}

// WithFrequency sets the base frequency f0 (>0) in cycles per sample.
// For Chirp it is the sweep start frequency. Panics if f0 <= 0.
func WithFrequency(f0 float64) WaveOption {
	if f0 <= 0 {
		panic("oscillate: WithFrequency(f0<=0)")
	}
	return func(c *waveConfig) {
		c.frequency = f0
	}
}

// WithSweep sets the Chirp end frequency f1 (>0) reached after n (>=1)
// samples; the frequency then stays at f1. Panics on invalid values.
func WithSweep(f1 float64, n int) WaveOption {
	if f1 <= 0 {
		panic("oscillate: WithSweep(f1<=0)")
	}
	if n < 1 {
		panic("oscillate: WithSweep(n<1)")
	}
	return func(c *waveConfig) {
		c.sweepTo, c.sweepLen = f1, n
	}
}

// WithDuty sets the rectangular pulse duty cycle in [0,1].
func WithDuty(duty float64) WaveOption {
	if duty < 0 || duty > 1 {
		panic("oscillate: WithDuty(duty∉[0,1])")
	}
	return func(c *waveConfig) {
		c.duty = duty
	}
}

// WithTriangular switches Pulse to a triangular envelope.
func WithTriangular() WaveOption {
	return func(c *waveConfig) {
		c.triangular = true
	}
}

// WithTrend adds k*i to the i-th sample. Any real value is accepted.
func WithTrend(k float64) WaveOption {
	return func(c *waveConfig) {
		c.trendK = k
	}
}

// WithNoise sets additive Gaussian noise sigma (>=0). Noise draws need an
// RNG from WithSeed or WithRand; without one the option has no effect.
func WithNoise(sigma float64) WaveOption {
	if sigma < 0 {
		panic("oscillate: WithNoise(sigma<0)")
	}
	return func(c *waveConfig) {
		c.noiseSigma = sigma
	}
}

// WithSeed attaches a deterministic RNG seeded with seed.
func WithSeed(seed int64) WaveOption {
	return func(c *waveConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand attaches an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) WaveOption {
	if r == nil {
		panic("oscillate: WithRand(nil)")
	}
	return func(c *waveConfig) {
		c.rng = r
	}
}
