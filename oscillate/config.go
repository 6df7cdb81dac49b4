// SPDX-License-Identifier: MIT
// Package: lvseq/oscillate
//
// config.go - internal wave configuration and deterministic defaults.
//
// Design:
//   • waveConfig is the single source of truth for Pulse/Chirp knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newWaveConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • amplitude   = 1.0
//   • frequency   = 0.125 cycles/sample (period 8)
//   • sweepTo     = 0.25 cycles/sample (Chirp end frequency)
//   • sweepLen    = 64 samples
//   • duty        = 0.5
//   • triangular  = false
//   • trendK      = 0.0
//   • noiseSigma  = 0.0
//   • rng         = nil (noise disabled unless seeded)

package oscillate

import "math/rand"

// waveConfig aggregates every knob used by the wave generators.
// It is passed by VALUE into each generator (immutable to callers).
type waveConfig struct {
	amplitude  float64 // >0
	frequency  float64 // >0, cycles/sample; Chirp start frequency
	sweepTo    float64 // >0, Chirp end frequency
	sweepLen   int     // >=1, samples to sweep from frequency to sweepTo
	duty       float64 // [0,1], Pulse only
	triangular bool    // Pulse shape
	trendK     float64 // any real, added as trendK*i
	noiseSigma float64 // >=0
	rng        *rand.Rand
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultAmplitude  = 1.0
	defaultFrequency  = 0.125
	defaultSweepTo    = 0.25
	defaultSweepLen   = 64
	defaultDuty       = 0.5
	defaultTrend      = 0.0
	defaultNoiseSigma = 0.0
)

// newWaveConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newWaveConfig(opts ...WaveOption) waveConfig {
	cfg := waveConfig{
		amplitude:  defaultAmplitude,
		frequency:  defaultFrequency,
		sweepTo:    defaultSweepTo,
		sweepLen:   defaultSweepLen,
		duty:       defaultDuty,
		trendK:     defaultTrend,
		noiseSigma: defaultNoiseSigma,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// jitter returns sigma·N(0,1) when noise is enabled, else 0.
func (c waveConfig) jitter() float64 {
	if c.noiseSigma <= 0 || c.rng == nil {
		return 0
	}

	return c.noiseSigma * c.rng.NormFloat64()
}
