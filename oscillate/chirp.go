// SPDX-License-Identifier: MIT
// Package: lvseq/oscillate
//
// chirp.go - lazy linear chirp (frequency sweep sinusoid).
//
// Model:
//   • fᵢ   = f0 + (f1 − f0)·min(i/(n−1), 1)   (cycles/sample)
//   • θᵢ₊₁ = θᵢ + τ·fᵢ                        (phase accumulator, τ=2π)
//   • yᵢ   = A·sin(θᵢ₊₁) + trend·i + noise
//
// After the sweep length n the frequency holds at f1, so the sequence is
// infinite and phase-continuous.

package oscillate

import (
	"math"

	"github.com/katalvlaran/lvseq/seq"
)

const tau = 2.0 * math.Pi // τ = 2π

type chirpSeq struct {
	cfg   waveConfig
	i     int
	theta float64
}

func (c *chirpSeq) Next() (float64, bool) {
	t := unitOne
	if c.cfg.sweepLen > 1 && c.i < c.cfg.sweepLen-1 {
		t = float64(c.i) / float64(c.cfg.sweepLen-1)
	}
	fi := c.cfg.frequency + (c.cfg.sweepTo-c.cfg.frequency)*t
	c.theta += tau * fi

	val := c.cfg.amplitude*math.Sin(c.theta) + c.cfg.trendK*float64(c.i) + c.cfg.jitter()
	c.i++

	return val, true
}

// Chirp returns an infinite linear chirp sweeping from the WithFrequency
// value to the WithSweep end frequency.
func Chirp(opts ...WaveOption) seq.Seq[float64] {
	return &chirpSeq{cfg: newWaveConfig(opts...)}
}
