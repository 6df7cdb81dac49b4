// SPDX-License-Identifier: MIT
// Package: lvseq/oscillate
//
// pulse.go - lazy rectangular/triangular pulse train.
//
// Model:
//   • frac = (i·f0) mod 1
//   • Rectangular: y = A if frac < duty, else 0.
//   • Triangular:  y = A·(1 − |2·frac − 1|).
//   • y += trend·i + sigma·N(0,1).
//
// Contract:
//   • Pulse(opts...) is infinite and computes one sample per Next.
//   • Strict determinism per options; no panics; no global state.

package oscillate

import (
	"math"

	"github.com/katalvlaran/lvseq/seq"
)

const (
	unitOne   = 1.0 // named one to avoid magic 1.0
	triDouble = 2.0 // factor used in triangular wave: 2*frac-1
	triCenter = 1.0 // center offset used in triangular wave
)

// pulseSeq holds the resolved configuration and the sample index.
type pulseSeq struct {
	cfg waveConfig
	i   int
}

func (p *pulseSeq) Next() (float64, bool) {
	frac := math.Mod(float64(p.i)*p.cfg.frequency, unitOne)

	var base float64
	if p.cfg.triangular {
		base = p.cfg.amplitude * (unitOne - math.Abs(triDouble*frac-triCenter))
	} else if frac < p.cfg.duty {
		base = p.cfg.amplitude
	}
	base += p.cfg.trendK * float64(p.i)
	base += p.cfg.jitter()
	p.i++

	return base, true
}

// Pulse returns an infinite pulse train. Defaults: A=1, f0=0.125 (period 8),
// duty 0.5, rectangular, no trend, no noise.
//
// Complexity: O(1) per sample.
func Pulse(opts ...WaveOption) seq.Seq[float64] {
	return &pulseSeq{cfg: newWaveConfig(opts...)}
}
