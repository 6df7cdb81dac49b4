package main

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvseq/noise"
	"github.com/katalvlaran/lvseq/oscillate"
	"github.com/katalvlaran/lvseq/ranges"
	"github.com/katalvlaran/lvseq/seq"
)

type generatorFn func(p Params) seq.Seq[float64]

var generators = map[string]generatorFn{
	"range": func(p Params) seq.Seq[float64] {
		switch {
		case p.Step == 0 && p.Exclusive:
			return ranges.Range(p.Start, p.End)
		case p.Step == 0:
			return ranges.RangeIncl(p.Start, p.End)
		case p.Exclusive:
			return ranges.RangeStep(p.Start, p.End, p.Step)
		default:
			return ranges.RangeInclStep(p.Start, p.End, p.Step)
		}
	},
	"steps": func(p Params) seq.Seq[float64] {
		step := p.Step
		if step == 0 {
			step = 1
		}

		return oscillate.StepsBy(p.Start, step)
	},
	"cycle": func(p Params) seq.Seq[float64] {
		start := p.Start
		if start < p.Min || start > p.Max {
			start = p.Min
		}

		return oscillate.CycleFrom(start, p.Min, p.Max, p.Inc, p.Dec, p.Direction)
	},
	"noise": func(p Params) seq.Seq[float64] {
		sampler := noise.NewPerlin(p.PerlinSeed, noise.WithOctaves(p.Octaves))

		return noise.PerlinNoiseSeq(sampler, p.Seed, p.Incr)
	},
	"pulse": func(p Params) seq.Seq[float64] {
		opts := []oscillate.WaveOption{
			oscillate.WithAmplitude(p.Amplitude),
			oscillate.WithFrequency(p.Frequency),
			oscillate.WithDuty(p.Duty),
			oscillate.WithTrend(p.Trend),
		}
		if p.Triangular {
			opts = append(opts, oscillate.WithTriangular())
		}

		return oscillate.Pulse(opts...)
	},
	"chirp": func(p Params) seq.Seq[float64] {
		return oscillate.Chirp(
			oscillate.WithAmplitude(p.Amplitude),
			oscillate.WithFrequency(p.Frequency),
			oscillate.WithSweep(p.SweepTo, p.SweepLen),
			oscillate.WithTrend(p.Trend),
		)
	},
}

// newGenerator builds the named generator. Params must already be
// validated: wave and noise options panic on out-of-range values.
func newGenerator(name string, p Params) (seq.Seq[float64], error) {
	fn, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %v)", ErrUnknownGenerator, name, generatorNames())
	}

	return fn(p), nil
}

func generatorNames() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
