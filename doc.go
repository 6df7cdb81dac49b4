// Package lvseq is a small algebra of lazy, possibly infinite numeric
// sequences for procedural graphics: generate, combine, pack into line
// segments and hand to a renderer one frame at a time.
//
// 🚀 What is lvseq?
//
//	A pull-based sequence toolkit built around one interface, seq.Seq[T]:
//		• Ranges: inclusive/exclusive, auto step sign, (index, value) pairs
//		• Oscillation: steps, bounded cycles, pulse and chirp waves
//		• Noise: Perlin noise walks behind a pluggable Sampler
//		• Combinators: mul-add over scalars-or-sequences, tally, mod-range
//		• Points: flattened 2-D/3-D line segments for draw calls
//		• Stream: lock-free shared cursor for many goroutines
//		• Tap: zap-backed logging pass-through that keeps laziness
//
// ✨ Why lvseq?
//
//   - Lazy by construction: nothing is computed until pulled
//   - Generic over every integer and float type
//   - Exactly-once delivery across goroutines without a mutex
//   - Works with range-over-func through seq.All
//
// Layout:
//
//	seq/          Seq, Operand, Indexed and helpers
//	ranges/       range-incl, range, indexed variants
//	oscillate/    steps, cycle-between, pulse, chirp
//	noise/        perlin-noise-seq, Walk2D, go-perlin adapter
//	combinator/   MulAdd, Tally, ModRange
//	points/       Join2, Join3, JoinXY, JoinXYZ
//	stream/       New, Next, FromSeq, Consume
//	tap/          Tap, SetLogger
//	cmd/seqdump   CLI printing finite prefixes
//
// Quick example:
//
//	xs := ranges.RangeIncl(0.0, 100.0)
//	ys := combinator.MulAddSeq(noise.PerlinNoiseSeq(noise.NewPerlin(7), 0, 0.05), 200, 50)
//	for s := range seq.All(points.JoinXY(xs, ys)) {
//		canvas.Line(s.Args()...)
//	}
//
//	go get github.com/katalvlaran/lvseq
package lvseq
