// Package noise turns a noise-sampling primitive into lazy sequences.
//
// The sampling primitive itself belongs to the graphics collaborator; this
// package only requires something that satisfies Sampler:
//
//	noise(x)    -> float in [0,1]
//	noise(x, y) -> float in [0,1]
//
// NewPerlin provides a ready Sampler backed by github.com/aquilax/go-perlin.
//
// ⚙️ Usage:
//
//	n := noise.NewPerlin(42)
//	heights := seq.CollectN(noise.PerlinNoiseSeq(n, 0, 0.01), 512)
//
// Sequences produced here are pure given the Sampler, infinite and not
// restartable.
package noise
