package noise

//go:generate mockgen -destination=./mocks/mock_sampler.go -package=mocks github.com/katalvlaran/lvseq/noise Sampler

// Sampler is the external noise primitive.
// Implementations return values in [0,1] and must be deterministic for a
// given input.
type Sampler interface {
	// Noise1 samples one-dimensional noise at x.
	Noise1(x float64) float64
	// Noise2 samples two-dimensional noise at (x, y).
	Noise2(x, y float64) float64
}
