package noise

import "github.com/katalvlaran/lvseq/seq"

// lineSeq samples along a 1-D line, advancing the position by incr.
type lineSeq struct {
	s    Sampler
	x    float64
	incr float64
}

func (l *lineSeq) Next() (float64, bool) {
	v := l.s.Noise1(l.x)
	l.x += l.incr

	return v, true
}

// PerlinNoiseSeq returns noise(seed), noise(seed+incr), noise(seed+2·incr), …
// indefinitely. The sampler is consulted once per demanded element.
func PerlinNoiseSeq(s Sampler, seed, incr float64) seq.Seq[float64] {
	return &lineSeq{s: s, x: seed, incr: incr}
}

// walkSeq samples along a 2-D line.
type walkSeq struct {
	s      Sampler
	x, y   float64
	dx, dy float64
}

func (w *walkSeq) Next() (float64, bool) {
	v := w.s.Noise2(w.x, w.y)
	w.x += w.dx
	w.y += w.dy

	return v, true
}

// Walk2D returns noise(x, y), noise(x+dx, y+dy), … indefinitely. It is the
// two-dimensional counterpart of PerlinNoiseSeq, used to drift through a
// noise field.
func Walk2D(s Sampler, x, y, dx, dy float64) seq.Seq[float64] {
	return &walkSeq{s: s, x: x, y: y, dx: dx, dy: dy}
}
