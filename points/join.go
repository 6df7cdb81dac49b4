package points

import "github.com/katalvlaran/lvseq/seq"

// pairSeq emits join(prev, cur) for every consecutive pair of src.
// The first element is pulled on the first call to Next, not at
// construction.
type pairSeq[P, S any] struct {
	src     seq.Seq[P]
	join    func(a, b P) S
	prev    P
	started bool
	done    bool
}

func (p *pairSeq[P, S]) Next() (S, bool) {
	var zero S
	if p.done {
		return zero, false
	}
	if !p.started {
		p.started = true
		first, ok := p.src.Next()
		if !ok {
			p.done = true
			return zero, false
		}
		p.prev = first
	}
	cur, ok := p.src.Next()
	if !ok {
		p.done = true
		return zero, false
	}
	out := p.join(p.prev, cur)
	p.prev = cur

	return out, true
}

func join2[N seq.Number](a, b Point2[N]) Segment2[N] {
	return Segment2[N]{a[0], a[1], b[0], b[1]}
}

func join3[N seq.Number](a, b Point3[N]) Segment3[N] {
	return Segment3[N]{a[0], a[1], a[2], b[0], b[1], b[2]}
}

// Join2 packs consecutive 2-D points into segments.
//
//	Join2(Of({0,0}, {1,1}, {2,0})) → [0 0 1 1] [1 1 2 0]
func Join2[N seq.Number](pts seq.Seq[Point2[N]]) seq.Seq[Segment2[N]] {
	return &pairSeq[Point2[N], Segment2[N]]{src: pts, join: join2[N]}
}

// Join3 packs consecutive 3-D points into segments.
func Join3[N seq.Number](pts seq.Seq[Point3[N]]) seq.Seq[Segment3[N]] {
	return &pairSeq[Point3[N], Segment3[N]]{src: pts, join: join3[N]}
}

// JoinXY packs two parallel coordinate sequences into 2-D segments:
// segment i is [x_i, y_i, x_{i+1}, y_{i+1}].
//
//	JoinXY(Of(1, 2, 3), Of(4, 5, 6)) → [1 4 2 5] [2 5 3 6]
func JoinXY[N seq.Number](xs, ys seq.Seq[N]) seq.Seq[Segment2[N]] {
	return Join2(Zip2(xs, ys))
}

// JoinXYZ packs three parallel coordinate sequences into 3-D segments.
func JoinXYZ[N seq.Number](xs, ys, zs seq.Seq[N]) seq.Seq[Segment3[N]] {
	return Join3(Zip3(xs, ys, zs))
}
