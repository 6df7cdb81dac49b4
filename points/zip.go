package points

import "github.com/katalvlaran/lvseq/seq"

type zip2Seq[N seq.Number] struct {
	xs, ys seq.Seq[N]
	done   bool
}

func (z *zip2Seq[N]) Next() (Point2[N], bool) {
	if z.done {
		return Point2[N]{}, false
	}
	x, ok := z.xs.Next()
	if !ok {
		z.done = true
		return Point2[N]{}, false
	}
	y, ok := z.ys.Next()
	if !ok {
		z.done = true
		return Point2[N]{}, false
	}

	return Point2[N]{x, y}, true
}

type zip3Seq[N seq.Number] struct {
	xs, ys, zs seq.Seq[N]
	done       bool
}

func (z *zip3Seq[N]) Next() (Point3[N], bool) {
	if z.done {
		return Point3[N]{}, false
	}
	x, ok := z.xs.Next()
	if !ok {
		z.done = true
		return Point3[N]{}, false
	}
	y, ok := z.ys.Next()
	if !ok {
		z.done = true
		return Point3[N]{}, false
	}
	zv, ok := z.zs.Next()
	if !ok {
		z.done = true
		return Point3[N]{}, false
	}

	return Point3[N]{x, y, zv}, true
}

// Zip2 pairs xs and ys into points, stopping with the shorter input.
func Zip2[N seq.Number](xs, ys seq.Seq[N]) seq.Seq[Point2[N]] {
	return &zip2Seq[N]{xs: xs, ys: ys}
}

// Zip3 combines xs, ys and zs into points, stopping with the shortest input.
func Zip3[N seq.Number](xs, ys, zs seq.Seq[N]) seq.Seq[Point3[N]] {
	return &zip3Seq[N]{xs: xs, ys: ys, zs: zs}
}
